// Package failure defines the error taxonomy shared by the embedding
// pipeline: BadInput, ResourceExhausted and Internal.
//
// Every error crossing a component boundary carries exactly one of these
// kinds. Callers branch on the kind with KindOf or the Is* helpers instead
// of inspecting error strings:
//
//	vectors, err := step.Infer(ctx, items)
//	if failure.IsResourceExhausted(err) {
//	    // degrade, retry item by item
//	}
//
// The HTTP boundary maps BadInput to 400 and everything else to 500.
package failure
