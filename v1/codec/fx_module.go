package codec

import "go.uber.org/fx"

// FXModule wires the input codec into Fx.
var FXModule = fx.Module("codec",
	fx.Provide(NewDecoder),
)
