// Package texblend composes two square block textures into a transition
// texture.
//
// # Overview
//
// Given textures A and B of the same side length N, a direction, a blend
// mode and a transition width, texblend produces a third N×N texture where
// every pixel is a weighted mix of the matching pixels of A and B. The
// weight grows from 0 (pure A) to 1 (pure B) along the chosen direction.
//
// # Quick Start
//
//	import "github.com/gogpu/texblend"
//
//	out, err := texblend.Blend(grass, dirt, texblend.Params{
//	    Direction: texblend.LeftToRight,
//	    Mode:      texblend.Gradient,
//	    Width:     60,
//	})
//
// # Directions
//
// Sixteen directions are available. Four run edge to edge, four run corner
// to corner, and eight place one texture in a quarter-plane corner region
// (SmallCornerTL puts B in the top-left quarter, SmallCornerTLInv puts A
// there). Each direction has a short label, used for batch output names:
//
//	left-to-right  right-to-left  top-to-bottom  bottom-to-top
//	corner-tl-br   corner-tr-bl   corner-bl-tr   corner-br-tl
//	small-tl       small-tr       small-bl       small-br
//	small-tl-inv   small-tr-inv   small-bl-inv   small-br-inv
//
// # Transition Width
//
// Width is a percentage. 0 gives a hard step at progress 0.5, 100 spreads
// the transition over the full progress range. Finite values outside
// [0, 100] are clamped; NaN and infinities are rejected.
//
// # Blend Modes
//
//   - [Gradient]: smoothstep easing of the gated progress.
//   - [Stepped]: binary threshold with a deterministic per-pixel jitter,
//     giving a ragged hand-painted edge.
//   - [Dither]: 4×4 ordered (Bayer) dither threshold.
//
// # Batch Generation
//
// [GenerateSet] runs one blend per direction of a [Catalog] and names each
// result "<base>-<label>". Jobs run concurrently on a worker pool; results
// are always returned in catalog order.
//
// # Logging
//
// texblend is silent by default. Call [SetLogger] to route diagnostics to a
// [log/slog] logger.
package texblend
