package render

import "layed/core"

// Palette used by the frame builder. Object fills come from the objects
// themselves; everything here is chrome.
var (
	gridLineColor      = core.Color{R: 220, G: 220, B: 220, A: 255}
	objectBorderColor  = core.Color{R: 40, G: 40, B: 40, A: 255}
	labelColor         = core.Color{R: 20, G: 20, B: 20, A: 255}
	selectionColor     = core.Color{R: 20, G: 120, B: 255, A: 255}
	selectionFillColor = core.Color{R: 20, G: 120, B: 255, A: 40}
	influenceFillColor = core.Color{R: 80, G: 200, B: 120, A: 50}
	influenceLineColor = core.Color{R: 80, G: 200, B: 120, A: 180}
	influencedColor    = core.Color{R: 240, G: 160, B: 20, A: 255}
)

// pendingAlpha is the transient alpha applied to the in-progress placement.
// It is applied to the emitted command only; the stored color never changes.
const pendingAlpha = 128
