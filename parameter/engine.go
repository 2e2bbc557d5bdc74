package parameter

import "time"

// Render Loop Timing
const (
	// FrameUpdateInterval is the default render loop interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ReferenceFrame is the frame length per-frame physics constants are tuned against
	ReferenceFrame = time.Second / 60

	// MaxFrameDelta caps how many reference frames one tick may integrate after a stall
	MaxFrameDelta = 4.0

	// MinFrameRate and MaxFrameRate bound configurable frame rates
	MinFrameRate = 1
	MaxFrameRate = 240
)

// Surface Defaults
const (
	// FallbackWidth and FallbackHeight are used when a surface reports zero size
	FallbackWidth  = 580.0
	FallbackHeight = 300.0

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0

	// BaseFontSize is the nominal glyph height effects lay text out with
	BaseFontSize = 14.0
)

// Terminal Presenter
const (
	// CaptionLines is how many script text lines stay visible at the bottom of the screen
	CaptionLines = 3
)
