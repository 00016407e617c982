package sparkle

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

// Surface is the drawing target particles render to. Its shape follows a
// canvas-style immediate-mode API: Save and Restore bracket state changes,
// BeginPath starts a new path, Arc appends a circular arc, SetFillStyle
// selects the fill color and Fill paints the current path.
//
// SetFillStyle accepts any string produced by Color.RGBString or
// Color.HSLString (and their alpha-override variants). See ParseStyle.
type Surface interface {
	Save()
	Restore()
	BeginPath()
	Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool)
	SetFillStyle(style string)
	Fill()
}

// Frame carries per-frame input from the frame loop.
type Frame struct {
	// DeltaTime is the time since the previous frame in milliseconds.
	DeltaTime float64
	// Surface is the drawing target for this frame, if rendering.
	Surface Surface
}
