// Package surface provides a render surface that is not backed by a window,
// for headless replay and tests.
package surface

// Fixed is a surface whose size and pointer position are set explicitly.
type Fixed struct {
	W, H int
	X, Y float64
}

// NewFixed returns a w x h surface with the pointer at its center.
func NewFixed(w, h int) *Fixed {
	return &Fixed{W: w, H: h, X: float64(w) / 2, Y: float64(h) / 2}
}

func (f *Fixed) Width() int      { return f.W }
func (f *Fixed) Height() int     { return f.H }
func (f *Fixed) MouseX() float64 { return f.X }
func (f *Fixed) MouseY() float64 { return f.Y }

// MoveTo places the pointer.
func (f *Fixed) MoveTo(x, y float64) {
	f.X, f.Y = x, y
}

// Resize changes the surface size and keeps the pointer where it was.
func (f *Fixed) Resize(w, h int) {
	f.W, f.H = w, h
}
