package lsp

// Resizable is the contract callers of MutableRectangle rely on: after SetWidth(w)
// and SetHeight(h), Area() == w*h.
type Resizable interface {
	SetWidth(w float64)
	SetHeight(h float64)
	Area() float64
}

// MutableRectangle is the base type in the violating example.
type MutableRectangle struct {
	width, height float64
}

func NewMutableRectangle(width, height float64) *MutableRectangle {
	return &MutableRectangle{width: width, height: height}
}

func (r *MutableRectangle) SetWidth(w float64)  { r.width = w }
func (r *MutableRectangle) SetHeight(h float64) { r.height = h }
func (r *MutableRectangle) Width() float64      { return r.width }
func (r *MutableRectangle) Height() float64     { return r.height }
func (r *MutableRectangle) Area() float64       { return r.width * r.height }

// MutableSquare embeds MutableRectangle and forces both sides to stay equal,
// which breaks the Resizable contract.
type MutableSquare struct {
	MutableRectangle
}

func NewMutableSquare(side float64) *MutableSquare {
	return &MutableSquare{MutableRectangle{width: side, height: side}}
}

func (s *MutableSquare) SetWidth(w float64) {
	s.width = w
	s.height = w
}

func (s *MutableSquare) SetHeight(h float64) {
	s.width = h
	s.height = h
}

// Stretch resizes r to w x h and returns the resulting area. It is correct for
// MutableRectangle and wrong for MutableSquare.
func Stretch(r Resizable, w, h float64) float64 {
	r.SetWidth(w)
	r.SetHeight(h)
	return r.Area()
}
