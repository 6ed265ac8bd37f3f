package game

// TaikoColor is the drum side a circle is played on.
// The zero value is Kat.
type TaikoColor uint8

const (
	Kat TaikoColor = iota
	Don
)

func (c TaikoColor) Toggle() TaikoColor {
	if c == Don {
		return Kat
	}
	return Don
}

func (c TaikoColor) String() string {
	if c == Don {
		return "don"
	}
	return "kat"
}

// TaikoCircle is a single hit object.
type TaikoCircle struct {
	Time  Time
	Big   bool // finisher, drawn 1.55x larger
	Color TaikoColor
}

const (
	CircleSize  = 128.0
	BigModifier = 1.55
)

// BaseSize is the unscaled edge length of the circle quad.
func (c TaikoCircle) BaseSize() float32 {
	if c.Big {
		return CircleSize * BigModifier
	}
	return CircleSize
}
