package layout

import "github.com/Givikap120/lazer-go/framework/math/vector"

// Anchor is a point of a rectangle expressed in relative coordinates.
type Anchor vector.Vector2f

var (
	TopLeft      = Anchor{0, 0}
	TopCentre    = Anchor{0.5, 0}
	TopRight     = Anchor{1, 0}
	CentreLeft   = Anchor{0, 0.5}
	Centre       = Anchor{0.5, 0.5}
	CentreRight  = Anchor{1, 0.5}
	BottomLeft   = Anchor{0, 1}
	BottomCentre = Anchor{0.5, 1}
	BottomRight  = Anchor{1, 1}
)

var anchorNames = map[Anchor]string{
	TopLeft:      "TopLeft",
	TopCentre:    "TopCentre",
	TopRight:     "TopRight",
	CentreLeft:   "CentreLeft",
	Centre:       "Centre",
	CentreRight:  "CentreRight",
	BottomLeft:   "BottomLeft",
	BottomCentre: "BottomCentre",
	BottomRight:  "BottomRight",
}

// Position resolves the anchor inside a rectangle of the given size.
func (a Anchor) Position(size vector.Vector2f) vector.Vector2f {
	return vector.Vector2f(a).Mult(size)
}

func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}

	return vector.Vector2f(a).String()
}
