package taiko

import (
	"github.com/Givikap120/lazer-go/app/graphics"
	"github.com/Givikap120/lazer-go/framework/math/color"
	"github.com/Givikap120/lazer-go/framework/math/vector"
)

const (
	CircleDiameter = 128
	StrongScale    = 1.525

	DrumRollWidth = 250

	kiaiGlowAlpha = 0.75
)

type PieceKind int

const (
	CentreHit PieceKind = iota
	RimHit
	Swell
	DrumRoll
)

func (k PieceKind) String() string {
	switch k {
	case CentreHit:
		return "Centre"
	case RimHit:
		return "Rim"
	case DrumRoll:
		return "DrumRoll"
	default:
		return "Swell"
	}
}

// HitPiece is the circle drawn for a taiko hit object.
type HitPiece struct {
	Kind     PieceKind
	Strong   bool
	Kiai     bool
	Position vector.Vector2f

	// Width of a drum roll body, zero for circles
	Width float32
}

func (p HitPiece) Diameter() float32 {
	if p.Strong {
		return CircleDiameter * StrongScale
	}

	return CircleDiameter
}

func (p HitPiece) AccentColour(palette *graphics.Palette) color.Color {
	switch p.Kind {
	case CentreHit:
		return palette.PinkDarker
	case RimHit:
		return palette.BlueDarker
	default:
		return palette.YellowDark
	}
}

// GlowAlpha is the opacity of the glow behind the circle, only visible during kiai.
func (p HitPiece) GlowAlpha() float32 {
	if p.Kiai {
		return kiaiGlowAlpha
	}

	return 0
}

// VisualTestScene lays out every piece kind in normal and strong variants.
// Drum rolls sit in their own column to the right.
func VisualTestScene(kiai bool) []HitPiece {
	var pieces []HitPiece

	for row, kind := range []PieceKind{CentreHit, RimHit, Swell} {
		y := float32(100 + row*200)

		pieces = append(pieces,
			HitPiece{Kind: kind, Kiai: kiai, Position: vector.NewVec2f(100, y)},
			HitPiece{Kind: kind, Strong: true, Kiai: kiai, Position: vector.NewVec2f(350, y)},
		)
	}

	return append(pieces,
		HitPiece{Kind: DrumRoll, Kiai: kiai, Width: DrumRollWidth, Position: vector.NewVec2f(575, 100)},
		HitPiece{Kind: DrumRoll, Strong: true, Kiai: kiai, Width: DrumRollWidth, Position: vector.NewVec2f(575, 300)},
	)
}
