package graphics

import (
	"github.com/Givikap120/lazer-go/framework/math/color"
)

// Palette holds the client's named colours.
type Palette struct {
	PurpleLight  color.Color
	Purple       color.Color
	PurpleDark   color.Color
	PurpleDarker color.Color

	PinkLight  color.Color
	Pink       color.Color
	PinkDark   color.Color
	PinkDarker color.Color

	BlueLight  color.Color
	Blue       color.Color
	BlueDark   color.Color
	BlueDarker color.Color

	YellowLight color.Color
	Yellow      color.Color
	YellowDark  color.Color

	GreenLight  color.Color
	Green       color.Color
	GreenDark   color.Color
	GreenDarker color.Color

	TeamRed  color.Color
	TeamBlue color.Color
}

func NewPalette() *Palette {
	return &Palette{
		PurpleLight:  color.MustHex("aa88ff"),
		Purple:       color.MustHex("8866ee"),
		PurpleDark:   color.MustHex("6644cc"),
		PurpleDarker: color.MustHex("441188"),

		PinkLight:  color.MustHex("ff99c7"),
		Pink:       color.MustHex("ff66aa"),
		PinkDark:   color.MustHex("cc5288"),
		PinkDarker: color.MustHex("bb1177"),

		BlueLight:  color.MustHex("99ddff"),
		Blue:       color.MustHex("66ccff"),
		BlueDark:   color.MustHex("44aadd"),
		BlueDarker: color.MustHex("2299bb"),

		YellowLight: color.MustHex("ffdd55"),
		Yellow:      color.MustHex("ffcc22"),
		YellowDark:  color.MustHex("eeaa00"),

		GreenLight:  color.MustHex("b3d944"),
		Green:       color.MustHex("88b300"),
		GreenDark:   color.MustHex("668800"),
		GreenDarker: color.MustHex("445500"),

		TeamRed:  color.NewRGBA8(129, 68, 65, 255),
		TeamBlue: color.NewRGBA8(41, 91, 97, 255),
	}
}

// Gray returns an opaque gray of the given lightness.
func Gray(amount float32) color.Color {
	return color.NewL(amount)
}
