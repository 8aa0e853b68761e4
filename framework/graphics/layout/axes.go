package layout

type Axes uint8

const (
	AxesX Axes = 1 << iota
	AxesY

	AxesNone Axes = 0
	AxesBoth      = AxesX | AxesY
)

func (a Axes) Has(flag Axes) bool {
	return a&flag == flag
}

func (a Axes) String() string {
	switch a {
	case AxesX:
		return "X"
	case AxesY:
		return "Y"
	case AxesBoth:
		return "Both"
	default:
		return "None"
	}
}
