package blend

type Mode int

const (
	Alpha Mode = iota
	Additive
)

func (m Mode) String() string {
	switch m {
	case Additive:
		return "Additive"
	default:
		return "Alpha"
	}
}
