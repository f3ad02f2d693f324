package model

// Color is one of the five colors a bet can be placed on. The order of
// Colors is significant: stats tie-breaks resolve to the earliest entry.
type Color string

const (
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
)

// Colors lists every valid color in enumeration order.
var Colors = []Color{ColorRed, ColorGreen, ColorBlue, ColorPurple, ColorOrange}

func ParseColor(s string) (Color, error) {
	for _, c := range Colors {
		if s == string(c) {
			return c, nil
		}
	}
	return "", ErrInvalidColor
}

func (c Color) String() string {
	return string(c)
}

// RoundStatus is the lifecycle state of a round. Transitions are strictly
// forward: betting -> closed -> finished.
type RoundStatus string

const (
	StatusBetting  RoundStatus = "betting"
	StatusClosed   RoundStatus = "closed"
	StatusFinished RoundStatus = "finished"
)

func (s RoundStatus) String() string {
	return string(s)
}
