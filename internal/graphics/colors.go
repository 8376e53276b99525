package graphics

// Color is one of the eight basic terminal colors.
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// RGB returns an approximation of c for surfaces that draw pixels.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xcd, 0x31, 0x31
	case ColorGreen:
		return 0x0d, 0xbc, 0x79
	case ColorYellow:
		return 0xe5, 0xe5, 0x10
	case ColorBlue:
		return 0x24, 0x72, 0xc8
	case ColorMagenta:
		return 0xbc, 0x3f, 0xbc
	case ColorCyan:
		return 0x11, 0xa8, 0xcd
	case ColorWhite:
		return 0xe5, 0xe5, 0xe5
	default:
		return 0, 0, 0
	}
}

// PairID selects a foreground/background combination.
type PairID int

// ColorPair is a foreground/background combination.
type ColorPair struct {
	Fg, Bg Color
}

const (
	PairSky       PairID = 1
	PairHighlight PairID = 4
	PairCrosshair PairID = 15
	PairText      PairID = 16
)

// DefaultPair is used for ids missing from the table.
var DefaultPair = ColorPair{Fg: ColorWhite, Bg: ColorBlack}

var pairs = map[PairID]ColorPair{
	1:  {ColorBlack, ColorCyan},
	2:  {ColorBlack, ColorGreen},
	3:  {ColorYellow, ColorBlack},
	4:  {ColorWhite, ColorBlack},
	5:  {ColorBlack, ColorYellow},
	6:  {ColorMagenta, ColorBlack},
	7:  {ColorBlack, ColorRed},
	8:  {ColorRed, ColorYellow},
	9:  {ColorBlack, ColorBlue},
	10: {ColorRed, ColorWhite},
	13: {ColorWhite, ColorMagenta},
	14: {ColorBlack, ColorMagenta},
	15: {ColorBlack, ColorWhite},
	16: {ColorWhite, ColorBlack},
}

// LookupPair returns the colors for id, falling back to DefaultPair.
func LookupPair(id PairID) ColorPair {
	if p, ok := pairs[id]; ok {
		return p
	}
	return DefaultPair
}
