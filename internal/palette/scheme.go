package palette

// Scheme is the set of colors one rendition of the pattern is painted with.
type Scheme struct {
	Background Color `json:"background"`
	Base       Color `json:"base"`
	Highlight  Color `json:"highlight"`
	Glow       Color `json:"glow"`
}

// Brand is the Tokenlistooor orange-red scheme.
func Brand() Scheme {
	return Scheme{
		Background: MustHex("#ff401a"),
		Base:       MustHex("#ff6b4d"),
		Highlight:  MustHex("#ffcc66"),
		Glow:       MustHex("#ffe696"),
	}
}
