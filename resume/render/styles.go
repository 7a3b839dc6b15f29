package render

// TemplateStyle captures the per-template formatting applied at render time.
// Sizes are half-points, colors are RRGGBB hex.
type TemplateStyle struct {
	NameSize    int
	HeadingSize int
	NameColor   string
	AccentColor string
}

var defaultStyle = TemplateStyle{
	NameSize:    32,
	HeadingSize: 24,
	NameColor:   "111111",
	AccentColor: "1F2937",
}

var templateStyles = map[string]TemplateStyle{
	"ats-tech":      defaultStyle,
	"business-pro":  {NameSize: 30, HeadingSize: 24, NameColor: "111111", AccentColor: "1E3A8A"},
	"creative-bold": {NameSize: 36, HeadingSize: 26, NameColor: "0F172A", AccentColor: "B91C1C"},
}

func styleFor(templateID string) TemplateStyle {
	if style, ok := templateStyles[templateID]; ok {
		return style
	}
	return defaultStyle
}
