package styles

// NewDefaultTheme creates the dark theme used by the phonebook.
func NewDefaultTheme() *Theme {
	return &Theme{
		Name:   "default",
		IsDark: true,

		// Teal and amber
		Primary:   ParseHex("#4fb3a9"),
		Secondary: ParseHex("#e0b25c"),
		Tertiary:  ParseHex("#35474a"),
		Accent:    ParseHex("#f08a5d"),

		BgBase:    ParseHex("#1b1f20"),
		BgSubtle:  ParseHex("#232a2b"),
		BgOverlay: ParseHex("#2c3435"),

		FgBase:   ParseHex("#d5dcd9"),
		FgMuted:  ParseHex("#8a9894"),
		FgSubtle: ParseHex("#5d6a67"),

		Border:      ParseHex("#35474a"),
		BorderFocus: ParseHex("#4fb3a9"),

		Success: ParseHex("#8cc37a"),
		Error:   ParseHex("#e06c6c"),
		Warning: ParseHex("#e0b25c"),
		Info:    ParseHex("#6cb0e0"),
	}
}
