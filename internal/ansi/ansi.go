// Package ansi provides ANSI escape sequences and palette presets used when
// highlighting quoted output. The colour values are derived from
// pkt.systems/pslog/ansi (MIT License).
package ansi

// Base ANSI escape codes.
const (
	Reset   = "\x1b[0m"
	Faint   = "\x1b[90m"
	Yellow  = "\x1b[33m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
)

// Palette assigns a style to each token class of quoted output.
type Palette struct {
	// Quote styles framing characters: the surrounding quotes of shell and
	// ASCII quoting.
	Quote string
	// Escape styles escape sequences such as \xff, \" and '\''.
	Escape string
	// Separator styles the separator written between joined items.
	Separator string
}

// PaletteDefault is the 16-colour friendly default.
var PaletteDefault = Palette{
	Quote:     Faint,
	Escape:    Magenta,
	Separator: Faint,
}

// PaletteClassic mirrors the pslog classic colours.
var PaletteClassic = Palette{
	Quote:     Cyan,
	Escape:    Yellow,
	Separator: Faint,
}

// PaletteDoomNord channels doom-nord with cool glacier blues.
var PaletteDoomNord = Palette{
	Quote:     "\x1b[38;5;110m",
	Escape:    "\x1b[38;5;179m",
	Separator: "\x1b[38;5;245m",
}

// PaletteTokyoNight draws on Tokyo Night's neon blues and warm highlights.
var PaletteTokyoNight = Palette{
	Quote:     "\x1b[38;5;69m",
	Escape:    "\x1b[38;5;176m",
	Separator: "\x1b[38;5;244m",
}

// PaletteSynthwave84 leans on hot pinks against teal.
var PaletteSynthwave84 = Palette{
	Quote:     "\x1b[38;5;51m",
	Escape:    "\x1b[38;5;205m",
	Separator: "\x1b[38;5;61m",
}

// PaletteGruvboxLight is tuned for light terminal backgrounds.
var PaletteGruvboxLight = Palette{
	Quote:     "\x1b[38;5;24m",
	Escape:    "\x1b[38;5;124m",
	Separator: "\x1b[38;5;102m",
}
