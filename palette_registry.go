package quotex

import (
	"fmt"
	"sort"
	"strings"

	"pkt.systems/quotex/internal/ansi"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName: ansi.PaletteDefault,
	"classic":          ansi.PaletteClassic,
	"pslog":            ansi.PaletteClassic,
	"doom-nord":        ansi.PaletteDoomNord,
	"tokyo-night":      ansi.PaletteTokyoNight,
	"synthwave84":      ansi.PaletteSynthwave84,
	"gruvbox-light":    ansi.PaletteGruvboxLight,
}

// ColorPalette holds the ANSI sequences written around each token class.
// The zero value disables highlighting.
type ColorPalette struct {
	Quote     string
	Escape    string
	Separator string
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// CheckPalette reports whether name selects a known palette. Empty and
// "none" are always valid.
func CheckPalette(name string) error {
	_, err := lookupPalette(name)
	return err
}

// lookupPalette maps a case-insensitive palette name to its styles. An
// empty name means "default"; "none" maps to the zero palette.
func lookupPalette(name string) (ColorPalette, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		name = paletteDefaultName
	case paletteNoneName:
		return NoColorPalette(), nil
	}
	ap, ok := paletteRegistry[name]
	if !ok {
		return ColorPalette{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}
	return colorPaletteFromAnsi(ap), nil
}

// resolvePalette picks the styles Render writes around quotes, escapes and
// separators. The name in opts is validated even when enableColor is false,
// so a typo fails the same way on a pipe as on a terminal.
func resolvePalette(opts *Options, enableColor bool) (ColorPalette, error) {
	var name string
	if opts != nil {
		name = opts.Palette
	}
	pal, err := lookupPalette(name)
	if err != nil || !enableColor {
		return NoColorPalette(), err
	}
	return pal, nil
}

func colorPaletteFromAnsi(ap ansi.Palette) ColorPalette {
	sep := ap.Separator
	if sep == "" {
		sep = ap.Quote
	}
	return ColorPalette{
		Quote:     ap.Quote,
		Escape:    ap.Escape,
		Separator: sep,
	}
}

// NoColorPalette disables all styling while keeping the formatter path shared.
func NoColorPalette() ColorPalette {
	return ColorPalette{}
}
