package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"pkt.systems/quotex"
)

const defaultMode = "shell"

// modes maps a --mode name to the renderer built for one input item.
var modes = map[string]func([]byte) quotex.Renderer{
	"shell": func(b []byte) quotex.Renderer { return quotex.ShellQuote(b) },
	"c":     func(b []byte) quotex.Renderer { return quotex.CEscapeBytes(b) },
	"hex":   func(b []byte) quotex.Renderer { return quotex.HexOf(b) },
	"ascii": func(b []byte) quotex.Renderer { return quotex.ASCIIQuoteOf(b) },
}

func modeNames() []string {
	names := make([]string, 0, len(modes))
	for name := range modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type config struct {
	mode         string
	separator    string
	json         bool
	noNewline    bool
	forceColor   bool
	monochrome   bool
	palette      string
	listPalettes bool
}

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, rest, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "quotex: %v\n", err)
		}
		return 2
	}

	if cfg.listPalettes {
		for _, name := range quotex.PaletteNames() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	build, ok := modes[cfg.mode]
	if !ok {
		fmt.Fprintf(stderr, "quotex: unknown mode %q (use one of: %s)\n", cfg.mode, strings.Join(modeNames(), ", "))
		return 2
	}

	if err := quotex.CheckPalette(cfg.palette); err != nil {
		fmt.Fprintf(stderr, "quotex: %v\n", err)
		return 1
	}

	items, err := collectItems(cfg, rest, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "quotex: %v\n", err)
		return 1
	}
	rendered := make([]quotex.Renderer, len(items))
	for i, item := range items {
		rendered[i] = build(item)
	}

	opts := quotex.Options{Palette: cfg.palette, ForceColor: cfg.forceColor}
	if cfg.monochrome {
		opts.Palette = "none"
		opts.ForceColor = false
	}
	if err := quotex.Render(stdout, quotex.JoinSlice(cfg.separator, rendered), &opts); err != nil {
		fmt.Fprintf(stderr, "quotex: %v\n", err)
		return 1
	}
	if !cfg.noNewline {
		if _, err := io.WriteString(stdout, "\n"); err != nil {
			fmt.Fprintf(stderr, "quotex: write error: %v\n", err)
			return 1
		}
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (config, []string, error) {
	var cfg config
	fs := pflag.NewFlagSet("quotex", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&cfg.mode, "mode", "m", defaultMode, "output mode: "+strings.Join(modeNames(), " | "))
	fs.StringVarP(&cfg.separator, "separator", "s", " ", "text written after every rendered item")
	fs.BoolVarP(&cfg.json, "json", "j", false, "read JSON documents from stdin, compact each and quote each")
	fs.BoolVarP(&cfg.noNewline, "no-newline", "n", false, "do not print the trailing newline")
	fs.BoolVarP(&cfg.forceColor, "color", "C", false, "force colorized output, even when not writing to a TTY")
	fs.BoolVarP(&cfg.monochrome, "monochrome", "M", false, "disable colorized output")
	fs.StringVar(&cfg.palette, "palette", "", "color palette (see --list-palettes)")
	fs.BoolVar(&cfg.listPalettes, "list-palettes", false, "print the available palettes and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: quotex [flags] [arg...]\n\n")
		fmt.Fprintf(stderr, "Quotes each arg (or stdin when no args or \"-\" is given).\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}
	if cfg.forceColor && cfg.monochrome {
		fmt.Fprintln(stderr, "quotex: --color and --monochrome are mutually exclusive")
		fs.Usage()
		return cfg, nil, errUsage
	}
	if cfg.json && fs.NArg() > 0 {
		fmt.Fprintln(stderr, "quotex: --json reads stdin and takes no arguments")
		fs.Usage()
		return cfg, nil, errUsage
	}
	return cfg, fs.Args(), nil
}

// collectItems returns the byte strings to render, in order.
func collectItems(cfg config, args []string, stdin io.Reader) ([][]byte, error) {
	if cfg.json {
		var items [][]byte
		err := quotex.EachCompactJSON(stdin, func(doc []byte) error {
			items = append(items, bytes.Clone(doc))
			return nil
		})
		return items, err
	}
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return [][]byte{data}, nil
	}
	items := make([][]byte, len(args))
	for i, arg := range args {
		items[i] = []byte(arg)
	}
	return items, nil
}
