package cli

import (
	"errors"
	"strings"
)

// Args represents the gf command line. One invocation is either a
// list, a save, an interactive pick, or a use of a named pattern.
type Args struct {
	Save    bool     `arg:"--save" help:"Save a pattern (e.g., gf --save pat-name -Hnri 'search-pattern')"`
	List    bool     `arg:"--list" help:"List available patterns"`
	Dump    bool     `arg:"--dump" help:"Print the command rather than executing it"`
	Pick    bool     `arg:"--pick" help:"Interactively pick a saved pattern to run"`
	Engine  *string  `arg:"--engine" help:"Engine to use (e.g., 'grep', 'rg', 'ag')"`
	Verbose bool     `arg:"-v,--verbose" help:"Enable debug logging"`
	Name    *string  `arg:"positional" help:"Pattern name (when saving or using)"`
	Rest    []string `arg:"positional" help:"Flags and pattern (saving) or files to search (using)"`
}

// Description returns the program description.
func (Args) Description() string {
	return "gf - pattern manager for grep-like tools"
}

// Version returns the program version.
func (Args) Version() string {
	return "gf 1.0.0"
}

// Epilogue returns additional help text.
func (Args) Epilogue() string {
	return `Examples:
  # Save patterns
  gf --save py-imports -Hnri 'import'          # Save flags and a pattern
  gf --save todos -Hnri 'TODO' --engine rg     # Save with a specific engine

  # Use patterns
  gf py-imports                                # Search . with the saved pattern
  gf py-imports src/                           # Search a specific path
  cat access.log | gf py-imports               # Search piped input
  gf --dump py-imports                         # Print the command instead
  gf --pick                                    # Browse patterns interactively

  # Inspect
  gf --list                                    # List saved pattern names

For more information, visit: https://github.com/yiblet/gf`
}

// Validate performs validation on the parsed arguments.
func (args *Args) Validate() error {
	if args.Pick && (args.Save || args.List) {
		return errors.New("--pick cannot be combined with --save or --list")
	}
	if args.Save && args.Dump {
		return errors.New("--dump cannot be combined with --save")
	}
	return nil
}

// modeFlags are the boolean flags recognized before the pattern name.
var modeFlags = map[string]bool{
	"--save":    true,
	"--list":    true,
	"--dump":    true,
	"--pick":    true,
	"--verbose": true,
	"-v":        true,
	"--help":    true,
	"-h":        true,
	"--version": true,
}

// Preprocess rewrites raw argv into a form go-arg accepts: recognized
// flags first, then a "--" separator, then the name and trailing
// arguments verbatim. This lets saved engine flags like -Hnri follow
// the name without being mistaken for gf's own flags, while --engine
// stays recognized anywhere on the line.
func Preprocess(argv []string) []string {
	var flags, positional []string

	seenName := false
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		switch {
		case tok == "--engine":
			flags = append(flags, tok)
			if i+1 < len(argv) {
				flags = append(flags, argv[i+1])
				i++
			}
		case strings.HasPrefix(tok, "--engine="):
			flags = append(flags, tok)
		case !seenName && modeFlags[tok]:
			flags = append(flags, tok)
		case !seenName:
			seenName = true
			positional = append(positional, tok)
		default:
			positional = append(positional, tok)
		}
	}

	out := append(flags, "--")
	return append(out, positional...)
}
