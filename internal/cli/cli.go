// Package cli wires the argument surface to the pattern store, the
// resolver, and the command dispatcher.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/yiblet/gf/internal/config"
	"github.com/yiblet/gf/internal/engine"
	"github.com/yiblet/gf/internal/logging"
	"github.com/yiblet/gf/internal/store"
	"github.com/yiblet/gf/internal/store/filestore"
	"github.com/yiblet/gf/internal/tui"
)

// CLI handles the command-line interface.
type CLI struct {
	store  store.PatternStore
	config *config.Config
	out    io.Writer
	logger zerolog.Logger
}

// New creates a CLI instance backed by the file store at the user's
// pattern directory, honoring config overrides.
func New() (*CLI, error) {
	cm, err := config.NewConfigManager()
	if err != nil {
		return nil, err
	}
	cfg, err := cm.Load()
	if err != nil {
		return nil, err
	}

	s, err := filestore.NewWithDir(cfg.PatternDir)
	if err != nil {
		return nil, err
	}

	return NewWithStore(s, cfg, os.Stdout), nil
}

// NewWithStore creates a CLI instance over an explicit store, config,
// and output stream. Tests use this with a memory store.
func NewWithStore(s store.PatternStore, cfg *config.Config, out io.Writer) *CLI {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &CLI{
		store:  s,
		config: cfg,
		out:    out,
		logger: logging.GetLogger("cli"),
	}
}

// Execute runs the command selected by the parsed arguments. List and
// save only touch the store; use runs store, resolver, and dispatcher
// in sequence.
func (c *CLI) Execute(args *Args) error {
	if err := args.Validate(); err != nil {
		return err
	}

	switch {
	case args.List:
		return c.executeList()
	case args.Save:
		return c.executeSave(args)
	case args.Pick:
		return c.executePick(args)
	default:
		if args.Name == nil || *args.Name == "" {
			return errors.New("Pattern name is required")
		}
		files := engine.DefaultFiles
		if len(args.Rest) > 0 {
			files = args.Rest[0]
		}
		return c.executeUse(*args.Name, files, args)
	}
}

// executeList prints each saved pattern name on its own line.
func (c *CLI) executeList() error {
	names, err := c.store.List()
	if err != nil {
		return fmt.Errorf("Failed to list patterns: %w", err)
	}
	for _, name := range names {
		fmt.Fprintln(c.out, name)
	}
	return nil
}

// executeSave creates a new pattern record. The first trailing
// argument is the flags string, the second the pattern; an engine may
// be supplied with --engine.
func (c *CLI) executeSave(args *Args) error {
	if args.Name == nil || *args.Name == "" {
		return errors.New("Name cannot be empty")
	}

	var flags string
	if len(args.Rest) > 0 {
		flags = args.Rest[0]
	}
	if len(args.Rest) < 2 || args.Rest[1] == "" {
		return errors.New("Pattern cannot be empty")
	}
	pattern := args.Rest[1]

	rec := &store.Pattern{
		Flags:   flags,
		Pattern: pattern,
	}
	if args.Engine != nil {
		rec.Engine = *args.Engine
	}

	return c.store.Create(*args.Name, rec)
}

// executeUse resolves a named record and either dumps or runs it.
func (c *CLI) executeUse(name, files string, args *Args) error {
	rec, err := c.store.Get(name)
	if err != nil {
		return err
	}

	inv, err := engine.Resolve(rec, c.store.Path(name), c.config.DefaultEngine)
	if err != nil {
		return err
	}

	// The saved record decides the engine at use time; --engine only
	// applies when saving.
	if args.Engine != nil {
		c.logger.Debug().Str("engine", *args.Engine).Msg("--engine is ignored when using a pattern")
	}

	if args.Dump {
		fmt.Fprintln(c.out, inv.String(files))
		return nil
	}

	return engine.Run(inv, files, engine.StdinIsPipe())
}

// executePick lets the user choose a saved pattern interactively, then
// runs (or dumps) the chosen one against the default files argument.
func (c *CLI) executePick(args *Args) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("The interactive picker requires a terminal")
	}

	names, err := c.store.List()
	if err != nil {
		return fmt.Errorf("Failed to list patterns: %w", err)
	}

	if len(names) == 0 {
		fmt.Fprintln(c.out, "No patterns saved yet!")
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "To save a pattern:")
		fmt.Fprintln(c.out, "  gf --save pat-name -Hnri 'search-pattern'")
		return nil
	}

	var items []tui.PickerItem
	for _, name := range names {
		rec, err := c.store.Get(name)
		if err != nil {
			c.logger.Warn().Str("name", name).Err(err).Msg("skipping unreadable pattern")
			continue
		}
		inv, err := engine.Resolve(rec, c.store.Path(name), c.config.DefaultEngine)
		if err != nil {
			c.logger.Warn().Str("name", name).Err(err).Msg("skipping empty pattern")
			continue
		}
		items = append(items, tui.PickerItem{
			Name:    name,
			Engine:  inv.Engine,
			Flags:   inv.Flags,
			Pattern: inv.Pattern,
		})
	}

	if len(items) == 0 {
		return errors.New("No usable patterns found")
	}

	model := tui.NewPickerModel(items)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}

	picker, ok := final.(tui.PickerModel)
	if !ok || picker.Choice == nil {
		// Aborted without choosing.
		return nil
	}

	return c.executeUse(picker.Choice.Name, engine.DefaultFiles, args)
}
