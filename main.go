package main

import (
	"errors"
	"fmt"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/charmbracelet/lipgloss"
	"github.com/yiblet/gf/internal/cli"
	"github.com/yiblet/gf/internal/engine"
	"github.com/yiblet/gf/internal/logging"
)

var errPrefixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	var args cli.Args
	parser, err := arg.NewParser(arg.Config{Program: "gf"}, &args)
	if err != nil {
		fail(err)
	}

	// Raw argv is rewritten so saved engine flags after the pattern
	// name (e.g. -Hnri) survive parsing.
	switch err := parser.Parse(cli.Preprocess(os.Args[1:])); {
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(os.Stdout)
		return
	case errors.Is(err, arg.ErrVersion):
		fmt.Println(args.Version())
		return
	case err != nil:
		fail(err)
	}

	logging.Setup(args.Verbose)

	cliHandler, err := cli.New()
	if err != nil {
		fail(err)
	}

	if err := cliHandler.Execute(&args); err != nil {
		// A non-zero engine exit is forwarded as our own exit code,
		// not reported as an error.
		var exitErr *engine.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errPrefixStyle.Render("Error:"), err)
	os.Exit(1)
}
