// Package engine turns saved pattern records into search-engine
// invocations and either renders them as text or runs them as child
// processes.
package engine

import (
	"fmt"
	"strings"

	"github.com/yiblet/gf/internal/logging"
	"github.com/yiblet/gf/internal/store"
)

// DefaultEngine is the search program used when neither the record nor
// the configuration names one.
const DefaultEngine = "grep"

// Invocation is a fully resolved search invocation: the engine to run,
// its flags as one unsplit string, and the final pattern argument.
type Invocation struct {
	Engine  string
	Flags   string
	Pattern string
}

// NoPatternError indicates a record decoded fine but carries no usable
// pattern content.
type NoPatternError struct {
	Path string
}

func (e *NoPatternError) Error() string {
	return fmt.Sprintf("Pattern file '%s' contains no pattern(s)", e.Path)
}

// Resolve derives the invocation for a record. path is the record's
// location, used only for error reporting. defaultEngine overrides the
// compiled-in default when non-empty.
//
// A single pattern is used as-is. Multiple patterns are joined into one
// parenthesized alternation group, e.g. ["a","b","c"] -> "(a|b|c)".
// When both forms are present the single pattern wins.
func Resolve(rec *store.Pattern, path, defaultEngine string) (*Invocation, error) {
	logger := logging.GetLogger("engine")

	eng := rec.Engine
	if eng == "" {
		eng = defaultEngine
	}
	if eng == "" {
		eng = DefaultEngine
	}

	var pattern string
	switch {
	case rec.Pattern != "":
		if len(rec.Patterns) > 0 {
			logger.Debug().Str("path", path).Msg("record has both pattern and patterns; using pattern")
		}
		pattern = rec.Pattern
	case len(rec.Patterns) > 0:
		pattern = "(" + strings.Join(rec.Patterns, "|") + ")"
	default:
		return nil, &NoPatternError{Path: path}
	}

	return &Invocation{
		Engine:  eng,
		Flags:   rec.Flags,
		Pattern: pattern,
	}, nil
}
