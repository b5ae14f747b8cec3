package store

// Pattern is the persisted unit of saved configuration: a set of engine
// flags, one pattern (or several alternates), and the engine to invoke.
// All fields are optional on disk; absent fields are omitted from the
// JSON encoding.
type Pattern struct {
	// Flags holds the engine flags verbatim as a single string
	// (e.g. "-Hnri"). Splitting into argv tokens happens at dispatch
	// time, not here.
	Flags string `json:"flags,omitempty"`

	// Pattern is a single search pattern. When both Pattern and
	// Patterns are set, Pattern wins. An explicit empty string in the
	// record file counts as absent, so such a record falls through to
	// Patterns rather than searching for nothing.
	Pattern string `json:"pattern,omitempty"`

	// Patterns is an ordered list of alternate search patterns, joined
	// into a single alternation group at resolve time.
	Patterns []string `json:"patterns,omitempty"`

	// Engine names the search program to invoke. Empty means the
	// default engine.
	Engine string `json:"engine,omitempty"`
}
