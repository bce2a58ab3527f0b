package nfa

// BuildError reports a malformed NFA construction request. These indicate a
// bug in the compiler pipeline, not a bad pattern, since patterns are
// already validated by the parser before the NFA builder ever runs.
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string {
	return "nfa build error: " + e.Message
}
