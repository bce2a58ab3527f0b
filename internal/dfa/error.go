package dfa

import "errors"

// ErrTooManyStates is returned by Determinize when subset construction
// would discover more states than the caller's configured ceiling allows.
var ErrTooManyStates = errors.New("dfa: pattern requires more states than the configured limit")
