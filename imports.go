package whatwgurl

import "strconv"

// A handful of stdlib functions given short, package-local names. This
// keeps the state machine's hot path (machine.go) readable despite its
// size, in the spirit of the alias-table idiom used throughout the parsing
// packages this module is grounded on.
var (
	itoa func(int) string              = strconv.Itoa
	atoi func(string) (int, error)     = strconv.Atoi
)
