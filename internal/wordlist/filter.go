package wordlist

import (
	"strings"

	"github.com/samber/lo"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Normalize trims and lowercases an infinitive.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Split partitions words into those accepted by keep and the rest.
func Split(words []string, keep FilterFunc) (kept, dropped []string) {
	pred := func(word string, _ int) bool { return keep(word) }
	return lo.Filter(words, pred), lo.Reject(words, pred)
}
