package style

import "github.com/sahilm/fuzzy"

// Suggest returns up to n registered ids that fuzzily match input, best
// match first. Input is normalized before matching.
func Suggest(input string, n int) []string {
	q := Normalize(input)
	if q == "" || n <= 0 {
		return nil
	}
	matches := fuzzy.Find(q, IDs())
	out := make([]string, 0, min(n, len(matches)))
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
