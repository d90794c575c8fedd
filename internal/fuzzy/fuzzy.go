// Package fuzzy scores approximate string similarity on a 0-100 scale.
package fuzzy

import (
	"math"

	"github.com/agext/levenshtein"
	"golang.org/x/text/cases"
)

// indel counts a substitution as one deletion plus one insertion, so that the
// distance normalises cleanly against the combined length.
var indel = levenshtein.NewParams().SubCost(2)

// Fold returns the Unicode case-folded form of s.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Ratio returns the 0-100 similarity of a and b. Identical strings score 100,
// strings with no characters in common score 0.
func Ratio(a, b string) int {
	return ratioRunes([]rune(a), []rune(b))
}

// PartialRatio returns the best Ratio between the shorter string and every
// equally long window of the longer one. A short string fully contained in
// the long one scores 100. An empty side scores 0.
func PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}
	best := 0
	for start := 0; start+len(short) <= len(long); start++ {
		score := ratioRunes(short, long[start:start+len(short)])
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

func ratioRunes(a, b []rune) int {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	d := levenshtein.Distance(string(a), string(b), indel)
	return int(math.Round(100 * float64(total-d) / float64(total)))
}
