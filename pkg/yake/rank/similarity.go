package rank

import "github.com/xrash/smetrics"

// Ratio returns the normalized edit-distance similarity of a and b:
// 1 - levenshtein(a, b) / max(len(a), len(b)). Lengths and edits are counted
// in bytes. Two empty strings are identical.
func Ratio(a, b string) float64 {
	length := max(len(a), len(b))
	if length == 0 {
		return 1
	}
	distance := smetrics.WagnerFischer(a, b, 1, 1, 1)
	return 1 - float64(distance)/float64(length)
}
