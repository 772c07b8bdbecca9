package layout

import "github.com/wfouche/tamboui-sub004/fraction"

// half is used to round a fractional remainder total to the nearest
// integer (ties round up).
var half = fraction.New(1, 2)

// largestRemainder integerizes ideal (possibly fractional) sizes into a
// slice of ints, using Hamilton's method: floor every value, round the sum
// of the fractional remainders to the nearest integer to get the number of
// leftover units, then hand those out one at a time to whichever entries
// had the largest fractional remainder, breaking ties by the earliest
// index. The solved sizes already satisfy the tableau's required
// position-chain ceiling, so the rounded total never exceeds it.
func largestRemainder(ideal []fraction.Fraction) []int {
	n := len(ideal)
	out := make([]int, n)
	remainders := make([]fraction.Fraction, n)
	fracSum := fraction.Zero()
	for i, v := range ideal {
		out[i] = int(v.ToInt())
		remainders[i] = v.Frac()
		fracSum = fracSum.Add(remainders[i])
	}

	leftover := int(fracSum.Add(half).ToInt())
	if leftover <= 0 {
		return out
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Stable selection sort by descending remainder, earliest index wins
	// ties: a straightforward insertion sort keeps the comparator simple
	// and the tie-break implicit (stable w.r.t. original index order).
	for i := 1; i < n; i++ {
		j := i
		for j > 0 && remainders[order[j]].Compare(remainders[order[j-1]]) > 0 {
			order[j], order[j-1] = order[j-1], order[j]
			j--
		}
	}

	for i := 0; i < leftover && i < n; i++ {
		out[order[i]]++
	}
	return out
}
