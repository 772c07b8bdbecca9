package layout

// distributeGaps returns, for n segments of known sizes, the offset of the
// first segment and the gap inserted after each segment (gaps[n-1] is the
// trailing gap after the last segment, always 0 — callers use it only to
// keep indexing uniform). leftover is the space not claimed by any
// segment's own size (already non-negative; callers clamp before calling).
func distributeGaps(flex Flex, leftover, n int) (lead int, gaps []int) {
	gaps = make([]int, n)
	if n == 0 {
		return 0, gaps
	}

	switch flex {
	case FlexStart:
		return 0, gaps
	case FlexEnd:
		return leftover, gaps
	case FlexCenter:
		return leftover / 2, gaps
	case FlexSpaceBetween:
		if n == 1 {
			return 0, gaps
		}
		share := distributeEvenly(leftover, n-1)
		for i := 0; i < n-1; i++ {
			gaps[i] = share[i]
		}
		return 0, gaps
	case FlexSpaceAround:
		// Half-size edge gaps, full-size gaps between: split leftover
		// into 2n half-gap units (edges claim one unit each, each
		// interior gap claims two), biasing any remainder to the
		// earliest units via distributeEvenly.
		units := 2 * n
		share := distributeEvenly(leftover, units)
		lead = share[0]
		for i := 0; i < n-1; i++ {
			gaps[i] = share[2*i+1] + share[2*i+2]
		}
		return lead, gaps
	case FlexSpaceEvenly:
		share := distributeEvenly(leftover, n+1)
		lead = share[0]
		for i := 0; i < n-1; i++ {
			gaps[i] = share[i+1]
		}
		return lead, gaps
	default:
		return 0, gaps
	}
}

// distributeEvenly splits total whole units across count buckets as evenly
// as possible: each bucket gets total/count, and the first total%count
// buckets get one extra unit, matching the earliest-index tie-break used
// elsewhere in this package.
func distributeEvenly(total, count int) []int {
	out := make([]int, count)
	if count == 0 {
		return out
	}
	base := total / count
	rem := total % count
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}
