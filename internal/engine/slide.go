package engine

// findTarget returns the index the value at x slides to.
// Cells below stop are never considered, which keeps a freshly merged
// cell from merging again during the same pass. Tiles at MaxExponent
// never merge.
func findTarget(row *[Size]uint8, x, stop int) int {
	// the first position cannot move
	if x == 0 {
		return x
	}
	for t := x - 1; ; t-- {
		if row[t] != 0 {
			if !mergeable(row[t], row[x]) {
				// merge not possible, take the next position
				return t + 1
			}
			return t
		}
		if t == stop {
			return t
		}
	}
}

// mergeable reports whether tiles a and b combine into one.
func mergeable(a, b uint8) bool {
	return a == b && a < MaxExponent
}

// SlideArray slides every tile of row toward index 0 and merges equal
// neighbours at most once per pass. It reports whether the row changed and
// the score gained from merges.
func SlideArray(row *[Size]uint8) (changed bool, gained uint32) {
	stop := 0

	for x := range Size {
		if row[x] == 0 {
			continue
		}

		t := findTarget(row, x, stop)
		if t == x {
			continue
		}

		if row[t] == 0 {
			row[t] = row[x]
		} else if mergeable(row[t], row[x]) {
			row[t]++
			gained += uint32(1) << row[t]
			stop = t + 1
		}
		row[x] = 0
		changed = true
	}

	return changed, gained
}
