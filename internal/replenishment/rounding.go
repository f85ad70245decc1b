package replenishment

// RoundUpToMultiple rounds needed up to the next multiple of multiple.
// Non-positive needs yield 0. multiple must be positive.
func RoundUpToMultiple(needed, multiple int) int {
	if needed <= 0 {
		return 0
	}
	if needed%multiple == 0 {
		return needed
	}
	return (needed/multiple + 1) * multiple
}
