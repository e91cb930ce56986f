package internal

// BaseCap is the capacity a sequence starts with on its first growth.
const BaseCap = 16

// NextCap returns the capacity after a single doubling step.
func NextCap(capacity int) int {
	if capacity == 0 {
		return BaseCap
	}
	return capacity * 2
}

// BulkCap doubles capacity until length+count fits strictly below it. An
// exact fit still triggers one more doubling step, so bulk growth always
// lands at least one slot past the requested size.
func BulkCap(capacity, length, count int) int {
	if length+count < capacity {
		return capacity
	}
	if capacity == 0 {
		capacity = BaseCap
	}
	for length+count >= capacity {
		capacity *= 2
	}
	return capacity
}
