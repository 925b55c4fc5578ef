package testutils

import (
	"fmt"
)

// SequenceRoller is a deterministic dice.Roller that returns queued results.
// Each result is clamped to the requested die size. When the queue is empty
// it rolls the lowest face.
type SequenceRoller struct {
	Results []int
	Sizes   []int
	Err     error
}

// Roll returns the next queued result
func (r *SequenceRoller) Roll(size int) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	r.Sizes = append(r.Sizes, size)

	if len(r.Results) == 0 {
		return 1, nil
	}
	next := r.Results[0]
	r.Results = r.Results[1:]
	if next > size {
		next = size
	}
	if next < 1 {
		next = 1
	}
	return next, nil
}

// RollN rolls count dice of the given size
func (r *SequenceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		n, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
