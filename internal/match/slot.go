package match

import (
	"errors"
	"fmt"
)

var (
	ErrNoSlot          = errors.New("no field accepts the element")
	ErrUnreachableSlot = errors.New("field can never be filled")
)

// Slot is a field accepting a decoded child element.
type Slot struct {
	Name string
	List bool
}

// SelectSlot picks the slot for the next child among candidates given in
// field declaration order.
//
// With several candidates, a list slot anywhere but last would swallow every
// later child and starve the slots after it; that is a model configuration
// error. Otherwise candidates are narrowed to the ones not yet occupied and
// the first of them wins, so repeated children fill consecutive scalar slots.
// A list slot is never occupied: it keeps taking children once the scalars
// before it are filled. A single candidate is returned even when occupied.
func SelectSlot(candidates []Slot, occupied func(name string) bool) (Slot, error) {
	if len(candidates) > 1 {
		for _, s := range candidates[:len(candidates)-1] {
			if s.List {
				return Slot{}, fmt.Errorf("%w: list field %s precedes %s", ErrUnreachableSlot, s.Name, candidates[len(candidates)-1].Name)
			}
		}

		free := make([]Slot, 0, len(candidates))
		for _, s := range candidates {
			if s.List || !occupied(s.Name) {
				free = append(free, s)
			}
		}

		candidates = free
	}

	if len(candidates) == 0 {
		return Slot{}, ErrNoSlot
	}

	return candidates[0], nil
}

// UnreachableSlots returns the slots that SelectSlot would reject for the
// candidate set, for static checks.
func UnreachableSlots(candidates []Slot) []Slot {
	if len(candidates) < 2 {
		return nil
	}

	var lists []Slot
	for _, s := range candidates[:len(candidates)-1] {
		if s.List {
			lists = append(lists, s)
		}
	}

	return lists
}
