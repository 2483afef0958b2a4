package model

import "fmt"

// Shift is one of the two half-day surgical periods. Values are 1-based to match the instance tooling
type Shift int

const (
	AM Shift = iota + 1
	PM
)

var Shifts = []Shift{AM, PM}

func (shift Shift) String() string {
	switch shift {
	case AM:
		return "AM"
	case PM:
		return "PM"
	}
	return fmt.Sprintf("Shift(%d)", int(shift))
}

func (shift Shift) Valid() bool {
	return shift == AM || shift == PM
}

// shiftFromIndex maps a dense grid index (0 = AM, 1 = PM) to its Shift
func shiftFromIndex(index int) Shift {
	return Shift(index + 1)
}

// SlotKey identifies a (day, shift) pair; days are 1-based
type SlotKey struct {
	Day   int
	Shift Shift
}

func (slot SlotKey) String() string {
	return fmt.Sprintf("%d/%v", slot.Day, slot.Shift)
}

// slotIndexer gives every slot of a horizon a unique dense index
type slotIndexer struct {
	days int
}

func newSlotIndexer(days int) slotIndexer {
	return slotIndexer{days: days}
}

// Slots returns the number of distinct slots in the horizon
func (indexer slotIndexer) Slots() int {
	return indexer.days * len(Shifts)
}

// Index returns the dense index of a slot, or false if the slot lies outside of the horizon
func (indexer slotIndexer) Index(slot SlotKey) (int, bool) {
	if slot.Day < 1 || slot.Day > indexer.days || !slot.Shift.Valid() {
		return 0, false
	}
	return (slot.Day-1)*len(Shifts) + int(slot.Shift) - 1, true
}
