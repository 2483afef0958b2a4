package model

import (
	"fmt"
	"slices"

	"github.com/limaJavier/orblocks/pkg/instance"
	"github.com/samber/lo"
)

// availability is the sparse relation (entity, day, shift) restricted to the available entries of a dense grid
type availability struct {
	days     int
	entities int
	open     [][]SlotKey // Open slots per entity (entity id - 1), ordered by day and then by shift
}

// newAvailability scans a day-major grid [day][entity][shift]. Shape disagreements with the declared counts fail loudly
func newAvailability(name string, grid [][][]bool, days, entities int) (availability, error) {
	if len(grid) != days {
		return availability{}, instance.ShapeMismatchError{Field: name, Expected: days, Actual: len(grid)}
	}

	relation := availability{
		days:     days,
		entities: entities,
		open:     make([][]SlotKey, entities),
	}

	for day := range grid {
		if len(grid[day]) != entities {
			return availability{}, instance.ShapeMismatchError{Field: name, Path: fmt.Sprintf("[%d]", day), Expected: entities, Actual: len(grid[day])}
		}
		for entity := range grid[day] {
			if len(grid[day][entity]) != len(Shifts) {
				return availability{}, instance.ShapeMismatchError{Field: name, Path: fmt.Sprintf("[%d][%d]", day, entity), Expected: len(Shifts), Actual: len(grid[day][entity])}
			}
			for shift, available := range grid[day][entity] {
				if available {
					relation.open[entity] = append(relation.open[entity], SlotKey{Day: day + 1, Shift: shiftFromIndex(shift)})
				}
			}
		}
	}

	return relation, nil
}

func (relation availability) known(id int) bool {
	return id >= 1 && id <= relation.entities
}

// slots returns the internal open-slot list of an entity; an unknown id is a lookup miss and yields nil
func (relation availability) slots(id int) []SlotKey {
	if !relation.known(id) {
		return nil
	}
	return relation.open[id-1]
}

// SurgeonCalendar answers in which (day, shift) slots each surgeon can operate
type SurgeonCalendar struct {
	relation availability
}

func NewSurgeonCalendar(grid [][][]bool, days, surgeons int) (*SurgeonCalendar, error) {
	relation, err := newAvailability("SurgeonAvailability", grid, days, surgeons)
	if err != nil {
		return nil, err
	}
	return &SurgeonCalendar{relation: relation}, nil
}

func (calendar *SurgeonCalendar) Surgeons() int {
	return calendar.relation.entities
}

func (calendar *SurgeonCalendar) Days() int {
	return calendar.relation.days
}

// Known reports whether the surgeon id lies within the declared range
func (calendar *SurgeonCalendar) Known(surgeon int) bool {
	return calendar.relation.known(surgeon)
}

// OpenSlots returns the slots where the surgeon is available, ordered by day and shift.
// A surgeon outside of the declared range has no open slot
func (calendar *SurgeonCalendar) OpenSlots(surgeon int) []SlotKey {
	return slices.Clone(calendar.relation.slots(surgeon))
}

func (calendar *SurgeonCalendar) Available(surgeon int, slot SlotKey) bool {
	return slices.Contains(calendar.relation.slots(surgeon), slot)
}

// RoomCalendar answers which slots each room is open and, inversely, which rooms are open at a slot
type RoomCalendar struct {
	relation availability
	indexer  slotIndexer
	bySlot   [][]int // Open rooms per dense slot index, ascending
}

func NewRoomCalendar(grid [][][]bool, days, rooms int) (*RoomCalendar, error) {
	relation, err := newAvailability("BlockAvailability", grid, days, rooms)
	if err != nil {
		return nil, err
	}

	calendar := &RoomCalendar{
		relation: relation,
		indexer:  newSlotIndexer(days),
	}

	// Rooms are visited in ascending order, hence every per-slot list is sorted
	calendar.bySlot = make([][]int, calendar.indexer.Slots())
	for room, slots := range relation.open {
		for _, slot := range slots {
			index, ok := calendar.indexer.Index(slot)
			if !ok {
				panic(fmt.Sprintf("slot %v of room %d lies outside of a %d-day horizon", slot, room+1, days))
			}
			calendar.bySlot[index] = append(calendar.bySlot[index], room+1)
		}
	}

	return calendar, nil
}

func (calendar *RoomCalendar) Rooms() int {
	return calendar.relation.entities
}

func (calendar *RoomCalendar) Days() int {
	return calendar.relation.days
}

func (calendar *RoomCalendar) Known(room int) bool {
	return calendar.relation.known(room)
}

// OpenSlots returns the slots where the room is available, ordered by day and shift
func (calendar *RoomCalendar) OpenSlots(room int) []SlotKey {
	return slices.Clone(calendar.relation.slots(room))
}

// RoomsOpenAt returns the ascending ids of the rooms open at the slot
func (calendar *RoomCalendar) RoomsOpenAt(slot SlotKey) []int {
	return slices.Clone(calendar.roomsAt(slot))
}

// OpenBlocks returns the number of open (room, day, shift) blocks
func (calendar *RoomCalendar) OpenBlocks() int {
	return lo.SumBy(calendar.bySlot, func(rooms []int) int { return len(rooms) })
}

// roomsAt serves the inverse index without copying; a slot outside of the horizon is a lookup miss
func (calendar *RoomCalendar) roomsAt(slot SlotKey) []int {
	index, ok := calendar.indexer.Index(slot)
	if !ok {
		return nil
	}
	return calendar.bySlot[index]
}
