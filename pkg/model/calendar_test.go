package model

import (
	"errors"
	"testing"

	"github.com/limaJavier/orblocks/pkg/instance"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
)

func TestSurgeonCalendar(t *testing.T) {
	t.Run("Open slots", func(t *testing.T) {
		//** Arrange
		grid := openGrid(3, 2,
			[3]int{2, 1, 2},
			[3]int{1, 1, 1},
			[3]int{3, 2, 1},
		)

		//** Act
		calendar, err := NewSurgeonCalendar(grid, 3, 2)

		//** Assert
		assert.Nil(t, err)
		assert.Equal(t, []SlotKey{{Day: 1, Shift: AM}, {Day: 2, Shift: PM}}, calendar.OpenSlots(1))
		assert.Equal(t, []SlotKey{{Day: 3, Shift: AM}}, calendar.OpenSlots(2))
		assert.True(t, calendar.Available(1, SlotKey{Day: 2, Shift: PM}))
		assert.False(t, calendar.Available(2, SlotKey{Day: 2, Shift: PM}))
		assert.Equal(t, 2, calendar.Surgeons())
		assert.Equal(t, 3, calendar.Days())
	})

	t.Run("Unknown surgeon is a lookup miss", func(t *testing.T) {
		calendar, err := NewSurgeonCalendar(openGrid(1, 1, [3]int{1, 1, 1}), 1, 1)
		assert.Nil(t, err)

		for _, surgeon := range []int{0, -1, 2, 100} {
			assert.False(t, calendar.Known(surgeon))
			assert.Empty(t, calendar.OpenSlots(surgeon))
			assert.False(t, calendar.Available(surgeon, SlotKey{Day: 1, Shift: AM}))
		}
	})

	t.Run("Returned slots do not alias the calendar", func(t *testing.T) {
		calendar, _ := NewSurgeonCalendar(openGrid(1, 1, [3]int{1, 1, 1}), 1, 1)

		slots := calendar.OpenSlots(1)
		slots[0] = SlotKey{Day: 9, Shift: PM}

		assert.Equal(t, []SlotKey{{Day: 1, Shift: AM}}, calendar.OpenSlots(1))
	})

	t.Run("Shape mismatch", func(t *testing.T) {
		scenarios := []struct {
			grid               [][][]bool
			days, surgeons     int
			path               string
			expected, received int
		}{
			{grid: openGrid(2, 2), days: 3, surgeons: 2, path: "", expected: 3, received: 2},
			{grid: openGrid(2, 2), days: 2, surgeons: 3, path: "[0]", expected: 3, received: 2},
			{grid: [][][]bool{{{true}}}, days: 1, surgeons: 1, path: "[0][0]", expected: 2, received: 1},
		}

		for _, scenario := range scenarios {
			_, err := NewSurgeonCalendar(scenario.grid, scenario.days, scenario.surgeons)

			var shape instance.ShapeMismatchError
			assert.True(t, errors.As(err, &shape))
			assert.Equal(t, scenario.path, shape.Path)
			assert.Equal(t, scenario.expected, shape.Expected)
			assert.Equal(t, scenario.received, shape.Actual)
		}
	})
}

func TestRoomCalendar(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	grid := openGrid(2, 4,
		[3]int{1, 3, 1},
		[3]int{1, 1, 1},
		[3]int{1, 2, 2},
		[3]int{1, 4, 2},
		[3]int{1, 3, 2},
		[3]int{2, 4, 1},
	)

	//** Act
	calendar, err := NewRoomCalendar(grid, 2, 4)

	//** Assert
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(calendar.RoomsOpenAt(SlotKey{Day: 1, Shift: AM})).To(Equal([]int{1, 3}))
	g.Expect(calendar.RoomsOpenAt(SlotKey{Day: 1, Shift: PM})).To(Equal([]int{2, 3, 4}))
	g.Expect(calendar.RoomsOpenAt(SlotKey{Day: 2, Shift: AM})).To(Equal([]int{4}))
	g.Expect(calendar.RoomsOpenAt(SlotKey{Day: 2, Shift: PM})).To(BeEmpty())
	g.Expect(calendar.OpenSlots(3)).To(Equal([]SlotKey{{Day: 1, Shift: AM}, {Day: 1, Shift: PM}}))
	g.Expect(calendar.OpenBlocks()).To(Equal(6))
	g.Expect(calendar.Rooms()).To(Equal(4))

	// Slots outside of the horizon have no open room
	g.Expect(calendar.RoomsOpenAt(SlotKey{Day: 0, Shift: AM})).To(BeEmpty())
	g.Expect(calendar.RoomsOpenAt(SlotKey{Day: 3, Shift: AM})).To(BeEmpty())
	g.Expect(calendar.RoomsOpenAt(SlotKey{Day: 1, Shift: Shift(3)})).To(BeEmpty())
}

func TestRoomCalendarInverseIndexMatchesOpenSlots(t *testing.T) {
	g := NewWithT(t)

	grid := openGrid(5, 6,
		[3]int{1, 1, 1}, [3]int{1, 6, 2}, [3]int{2, 2, 1}, [3]int{3, 3, 2},
		[3]int{3, 4, 2}, [3]int{4, 5, 1}, [3]int{5, 1, 2}, [3]int{5, 6, 1},
	)
	calendar, err := NewRoomCalendar(grid, 5, 6)
	g.Expect(err).NotTo(HaveOccurred())

	for room := 1; room <= calendar.Rooms(); room++ {
		for _, slot := range calendar.OpenSlots(room) {
			g.Expect(calendar.RoomsOpenAt(slot)).To(ContainElement(room))
		}
	}

	total := 0
	for day := 1; day <= calendar.Days(); day++ {
		for _, shift := range Shifts {
			total += len(calendar.RoomsOpenAt(SlotKey{Day: day, Shift: shift}))
		}
	}
	g.Expect(total).To(Equal(calendar.OpenBlocks()))
}
