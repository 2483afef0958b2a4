package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// openGrid builds a day-major [day][entity][shift] grid where only the given (day, entity, shift) entries are open.
// Every coordinate is 1-based
func openGrid(days, entities int, open ...[3]int) [][][]bool {
	grid := make([][][]bool, days)
	for day := range grid {
		grid[day] = make([][]bool, entities)
		for entity := range grid[day] {
			grid[day][entity] = make([]bool, len(Shifts))
		}
	}
	for _, entry := range open {
		grid[entry[0]-1][entry[1]-1][entry[2]-1] = true
	}
	return grid
}

func newProblem(t *testing.T, patients []Patient, surgeons, rooms [][][]bool, days int, config Config) Problem {
	t.Helper()

	catalog, err := NewPatientCatalog(patients)
	require.NoError(t, err)

	surgeonCalendar, err := NewSurgeonCalendar(surgeons, days, len(surgeons[0]))
	require.NoError(t, err)

	roomCalendar, err := NewRoomCalendar(rooms, days, len(rooms[0]))
	require.NoError(t, err)

	return Problem{
		Patients: catalog,
		Surgeons: surgeonCalendar,
		Rooms:    roomCalendar,
		Config:   config,
	}
}
