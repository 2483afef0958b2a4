package model

// FeasibleAssignment is a (patient, room, day, shift) combination where the patient could be operated
type FeasibleAssignment struct {
	Patient int
	Room    int
	Day     int
	Shift   Shift
}

type FeasibilityEngine interface {
	// Returns, for every patient with at least one feasible block, the number of feasible blocks.
	// Patients without feasible blocks are absent, which is equivalent to a count of 0
	FeasibleBlocks(problem Problem) map[int]int

	// Returns every feasible (patient, room, day, shift) combination ordered by patient, day, shift and room
	Candidates(problem Problem) []FeasibleAssignment
}
