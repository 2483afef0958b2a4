package model

import (
	"github.com/rs/zerolog"
)

type sequentialEngine struct {
	logger zerolog.Logger
}

func NewSequentialEngine(logger zerolog.Logger) FeasibilityEngine {
	return &sequentialEngine{
		logger: logger,
	}
}

func (engine *sequentialEngine) FeasibleBlocks(problem Problem) map[int]int {
	counts := make(map[int]int)
	countPatients(problem.Patients.patients, problem, counts)

	engine.logger.Debug().
		Int("patients", problem.Patients.Len()).
		Int("feasible_patients", len(counts)).
		Msg("feasible blocks computed")
	return counts
}

func (engine *sequentialEngine) Candidates(problem Problem) []FeasibleAssignment {
	candidates := make([]FeasibleAssignment, 0)
	for _, patient := range sortedByPatient(problem.Patients) {
		candidates = append(candidates, feasibleAssignments(patient, problem)...)
	}
	return candidates
}
