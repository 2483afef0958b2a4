package model

import (
	"runtime"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type parallelEngine struct {
	workers int
	logger  zerolog.Logger
}

// NewParallelEngine splits patients among workers goroutines; a non-positive value uses one worker per CPU.
// Calendars are only read, so workers share them without locking
func NewParallelEngine(workers int, logger zerolog.Logger) FeasibilityEngine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &parallelEngine{
		workers: workers,
		logger:  logger,
	}
}

type chunkResult[T any] struct {
	index int
	value T
}

func (engine *parallelEngine) FeasibleBlocks(problem Problem) map[int]int {
	chunks := engine.chunks(problem.Patients.patients)

	partials := collect(chunks, func(patients []Patient) map[int]int {
		counts := make(map[int]int)
		countPatients(patients, problem, counts)
		return counts
	})

	counts := make(map[int]int)
	for _, partial := range partials {
		for patient, count := range partial {
			counts[patient] = count
		}
	}

	engine.logger.Debug().
		Int("patients", problem.Patients.Len()).
		Int("feasible_patients", len(counts)).
		Int("workers", len(chunks)).
		Msg("feasible blocks computed")
	return counts
}

func (engine *parallelEngine) Candidates(problem Problem) []FeasibleAssignment {
	chunks := engine.chunks(sortedByPatient(problem.Patients))

	partials := collect(chunks, func(patients []Patient) []FeasibleAssignment {
		assignments := make([]FeasibleAssignment, 0)
		for _, patient := range patients {
			assignments = append(assignments, feasibleAssignments(patient, problem)...)
		}
		return assignments
	})

	return lo.Flatten(partials)
}

func (engine *parallelEngine) chunks(patients []Patient) [][]Patient {
	if len(patients) == 0 {
		return nil
	}
	size := (len(patients) + engine.workers - 1) / engine.workers
	return lo.Chunk(patients, size)
}

// collect runs work on each chunk in its own goroutine and returns the results in chunk order
func collect[T any](chunks [][]Patient, work func(patients []Patient) T) []T {
	results := make([]T, len(chunks))
	if len(chunks) == 0 {
		return results
	}

	resultsChannel := make(chan chunkResult[T]) // Channel to collect per-chunk results
	for index, chunk := range chunks {
		go func(index int, chunk []Patient) {
			resultsChannel <- chunkResult[T]{index: index, value: work(chunk)}
		}(index, chunk)
	}

	// Collect results and close the channel once every chunk has reported
	collected := 0
	for result := range resultsChannel {
		results[result.index] = result.value
		if collected++; collected == len(chunks) {
			close(resultsChannel)
		}
	}

	return results
}
