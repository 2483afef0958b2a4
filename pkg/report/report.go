package report

import (
	"github.com/limaJavier/orblocks/pkg/model"
	"github.com/samber/lo"
)

// Row is a patient augmented with its number of feasible blocks
type Row struct {
	model.Patient
	FeasibleBlocks int
}

type Summary struct {
	Patients    int // Rows in the report
	Feasible    int // Patients with at least one feasible block
	Infeasible  int // Patients without feasible blocks
	TotalBlocks int // Sum of feasible blocks over every patient
}

// Materialize left-merges counts onto the catalog: one row per patient in catalog order, absent patients get 0.
// Counts for ids unknown to the catalog are ignored
func Materialize(catalog model.PatientCatalog, counts map[int]int) []Row {
	return lo.Map(catalog.Patients(), func(patient model.Patient, _ int) Row {
		return Row{
			Patient:        patient,
			FeasibleBlocks: counts[patient.Id],
		}
	})
}

func Summarize(rows []Row) Summary {
	feasible := lo.CountBy(rows, func(row Row) bool { return row.FeasibleBlocks > 0 })
	return Summary{
		Patients:    len(rows),
		Feasible:    feasible,
		Infeasible:  len(rows) - feasible,
		TotalBlocks: lo.SumBy(rows, func(row Row) int { return row.FeasibleBlocks }),
	}
}
