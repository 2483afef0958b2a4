package model

// feasibleBlocks counts the blocks available to a single patient: rooms open at every slot where its surgeon operates.
// The capacity check depends on the patient alone and is therefore evaluated once, before any lookup
func feasibleBlocks(patient Patient, problem Problem) int {
	if !problem.Config.Fits(patient.Duration) {
		return 0
	}

	count := 0
	for _, slot := range problem.Surgeons.relation.slots(patient.Surgeon) {
		count += len(problem.Rooms.roomsAt(slot))
	}
	return count
}

func feasibleAssignments(patient Patient, problem Problem) []FeasibleAssignment {
	if !problem.Config.Fits(patient.Duration) {
		return nil
	}

	var assignments []FeasibleAssignment
	for _, slot := range problem.Surgeons.relation.slots(patient.Surgeon) {
		for _, room := range problem.Rooms.roomsAt(slot) {
			assignments = append(assignments, FeasibleAssignment{
				Patient: patient.Id,
				Room:    room,
				Day:     slot.Day,
				Shift:   slot.Shift,
			})
		}
	}
	return assignments
}

// countPatients fills counts with the non-zero feasible-block counts of the given patients
func countPatients(patients []Patient, problem Problem, counts map[int]int) {
	for _, patient := range patients {
		if count := feasibleBlocks(patient, problem); count > 0 {
			counts[patient.Id] = count
		}
	}
}

// sortedByPatient reorders the catalog-ordered patients by id, so that candidate listings follow patient order
func sortedByPatient(catalog PatientCatalog) []Patient {
	patients := make([]Patient, catalog.Len())
	for _, patient := range catalog.patients {
		patients[patient.Id-1] = patient
	}
	return patients
}
