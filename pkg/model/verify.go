package model

// Verify recounts every patient's feasible blocks by scanning every room's open slots, without the slot -> rooms index,
// and checks them against counts (a missing patient stands for 0)
func Verify(problem Problem, counts map[int]int) bool {
	for patient := range counts {
		if _, ok := problem.Patients.Patient(patient); !ok {
			return false
		}
	}

	for _, patient := range problem.Patients.patients {
		expected := 0
		if problem.Config.Fits(patient.Duration) {
			for room := 1; room <= problem.Rooms.Rooms(); room++ {
				for _, slot := range problem.Rooms.relation.slots(room) {
					if problem.Surgeons.Available(patient.Surgeon, slot) {
						expected++
					}
				}
			}
		}

		if counts[patient.Id] != expected {
			return false
		}
	}
	return true
}
