package instance

import "math/rand/v2"

// Dimensions of a synthetic instance
type Dimensions struct {
	Patients int
	Surgeons int
	Rooms    int
	Days     int
}

// Generate builds a random, valid instance. Each block and surgeon slot is open with probability density;
// durations are drawn in [30, maxDuration] minutes
func Generate(dimensions Dimensions, density float64, maxDuration int, rng *rand.Rand) Instance {
	input := Instance{
		NumberPatients: dimensions.Patients,
		NumberOfRooms:  dimensions.Rooms,
		NumberOfDays:   dimensions.Days,
		NumberSurgeons: dimensions.Surgeons,
		Duration:       make([]int, dimensions.Patients),
		Priority:       make([]int, dimensions.Patients),
		Waiting:        make([]int, dimensions.Patients),
		Surgeon:        make([]int, dimensions.Patients),
	}

	const minDuration = 30
	if maxDuration < minDuration {
		maxDuration = minDuration
	}

	for i := range dimensions.Patients {
		input.Duration[i] = minDuration + rng.IntN(maxDuration-minDuration+1)
		input.Priority[i] = 1 + rng.IntN(3)
		input.Waiting[i] = rng.IntN(365)
		if dimensions.Surgeons > 0 {
			input.Surgeon[i] = 1 + rng.IntN(dimensions.Surgeons)
		}
	}

	input.BlockAvailability = randomGrid(dimensions.Days, dimensions.Rooms, density, rng)
	input.SurgeonAvailability = randomGrid(dimensions.Days, dimensions.Surgeons, density, rng)
	return input
}

func randomGrid(days, entities int, density float64, rng *rand.Rand) [][][]bool {
	grid := make([][][]bool, days)
	for day := range grid {
		grid[day] = make([][]bool, entities)
		for entity := range grid[day] {
			grid[day][entity] = make([]bool, Shifts)
			for shift := range Shifts {
				grid[day][entity][shift] = rng.Float64() < density
			}
		}
	}
	return grid
}
