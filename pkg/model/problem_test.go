package model

import (
	"errors"
	"math"
	"testing"

	"github.com/limaJavier/orblocks/pkg/instance"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallInstance() instance.Instance {
	return instance.Instance{
		NumberPatients: 3,
		NumberOfRooms:  2,
		NumberOfDays:   1,
		NumberSurgeons: 2,
		Duration:       []int{300, 350, 60},
		Priority:       []int{1, 2, 3},
		Waiting:        []int{10, 20, 30},
		Surgeon:        []int{1, 1, 5},
		BlockAvailability: [][][]bool{
			{{true, true}, {true, false}},
		},
		SurgeonAvailability: [][][]bool{
			{{true, false}, {false, true}},
		},
	}
}

func TestBuild(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		//** Act
		problem, err := Build(smallInstance(), Config{CapacityMinutes: 360, CleanupMinutes: 17})

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, 3, problem.Patients.Len())
		assert.Equal(t, Patient{Id: 2, Surgeon: 1, Duration: 350, Priority: 2, Waiting: 20}, problem.Patients.Patients()[1])
		assert.Equal(t, []SlotKey{{Day: 1, Shift: AM}}, problem.Surgeons.OpenSlots(1))
		assert.Equal(t, []int{1, 2}, problem.Rooms.RoomsOpenAt(SlotKey{Day: 1, Shift: AM}))
		assert.Equal(t, 3, problem.Rooms.OpenBlocks())

		counts := NewSequentialEngine(nopLogger()).FeasibleBlocks(problem)
		assert.Equal(t, map[int]int{1: 2}, counts)
		assert.True(t, Verify(problem, counts))
	})

	t.Run("Invalid config", func(t *testing.T) {
		for _, config := range []Config{{CapacityMinutes: 0}, {CapacityMinutes: 360, CleanupMinutes: -1}} {
			_, err := Build(smallInstance(), config)
			assert.NotNil(t, err)
		}
	})

	t.Run("Malformed grid fails loudly", func(t *testing.T) {
		input := smallInstance()
		input.BlockAvailability = [][][]bool{{{true, true}}}

		_, err := Build(input, DefaultConfig())

		var shape instance.ShapeMismatchError
		assert.True(t, errors.As(err, &shape))
		assert.Equal(t, "BlockAvailability", shape.Field)
	})
}

func TestConfigFits(t *testing.T) {
	config := Config{CapacityMinutes: 360, CleanupMinutes: 17}
	assert.True(t, config.Fits(300))
	assert.True(t, config.Fits(343))
	assert.False(t, config.Fits(344))
	assert.False(t, config.Fits(350))

	// Huge values must not wrap around into a fitting sum
	assert.False(t, config.Fits(math.MaxInt))
	assert.False(t, config.Fits(math.MaxInt-10))

	huge := Config{CapacityMinutes: 360, CleanupMinutes: math.MaxInt}
	assert.Nil(t, huge.Validate())
	assert.False(t, huge.Fits(1))
	assert.False(t, huge.Fits(300))

	wide := Config{CapacityMinutes: math.MaxInt, CleanupMinutes: 17}
	assert.True(t, wide.Fits(math.MaxInt-17))
	assert.False(t, wide.Fits(math.MaxInt))
}

func TestHugeDurationIsInfeasible(t *testing.T) {
	//** Arrange
	input := smallInstance()
	input.Duration = []int{math.MaxInt - 7, 300, 60}
	problem, err := Build(input, DefaultConfig())
	require.NoError(t, err)

	//** Act
	counts := NewSequentialEngine(nopLogger()).FeasibleBlocks(problem)

	//** Assert
	assert.Equal(t, map[int]int{2: 2}, counts)
	assert.True(t, Verify(problem, counts))
	assert.False(t, Verify(problem, map[int]int{1: 2, 2: 2}))
}

func TestNewPatientCatalog(t *testing.T) {
	t.Run("Keeps order", func(t *testing.T) {
		catalog, err := NewPatientCatalog([]Patient{{Id: 2, Duration: 1}, {Id: 3, Duration: 1}, {Id: 1, Duration: 1}})
		require.NoError(t, err)

		assert.Equal(t, []int{2, 3, 1}, lo.Map(catalog.Patients(), func(patient Patient, _ int) int { return patient.Id }))
		patient, ok := catalog.Patient(3)
		assert.True(t, ok)
		assert.Equal(t, 3, patient.Id)
		_, ok = catalog.Patient(4)
		assert.False(t, ok)
	})

	t.Run("Rejects gaps and duplicates", func(t *testing.T) {
		scenarios := [][]Patient{
			{{Id: 1, Duration: 1}, {Id: 3, Duration: 1}},
			{{Id: 1, Duration: 1}, {Id: 1, Duration: 1}},
			{{Id: 0, Duration: 1}},
			{{Id: 1, Duration: 0}},
		}
		for _, patients := range scenarios {
			_, err := NewPatientCatalog(patients)
			assert.NotNil(t, err, "patients %v", patients)
		}
	})

	t.Run("Patients returns a copy", func(t *testing.T) {
		catalog, _ := NewPatientCatalog([]Patient{{Id: 1, Duration: 10}})
		patients := catalog.Patients()
		patients[0].Duration = 999
		assert.Equal(t, 10, catalog.Patients()[0].Duration)
	})
}
