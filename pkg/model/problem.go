package model

import (
	"fmt"

	"github.com/limaJavier/orblocks/pkg/instance"
)

const (
	DefaultCapacityMinutes = 360 // 6 hours per shift
	DefaultCleanupMinutes  = 17
)

type Config struct {
	CapacityMinutes int // Time available in a single (room, day, shift) block
	CleanupMinutes  int // Turnover time required after every surgery
}

func DefaultConfig() Config {
	return Config{
		CapacityMinutes: DefaultCapacityMinutes,
		CleanupMinutes:  DefaultCleanupMinutes,
	}
}

func (config Config) Validate() error {
	if config.CapacityMinutes <= 0 {
		return fmt.Errorf("capacity must be greater than 0: %v", config.CapacityMinutes)
	} else if config.CleanupMinutes < 0 {
		return fmt.Errorf("cleanup time must not be negative: %v", config.CleanupMinutes)
	}
	return nil
}

// Fits reports whether a single surgery plus its cleanup fits into one block.
// Capacity consumed by other patients sharing the block is not accounted for.
// The comparison is done on the remaining capacity, which cannot overflow for a valid config
func (config Config) Fits(duration int) bool {
	return duration <= config.CapacityMinutes-config.CleanupMinutes
}

// Problem holds the immutable inputs of the feasibility computation
type Problem struct {
	Patients PatientCatalog
	Surgeons *SurgeonCalendar
	Rooms    *RoomCalendar
	Config   Config
}

// Build constructs the patient catalog and both calendars from a validated instance
func Build(input instance.Instance, config Config) (Problem, error) {
	if err := config.Validate(); err != nil {
		return Problem{}, err
	}

	patients := make([]Patient, input.NumberPatients)
	for i := range patients {
		patients[i] = Patient{
			Id:       i + 1,
			Surgeon:  input.Surgeon[i],
			Duration: input.Duration[i],
			Priority: input.Priority[i],
			Waiting:  input.Waiting[i],
		}
	}
	catalog, err := NewPatientCatalog(patients)
	if err != nil {
		return Problem{}, fmt.Errorf("cannot build patient catalog: %w", err)
	}

	surgeons, err := NewSurgeonCalendar(input.SurgeonAvailability, input.NumberOfDays, input.NumberSurgeons)
	if err != nil {
		return Problem{}, fmt.Errorf("cannot build surgeon calendar: %w", err)
	}

	rooms, err := NewRoomCalendar(input.BlockAvailability, input.NumberOfDays, input.NumberOfRooms)
	if err != nil {
		return Problem{}, fmt.Errorf("cannot build room calendar: %w", err)
	}

	return Problem{
		Patients: catalog,
		Surgeons: surgeons,
		Rooms:    rooms,
		Config:   config,
	}, nil
}
