package instance

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
)

// Shifts is the number of surgical shifts per day (AM and PM)
const Shifts = 2

// Layout describes how the first two dimensions of an availability grid are ordered
type Layout int

const (
	DayMajor    Layout = iota // [day][entity][shift]
	EntityMajor               // [entity][day][shift]
)

func (layout Layout) String() string {
	switch layout {
	case DayMajor:
		return "day"
	case EntityMajor:
		return "entity"
	}
	return fmt.Sprintf("Layout(%d)", int(layout))
}

func ParseLayout(value string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "day", "day-major":
		return DayMajor, nil
	case "entity", "entity-major", "surgeon", "surgeon-major":
		return EntityMajor, nil
	}
	return DayMajor, fmt.Errorf("%v is not a valid grid layout", value)
}

type Options struct {
	SurgeonLayout Layout          // Layout of SurgeonAvailability in the source; BlockAvailability is always day-major
	Logger        *zerolog.Logger // Nil disables logging
}

func (options Options) logger() zerolog.Logger {
	if options.Logger == nil {
		return zerolog.Nop()
	}
	return *options.Logger
}

// Instance is a validated operating-room instance. Availability grids are always day-major: [day][entity][shift]
type Instance struct {
	NumberPatients      int
	NumberOfRooms       int
	NumberOfDays        int
	NumberSurgeons      int
	Duration            []int
	Priority            []int
	Waiting             []int
	Surgeon             []int
	BlockAvailability   [][][]bool
	SurgeonAvailability [][][]bool
}

type rawInstance struct {
	NumberPatients      int
	NumberOfRooms       int
	NumberOfDays        int
	NumberSurgeons      int
	Duration            []int
	Priority            []int
	Waiting             []int
	Surgeon             []int
	BlockAvailability   [][][]int
	SurgeonAvailability [][][]int
}

type field struct {
	name    string
	aliases []string
}

var (
	scalarFields = []field{
		{name: "NumberPatients"},
		{name: "NumberOfRooms"},
		{name: "NumberOfDays"},
		{name: "NumberSurgeons", aliases: []string{"NumberOfSurgeons"}},
	}
	arrayFields = []field{
		{name: "Duration"},
		{name: "Priority"},
		{name: "Waiting"},
		{name: "Surgeon"},
		{name: "BlockAvailability"},
		{name: "SurgeonAvailability"},
	}
)

// fromFields decodes and validates the named values extracted from an instance source
func fromFields(values map[string]any, options Options) (Instance, error) {
	logger := options.logger()

	//** Resolve aliases and check presence
	canonical := make(map[string]any, len(values))
	for _, fields := range [][]field{scalarFields, arrayFields} {
		for _, f := range fields {
			value, ok := lookup(values, f)
			if !ok {
				return Instance{}, MissingFieldError{Field: f.name}
			}
			canonical[f.name] = value
		}
	}

	//** Decode into typed structure
	var raw rawInstance
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &raw,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return Instance{}, err
	}
	if err := decoder.Decode(canonical); err != nil {
		return Instance{}, fmt.Errorf("cannot decode instance: %w", err)
	}

	instance, err := validate(raw, options.SurgeonLayout)
	if err != nil {
		return Instance{}, err
	}

	logger.Debug().
		Int("patients", instance.NumberPatients).
		Int("rooms", instance.NumberOfRooms).
		Int("days", instance.NumberOfDays).
		Int("surgeons", instance.NumberSurgeons).
		Stringer("surgeon_layout", options.SurgeonLayout).
		Msg("instance decoded")
	return instance, nil
}

// lookup resolves a field by name and then by alias; an explicit null counts as absent
func lookup(values map[string]any, f field) (any, bool) {
	for _, name := range append([]string{f.name}, f.aliases...) {
		if value, ok := values[name]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

func validate(raw rawInstance, surgeonLayout Layout) (Instance, error) {
	//** Counts
	counts := []int{raw.NumberPatients, raw.NumberOfRooms, raw.NumberOfDays, raw.NumberSurgeons}
	for i, count := range counts {
		if count < 0 {
			return Instance{}, InvalidValueError{Field: scalarFields[i].name, Value: count, Reason: "must not be negative"}
		}
	}

	//** Per-patient arrays
	perPatient := [][]int{raw.Duration, raw.Priority, raw.Waiting, raw.Surgeon}
	for i, values := range perPatient {
		if len(values) != raw.NumberPatients {
			return Instance{}, ShapeMismatchError{Field: arrayFields[i].name, Expected: raw.NumberPatients, Actual: len(values)}
		}
	}
	for i, duration := range raw.Duration {
		if duration <= 0 {
			return Instance{}, InvalidValueError{Field: "Duration", Path: fmt.Sprintf("[%d]", i), Value: duration, Reason: "must be positive"}
		}
	}

	//** Availability grids
	blocks, err := toGrid("BlockAvailability", raw.BlockAvailability, raw.NumberOfDays, raw.NumberOfRooms)
	if err != nil {
		return Instance{}, err
	}

	var surgeons [][][]bool
	switch surgeonLayout {
	case DayMajor:
		surgeons, err = toGrid("SurgeonAvailability", raw.SurgeonAvailability, raw.NumberOfDays, raw.NumberSurgeons)
	case EntityMajor:
		surgeons, err = toGrid("SurgeonAvailability", raw.SurgeonAvailability, raw.NumberSurgeons, raw.NumberOfDays)
		if err == nil {
			surgeons = transpose(surgeons, raw.NumberOfDays)
		}
	default:
		err = fmt.Errorf("unsupported surgeon layout: %v", surgeonLayout)
	}
	if err != nil {
		return Instance{}, err
	}

	return Instance{
		NumberPatients:      raw.NumberPatients,
		NumberOfRooms:       raw.NumberOfRooms,
		NumberOfDays:        raw.NumberOfDays,
		NumberSurgeons:      raw.NumberSurgeons,
		Duration:            raw.Duration,
		Priority:            raw.Priority,
		Waiting:             raw.Waiting,
		Surgeon:             raw.Surgeon,
		BlockAvailability:   blocks,
		SurgeonAvailability: surgeons,
	}, nil
}

// toGrid checks a [outer][inner][Shifts] 0/1 grid and converts it to booleans
func toGrid(name string, values [][][]int, outer, inner int) ([][][]bool, error) {
	if len(values) != outer {
		return nil, ShapeMismatchError{Field: name, Expected: outer, Actual: len(values)}
	}

	grid := make([][][]bool, outer)
	for i := range values {
		if len(values[i]) != inner {
			return nil, ShapeMismatchError{Field: name, Path: fmt.Sprintf("[%d]", i), Expected: inner, Actual: len(values[i])}
		}
		grid[i] = make([][]bool, inner)
		for j := range values[i] {
			if len(values[i][j]) != Shifts {
				return nil, ShapeMismatchError{Field: name, Path: fmt.Sprintf("[%d][%d]", i, j), Expected: Shifts, Actual: len(values[i][j])}
			}
			grid[i][j] = make([]bool, Shifts)
			for k, value := range values[i][j] {
				if value != 0 && value != 1 {
					return nil, InvalidValueError{Field: name, Path: fmt.Sprintf("[%d][%d][%d]", i, j, k), Value: value, Reason: "availability must be 0 or 1"}
				}
				grid[i][j][k] = value == 1
			}
		}
	}
	return grid, nil
}

// transpose swaps the first two dimensions of a well-formed grid whose second dimension has length inner
func transpose(grid [][][]bool, inner int) [][][]bool {
	transposed := make([][][]bool, inner)
	for j := range transposed {
		transposed[j] = make([][]bool, len(grid))
		for i := range grid {
			transposed[j][i] = grid[i][j]
		}
	}
	return transposed
}

// decodeLiteral reads a bracketed integer literal such as "[[1,0],[0,1]]" as data
func decodeLiteral(name, literal string) (any, error) {
	decoder := json.NewDecoder(strings.NewReader(literal))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("cannot parse array \"%v\": %w", name, err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("cannot parse array \"%v\": trailing data after literal", name)
	}
	if _, ok := value.([]any); !ok {
		return nil, fmt.Errorf("cannot parse array \"%v\": not an array literal", name)
	}
	return value, nil
}
