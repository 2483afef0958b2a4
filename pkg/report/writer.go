package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/limaJavier/orblocks/pkg/model"
	"github.com/samber/lo"
)

type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
)

var Formats = []Format{CSV, JSON}

func ParseFormat(value string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(value)))
	if !lo.Contains(Formats, format) {
		return "", fmt.Errorf("%v is not a valid output format", value)
	}
	return format, nil
}

var header = []string{"patient_id", "duration", "priority", "waiting", "surgeon_id", "feasible_blocks"}

type jsonRow struct {
	PatientId      int `json:"patient_id"`
	Duration       int `json:"duration"`
	Priority       int `json:"priority"`
	Waiting        int `json:"waiting"`
	SurgeonId      int `json:"surgeon_id"`
	FeasibleBlocks int `json:"feasible_blocks"`
}

func Write(w io.Writer, format Format, rows []Row) error {
	switch format {
	case CSV:
		return WriteCSV(w, rows)
	case JSON:
		return WriteJSON(w, rows)
	}
	return fmt.Errorf("unsupported output format: %v", format)
}

func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := lo.Map(
			[]int{row.Id, row.Duration, row.Priority, row.Waiting, row.Surgeon, row.FeasibleBlocks},
			func(value int, _ int) string { return strconv.Itoa(value) },
		)
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func WriteJSON(w io.Writer, rows []Row) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(lo.Map(rows, func(row Row, _ int) jsonRow {
		return jsonRow{
			PatientId:      row.Id,
			Duration:       row.Duration,
			Priority:       row.Priority,
			Waiting:        row.Waiting,
			SurgeonId:      row.Surgeon,
			FeasibleBlocks: row.FeasibleBlocks,
		}
	}))
}

var candidateHeader = []string{"patient_id", "room", "day", "shift"}

// WriteCandidatesCSV lists feasible (patient, room, day, shift) combinations; shift is written as 1 (AM) or 2 (PM)
func WriteCandidatesCSV(w io.Writer, candidates []model.FeasibleAssignment) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(candidateHeader); err != nil {
		return err
	}
	for _, candidate := range candidates {
		record := []string{
			strconv.Itoa(candidate.Patient),
			strconv.Itoa(candidate.Room),
			strconv.Itoa(candidate.Day),
			strconv.Itoa(int(candidate.Shift)),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
