package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/limaJavier/orblocks/pkg/model"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog(t *testing.T) model.PatientCatalog {
	catalog, err := model.NewPatientCatalog([]model.Patient{
		{Id: 3, Surgeon: 2, Duration: 60, Priority: 1, Waiting: 4},
		{Id: 1, Surgeon: 9, Duration: 300, Priority: 2, Waiting: 8},
		{Id: 2, Surgeon: 1, Duration: 350, Priority: 3, Waiting: 12},
	})
	require.NoError(t, err)
	return catalog
}

func TestMaterialize(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	counts := map[int]int{3: 5, 2: 0, 42: 7}

	//** Act
	rows := Materialize(catalog(t), counts)

	//** Assert
	g.Expect(rows).To(HaveLen(3))
	g.Expect([]int{rows[0].Id, rows[1].Id, rows[2].Id}).To(Equal([]int{3, 1, 2}))
	g.Expect([]int{rows[0].FeasibleBlocks, rows[1].FeasibleBlocks, rows[2].FeasibleBlocks}).To(Equal([]int{5, 0, 0}))
	g.Expect(rows[1].Patient).To(Equal(model.Patient{Id: 1, Surgeon: 9, Duration: 300, Priority: 2, Waiting: 8}))
}

func TestMaterializeEmptyCounts(t *testing.T) {
	rows := Materialize(catalog(t), nil)

	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, 0, row.FeasibleBlocks)
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(Materialize(catalog(t), map[int]int{3: 5, 1: 2}))

	assert.Equal(t, Summary{Patients: 3, Feasible: 2, Infeasible: 1, TotalBlocks: 7}, summary)
}

func TestWriteCSV(t *testing.T) {
	var buffer bytes.Buffer

	err := WriteCSV(&buffer, Materialize(catalog(t), map[int]int{3: 5}))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"patient_id,duration,priority,waiting,surgeon_id,feasible_blocks",
		"3,60,1,4,2,5",
		"1,300,2,8,9,0",
		"2,350,3,12,1,0",
	}, strings.Split(strings.TrimSpace(buffer.String()), "\n"))
}

func TestWriteJSON(t *testing.T) {
	var buffer bytes.Buffer

	err := Write(&buffer, JSON, Materialize(catalog(t), map[int]int{1: 4}))
	require.NoError(t, err)

	var decoded []map[string]int
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
	assert.Len(t, decoded, 3)
	assert.Equal(t, map[string]int{
		"patient_id":      1,
		"duration":        300,
		"priority":        2,
		"waiting":         8,
		"surgeon_id":      9,
		"feasible_blocks": 4,
	}, decoded[1])
}

func TestWriteCandidatesCSV(t *testing.T) {
	var buffer bytes.Buffer

	err := WriteCandidatesCSV(&buffer, []model.FeasibleAssignment{
		{Patient: 1, Room: 2, Day: 3, Shift: model.PM},
		{Patient: 2, Room: 1, Day: 1, Shift: model.AM},
	})

	require.NoError(t, err)
	assert.Equal(t, "patient_id,room,day,shift\n1,2,3,2\n2,1,1,1\n", buffer.String())
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat(" JSON ")
	assert.Nil(t, err)
	assert.Equal(t, JSON, format)

	_, err = ParseFormat("xml")
	assert.NotNil(t, err)
	assert.NotNil(t, Write(&bytes.Buffer{}, Format("xml"), nil))
}
