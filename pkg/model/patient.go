package model

import (
	"fmt"
	"slices"
)

type Patient struct {
	Id       int
	Surgeon  int
	Duration int // Minutes
	Priority int
	Waiting  int
}

// PatientCatalog is an immutable collection of patients whose ids form the contiguous range 1..N
type PatientCatalog struct {
	patients []Patient
	byId     map[int]int // Patient id -> position in patients
}

// NewPatientCatalog keeps the given order and rejects gaps, duplicates and ids outside 1..N
func NewPatientCatalog(patients []Patient) (PatientCatalog, error) {
	catalog := PatientCatalog{
		patients: slices.Clone(patients),
		byId:     make(map[int]int, len(patients)),
	}

	for position, patient := range catalog.patients {
		if patient.Id < 1 || patient.Id > len(patients) {
			return PatientCatalog{}, fmt.Errorf("patient id %d is outside of range 1..%d", patient.Id, len(patients))
		}
		if _, ok := catalog.byId[patient.Id]; ok {
			return PatientCatalog{}, fmt.Errorf("duplicate patient id %d", patient.Id)
		}
		if patient.Duration <= 0 {
			return PatientCatalog{}, fmt.Errorf("patient %d has non-positive duration %d", patient.Id, patient.Duration)
		}
		catalog.byId[patient.Id] = position
	}

	return catalog, nil
}

func (catalog PatientCatalog) Len() int {
	return len(catalog.patients)
}

// Patients returns a copy of the patients in catalog order
func (catalog PatientCatalog) Patients() []Patient {
	return slices.Clone(catalog.patients)
}

func (catalog PatientCatalog) Patient(id int) (Patient, bool) {
	position, ok := catalog.byId[id]
	if !ok {
		return Patient{}, false
	}
	return catalog.patients[position], true
}
