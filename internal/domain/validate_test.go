package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, testDocument().Validate())

	doc := testDocument()
	doc.Departments[1].Doctors = append(doc.Departments[1].Doctors, Doctor{Name: "Dr. X"})
	doc.Departments[0].Doctors[0].Slots = append(doc.Departments[0].Doctors[0].Slots, DateSlot{Date: "2024-05-01"})
	doc.Departments[0].Name = ""

	err := doc.Validate()
	assert.ErrorIs(t, err, ErrInvalidShape)
	assert.Contains(t, err.Error(), `doctor "Dr. X" listed in`)
	assert.Contains(t, err.Error(), `has date "2024-05-01" twice`)
	assert.Contains(t, err.Error(), "department without name")
}
