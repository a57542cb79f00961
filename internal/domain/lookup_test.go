package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *Document {
	return &Document{Departments: []Department{
		{
			Name: "Cardiology",
			Doctors: []Doctor{
				{
					Name: "Dr. X",
					Slots: []DateSlot{
						{Date: "2024-05-01", Times: []TimeSlot{VacantSlot("10:00"), VacantSlot("10:30")}},
						{Date: "2024-05-02", Times: []TimeSlot{VacantSlot("09:00")}},
					},
				},
			},
		},
		{
			Name: "Dermatology",
			Doctors: []Doctor{
				{Name: "Dr. Y", Slots: []DateSlot{{Date: "2024-05-01", Times: []TimeSlot{VacantSlot("11:00")}}}},
			},
		},
	}}
}

func TestResolve(t *testing.T) {
	doc := testDocument()

	doctor, day, err := doc.Resolve("Dr. Y", "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Y", doctor.Name)
	assert.Equal(t, "2024-05-01", day.Date)

	// Указатель ведет в живой документ
	ts, ok := day.Time("11:00")
	require.True(t, ok)
	require.NoError(t, ts.Book(PatientInfo{Name: "A"}))
	assert.True(t, doc.Departments[1].Doctors[0].Slots[0].Times[0].IsBooked())
}

func TestResolve_NotFound(t *testing.T) {
	doc := testDocument()

	_, _, err := doc.Resolve("Dr. Z", "2024-05-01")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = doc.Resolve("Dr. X", "2030-01-01")
	assert.ErrorIs(t, err, ErrDateNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	// Сравнение имен чувствительно к регистру
	_, _, err = doc.Resolve("dr. x", "2024-05-01")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestResolve_AmbiguousDoctor(t *testing.T) {
	doc := testDocument()
	doc.Departments[1].Doctors = append(doc.Departments[1].Doctors, Doctor{Name: "Dr. X"})

	_, _, err := doc.Resolve("Dr. X", "2024-05-01")
	assert.ErrorIs(t, err, ErrAmbiguousDoctor)
}

func TestWalkOrder(t *testing.T) {
	doc := testDocument()

	var visited []string
	doc.Walk(func(dep *Department, doctor *Doctor, day *DateSlot) {
		visited = append(visited, dep.Name+"/"+doctor.Name+"/"+day.Date)
	})

	assert.Equal(t, []string{
		"Cardiology/Dr. X/2024-05-01",
		"Cardiology/Dr. X/2024-05-02",
		"Dermatology/Dr. Y/2024-05-01",
	}, visited)
}

func TestClone_IsDeep(t *testing.T) {
	doc := testDocument()
	cp := doc.Clone()

	_, day, err := cp.Resolve("Dr. X", "2024-05-01")
	require.NoError(t, err)
	ts, _ := day.Time("10:00")
	require.NoError(t, ts.Book(PatientInfo{Name: "A", Extra: Extra{"age": []byte(`"30"`)}}))
	day.AddWaiting(PatientInfo{Name: "B"})

	_, orig, err := doc.Resolve("Dr. X", "2024-05-01")
	require.NoError(t, err)
	assert.True(t, orig.Times[0].IsVacant())
	assert.Empty(t, orig.Waiting)
}
