package document

import "github.com/Narayana2527/health-safari-apis/internal/domain"

func testDocument() *domain.Document {
	booked := domain.BookedSlot("10:30", domain.PatientInfo{
		Name:   "A",
		Email:  "a@x.io",
		Mobile: "9000000001",
	})
	return &domain.Document{Departments: []domain.Department{{
		Name: "Cardiology",
		Doctors: []domain.Doctor{{
			Name:        "Dr. X",
			Designation: "MD",
			Slots: []domain.DateSlot{{
				Date:    "2024-05-01",
				Times:   []domain.TimeSlot{domain.VacantSlot("10:00"), booked},
				// Decode всегда отдает не-nil срез
				Waiting: []domain.WaitingEntry{},
			}},
		}},
	}}}
}
