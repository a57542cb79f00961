package availability

import (
	"github.com/Narayana2527/health-safari-apis/internal/codec"
	"github.com/Narayana2527/health-safari-apis/internal/domain"
	"github.com/Narayana2527/health-safari-apis/internal/service/availability/models"
)

// Проекции - чистые функции от снимка документа, обход в порядке документа

func availableSlots(doc *domain.Document, date *string) []models.AvailableSlot {
	out := make([]models.AvailableSlot, 0)
	doc.Walk(func(dep *domain.Department, doctor *domain.Doctor, day *domain.DateSlot) {
		if date != nil && day.Date != *date {
			return
		}
		labels := day.VacantLabels()
		if len(labels) == 0 {
			return
		}
		out = append(out, models.AvailableSlot{
			DepartmentName: dep.Name,
			Doctor:         doctor.Name,
			Date:           day.Date,
			AvailableTimes: labels,
		})
	})
	return out
}

func bookedAppointments(doc *domain.Document) []models.BookedAppointment {
	out := make([]models.BookedAppointment, 0)
	doc.Walk(func(dep *domain.Department, doctor *domain.Doctor, day *domain.DateSlot) {
		for i := range day.Times {
			ts := &day.Times[i]
			if !ts.IsBooked() || ts.Patient == nil {
				continue
			}
			out = append(out, models.BookedAppointment{
				DepartmentName: dep.Name,
				DoctorName:     doctor.Name,
				Date:           day.Date,
				TimeSlot:       ts.Label,
				PatientInfo:    codec.Patient(*ts.Patient),
			})
		}
	})
	return out
}

func otherAppointments(doc *domain.Document) []models.OtherAppointment {
	out := make([]models.OtherAppointment, 0)
	doc.Walk(func(dep *domain.Department, doctor *domain.Doctor, day *domain.DateSlot) {
		for _, w := range day.Waiting {
			if w.Patient.IsEmpty() {
				continue
			}
			out = append(out, models.OtherAppointment{
				DepartmentName: dep.Name,
				DoctorName:     doctor.Name,
				Date:           day.Date,
				PatientInfo:    codec.Patient(w.Patient),
			})
		}
	})
	return out
}

func doctorsList(doc *domain.Document) []models.DoctorEntry {
	out := make([]models.DoctorEntry, 0)
	for _, dep := range doc.Departments {
		for _, doctor := range dep.Doctors {
			out = append(out, models.DoctorEntry{
				Name:           doctor.Name,
				Designation:    doctor.Designation,
				Image:          doctor.Image,
				AvailableSlots: codec.DateSlots(doctor.Slots),
			})
		}
	}
	return out
}

func doctorsSlotReport(doc *domain.Document) []models.DoctorSlotReport {
	out := make([]models.DoctorSlotReport, 0)
	doc.Walk(func(_ *domain.Department, doctor *domain.Doctor, day *domain.DateSlot) {
		report := models.DoctorSlotReport{
			DoctorName:    doctor.Name,
			Date:          day.Date,
			Slot:          make(models.SlotStatuses, 0, len(day.Times)),
			OtherPatients: make([]codec.Patient, 0, len(day.Waiting)),
		}
		for _, ts := range day.Times {
			status := models.SlotStatus{Label: ts.Label, Status: ts.State.String()}
			if ts.IsBooked() && ts.Patient != nil {
				status.PatientInfo = codec.Patient(*ts.Patient)
			}
			report.Slot = append(report.Slot, status)
		}
		for _, w := range day.Waiting {
			report.OtherPatients = append(report.OtherPatients, codec.Patient(w.Patient))
		}
		out = append(out, report)
	})
	return out
}

// userExists ищет email среди занятых слотов и листов ожидания
func userExists(doc *domain.Document, email string) bool {
	found := false
	doc.Walk(func(_ *domain.Department, _ *domain.Doctor, day *domain.DateSlot) {
		if found {
			return
		}
		for _, ts := range day.Times {
			if ts.IsBooked() && ts.Patient != nil && ts.Patient.Email == email {
				found = true
				return
			}
		}
		for _, w := range day.Waiting {
			if w.Patient.Email == email {
				found = true
				return
			}
		}
	})
	return found
}

// redactDocument маскирует контакты пациентов на месте
func redactDocument(doc *domain.Document) {
	doc.Walk(func(_ *domain.Department, _ *domain.Doctor, day *domain.DateSlot) {
		for i := range day.Times {
			if p := day.Times[i].Patient; p != nil {
				redacted := p.Redacted()
				day.Times[i].Patient = &redacted
			}
		}
		for i := range day.Waiting {
			day.Waiting[i].Patient = day.Waiting[i].Patient.Redacted()
		}
	})
}
