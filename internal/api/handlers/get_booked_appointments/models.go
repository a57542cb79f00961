package get_booked_appointments

import "github.com/Narayana2527/health-safari-apis/internal/service/availability/models"

// BookedAppointmentsResponse HTTP response model
type BookedAppointmentsResponse struct {
	BookedAppointments []models.BookedAppointment `json:"bookedAppointments"`
}
