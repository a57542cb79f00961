package get_other_appointments

import "github.com/Narayana2527/health-safari-apis/internal/service/availability/models"

// OtherAppointmentsResponse HTTP response model
type OtherAppointmentsResponse struct {
	OtherAppointments []models.OtherAppointment `json:"otherAppointments"`
}
