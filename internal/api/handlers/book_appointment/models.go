package book_appointment

import (
	"github.com/Narayana2527/health-safari-apis/internal/api/handlers"
	"github.com/Narayana2527/health-safari-apis/internal/domain"
	bookSlot "github.com/Narayana2527/health-safari-apis/internal/usecase/book_slot"
)

// BookAppointmentRequest HTTP request model (JSON или форма)
type BookAppointmentRequest struct {
	Name         handlers.FlexString `json:"name"`
	Email        handlers.FlexString `json:"email"`
	Mobile       handlers.FlexString `json:"mobile"`
	Treatment    handlers.FlexString `json:"treatment"`
	Message      handlers.FlexString `json:"message"`
	DoctorName   handlers.FlexString `json:"doctorName"`
	Date         handlers.FlexString `json:"date"`
	SelectedSlot handlers.FlexString `json:"selectedSlot"`
}

// MessageResponse HTTP response model
type MessageResponse struct {
	Message string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest() *bookSlot.Request {
	return &bookSlot.Request{
		DoctorName: r.DoctorName.String(),
		Date:       r.Date.String(),
		TimeLabel:  r.SelectedSlot.String(),
		Patient: domain.PatientInfo{
			Name:      r.Name.String(),
			Email:     r.Email.String(),
			Mobile:    r.Mobile.String(),
			Treatment: r.Treatment.String(),
			Message:   r.Message.String(),
		},
	}
}
