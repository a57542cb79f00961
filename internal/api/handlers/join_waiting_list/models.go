package join_waiting_list

import (
	"github.com/Narayana2527/health-safari-apis/internal/api/handlers"
	"github.com/Narayana2527/health-safari-apis/internal/domain"
	joinWaitlist "github.com/Narayana2527/health-safari-apis/internal/usecase/join_waitlist"
)

// JoinWaitingListRequest HTTP request model
type JoinWaitingListRequest struct {
	Name       handlers.FlexString `json:"name"`
	Email      handlers.FlexString `json:"email"`
	Mobile     handlers.FlexString `json:"mobile"`
	Treatment  handlers.FlexString `json:"treatment"`
	Message    handlers.FlexString `json:"message"`
	DoctorName handlers.FlexString `json:"doctorName"`
	Date       handlers.FlexString `json:"date"`
}

// MessageResponse HTTP response model
type MessageResponse struct {
	Message string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *JoinWaitingListRequest) ToUseCaseRequest() *joinWaitlist.Request {
	return &joinWaitlist.Request{
		DoctorName: r.DoctorName.String(),
		Date:       r.Date.String(),
		Patient: domain.PatientInfo{
			Name:      r.Name.String(),
			Email:     r.Email.String(),
			Mobile:    r.Mobile.String(),
			Treatment: r.Treatment.String(),
			Message:   r.Message.String(),
		},
	}
}
