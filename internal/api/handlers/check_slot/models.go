package check_slot

import "github.com/Narayana2527/health-safari-apis/internal/api/handlers"

// CheckSlotRequest HTTP request model
type CheckSlotRequest struct {
	DoctorName   handlers.FlexString `json:"doctorName"`
	Date         handlers.FlexString `json:"date"`
	SelectedSlot handlers.FlexString `json:"selectedSlot"`
}
