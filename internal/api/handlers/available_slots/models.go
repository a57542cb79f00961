package available_slots

import "github.com/Narayana2527/health-safari-apis/internal/service/availability/models"

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	AvailableSlots []models.AvailableSlot `json:"availableSlots"`
}
