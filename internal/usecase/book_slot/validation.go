package book_slot

import (
	"fmt"
	"strings"
)

// validateRequest проверяет наличие всех обязательных полей
// Строка из одних пробелов считается пустой
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	missing := req.Patient.MissingFields()
	if strings.TrimSpace(req.DoctorName) == "" {
		missing = append(missing, "doctorName")
	}
	if strings.TrimSpace(req.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(req.TimeLabel) == "" {
		missing = append(missing, "selectedSlot")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
