package join_waitlist

import (
	"fmt"
	"strings"
)

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

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
