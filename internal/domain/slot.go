package domain

// SlotState is the explicit two-state tag of a time slot
type SlotState int

const (
	SlotVacant SlotState = iota
	SlotBooked
)

func (s SlotState) String() string {
	if s == SlotBooked {
		return StatusBooked
	}
	return StatusAvailable
}

// TimeSlot is a single bookable time unit. Patient is set iff State == SlotBooked.
// Extra keeps members stored next to patientInfo under the time label.
type TimeSlot struct {
	Label   string
	State   SlotState
	Patient *PatientInfo
	Extra   Extra
}

// VacantSlot creates an unbooked slot
func VacantSlot(label string) TimeSlot {
	return TimeSlot{Label: label, State: SlotVacant}
}

// BookedSlot creates a slot already holding a patient
func BookedSlot(label string, patient PatientInfo) TimeSlot {
	p := patient.Clone()
	return TimeSlot{Label: label, State: SlotBooked, Patient: &p}
}

// IsVacant returns true if the slot can be booked
func (t *TimeSlot) IsVacant() bool {
	return t.State == SlotVacant
}

// IsBooked returns true if the slot holds a patient
func (t *TimeSlot) IsBooked() bool {
	return t.State == SlotBooked
}

// Book moves a vacant slot to booked. A booked slot is never overwritten.
func (t *TimeSlot) Book(patient PatientInfo) error {
	if t.IsBooked() {
		return ErrSlotAlreadyBooked
	}
	p := patient.Clone()
	t.State = SlotBooked
	t.Patient = &p
	return nil
}

func (t TimeSlot) clone() TimeSlot {
	out := TimeSlot{Label: t.Label, State: t.State, Extra: t.Extra.Clone()}
	if t.Patient != nil {
		p := t.Patient.Clone()
		out.Patient = &p
	}
	return out
}
