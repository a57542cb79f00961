package domain

// Document is the whole availability tree: departments -> doctors -> dates -> time slots.
// Its shape (department, doctor, date and time label keys) is established by the data loader;
// the booking engine only books vacant slots and appends to waiting lists.
type Document struct {
	Departments []Department
}

// Department groups doctors under a name
type Department struct {
	Name    string
	Doctors []Doctor
	Extra   Extra
}

// Doctor is a bookable doctor. Name is the lookup key used by every mutation.
type Doctor struct {
	Name        string
	Designation string
	Image       string
	Slots       []DateSlot
	Extra       Extra
}

// DateSlot is one doctor's day: the time slots in document order plus the waiting list.
// OthersExtra keeps unknown members of the object that wraps the waiting list.
type DateSlot struct {
	Date        string
	Times       []TimeSlot
	Waiting     []WaitingEntry
	Extra       Extra
	OthersExtra Extra
}

// WaitingEntry is demand recorded against a day, not tied to a time label.
// Entries are only ever appended.
type WaitingEntry struct {
	Patient PatientInfo
	Extra   Extra
}

// Time returns the live time slot for label
func (d *DateSlot) Time(label string) (*TimeSlot, bool) {
	for i := range d.Times {
		if d.Times[i].Label == label {
			return &d.Times[i], true
		}
	}
	return nil, false
}

// VacantLabels returns vacant time labels in document order
func (d *DateSlot) VacantLabels() []string {
	labels := make([]string, 0, len(d.Times))
	for _, ts := range d.Times {
		if ts.IsVacant() {
			labels = append(labels, ts.Label)
		}
	}
	return labels
}

// AddWaiting appends a waiting-list entry
func (d *DateSlot) AddWaiting(patient PatientInfo) {
	d.Waiting = append(d.Waiting, WaitingEntry{Patient: patient.Clone()})
}

// Clone returns a deep copy of the document
func (doc *Document) Clone() *Document {
	if doc == nil {
		return nil
	}

	out := &Document{Departments: make([]Department, len(doc.Departments))}
	for i, dep := range doc.Departments {
		out.Departments[i] = Department{Name: dep.Name, Doctors: make([]Doctor, len(dep.Doctors)), Extra: dep.Extra.Clone()}
		for j, d := range dep.Doctors {
			out.Departments[i].Doctors[j] = d.clone()
		}
	}
	return out
}

func (d Doctor) clone() Doctor {
	out := d
	out.Extra = d.Extra.Clone()
	out.Slots = make([]DateSlot, len(d.Slots))
	for i, ds := range d.Slots {
		out.Slots[i] = ds.clone()
	}
	return out
}

func (d DateSlot) clone() DateSlot {
	out := DateSlot{
		Date:        d.Date,
		Times:       make([]TimeSlot, len(d.Times)),
		Waiting:     make([]WaitingEntry, len(d.Waiting)),
		Extra:       d.Extra.Clone(),
		OthersExtra: d.OthersExtra.Clone(),
	}
	for i, ts := range d.Times {
		out.Times[i] = ts.clone()
	}
	for i, w := range d.Waiting {
		out.Waiting[i] = WaitingEntry{Patient: w.Patient.Clone(), Extra: w.Extra.Clone()}
	}
	return out
}
