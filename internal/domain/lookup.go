package domain

// Resolve finds a doctor by exact name and one of its days by exact date.
// The returned pointers address the live document so callers can mutate in place.
// A name that matches more than one doctor fails closed with ErrAmbiguousDoctor.
func (doc *Document) Resolve(doctorName, date string) (*Doctor, *DateSlot, error) {
	var found *Doctor
	for i := range doc.Departments {
		dep := &doc.Departments[i]
		for j := range dep.Doctors {
			if dep.Doctors[j].Name != doctorName {
				continue
			}
			if found != nil {
				return nil, nil, ErrAmbiguousDoctor
			}
			found = &dep.Doctors[j]
		}
	}
	if found == nil {
		return nil, nil, ErrDoctorNotFound
	}

	for i := range found.Slots {
		if found.Slots[i].Date == date {
			return found, &found.Slots[i], nil
		}
	}
	return found, nil, ErrDateNotFound
}

// Walk visits every (department, doctor, date slot) in document order
func (doc *Document) Walk(fn func(dep *Department, doctor *Doctor, day *DateSlot)) {
	for i := range doc.Departments {
		dep := &doc.Departments[i]
		for j := range dep.Doctors {
			doctor := &dep.Doctors[j]
			for k := range doctor.Slots {
				fn(dep, doctor, &doctor.Slots[k])
			}
		}
	}
}
