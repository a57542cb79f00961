package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is returned by Validate for documents the engine cannot address unambiguously
var ErrInvalidShape = errors.New("invalid document shape")

// Validate checks the keys the engine relies on: non-empty names and dates,
// unique doctor names across the document, unique dates per doctor, unique time labels per day.
// All problems are reported at once.
func (doc *Document) Validate() error {
	var errs []error
	doctors := make(map[string]string)

	for _, dep := range doc.Departments {
		if dep.Name == "" {
			errs = append(errs, fmt.Errorf("%w: department without name", ErrInvalidShape))
		}
		for _, d := range dep.Doctors {
			if d.Name == "" {
				errs = append(errs, fmt.Errorf("%w: doctor without name in department %q", ErrInvalidShape, dep.Name))
				continue
			}
			if other, ok := doctors[d.Name]; ok {
				errs = append(errs, fmt.Errorf("%w: doctor %q listed in %q and %q", ErrInvalidShape, d.Name, other, dep.Name))
			}
			doctors[d.Name] = dep.Name

			dates := make(map[string]struct{})
			for _, day := range d.Slots {
				if day.Date == "" {
					errs = append(errs, fmt.Errorf("%w: doctor %q has a day without date", ErrInvalidShape, d.Name))
					continue
				}
				if _, ok := dates[day.Date]; ok {
					errs = append(errs, fmt.Errorf("%w: doctor %q has date %q twice", ErrInvalidShape, d.Name, day.Date))
				}
				dates[day.Date] = struct{}{}

				labels := make(map[string]struct{})
				for _, ts := range day.Times {
					if _, ok := labels[ts.Label]; ok {
						errs = append(errs, fmt.Errorf("%w: doctor %q date %q has time %q twice", ErrInvalidShape, d.Name, day.Date, ts.Label))
					}
					labels[ts.Label] = struct{}{}
				}
			}
		}
	}

	return errors.Join(errs...)
}
