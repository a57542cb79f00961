package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrDoctorOrDateNotFound возвращается, когда врач или дата не найдены
	ErrDoctorOrDateNotFound = errors.New("availability: doctor or date not found")

	// ErrAmbiguousDoctor возвращается, когда имя врача встречается в документе больше одного раза
	ErrAmbiguousDoctor = errors.New("availability: doctor name is ambiguous")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
