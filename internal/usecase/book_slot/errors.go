package book_slot

import (
	"errors"

	"github.com/Narayana2527/health-safari-apis/pkg/metrics"
)

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrDoctorOrDateNotFound возвращается, когда врач или дата не найдены в документе
	ErrDoctorOrDateNotFound = errors.New("book_slot: doctor or date not found")

	// ErrSlotMissing возвращается, когда у даты нет слота с таким временем
	ErrSlotMissing = errors.New("book_slot: time slot does not exist")

	// ErrAlreadyBooked возвращается, когда слот уже занят
	ErrAlreadyBooked = errors.New("book_slot: slot is already booked")

	// ErrAmbiguousDoctor возвращается, когда имя врача встречается в документе больше одного раза
	ErrAmbiguousDoctor = errors.New("book_slot: doctor name is ambiguous")

	// ErrInternal возвращается при внутренних ошибках usecase (ошибки хранилища)
	ErrInternal = errors.New("book_slot: internal error")
)

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, ErrInvalidInput):
		return metrics.ResultInvalidInput
	case errors.Is(err, ErrDoctorOrDateNotFound), errors.Is(err, ErrSlotMissing):
		return metrics.ResultNotFound
	case errors.Is(err, ErrAlreadyBooked), errors.Is(err, ErrAmbiguousDoctor):
		return metrics.ResultConflict
	default:
		return metrics.ResultError
	}
}
