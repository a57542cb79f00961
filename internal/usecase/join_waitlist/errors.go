package join_waitlist

import (
	"errors"

	"github.com/Narayana2527/health-safari-apis/pkg/metrics"
)

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей
	ErrInvalidInput = errors.New("join_waitlist: invalid input data")

	// ErrDoctorOrDateNotFound возвращается, когда врач или дата не найдены в документе
	ErrDoctorOrDateNotFound = errors.New("join_waitlist: doctor or date not found")

	// ErrAmbiguousDoctor возвращается, когда имя врача встречается в документе больше одного раза
	ErrAmbiguousDoctor = errors.New("join_waitlist: doctor name is ambiguous")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("join_waitlist: internal error")
)

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, ErrInvalidInput):
		return metrics.ResultInvalidInput
	case errors.Is(err, ErrDoctorOrDateNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, ErrAmbiguousDoctor):
		return metrics.ResultConflict
	default:
		return metrics.ResultError
	}
}
