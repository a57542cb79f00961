package join_waitlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

const operationName = "join_waitlist"

// UseCase use case для записи в лист ожидания
type UseCase struct {
	repo      DocumentRepository
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo DocumentRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		repo:      repo,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute добавляет пациента в лист ожидания врача на дату
// Наличие свободных слотов не проверяется, дубликаты не отсекаются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		uc.metrics.ObserveOperation(operationName, resultOf(err))
	}()

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("JoinWaitlist: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("JoinWaitlist: doctor=%q, date=%s", req.DoctorName, req.Date)

	patient := domain.PatientInfo{
		Name:      req.Patient.Name,
		Email:     req.Patient.Email,
		Mobile:    req.Patient.Mobile,
		Treatment: req.Patient.Treatment,
		Message:   req.Patient.Message,
	}

	var position int
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		doc, err := uc.repo.Load(ctx)
		if err != nil {
			uc.logger.Error("JoinWaitlist: failed to load document: %v", err)
			return fmt.Errorf("%w: failed to load document: %v", ErrInternal, err)
		}

		_, day, err := doc.Resolve(req.DoctorName, req.Date)
		if err != nil {
			return lookupError(err)
		}

		day.AddWaiting(patient)
		position = len(day.Waiting)

		if err := uc.repo.Save(ctx, doc); err != nil {
			uc.logger.Error("JoinWaitlist: failed to save document: %v", err)
			return fmt.Errorf("%w: failed to save document: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInternal) {
			uc.logger.Warn("JoinWaitlist: doctor=%q, date=%s: %v", req.DoctorName, req.Date, err)
		}
		return nil, err
	}

	uc.logger.Info("JoinWaitlist: added doctor=%q, date=%s, position=%d", req.DoctorName, req.Date, position)

	return &Response{
		DoctorName: req.DoctorName,
		Date:       req.Date,
		Position:   position,
		Message:    fmt.Sprintf("Added to waiting list for %s on %s", req.DoctorName, req.Date),
	}, nil
}

func lookupError(err error) error {
	switch {
	case errors.Is(err, domain.ErrAmbiguousDoctor):
		return fmt.Errorf("%w: %v", ErrAmbiguousDoctor, err)
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrDoctorOrDateNotFound, err)
	default:
		return fmt.Errorf("%w: lookup failed: %v", ErrInternal, err)
	}
}
