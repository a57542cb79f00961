package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

const operationName = "book_slot"

// UseCase use case для бронирования слота
type UseCase struct {
	repo      DocumentRepository
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
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

// Execute выполняет use case бронирования
// Весь цикл load-modify-save идет под эксклюзивной блокировкой, поэтому
// два запроса на один слот не могут оба увидеть его свободным
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		uc.metrics.ObserveOperation(operationName, resultOf(err))
	}()

	// 1. Валидация до любого обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BookSlot: doctor=%q, date=%s, slot=%s", req.DoctorName, req.Date, req.TimeLabel)

	// В документ попадают ровно пять полей формы
	patient := domain.PatientInfo{
		Name:      req.Patient.Name,
		Email:     req.Patient.Email,
		Mobile:    req.Patient.Mobile,
		Treatment: req.Patient.Treatment,
		Message:   req.Patient.Message,
	}

	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 2. Загружаем документ
		doc, err := uc.repo.Load(ctx)
		if err != nil {
			uc.logger.Error("BookSlot: failed to load document: %v", err)
			return fmt.Errorf("%w: failed to load document: %v", ErrInternal, err)
		}

		// 3. Ищем врача и дату
		_, day, err := doc.Resolve(req.DoctorName, req.Date)
		if err != nil {
			return lookupError(err)
		}

		// 4. Ищем слот и занимаем его
		slot, ok := day.Time(req.TimeLabel)
		if !ok {
			return fmt.Errorf("%w: %s %s %s", ErrSlotMissing, req.DoctorName, req.Date, req.TimeLabel)
		}
		if err := slot.Book(patient); err != nil {
			if errors.Is(err, domain.ErrSlotAlreadyBooked) {
				return ErrAlreadyBooked
			}
			return fmt.Errorf("%w: failed to book slot: %v", ErrInternal, err)
		}

		// 5. Сохраняем документ; при ошибке загруженная копия просто отбрасывается
		if err := uc.repo.Save(ctx, doc); err != nil {
			uc.logger.Error("BookSlot: failed to save document: %v", err)
			return fmt.Errorf("%w: failed to save document: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInternal) {
			uc.logger.Warn("BookSlot: doctor=%q, date=%s, slot=%s: %v", req.DoctorName, req.Date, req.TimeLabel, err)
		}
		return nil, err
	}

	uc.logger.Info("BookSlot: booked doctor=%q, date=%s, slot=%s", req.DoctorName, req.Date, req.TimeLabel)

	return &Response{
		DoctorName: req.DoctorName,
		Date:       req.Date,
		TimeLabel:  req.TimeLabel,
		Message:    fmt.Sprintf("Appointment booked with %s on %s at %s", req.DoctorName, req.Date, req.TimeLabel),
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
