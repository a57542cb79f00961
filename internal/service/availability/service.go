package availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
	"github.com/Narayana2527/health-safari-apis/internal/service/availability/models"
)

// Сообщения проверки слота
const (
	messageSlotAvailable = "Slot is available"
	messageSlotBooked    = "Slot is already booked"
)

// Service сервис чтения доступности: проверка слота и проекции документа
// Ни один метод не сохраняет документ
type Service struct {
	repo           DocumentRepository
	txManager      TransactionManager
	logger         Logger
	redactContacts bool
}

// NewService создает новый экземпляр сервиса
// redactContacts включает маскирование email и телефона пациентов во всех выдачах с данными пациентов
func NewService(
	repo DocumentRepository,
	txManager TransactionManager,
	logger Logger,
	redactContacts bool,
) *Service {
	return &Service{
		repo:           repo,
		txManager:      txManager,
		logger:         logger,
		redactContacts: redactContacts,
	}
}

// read загружает документ под разделяемой блокировкой
// Load каждый раз возвращает собственную копию, поэтому маскирование на месте не трогает хранилище
func (s *Service) read(ctx context.Context, op string, exposesPatients bool, fn func(doc *domain.Document) error) error {
	requested := time.Now()
	return s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		locked := time.Now()
		doc, err := s.repo.Load(ctx)
		if err != nil {
			s.logger.Error("%s: failed to load document: %v", op, err)
			return fmt.Errorf("%w: %s - load document: %v", ErrInternal, op, err)
		}
		s.logger.Debug("%s: lock wait %s, load %s", op, locked.Sub(requested), time.Since(locked))
		if exposesPatients && s.redactContacts {
			redactDocument(doc)
		}
		return fn(doc)
	})
}

// CheckSlot проверяет, свободен ли слот
// Несуществующее время у найденной даты считается занятым
func (s *Service) CheckSlot(ctx context.Context, doctorName, date, timeLabel string) (*models.CheckSlotResponse, error) {
	var missing []string
	if strings.TrimSpace(doctorName) == "" {
		missing = append(missing, "doctorName")
	}
	if strings.TrimSpace(date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(timeLabel) == "" {
		missing = append(missing, "selectedSlot")
	}
	if len(missing) > 0 {
		s.logger.Warn("CheckSlot: missing fields: %v", missing)
		return nil, fmt.Errorf("%w: missing fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	var resp *models.CheckSlotResponse
	err := s.read(ctx, "CheckSlot", false, func(doc *domain.Document) error {
		_, day, err := doc.Resolve(doctorName, date)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrAmbiguousDoctor):
				return fmt.Errorf("%w: %v", ErrAmbiguousDoctor, err)
			case errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("%w: %v", ErrDoctorOrDateNotFound, err)
			}
			return fmt.Errorf("%w: CheckSlot - lookup: %v", ErrInternal, err)
		}

		if ts, ok := day.Time(timeLabel); ok && ts.IsVacant() {
			resp = &models.CheckSlotResponse{Available: true, Message: messageSlotAvailable}
			return nil
		}
		resp = &models.CheckSlotResponse{Available: false, Message: messageSlotBooked}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("CheckSlot: doctor=%q, date=%s, slot=%s: %v", doctorName, date, timeLabel, err)
		}
		return nil, err
	}

	return resp, nil
}

// AvailableSlots возвращает свободное время по всем врачам
// date == nil - без фильтра по дате
func (s *Service) AvailableSlots(ctx context.Context, date *string) ([]models.AvailableSlot, error) {
	var out []models.AvailableSlot
	err := s.read(ctx, "AvailableSlots", false, func(doc *domain.Document) error {
		out = availableSlots(doc, date)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BookedAppointments возвращает все занятые слоты с данными пациентов
func (s *Service) BookedAppointments(ctx context.Context) ([]models.BookedAppointment, error) {
	var out []models.BookedAppointment
	err := s.read(ctx, "BookedAppointments", true, func(doc *domain.Document) error {
		out = bookedAppointments(doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OtherAppointments возвращает все записи листов ожидания
func (s *Service) OtherAppointments(ctx context.Context) ([]models.OtherAppointment, error) {
	var out []models.OtherAppointment
	err := s.read(ctx, "OtherAppointments", true, func(doc *domain.Document) error {
		out = otherAppointments(doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DoctorsList возвращает справочник врачей
func (s *Service) DoctorsList(ctx context.Context) ([]models.DoctorEntry, error) {
	var out []models.DoctorEntry
	err := s.read(ctx, "DoctorsList", true, func(doc *domain.Document) error {
		out = doctorsList(doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DoctorsSlotReport возвращает статус каждого слота по врачам и датам
func (s *Service) DoctorsSlotReport(ctx context.Context) ([]models.DoctorSlotReport, error) {
	var out []models.DoctorSlotReport
	err := s.read(ctx, "DoctorsSlotReport", true, func(doc *domain.Document) error {
		out = doctorsSlotReport(doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UserExists проверяет, встречается ли email в занятых слотах или листах ожидания
// Сравнение точное, с учетом регистра
func (s *Service) UserExists(ctx context.Context, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		s.logger.Warn("UserExists: empty email")
		return false, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	var exists bool
	err := s.read(ctx, "UserExists", false, func(doc *domain.Document) error {
		exists = userExists(doc, email)
		return nil
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetDocument возвращает документ целиком
func (s *Service) GetDocument(ctx context.Context) (*models.Document, error) {
	var out *models.Document
	err := s.read(ctx, "GetDocument", true, func(doc *domain.Document) error {
		out = models.NewDocument(doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
