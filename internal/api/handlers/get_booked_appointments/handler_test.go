package get_booked_appointments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Narayana2527/health-safari-apis/internal/codec"
	"github.com/Narayana2527/health-safari-apis/internal/service/availability/models"
	"github.com/Narayana2527/health-safari-apis/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) BookedAppointments(ctx context.Context) ([]models.BookedAppointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]models.BookedAppointment)
	return appointments, args.Error(1)
}

func TestHandle_Success(t *testing.T) {
	svc := &mockService{}
	svc.On("BookedAppointments", mock.Anything).Return([]models.BookedAppointment{{
		DepartmentName: "Cardiology",
		DoctorName:     "Dr. X",
		Date:           "2024-05-01",
		TimeSlot:       "10:00",
		PatientInfo:    codec.Patient{Name: "A", Email: "a@x.io", Mobile: "1", Treatment: "t", Message: "m"},
	}}, nil)

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/get-booked-appointments", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookedAppointments":[{
		"departmentName":"Cardiology","doctorName":"Dr. X","date":"2024-05-01","timeSlot":"10:00",
		"patientInfo":{"name":"A","email":"a@x.io","mobile":"1","treatment":"t","message":"m"}
	}]}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_Empty(t *testing.T) {
	svc := &mockService{}
	svc.On("BookedAppointments", mock.Anything).Return([]models.BookedAppointment{}, nil)

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/get-booked-appointments", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookedAppointments":[]}`, w.Body.String())
}

func TestHandle_Error(t *testing.T) {
	svc := &mockService{}
	svc.On("BookedAppointments", mock.Anything).Return(nil, errors.New("boom"))

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/get-booked-appointments", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
}
