package doctors_slot

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

func (m *mockService) DoctorsSlotReport(ctx context.Context) ([]models.DoctorSlotReport, error) {
	args := m.Called(ctx)
	report, _ := args.Get(0).([]models.DoctorSlotReport)
	return report, args.Error(1)
}

func TestHandle_Success(t *testing.T) {
	svc := &mockService{}
	svc.On("DoctorsSlotReport", mock.Anything).Return([]models.DoctorSlotReport{{
		DoctorName: "Dr. X",
		Date:       "2024-05-01",
		Slot: models.SlotStatuses{
			{Label: "10:30", Status: "available"},
			{Label: "10:00", Status: "booked", PatientInfo: codec.Patient{Name: "A"}},
		},
		OtherPatients: []codec.Patient{{Name: "W"}},
	}}, nil)

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/doctors-slot", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	// Массив без обертки; метки времени в порядке документа
	assert.Equal(t,
		`[{"doctorName":"Dr. X","date":"2024-05-01","slot":{"10:30":{"status":"available","patientInfo":{}},"10:00":{"status":"booked","patientInfo":{"name":"A"}}},"otherPatients":[{"name":"W"}]}]`+"\n",
		w.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_Error(t *testing.T) {
	svc := &mockService{}
	svc.On("DoctorsSlotReport", mock.Anything).Return(nil, errors.New("boom"))

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/doctors-slot", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Error fetching doctors' slots"}`, w.Body.String())
}
