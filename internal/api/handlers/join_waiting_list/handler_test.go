package join_waiting_list

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	joinWaitlist "github.com/Narayana2527/health-safari-apis/internal/usecase/join_waitlist"
	"github.com/Narayana2527/health-safari-apis/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *joinWaitlist.Request) (*joinWaitlist.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*joinWaitlist.Response)
	return resp, args.Error(1)
}

const validBody = `{"name":"P","email":"p@x.io","mobile":"9","treatment":"t","message":"m","doctorName":"Dr. X","date":"2024-05-01"}`

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		resp       *joinWaitlist.Response
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "added",
			resp:       &joinWaitlist.Response{Message: "Added to waiting list for Dr. X on 2024-05-01", Position: 1},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Added to waiting list for Dr. X on 2024-05-01"}`,
		},
		{name: "invalid", err: joinWaitlist.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantBody: `{"message":"All fields are required"}`},
		{name: "not found", err: joinWaitlist.ErrDoctorOrDateNotFound, wantStatus: http.StatusNotFound, wantBody: `{"message":"Doctor or date not found"}`},
		{name: "ambiguous", err: joinWaitlist.ErrAmbiguousDoctor, wantStatus: http.StatusConflict, wantBody: `{"message":"Doctor name matches more than one doctor"}`},
		{name: "internal", err: joinWaitlist.ErrInternal, wantStatus: http.StatusInternalServerError, wantBody: `{"message":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *joinWaitlist.Request) bool {
				return req.DoctorName == "Dr. X" && req.Patient.Name == "P"
			})).Return(tt.resp, tt.err)

			r := httptest.NewRequest(http.MethodPost, "/join-waiting-list", strings.NewReader(validBody))
			w := httptest.NewRecorder()

			NewHandler(uc, logger.Nop()).Handle(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			uc.AssertExpectations(t)
		})
	}
}
