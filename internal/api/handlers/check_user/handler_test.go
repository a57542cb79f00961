package check_user

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Narayana2527/health-safari-apis/internal/service/availability"
	"github.com/Narayana2527/health-safari-apis/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UserExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		exists     bool
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "exists", exists: true, wantStatus: http.StatusOK, wantBody: `{"exists":true}`},
		{name: "unknown", wantStatus: http.StatusOK, wantBody: `{"exists":false}`},
		{name: "blank email", err: availability.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantBody: `{"message":"Email is required"}`},
		{name: "storage failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantBody: `{"exists":false,"message":"Server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UserExists", mock.Anything, "a@x.io").Return(tt.exists, tt.err)

			r := httptest.NewRequest(http.MethodPost, "/check-user", strings.NewReader(`{"email":"a@x.io"}`))
			w := httptest.NewRecorder()

			NewHandler(svc, logger.Nop()).Handle(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
