package join_waitlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
	"github.com/Narayana2527/health-safari-apis/internal/infra/storage/document"
	"github.com/Narayana2527/health-safari-apis/pkg/logger"
	"github.com/Narayana2527/health-safari-apis/pkg/txmanager"
)

type failingSaveRepository struct {
	*document.MemoryRepository
}

func (r failingSaveRepository) Save(context.Context, *domain.Document) error {
	return errors.New("disk full")
}

func campDocument() *domain.Document {
	return &domain.Document{Departments: []domain.Department{{
		Name: "Cardiology",
		Doctors: []domain.Doctor{{
			Name: "Dr. X",
			Slots: []domain.DateSlot{{
				Date:  "2024-05-01",
				Times: []domain.TimeSlot{domain.BookedSlot("10:00", domain.PatientInfo{Name: "A"})},
			}},
		}},
	}}}
}

func patient(name, email string) domain.PatientInfo {
	return domain.PatientInfo{
		Name:      name,
		Email:     email,
		Mobile:    "9000000001",
		Treatment: "checkup",
		Message:   "any time",
	}
}

func newTestUseCase(t *testing.T) (*UseCase, *document.MemoryRepository) {
	t.Helper()

	repo, err := document.NewMemoryRepository(campDocument())
	require.NoError(t, err)
	return NewUseCase(repo, txmanager.NewTransactionManager(), nil, logger.Nop()), repo
}

func TestExecute_AppendsInCallOrder(t *testing.T) {
	uc, repo := newTestUseCase(t)
	ctx := context.Background()

	first, err := uc.Execute(ctx, &Request{DoctorName: "Dr. X", Date: "2024-05-01", Patient: patient("P", "p@x.io")})
	require.NoError(t, err)
	assert.Equal(t, "Added to waiting list for Dr. X on 2024-05-01", first.Message)
	assert.Equal(t, 1, first.Position)

	second, err := uc.Execute(ctx, &Request{DoctorName: "Dr. X", Date: "2024-05-01", Patient: patient("Q", "q@x.io")})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Position)

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	waiting := doc.Departments[0].Doctors[0].Slots[0].Waiting
	require.Len(t, waiting, 2)
	assert.Equal(t, patient("P", "p@x.io"), waiting[0].Patient)
	assert.Equal(t, patient("Q", "q@x.io"), waiting[1].Patient)
}

func TestExecute_NoDedup(t *testing.T) {
	uc, repo := newTestUseCase(t)
	req := &Request{DoctorName: "Dr. X", Date: "2024-05-01", Patient: patient("P", "p@x.io")}

	for i := 0; i < 3; i++ {
		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
	}

	doc, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, doc.Departments[0].Doctors[0].Slots[0].Waiting, 3)
}

func TestExecute_Errors(t *testing.T) {
	uc, repo := newTestUseCase(t)
	before := repo.Snapshot()

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing patient field",
			req:     &Request{DoctorName: "Dr. X", Date: "2024-05-01", Patient: domain.PatientInfo{Name: "P"}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			req:     &Request{DoctorName: "Dr. X", Patient: patient("P", "p@x.io")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown doctor",
			req:     &Request{DoctorName: "Dr. Z", Date: "2024-05-01", Patient: patient("P", "p@x.io")},
			wantErr: ErrDoctorOrDateNotFound,
		},
		{
			name:    "unknown date",
			req:     &Request{DoctorName: "Dr. X", Date: "2024-06-01", Patient: patient("P", "p@x.io")},
			wantErr: ErrDoctorOrDateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, before, repo.Snapshot())
}

func TestExecute_SaveFailure(t *testing.T) {
	mem, err := document.NewMemoryRepository(campDocument())
	require.NoError(t, err)

	uc := NewUseCase(failingSaveRepository{mem}, txmanager.NewTransactionManager(), nil, logger.Nop())

	_, err = uc.Execute(context.Background(), &Request{DoctorName: "Dr. X", Date: "2024-05-01", Patient: patient("P", "p@x.io")})
	require.ErrorIs(t, err, ErrInternal)

	doc, err := mem.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Departments[0].Doctors[0].Slots[0].Waiting)
}
