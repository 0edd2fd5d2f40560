package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "oficinas/internal/errors"
	"oficinas/internal/model"
)

func TestEnrollmentService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockEnrollmentRepository)
		wantErr   error
	}{
		{
			name: "enrolls a user once",
			setupMock: func(repo *MockEnrollmentRepository) {
				repo.On("ExistsForUserAndWorkshop", mock.Anything, uint(1), uint(2)).
					Return(false, nil)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Enrollment) bool {
					return e.UserID == 1 && e.WorkshopID == 2
				})).Return(nil)
			},
		},
		{
			name: "second enrollment for the same pair is a duplicate",
			setupMock: func(repo *MockEnrollmentRepository) {
				repo.On("ExistsForUserAndWorkshop", mock.Anything, uint(1), uint(2)).
					Return(true, nil)
			},
			wantErr: apperrors.ErrDuplicateEnrollment,
		},
		{
			name: "a concurrent duplicate caught by the unique index maps to the same error",
			setupMock: func(repo *MockEnrollmentRepository) {
				repo.On("ExistsForUserAndWorkshop", mock.Anything, uint(1), uint(2)).
					Return(false, nil)
				repo.On("Create", mock.Anything, mock.Anything).
					Return(gorm.ErrDuplicatedKey)
			},
			wantErr: apperrors.ErrDuplicateEnrollment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockEnrollmentRepository)
			tt.setupMock(repo)

			svc := NewEnrollmentService(repo)
			enrollment, err := svc.Create(context.Background(), 1, 2)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, enrollment)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(1), enrollment.UserID)
				assert.Equal(t, uint(2), enrollment.WorkshopID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestEnrollmentService_Cancel(t *testing.T) {
	t.Run("cancelling a missing enrollment reports not found", func(t *testing.T) {
		repo := new(MockEnrollmentRepository)
		repo.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

		svc := NewEnrollmentService(repo)
		assert.ErrorIs(t, svc.Cancel(context.Background(), 99), apperrors.ErrEnrollmentNotFound)
	})

	t.Run("cancelling deletes exactly the given row", func(t *testing.T) {
		repo := new(MockEnrollmentRepository)
		repo.On("Delete", mock.Anything, uint(7)).Return(nil)

		svc := NewEnrollmentService(repo)
		assert.NoError(t, svc.Cancel(context.Background(), 7))
		repo.AssertNumberOfCalls(t, "Delete", 1)
	})
}

func TestEnrollmentService_ListForUser(t *testing.T) {
	repo := new(MockEnrollmentRepository)
	repo.On("ListForUser", mock.Anything, uint(1)).Return([]model.UserEnrollment{
		{ID: 10, UserID: 1, WorkshopID: 2, Title: "Intro"},
	}, nil)

	svc := NewEnrollmentService(repo)
	rows, err := svc.ListForUser(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Intro", rows[0].Title)
}
