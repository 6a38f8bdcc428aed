package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailability_NoActiveAppointments(t *testing.T) {
	repo := new(MockAppointmentRepo)
	repo.On("CountActive", context.Background(), "prop-1", "2026-09-01").Return(0, nil)

	svc := NewAvailabilityService(repo)
	assert.True(t, svc.IsAvailable(context.Background(), "prop-1", "2026-09-01"))
	repo.AssertExpectations(t)
}

func TestAvailability_SlotTaken(t *testing.T) {
	repo := new(MockAppointmentRepo)
	repo.On("CountActive", context.Background(), "prop-1", "2026-09-01").Return(1, nil)

	svc := NewAvailabilityService(repo)
	assert.False(t, svc.IsAvailable(context.Background(), "prop-1", "2026-09-01"))
}

func TestAvailability_FailsClosed(t *testing.T) {
	repo := new(MockAppointmentRepo)
	repo.On("CountActive", context.Background(), "prop-1", "2026-09-01").Return(0, errors.New("store down"))

	svc := NewAvailabilityService(repo)
	assert.False(t, svc.IsAvailable(context.Background(), "prop-1", "2026-09-01"),
		"a storage failure must report unavailable")
}
