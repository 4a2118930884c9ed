package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/booktable/reservation-service/internal/domain"
)

func TestRequestTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      domain.BookingStatus
		actor   Actor
		allowed bool
	}{
		{
			name:    "customer cancels confirmed",
			from:    domain.StatusConfirmed,
			to:      domain.StatusCancelled,
			actor:   ActorCustomer,
			allowed: true,
		},
		{
			name:    "staff cancels confirmed",
			from:    domain.StatusConfirmed,
			to:      domain.StatusCancelled,
			actor:   ActorStaff,
			allowed: true,
		},
		{
			name:    "staff completes confirmed",
			from:    domain.StatusConfirmed,
			to:      domain.StatusCompleted,
			actor:   ActorStaff,
			allowed: true,
		},
		{
			name:    "customer cannot complete",
			from:    domain.StatusConfirmed,
			to:      domain.StatusCompleted,
			actor:   ActorCustomer,
			allowed: false,
		},
		{
			name:    "staff marks no-show",
			from:    domain.StatusConfirmed,
			to:      domain.StatusNoShow,
			actor:   ActorStaff,
			allowed: true,
		},
		{
			name:    "customer cannot mark no-show",
			from:    domain.StatusConfirmed,
			to:      domain.StatusNoShow,
			actor:   ActorCustomer,
			allowed: false,
		},
		{
			name:    "staff reverts completed",
			from:    domain.StatusCompleted,
			to:      domain.StatusConfirmed,
			actor:   ActorStaff,
			allowed: true,
		},
		{
			name:    "staff reverts no-show",
			from:    domain.StatusNoShow,
			to:      domain.StatusConfirmed,
			actor:   ActorStaff,
			allowed: true,
		},
		{
			name:    "customer cannot revert completed",
			from:    domain.StatusCompleted,
			to:      domain.StatusConfirmed,
			actor:   ActorCustomer,
			allowed: false,
		},
		{
			name:    "cancelled is terminal for staff",
			from:    domain.StatusCancelled,
			to:      domain.StatusConfirmed,
			actor:   ActorStaff,
			allowed: false,
		},
		{
			name:    "cancelled is terminal for customer",
			from:    domain.StatusCancelled,
			to:      domain.StatusConfirmed,
			actor:   ActorCustomer,
			allowed: false,
		},
		{
			name:    "completed cannot jump to no-show",
			from:    domain.StatusCompleted,
			to:      domain.StatusNoShow,
			actor:   ActorStaff,
			allowed: false,
		},
		{
			name:    "self transition rejected",
			from:    domain.StatusConfirmed,
			to:      domain.StatusConfirmed,
			actor:   ActorStaff,
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequestTransition(tt.from, tt.to, tt.actor)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestRequestTransition_UnknownActor(t *testing.T) {
	err := RequestTransition(domain.StatusConfirmed, domain.StatusCancelled, Actor("robot"))

	assert.ErrorIs(t, err, ErrUnknownActor)
}

func TestAllowedTransitions(t *testing.T) {
	assert.Equal(t,
		[]domain.BookingStatus{domain.StatusCancelled},
		AllowedTransitions(domain.StatusConfirmed, ActorCustomer),
	)
	assert.Equal(t,
		[]domain.BookingStatus{
			domain.StatusCompleted,
			domain.StatusCancelled,
			domain.StatusNoShow,
		},
		AllowedTransitions(domain.StatusConfirmed, ActorStaff),
	)
	assert.Empty(t, AllowedTransitions(domain.StatusCancelled, ActorStaff))
}
