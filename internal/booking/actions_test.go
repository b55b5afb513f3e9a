package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"emprius-backend/internal/domain"
)

func TestActions(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)
	ended := now.Add(-24 * time.Hour).Unix()
	notEnded := now.Add(48 * time.Hour).Unix()

	tests := []struct {
		name    string
		booking domain.Booking
		role    Role
		want    []Action
	}{
		{
			name:    "pending request",
			booking: domain.Booking{Status: domain.BookingStatusPending},
			role:    RoleRequest,
			want:    []Action{{Kind: ActionApprove}, {Kind: ActionDeny}},
		},
		{
			name:    "pending petition",
			booking: domain.Booking{Status: domain.BookingStatusPending},
			role:    RolePetition,
			want:    []Action{{Kind: ActionCancel}},
		},
		{
			name:    "accepted request after end date",
			booking: domain.Booking{Status: domain.BookingStatusAccepted, EndDate: ended},
			role:    RoleRequest,
			want:    []Action{{Kind: ActionReturn, RequiresConfirmation: true}},
		},
		{
			name:    "accepted request before end date warns",
			booking: domain.Booking{Status: domain.BookingStatusAccepted, EndDate: notEnded},
			role:    RoleRequest,
			want:    []Action{{Kind: ActionReturn, RequiresConfirmation: true, Warning: WarningLoanNotEnded}},
		},
		{
			name:    "accepted petition",
			booking: domain.Booking{Status: domain.BookingStatusAccepted, EndDate: ended},
			role:    RolePetition,
		},
		{
			name:    "returned not rated",
			booking: domain.Booking{Status: domain.BookingStatusReturned},
			role:    RolePetition,
			want:    []Action{{Kind: ActionRate}},
		},
		{
			name:    "returned already rated",
			booking: domain.Booking{Status: domain.BookingStatusReturned, IsRated: true},
			role:    RoleRequest,
			want:    []Action{{Kind: ActionRate, Disabled: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Actions(&tt.booking, tt.role, now))
		})
	}
}

func TestActions_NoneForOtherCombinations(t *testing.T) {
	now := time.Now()
	covered := map[domain.BookingStatus]map[Role]bool{
		domain.BookingStatusPending:  {RoleRequest: true, RolePetition: true},
		domain.BookingStatusAccepted: {RoleRequest: true},
		domain.BookingStatusReturned: {RoleRequest: true, RolePetition: true},
	}

	for _, st := range domain.AllBookingStatuses {
		for _, role := range []Role{RoleRequest, RolePetition, Role("stranger")} {
			b := domain.Booking{Status: st}
			got := Actions(&b, role, now)
			if covered[st][role] {
				assert.NotEmpty(t, got, "%s/%s", st, role)
			} else {
				assert.Empty(t, got, "%s/%s", st, role)
			}
		}
	}
}

func TestRoleFor(t *testing.T) {
	b := domain.Booking{FromUserID: 1, ToUserID: 2}

	role, ok := RoleFor(&b, 2)
	assert.True(t, ok)
	assert.Equal(t, RoleRequest, role)

	role, ok = RoleFor(&b, 1)
	assert.True(t, ok)
	assert.Equal(t, RolePetition, role)

	_, ok = RoleFor(&b, 3)
	assert.False(t, ok)
}
