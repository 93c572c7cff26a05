package model

import "testing"

func TestMovementStatusTransitions(t *testing.T) {
	tests := []struct {
		from MovementStatus
		to   MovementStatus
		want bool
	}{
		{MovementPending, MovementApproved, true},
		{MovementPending, MovementCancelled, true},
		{MovementApproved, MovementCompleted, true},

		{MovementPending, MovementCompleted, false},
		{MovementApproved, MovementCancelled, false},
		{MovementCompleted, MovementPending, false},
		{MovementCompleted, MovementCancelled, false},
		{MovementCancelled, MovementApproved, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
