package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

func TestDueStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.DueStatus
		to   domain.DueStatus
		want bool
	}{
		{name: "bill can be submitted", from: domain.StatusBill, to: domain.StatusPendingVerification, want: true},
		{name: "bill cannot jump straight to paid", from: domain.StatusBill, to: domain.StatusPaid, want: false},
		{name: "bill cannot re-enter bill", from: domain.StatusBill, to: domain.StatusBill, want: false},
		{name: "pending can be approved", from: domain.StatusPendingVerification, to: domain.StatusPaid, want: true},
		{name: "pending can be rejected back to bill", from: domain.StatusPendingVerification, to: domain.StatusBill, want: true},
		{name: "pending cannot stay pending", from: domain.StatusPendingVerification, to: domain.StatusPendingVerification, want: false},
		{name: "paid is terminal (to bill)", from: domain.StatusPaid, to: domain.StatusBill, want: false},
		{name: "paid is terminal (to pending)", from: domain.StatusPaid, to: domain.StatusPendingVerification, want: false},
		{name: "unknown status allows nothing", from: domain.DueStatus("BOGUS"), to: domain.StatusPaid, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.CanTransitionTo(tt.to)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriod_Valid(t *testing.T) {
	assert.True(t, domain.Period{Month: 1, Year: 2026}.Valid())
	assert.True(t, domain.Period{Month: 12, Year: 2026}.Valid())
	assert.False(t, domain.Period{Month: 0, Year: 2026}.Valid())
	assert.False(t, domain.Period{Month: 13, Year: 2026}.Valid())
	assert.False(t, domain.Period{Month: 6, Year: 1999}.Valid())
}
