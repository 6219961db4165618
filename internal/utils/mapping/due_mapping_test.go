package mapping

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

func TestToModelDueRecord_GeneratedBillMapsAbsentFieldsToNull(t *testing.T) {
	now := time.Now().UTC()
	bill := domain.DueRecord{
		DueID:      uuid.NewString(),
		Date:       now,
		Direction:  domain.DirectionMasuk,
		Kind:       domain.KindIuran,
		Category:   "Iuran Bulanan",
		Period:     &domain.Period{Month: 8, Year: 2026},
		Amount:     decimal.NewFromInt(50000),
		ResidentID: uuid.NewString(),
		Status:     domain.StatusBill,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     uuid.NewString(),
			LastUpdatedAt: now,
			LastUpdatedBy: uuid.NewString(),
		},
	}

	m := ToModelDueRecord(bill)

	// A bill has no payment method, proof or rejection reason yet; those
	// columns receive SQL NULL, not an empty string.
	assert.False(t, m.Method.Valid, "an unpaid bill has no payment method")
	assert.False(t, m.ProofURL.Valid, "an unpaid bill has no proof")
	assert.False(t, m.RejectionReason.Valid, "a fresh bill has no rejection reason")

	assert.True(t, m.ResidentID.Valid)
	assert.True(t, m.PeriodMonth.Valid)
	assert.True(t, m.PeriodYear.Valid)
	assert.Equal(t, int32(8), m.PeriodMonth.Int32)
	assert.Equal(t, int32(2026), m.PeriodYear.Int32)
}

func TestToModelDueRecord_SubmittedPaymentRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	submitted := domain.DueRecord{
		DueID:      uuid.NewString(),
		Date:       now,
		Direction:  domain.DirectionMasuk,
		Kind:       domain.KindIuran,
		Category:   "Iuran Bulanan",
		Period:     &domain.Period{Month: 8, Year: 2026},
		Amount:     decimal.NewFromInt(50000),
		ResidentID: uuid.NewString(),
		Method:     domain.MethodTransfer,
		Status:     domain.StatusPendingVerification,
		ProofURL:   "https://example.com/bukti.jpg",
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     uuid.NewString(),
			LastUpdatedAt: now,
			LastUpdatedBy: uuid.NewString(),
		},
	}

	m := ToModelDueRecord(submitted)
	assert.True(t, m.Method.Valid)
	assert.True(t, m.ProofURL.Valid)

	back := ToDomainDueRecord(m)
	assert.Equal(t, submitted.Method, back.Method)
	assert.Equal(t, submitted.ProofURL, back.ProofURL)
	assert.Equal(t, submitted.ResidentID, back.ResidentID)
	require.NotNil(t, back.Period)
	assert.Equal(t, *submitted.Period, *back.Period)
	assert.Empty(t, back.RejectionReason)
}

// The mapper emits SQL NULL for absent workflow fields, so the schema must not
// declare those columns NOT NULL. A mismatch here fails every bill insert and
// every approve/reject update with a not-null violation.
func TestSchemaAllowsNullWorkflowColumns(t *testing.T) {
	sqlBytes, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "000001_init_schema.up.sql"))
	require.NoError(t, err, "Failed to read init migration")
	lines := strings.Split(string(sqlBytes), "\n")

	nullableColumns := []string{"method", "proof_url", "rejection_reason", "refresh_token_hash"}
	for _, column := range nullableColumns {
		found := false
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "--") || !strings.HasPrefix(trimmed, column+" ") {
				continue
			}
			found = true
			assert.NotContains(t, trimmed, "NOT NULL",
				"column %s receives NULL from the mapping layer and must be nullable", column)
		}
		assert.True(t, found, "column %s not found in init migration", column)
	}
}
