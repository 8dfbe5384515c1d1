package invoice_test

import (
	"fmt"
	"testing"

	"dispatch/internal/core/domain/model/invoice"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(invoice.Unknown))
		assert.Equal(t, 1, int(invoice.Draft))
		assert.Equal(t, 2, int(invoice.Reviewed))
		assert.Equal(t, 3, int(invoice.Finalized))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []invoice.Status{invoice.Draft, invoice.Reviewed, invoice.Finalized} {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []invoice.Status{invoice.Unknown, invoice.Status(-1), invoice.Status(4)} {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "status is invalid")
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   invoice.Status
		expected string
	}{
		{invoice.Draft, "draft"},
		{invoice.Reviewed, "reviewed"},
		{invoice.Finalized, "finalized"},
		{invoice.Unknown, "Unknown"},
		{invoice.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Review(t *testing.T) {
	t.Run("should transition Draft to Reviewed", func(t *testing.T) {
		next, err := invoice.Draft.Review()

		require.NoError(t, err)
		assert.Equal(t, invoice.Reviewed, next)
	})

	t.Run("should reject review from any other status", func(t *testing.T) {
		for _, status := range []invoice.Status{invoice.Unknown, invoice.Reviewed, invoice.Finalized} {
			_, err := status.Review()

			require.Error(t, err)
			require.ErrorIs(t, err, invoice.ErrInvalidStateTransition)
		}
	})
}

func TestStatus_Finalize(t *testing.T) {
	t.Run("should transition Reviewed to Finalized", func(t *testing.T) {
		next, err := invoice.Reviewed.Finalize()

		require.NoError(t, err)
		assert.Equal(t, invoice.Finalized, next)
		assert.True(t, next.IsFinal())
	})

	t.Run("should reject finalize from Draft", func(t *testing.T) {
		_, err := invoice.Draft.Finalize()

		require.Error(t, err)
		require.ErrorIs(t, err, invoice.ErrInvalidStateTransition)
	})

	t.Run("should reject finalize from Finalized", func(t *testing.T) {
		_, err := invoice.Finalized.Finalize()

		require.Error(t, err)
		require.ErrorIs(t, err, invoice.ErrInvalidStateTransition)
	})
}
