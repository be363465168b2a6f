package kernel_test

import (
	"testing"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipient(t *testing.T) {
	t.Run("valid_recipient", func(t *testing.T) {
		recipient, err := kernel.NewRecipient("Jane Doe", "1 Main St", "jane@example.com", "0123456789")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", recipient.Name())
		assert.Equal(t, "1 Main St", recipient.Address())
		assert.Equal(t, "jane@example.com", recipient.Email())
		assert.Equal(t, "0123456789", recipient.Phone())
		require.NoError(t, recipient.Validate())
	})

	t.Run("missing_fields_are_rejected", func(t *testing.T) {
		testCases := []struct {
			name                          string
			rName, address, email, phone  string
			expectedParam                 string
		}{
			{name: "missing name", address: "1 Main St", email: "jane@example.com", phone: "0123456789", expectedParam: "recipient.name"},
			{name: "missing address", rName: "Jane Doe", email: "jane@example.com", phone: "0123456789", expectedParam: "recipient.address"},
			{name: "missing email", rName: "Jane Doe", address: "1 Main St", phone: "0123456789", expectedParam: "recipient.email"},
			{name: "missing phone", rName: "Jane Doe", address: "1 Main St", email: "jane@example.com", expectedParam: "recipient.phone"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewRecipient(tc.rName, tc.address, tc.email, tc.phone)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
				assert.Contains(t, err.Error(), tc.expectedParam)
			})
		}
	})
}

func TestRecipient_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var recipient kernel.Recipient

		err := recipient.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrRecipientIsNotConstructed, err)
	})
}
