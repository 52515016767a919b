package grpc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/workbank/loan-service/internal/domain/valueobject"
)

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		kind valueobject.ErrorKind
		want codes.Code
	}{
		{valueobject.KindCustomerNotFound, codes.NotFound},
		{valueobject.KindLoanNotFound, codes.NotFound},
		{valueobject.KindInstallmentCountInvalid, codes.InvalidArgument},
		{valueobject.KindInterestRateOutOfRange, codes.InvalidArgument},
		{valueobject.KindInvalidPaymentAmount, codes.InvalidArgument},
		{valueobject.KindCreditLimitExceeded, codes.FailedPrecondition},
		{valueobject.KindLedgerInconsistent, codes.Internal},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			err := statusFromError(valueobject.NewDomainError(tc.kind, "boom"))
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tc.want, st.Code())
			assert.Contains(t, st.Message(), string(tc.kind))
		})
	}

	t.Run("wrapped domain errors keep their kind", func(t *testing.T) {
		err := statusFromError(fmt.Errorf("find loan: %w",
			valueobject.NewDomainError(valueobject.KindLoanNotFound, "loan not found")))
		st, _ := status.FromError(err)
		assert.Equal(t, codes.NotFound, st.Code())
	})

	t.Run("unclassified errors are internal without detail leakage", func(t *testing.T) {
		err := statusFromError(fmt.Errorf("pq: connection refused"))
		st, _ := status.FromError(err)
		assert.Equal(t, codes.Internal, st.Code())
		assert.NotContains(t, st.Message(), "connection refused")
	})
}

func TestParsePositiveDecimal(t *testing.T) {
	t.Run("accepts positive decimals", func(t *testing.T) {
		d, err := parsePositiveDecimal("2000.50", "amount")
		require.NoError(t, err)
		assert.Equal(t, "2000.5", d.String())
	})

	for _, raw := range []string{"0", "-1", "abc", ""} {
		t.Run("rejects "+raw, func(t *testing.T) {
			_, err := parsePositiveDecimal(raw, "amount")
			require.Error(t, err)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, codes.InvalidArgument, st.Code())
		})
	}
}
