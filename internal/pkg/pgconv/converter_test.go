//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"sales-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, in := range []string{"100.00", "-0.10", "0", "12345.6789"} {
		t.Run(in, func(t *testing.T) {
			d := decimal.RequireFromString(in)
			out, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(out), "expected %s got %s", d, out)
		})
	}
}

func TestDecimalFromNumeric_Invalid(t *testing.T) {
	cases := map[string]pgtype.Numeric{
		"null":     {Valid: false},
		"nan":      {NaN: true, Valid: true},
		"infinity": {Int: big.NewInt(0), InfinityModifier: pgtype.Infinity, Valid: true},
	}
	for name, n := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := pgconv.DecimalFromNumeric(n)
			require.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
		})
	}
}

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
	assert.False(t, pgconv.TimePtrToPgtype(nil).Valid)

	now := time.Now()
	got := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now))
	require.NotNil(t, got)
	assert.True(t, now.Equal(*got))

	id := uuid.New()
	assert.Equal(t, &id, pgconv.UUIDPtrFromPgtype(pgconv.UUIDToPgtype(id)))
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))

	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
}
