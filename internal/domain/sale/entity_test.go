//go:build unit

package sale_test

import (
	"strings"
	"testing"
	"time"

	"sales-engine/internal/domain/sale"
	"sales-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSale_CalculateTakeoff(t *testing.T) {
	tests := []struct {
		name   string
		typ    sale.DiscountType
		amount string
		price  string
		want   string
	}{
		{name: "ten percent of 100", typ: sale.DiscountTypePercentage, amount: "-0.10", price: "100", want: "-10"},
		{name: "full percentage", typ: sale.DiscountTypePercentage, amount: "-1", price: "42.50", want: "-42.5"},
		{name: "flat ignores price", typ: sale.DiscountTypeFlat, amount: "-20", price: "100", want: "-20"},
		{name: "flat larger than price", typ: sale.DiscountTypeFlat, amount: "-150", price: "100", want: "-150"},
		{name: "positive percentage clamps to zero", typ: sale.DiscountTypePercentage, amount: "0.25", price: "100", want: "0"},
		{name: "positive flat clamps to zero", typ: sale.DiscountTypeFlat, amount: "5", price: "100", want: "0"},
		{name: "unknown type yields zero", typ: sale.DiscountType("bogus"), amount: "-5", price: "100", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
				b.DiscountType = tt.typ
				b.DiscountAmount = dec(tt.amount)
			}).BuildDomain()

			got := s.CalculateTakeoff(dec(tt.price))

			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
			assert.False(t, got.IsPositive())
		})
	}
}

func TestSale_ApplyScope(t *testing.T) {
	t.Run("new sale applies to everything", func(t *testing.T) {
		s := sale.New(sale.Params{Name: "x", DiscountType: sale.DiscountTypeFlat})

		assert.Equal(t, uuid.Nil, s.ID())
		assert.True(t, s.AllGroups())
		assert.True(t, s.AllCategories())
		assert.True(t, s.AllPurchasables())
		assert.True(t, s.PurchasableIDs().IsEmpty())
	})

	t.Run("flags follow emptiness of each set", func(t *testing.T) {
		g, c := uuid.New(), uuid.New()
		s := sale.New(sale.Params{Name: "x", DiscountType: sale.DiscountTypeFlat})

		s.ApplyScope([]uuid.UUID{g}, []uuid.UUID{c}, nil)

		assert.False(t, s.AllGroups())
		assert.False(t, s.AllCategories())
		assert.True(t, s.AllPurchasables())
		assert.Equal(t, []uuid.UUID{g}, s.UserGroupIDs().Values())
		assert.Equal(t, []uuid.UUID{c}, s.CategoryIDs().Values())
		assert.True(t, s.PurchasableIDs().IsEmpty())
	})

	t.Run("duplicate ids collapse", func(t *testing.T) {
		p := uuid.New()
		s := sale.New(sale.Params{Name: "x", DiscountType: sale.DiscountTypeFlat})

		s.ApplyScope(nil, nil, []uuid.UUID{p, p, p})

		assert.Equal(t, 1, s.PurchasableIDs().Len())
	})

	t.Run("attach relation adds to the named set", func(t *testing.T) {
		p, c, g := uuid.New(), uuid.New(), uuid.New()
		s := sale.New(sale.Params{Name: "x", DiscountType: sale.DiscountTypeFlat})

		s.AttachRelation(sale.RelationPurchasable, p)
		s.AttachRelation(sale.RelationCategory, c)
		s.AttachRelation(sale.RelationUserGroup, g)
		s.AttachRelation(sale.Relation("unknown"), uuid.New())

		assert.Equal(t, []uuid.UUID{p}, s.RelationIDs(sale.RelationPurchasable))
		assert.Equal(t, []uuid.UUID{c}, s.RelationIDs(sale.RelationCategory))
		assert.Equal(t, []uuid.UUID{g}, s.RelationIDs(sale.RelationUserGroup))
		assert.True(t, s.AllPurchasables(), "attaching does not touch flags")
	})

	t.Run("assign id only once", func(t *testing.T) {
		first, second := uuid.New(), uuid.New()
		s := sale.New(sale.Params{Name: "x", DiscountType: sale.DiscountTypeFlat})

		s.AssignID(first)
		s.AssignID(second)

		assert.Equal(t, first, s.ID())
	})
}

func TestSale_IsActiveAt(t *testing.T) {
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	before := ref.Add(-time.Hour)
	after := ref.Add(time.Hour)

	tests := []struct {
		name string
		from *time.Time
		to   *time.Time
		want bool
	}{
		{name: "no window", want: true},
		{name: "inside window", from: &before, to: &after, want: true},
		{name: "not started yet", from: &after, want: false},
		{name: "already ended", to: &before, want: false},
		{name: "starts exactly at reference", from: &ref, want: false},
		{name: "ends exactly at reference", to: &ref, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
				b.DateFrom = tt.from
				b.DateTo = tt.to
			}).BuildDomain()

			assert.Equal(t, tt.want, s.IsActiveAt(ref))
		})
	}
}

func TestSale_Validate(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	tests := []struct {
		name    string
		mutate  func(*builder.SaleBuilder)
		field   string
		message string
	}{
		{name: "valid percentage"},
		{
			name:   "valid flat",
			mutate: func(b *builder.SaleBuilder) { b.DiscountType = sale.DiscountTypeFlat; b.DiscountAmount = dec("-20") },
		},
		{
			name:   "valid window",
			mutate: func(b *builder.SaleBuilder) { b.DateFrom = &from; b.DateTo = &to },
		},
		{
			name:    "blank name",
			mutate:  func(b *builder.SaleBuilder) { b.Name = "   " },
			field:   "name",
			message: "Name cannot be blank.",
		},
		{
			name:    "name too long",
			mutate:  func(b *builder.SaleBuilder) { b.Name = strings.Repeat("a", sale.MaxNameLength+1) },
			field:   "name",
			message: "Name is too long.",
		},
		{
			name:    "percentage below -1",
			mutate:  func(b *builder.SaleBuilder) { b.DiscountAmount = dec("-1.5") },
			field:   "discountAmount",
			message: "Percentage discount must be between -1 and 0.",
		},
		{
			name:    "positive percentage",
			mutate:  func(b *builder.SaleBuilder) { b.DiscountAmount = dec("0.1") },
			field:   "discountAmount",
			message: "Percentage discount must be between -1 and 0.",
		},
		{
			name:    "positive flat",
			mutate:  func(b *builder.SaleBuilder) { b.DiscountType = sale.DiscountTypeFlat; b.DiscountAmount = dec("3") },
			field:   "discountAmount",
			message: "Flat discount cannot be positive.",
		},
		{
			name:    "unknown type",
			mutate:  func(b *builder.SaleBuilder) { b.DiscountType = "bogus" },
			field:   "discountType",
			message: "Discount type is invalid.",
		},
		{
			name:    "end before start",
			mutate:  func(b *builder.SaleBuilder) { b.DateFrom = &to; b.DateTo = &from },
			field:   "dateTo",
			message: "End date must be after start date.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewSaleBuilder()
			if tt.mutate != nil {
				b.With(tt.mutate)
			}
			s := b.BuildDomain()

			ok := s.Validate()

			if tt.field == "" {
				assert.True(t, ok)
				assert.False(t, s.HasErrors())
				return
			}
			assert.False(t, ok)
			require.True(t, s.HasErrors())
			assert.Equal(t, []string{tt.message}, s.Errors().ForField(tt.field))
		})
	}

	t.Run("errors reset on revalidation", func(t *testing.T) {
		s := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) { b.Name = "" }).BuildDomain()
		require.False(t, s.Validate())

		s2 := builder.NewSaleBuilder().BuildDomain()
		s2.AddError("name", "stale")

		assert.True(t, s2.Validate())
		assert.Empty(t, s2.Errors())
	})
}
