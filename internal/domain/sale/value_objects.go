package sale

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidDiscountType = errors.New("invalid discount type")

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFlat       DiscountType = "flat"
)

func (t DiscountType) String() string {
	return string(t)
}

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountTypePercentage, DiscountTypeFlat:
		return true
	default:
		return false
	}
}

func ParseDiscountType(s string) (DiscountType, error) {
	t := DiscountType(s)
	if !t.IsValid() {
		return "", ErrInvalidDiscountType
	}
	return t, nil
}

// Discount pairs a type with a signed amount. Percentage amounts are fractions
// (-0.10 is ten percent off); flat amounts are in currency units.
type Discount struct {
	typ    DiscountType
	amount decimal.Decimal
}

func NewDiscount(typ DiscountType, amount decimal.Decimal) Discount {
	return Discount{typ: typ, amount: amount}
}

func (d Discount) Type() DiscountType      { return d.typ }
func (d Discount) Amount() decimal.Decimal { return d.amount }

func (d Discount) IsPercentage() bool {
	return d.typ == DiscountTypePercentage
}

// Takeoff returns the price delta for price. It never returns a positive value.
func (d Discount) Takeoff(price decimal.Decimal) decimal.Decimal {
	var takeoff decimal.Decimal
	switch d.typ {
	case DiscountTypePercentage:
		takeoff = d.amount.Mul(price)
	case DiscountTypeFlat:
		takeoff = d.amount
	default:
		return decimal.Zero
	}
	if takeoff.IsPositive() {
		return decimal.Zero
	}
	return takeoff
}

// IDSet is an insertion-ordered set of identifiers.
type IDSet struct {
	ids   []uuid.UUID
	index map[uuid.UUID]struct{}
}

func NewIDSet(ids ...uuid.UUID) IDSet {
	s := IDSet{index: make(map[uuid.UUID]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *IDSet) Add(id uuid.UUID) {
	if s.index == nil {
		s.index = make(map[uuid.UUID]struct{})
	}
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s IDSet) Contains(id uuid.UUID) bool {
	_, ok := s.index[id]
	return ok
}

// Intersects reports whether any of ids is a member of s.
func (s IDSet) Intersects(ids []uuid.UUID) bool {
	for _, id := range ids {
		if s.Contains(id) {
			return true
		}
	}
	return false
}

func (s IDSet) Len() int {
	return len(s.ids)
}

func (s IDSet) IsEmpty() bool {
	return len(s.ids) == 0
}

// Values returns a copy in insertion order.
func (s IDSet) Values() []uuid.UUID {
	out := make([]uuid.UUID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Relation names one of the three association sets of a sale.
type Relation string

const (
	RelationPurchasable Relation = "purchasable"
	RelationCategory    Relation = "category"
	RelationUserGroup   Relation = "user_group"
)

func (r Relation) IsValid() bool {
	switch r {
	case RelationPurchasable, RelationCategory, RelationUserGroup:
		return true
	default:
		return false
	}
}
