package sale

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a discount rule scoped by purchasables, categories, user groups and
// an optional time window.
type Sale struct {
	id              uuid.UUID
	name            string
	description     string
	dateFrom        *time.Time
	dateTo          *time.Time
	discount        Discount
	allGroups       bool
	allCategories   bool
	allPurchasables bool
	enabled         bool
	// relMu guards the three id-sets; cached sales are refreshed in place
	// while matchers read them.
	relMu          sync.RWMutex
	purchasableIDs IDSet
	categoryIDs    IDSet
	userGroupIDs   IDSet
	errors         ValidationErrors
	createdAt      time.Time
	updatedAt      time.Time
}

// Params carries caller-supplied scalar fields. ID is uuid.Nil for a new sale.
type Params struct {
	ID             uuid.UUID
	Name           string
	Description    string
	DateFrom       *time.Time
	DateTo         *time.Time
	DiscountType   DiscountType
	DiscountAmount decimal.Decimal
	Enabled        bool
}

// Scope holds the three association flags and sets as persisted.
type Scope struct {
	AllGroups       bool
	AllCategories   bool
	AllPurchasables bool
	PurchasableIDs  []uuid.UUID
	CategoryIDs     []uuid.UUID
	UserGroupIDs    []uuid.UUID
}

func New(p Params) *Sale {
	return &Sale{
		id:              p.ID,
		name:            p.Name,
		description:     p.Description,
		dateFrom:        p.DateFrom,
		dateTo:          p.DateTo,
		discount:        NewDiscount(p.DiscountType, p.DiscountAmount),
		enabled:         p.Enabled,
		allGroups:       true,
		allCategories:   true,
		allPurchasables: true,
		purchasableIDs:  NewIDSet(),
		categoryIDs:     NewIDSet(),
		userGroupIDs:    NewIDSet(),
	}
}

func Reconstruct(p Params, scope Scope, createdAt, updatedAt time.Time) *Sale {
	s := New(p)
	s.allGroups = scope.AllGroups
	s.allCategories = scope.AllCategories
	s.allPurchasables = scope.AllPurchasables
	s.ReplaceRelations(scope.PurchasableIDs, scope.CategoryIDs, scope.UserGroupIDs)
	s.createdAt = createdAt
	s.updatedAt = updatedAt
	return s
}

// ApplyScope sets the id-sets and derives each all* flag from emptiness of its set.
func (s *Sale) ApplyScope(groupIDs, categoryIDs, purchasableIDs []uuid.UUID) {
	s.allGroups = len(groupIDs) == 0
	s.allCategories = len(categoryIDs) == 0
	s.allPurchasables = len(purchasableIDs) == 0
	s.ReplaceRelations(purchasableIDs, categoryIDs, groupIDs)
}

// ReplaceRelations overwrites the three id-sets in place. Flags are untouched.
func (s *Sale) ReplaceRelations(purchasableIDs, categoryIDs, userGroupIDs []uuid.UUID) {
	purchasables := NewIDSet(purchasableIDs...)
	categories := NewIDSet(categoryIDs...)
	groups := NewIDSet(userGroupIDs...)

	s.relMu.Lock()
	defer s.relMu.Unlock()
	s.purchasableIDs = purchasables
	s.categoryIDs = categories
	s.userGroupIDs = groups
}

// AttachRelation adds one id to the set named by rel. Unknown relations are ignored.
func (s *Sale) AttachRelation(rel Relation, id uuid.UUID) {
	s.relMu.Lock()
	defer s.relMu.Unlock()
	switch rel {
	case RelationPurchasable:
		s.purchasableIDs.Add(id)
	case RelationCategory:
		s.categoryIDs.Add(id)
	case RelationUserGroup:
		s.userGroupIDs.Add(id)
	}
}

// RelationIDs returns the ids held for rel in insertion order.
func (s *Sale) RelationIDs(rel Relation) []uuid.UUID {
	s.relMu.RLock()
	defer s.relMu.RUnlock()
	switch rel {
	case RelationPurchasable:
		return s.purchasableIDs.Values()
	case RelationCategory:
		return s.categoryIDs.Values()
	case RelationUserGroup:
		return s.userGroupIDs.Values()
	default:
		return nil
	}
}

// AssignID records the identity issued by storage for a new sale.
func (s *Sale) AssignID(id uuid.UUID) {
	if s.id == uuid.Nil {
		s.id = id
	}
}

func (s *Sale) CalculateTakeoff(price decimal.Decimal) decimal.Decimal {
	return s.discount.Takeoff(price)
}

// IsActiveAt applies the strict window: dateFrom < ref < dateTo.
func (s *Sale) IsActiveAt(ref time.Time) bool {
	if s.dateFrom != nil && !s.dateFrom.Before(ref) {
		return false
	}
	if s.dateTo != nil && !s.dateTo.After(ref) {
		return false
	}
	return true
}

func (s *Sale) ID() uuid.UUID         { return s.id }
func (s *Sale) Name() string          { return s.name }
func (s *Sale) Description() string   { return s.description }
func (s *Sale) DateFrom() *time.Time  { return s.dateFrom }
func (s *Sale) DateTo() *time.Time    { return s.dateTo }
func (s *Sale) Discount() Discount    { return s.discount }
func (s *Sale) AllGroups() bool       { return s.allGroups }
func (s *Sale) AllCategories() bool   { return s.allCategories }
func (s *Sale) AllPurchasables() bool { return s.allPurchasables }
func (s *Sale) Enabled() bool         { return s.enabled }

func (s *Sale) PurchasableIDs() IDSet {
	s.relMu.RLock()
	defer s.relMu.RUnlock()
	return s.purchasableIDs
}

func (s *Sale) CategoryIDs() IDSet {
	s.relMu.RLock()
	defer s.relMu.RUnlock()
	return s.categoryIDs
}

func (s *Sale) UserGroupIDs() IDSet {
	s.relMu.RLock()
	defer s.relMu.RUnlock()
	return s.userGroupIDs
}

func (s *Sale) Errors() ValidationErrors { return s.errors }
func (s *Sale) HasErrors() bool          { return len(s.errors) > 0 }
func (s *Sale) CreatedAt() time.Time     { return s.createdAt }
func (s *Sale) UpdatedAt() time.Time     { return s.updatedAt }
