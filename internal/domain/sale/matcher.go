package sale

import (
	"context"
	"time"

	"sales-engine/internal/pkg/clock"
	"sales-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// MatchEvent is handed to every MatchHook after the built-in checks pass.
type MatchEvent struct {
	Sale        *Sale
	Purchasable Purchasable
	Order       Order
}

// MatchHook vetoes a match by returning false.
type MatchHook func(ctx context.Context, ev MatchEvent) (bool, error)

type MatchHooks []MatchHook

// MatchContext carries the optional order and the current user resolved at
// the request boundary.
type MatchContext struct {
	Order Order
	User  *uuid.UUID
}

type Matcher struct {
	categories CategoryResolver
	groups     UserGroupResolver
	clock      clock.Clock
	hooks      MatchHooks
}

func NewMatcher(categories CategoryResolver, groups UserGroupResolver, clk clock.Clock, hooks MatchHooks) *Matcher {
	return &Matcher{
		categories: categories,
		groups:     groups,
		clock:      clk,
		hooks:      hooks,
	}
}

// Matches reports whether s applies to p. Scope and window mismatches are
// plain false; only collaborator failures produce an error.
func (m *Matcher) Matches(ctx context.Context, p Purchasable, s *Sale, mc MatchContext) (bool, error) {
	if !p.IsPromotable() {
		return false, nil
	}

	if !s.AllPurchasables() && !s.PurchasableIDs().Contains(p.PurchasableID()) {
		return false, nil
	}

	if !s.AllCategories() {
		ids, err := m.categories.CategoryIDs(ctx, p.PromotionRelationSource())
		if err != nil {
			return false, errs.Wrapf(err, "resolve categories for %s", p.PromotionRelationSource())
		}
		if !s.CategoryIDs().Intersects(ids) {
			return false, nil
		}
	}

	if !s.AllGroups() {
		userID := resolveUser(mc)
		if userID == nil {
			return false, nil
		}
		ids, err := m.groups.GroupIDs(ctx, *userID)
		if err != nil {
			return false, errs.Wrapf(err, "resolve user groups for %s", *userID)
		}
		if !s.UserGroupIDs().Intersects(ids) {
			return false, nil
		}
	}

	if !s.IsActiveAt(m.referenceInstant(mc.Order)) {
		return false, nil
	}

	ev := MatchEvent{Sale: s, Purchasable: p, Order: mc.Order}
	for _, hook := range m.hooks {
		ok, err := hook(ctx, ev)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// referenceInstant is the order date for completed orders. A completed order
// without a date falls back to the clock.
func (m *Matcher) referenceInstant(order Order) time.Time {
	if order != nil && order.IsCompleted() {
		if ordered := order.DateOrdered(); !ordered.IsZero() {
			return ordered
		}
	}
	return m.clock.Now()
}

// resolveUser returns the order's customer when an order is supplied, even a
// guest one, and the current user otherwise.
func resolveUser(mc MatchContext) *uuid.UUID {
	if mc.Order != nil {
		return mc.Order.UserID()
	}
	return mc.User
}
