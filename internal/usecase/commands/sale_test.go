//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/infra"
	sqlc "sales-engine/internal/infra/sqlc/generated"
	"sales-engine/internal/pkg/errs"
	"sales-engine/internal/usecase/commands"
	"sales-engine/internal/usecase/shared"
	"sales-engine/tests/common/builder"
	sharedmock "sales-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type saleCommandsFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	repo      *sharedmock.MockSaleRepository
	publisher *sharedmock.MockSaleEventPublisher
	cmds      commands.SaleCommands
}

func newSaleCommandsFixture(t *testing.T) *saleCommandsFixture {
	ctrl := gomock.NewController(t)
	f := &saleCommandsFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		repo:      sharedmock.NewMockSaleRepository(ctrl),
		publisher: sharedmock.NewMockSaleEventPublisher(ctrl),
	}
	f.cmds = commands.NewSaleCommands(f.uow, f.publisher)

	var db sqlc.DBTX
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Sales().Return(f.repo).AnyTimes()
	f.tx.EXPECT().DB().Return(db).AnyTimes()
	return f
}

// =============================================================================
// Save Tests
// =============================================================================

func TestSaleCommands_Save_Create(t *testing.T) {
	ctx := context.Background()
	newID := uuid.New()
	groupID, categoryID := uuid.New(), uuid.New()
	purchasableIDs := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("success: persists sale and associations then publishes", func(t *testing.T) {
		f := newSaleCommandsFixture(t)
		s := builder.NewSaleBuilder().BuildDomain()

		gomock.InOrder(
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), s).Return(newID, nil),
			f.repo.EXPECT().ReplaceAssociations(gomock.Any(), gomock.Any(), newID, sale.RelationPurchasable, gomock.Len(2)).Return(nil),
			f.repo.EXPECT().ReplaceAssociations(gomock.Any(), gomock.Any(), newID, sale.RelationCategory, []uuid.UUID{categoryID}).Return(nil),
			f.repo.EXPECT().ReplaceAssociations(gomock.Any(), gomock.Any(), newID, sale.RelationUserGroup, []uuid.UUID{groupID}).Return(nil),
			f.publisher.EXPECT().SaleSaved(gomock.Any(), s, true).Return(nil),
		)

		ok, err := f.cmds.Save(ctx, s, []uuid.UUID{groupID}, []uuid.UUID{categoryID}, purchasableIDs)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, newID, s.ID())
		assert.False(t, s.AllGroups())
		assert.False(t, s.AllCategories())
		assert.False(t, s.AllPurchasables())
	})

	t.Run("success: empty id lists leave the sale unrestricted", func(t *testing.T) {
		f := newSaleCommandsFixture(t)
		s := builder.NewSaleBuilder().BuildDomain()

		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), s).Return(newID, nil)
		f.repo.EXPECT().ReplaceAssociations(gomock.Any(), gomock.Any(), newID, gomock.Any(), gomock.Len(0)).Return(nil).Times(3)
		f.publisher.EXPECT().SaleSaved(gomock.Any(), s, true).Return(nil)

		ok, err := f.cmds.Save(ctx, s, nil, nil, nil)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, s.AllGroups())
		assert.True(t, s.AllCategories())
		assert.True(t, s.AllPurchasables())
	})

	t.Run("success: publish failure does not fail the save", func(t *testing.T) {
		f := newSaleCommandsFixture(t)
		s := builder.NewSaleBuilder().BuildDomain()

		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), s).Return(newID, nil)
		f.repo.EXPECT().ReplaceAssociations(gomock.Any(), gomock.Any(), newID, gomock.Any(), gomock.Any()).Return(nil).Times(3)
		f.publisher.EXPECT().SaleSaved(gomock.Any(), s, true).Return(errors.New("broker unavailable"))

		ok, err := f.cmds.Save(ctx, s, nil, nil, nil)

		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestSaleCommands_Save_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success: locks the row and updates in place", func(t *testing.T) {
		f := newSaleCommandsFixture(t)
		s := builder.NewSaleBuilder().BuildPersisted()
		id := s.ID()

		gomock.InOrder(
			f.repo.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(true, nil),
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), s).Return(nil),
		)
		f.repo.EXPECT().ReplaceAssociations(gomock.Any(), gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil).Times(3)
		f.publisher.EXPECT().SaleSaved(gomock.Any(), s, false).Return(nil)

		ok, err := f.cmds.Save(ctx, s, nil, nil, nil)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, id, s.ID())
	})

	t.Run("error: missing sale is reported as not found", func(t *testing.T) {
		f := newSaleCommandsFixture(t)
		s := builder.NewSaleBuilder().BuildPersisted()

		f.repo.EXPECT().LockByID(gomock.Any(), gomock.Any(), s.ID()).Return(false, nil)

		ok, err := f.cmds.Save(ctx, s, nil, nil, nil)

		assert.False(t, ok)
		assert.ErrorIs(t, err, errs.ErrSaleNotFound)
	})
}

func TestSaleCommands_Save_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		build func(*builder.SaleBuilder)
		field string
	}{
		{
			name:  "blank name",
			build: func(b *builder.SaleBuilder) { b.Name = "   " },
			field: "name",
		},
		{
			name:  "percentage above zero",
			build: func(b *builder.SaleBuilder) { b.DiscountAmount = decimal.RequireFromString("0.5") },
			field: "discountAmount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSaleCommandsFixture(t)
			s := builder.NewSaleBuilder().With(tt.build).BuildDomain()

			ok, err := f.cmds.Save(ctx, s, nil, nil, nil)

			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, uuid.Nil, s.ID())
			assert.NotEmpty(t, s.Errors().ForField(tt.field))
		})
	}
}

func TestSaleCommands_Save_Rollback(t *testing.T) {
	ctx := context.Background()

	t.Run("error: association failure leaves the id unassigned and publishes nothing", func(t *testing.T) {
		f := newSaleCommandsFixture(t)
		s := builder.NewSaleBuilder().BuildDomain()
		unknown := uuid.New()
		assocErr := infra.WrapRepoErr("resolve purchasable type", errs.New("no rows"), infra.KindNotFound)

		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), s).Return(uuid.New(), nil)
		f.repo.EXPECT().ReplaceAssociations(gomock.Any(), gomock.Any(), gomock.Any(), sale.RelationPurchasable, []uuid.UUID{unknown}).
			Return(assocErr)

		ok, err := f.cmds.Save(ctx, s, nil, nil, []uuid.UUID{unknown})

		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.ErrorIs(t, err, errs.ErrPurchasableNotFound)
		assert.Equal(t, uuid.Nil, s.ID())
	})

	t.Run("error: insert failure is returned", func(t *testing.T) {
		f := newSaleCommandsFixture(t)
		s := builder.NewSaleBuilder().BuildDomain()
		dbErr := errors.New("connection reset")

		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), s).Return(uuid.Nil, dbErr)

		ok, err := f.cmds.Save(ctx, s, nil, nil, nil)

		assert.False(t, ok)
		assert.ErrorIs(t, err, dbErr)
	})
}

// =============================================================================
// DeleteByID Tests
// =============================================================================

func TestSaleCommands_DeleteByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: deletes and publishes", func(t *testing.T) {
		f := newSaleCommandsFixture(t)
		gomock.InOrder(
			f.repo.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(true, nil),
			f.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(true, nil),
			f.publisher.EXPECT().SaleDeleted(gomock.Any(), id).Return(nil),
		)

		ok, err := f.cmds.DeleteByID(ctx, id)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("success: absent sale returns false", func(t *testing.T) {
		f := newSaleCommandsFixture(t)
		f.repo.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(false, nil)

		ok, err := f.cmds.DeleteByID(ctx, id)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("error: database failure is returned", func(t *testing.T) {
		f := newSaleCommandsFixture(t)
		dbErr := errors.New("connection reset")
		f.repo.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(false, dbErr)

		ok, err := f.cmds.DeleteByID(ctx, id)

		assert.False(t, ok)
		assert.ErrorIs(t, err, dbErr)
	})
}
