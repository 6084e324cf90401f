//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/infra"
	"sales-engine/internal/infra/repository"
	sqlc "sales-engine/internal/infra/sqlc/generated"
	"sales-engine/tests/common/builder"
	repositorymock "sales-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnection = errors.New("database connection error")

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

func newRepo(t *testing.T) (*repository.SaleRepository, *repositorymock.MockSaleWriteQueries, sqlc.DBTX) {
	ctrl := gomock.NewController(t)
	mock := repositorymock.NewMockSaleWriteQueries(ctrl)
	return repository.NewSaleRepository(mock), mock, &mockDBTX{}
}

// =============================================================================
// Create / Update / Delete Tests
// =============================================================================

func TestSaleRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockSaleWriteQueries, sqlc.DBTX, uuid.UUID)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: sale created",
			setupMock: func(mock *repositorymock.MockSaleWriteQueries, tx sqlc.DBTX, id uuid.UUID) {
				mock.EXPECT().CreateSale(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateSaleParams) (uuid.UUID, error) {
						assert.Equal(t, "Spring sale", arg.Name)
						assert.Equal(t, "percentage", arg.DiscountType)
						assert.True(t, arg.DiscountAmount.Valid)
						assert.False(t, arg.AllPurchasables)
						assert.True(t, arg.AllCategories)
						return id, nil
					})
			},
		},
		{
			name: "error: database error",
			setupMock: func(mock *repositorymock.MockSaleWriteQueries, tx sqlc.DBTX, _ uuid.UUID) {
				mock.EXPECT().CreateSale(ctx, tx, gomock.Any()).Return(uuid.Nil, errDBConnection)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: check constraint",
			setupMock: func(mock *repositorymock.MockSaleWriteQueries, tx sqlc.DBTX, _ uuid.UUID) {
				mock.EXPECT().CreateSale(ctx, tx, gomock.Any()).Return(uuid.Nil, &pgconn.PgError{Code: "23514"})
			},
			expectKind: infra.KindConstraintViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, tx := newRepo(t)
			want := uuid.New()
			tc.setupMock(mock, tx, want)
			s := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
				b.PurchasableIDs = []uuid.UUID{uuid.New()}
			}).BuildDomain()

			id, err := repo.Create(ctx, tx, s)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, id)
		})
	}
}

func TestSaleRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mock, tx := newRepo(t)
		s := builder.NewSaleBuilder().BuildPersisted()
		mock.EXPECT().UpdateSale(ctx, tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateSaleParams) (int64, error) {
				assert.Equal(t, s.ID(), arg.ID)
				return 1, nil
			})

		assert.NoError(t, repo.Update(ctx, tx, s))
	})

	t.Run("no row updated is not found", func(t *testing.T) {
		repo, mock, tx := newRepo(t)
		mock.EXPECT().UpdateSale(ctx, tx, gomock.Any()).Return(int64(0), nil)

		err := repo.Update(ctx, tx, builder.NewSaleBuilder().BuildPersisted())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestSaleRepository_LockAndDelete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("lock reports presence", func(t *testing.T) {
		repo, mock, tx := newRepo(t)
		mock.EXPECT().GetSaleIDForUpdate(ctx, tx, id).Return(id, nil)

		ok, err := repo.LockByID(ctx, tx, id)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("lock on missing row", func(t *testing.T) {
		repo, mock, tx := newRepo(t)
		mock.EXPECT().GetSaleIDForUpdate(ctx, tx, id).Return(uuid.Nil, pgx.ErrNoRows)

		ok, err := repo.LockByID(ctx, tx, id)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete reports affected rows", func(t *testing.T) {
		repo, mock, tx := newRepo(t)
		mock.EXPECT().DeleteSale(ctx, tx, id).Return(int64(1), nil)
		mock.EXPECT().DeleteSale(ctx, tx, id).Return(int64(0), nil)

		first, err := repo.Delete(ctx, tx, id)
		require.NoError(t, err)
		second, err := repo.Delete(ctx, tx, id)
		require.NoError(t, err)

		assert.True(t, first)
		assert.False(t, second)
	})
}

// =============================================================================
// ReplaceAssociations Tests
// =============================================================================

func TestSaleRepository_ReplaceAssociations(t *testing.T) {
	ctx := context.Background()
	saleID := uuid.New()

	t.Run("categories: clear then bulk insert without duplicates", func(t *testing.T) {
		repo, mock, tx := newRepo(t)
		c1, c2 := uuid.New(), uuid.New()
		gomock.InOrder(
			mock.EXPECT().DeleteSaleCategories(ctx, tx, saleID).Return(nil),
			mock.EXPECT().InsertSaleCategories(ctx, tx, sqlc.InsertSaleCategoriesParams{
				SaleID:      saleID,
				CategoryIds: []uuid.UUID{c1, c2},
			}).Return(nil),
		)

		err := repo.ReplaceAssociations(ctx, tx, saleID, sale.RelationCategory, []uuid.UUID{c1, c2, c1})

		assert.NoError(t, err)
	})

	t.Run("user groups: empty set only clears", func(t *testing.T) {
		repo, mock, tx := newRepo(t)
		mock.EXPECT().DeleteSaleUserGroups(ctx, tx, saleID).Return(nil)

		assert.NoError(t, repo.ReplaceAssociations(ctx, tx, saleID, sale.RelationUserGroup, nil))
	})

	t.Run("purchasables: types are resolved per id", func(t *testing.T) {
		repo, mock, tx := newRepo(t)
		p1, p2 := uuid.New(), uuid.New()
		gomock.InOrder(
			mock.EXPECT().DeleteSalePurchasables(ctx, tx, saleID).Return(nil),
			mock.EXPECT().GetPurchasableType(ctx, tx, p1).Return("product", nil),
			mock.EXPECT().GetPurchasableType(ctx, tx, p2).Return("variant", nil),
			mock.EXPECT().InsertSalePurchasables(ctx, tx, sqlc.InsertSalePurchasablesParams{
				SaleID:           saleID,
				PurchasableIds:   []uuid.UUID{p1, p2},
				PurchasableTypes: []string{"product", "variant"},
			}).Return(nil),
		)

		assert.NoError(t, repo.ReplaceAssociations(ctx, tx, saleID, sale.RelationPurchasable, []uuid.UUID{p1, p2}))
	})

	t.Run("purchasables: unknown purchasable aborts before insert", func(t *testing.T) {
		repo, mock, tx := newRepo(t)
		p := uuid.New()
		mock.EXPECT().DeleteSalePurchasables(ctx, tx, saleID).Return(nil)
		mock.EXPECT().GetPurchasableType(ctx, tx, p).Return("", pgx.ErrNoRows)

		err := repo.ReplaceAssociations(ctx, tx, saleID, sale.RelationPurchasable, []uuid.UUID{p})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("clear failure stops the replacement", func(t *testing.T) {
		repo, mock, tx := newRepo(t)
		mock.EXPECT().DeleteSaleCategories(ctx, tx, saleID).Return(errDBConnection)

		err := repo.ReplaceAssociations(ctx, tx, saleID, sale.RelationCategory, []uuid.UUID{uuid.New()})

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("insert failure is classified", func(t *testing.T) {
		repo, mock, tx := newRepo(t)
		mock.EXPECT().DeleteSaleUserGroups(ctx, tx, saleID).Return(nil)
		mock.EXPECT().InsertSaleUserGroups(ctx, tx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		err := repo.ReplaceAssociations(ctx, tx, saleID, sale.RelationUserGroup, []uuid.UUID{uuid.New()})

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("unknown relation", func(t *testing.T) {
		repo, _, tx := newRepo(t)

		assert.Error(t, repo.ReplaceAssociations(ctx, tx, saleID, sale.Relation("coupon"), nil))
	})
}
