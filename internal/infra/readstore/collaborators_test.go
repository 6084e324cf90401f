//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"sales-engine/internal/infra"
	"sales-engine/internal/infra/readstore"
	sqlc "sales-engine/internal/infra/sqlc/generated"
	"sales-engine/internal/pkg/pgconv"
	readstoremock "sales-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockCatalogQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: purchasable found",
			setupMock: func(mock *readstoremock.MockCatalogQueries) {
				mock.EXPECT().GetPurchasableByID(ctx, gomock.Any(), id).Return(sqlc.Purchasables{
					ID:               id,
					Type:             "product",
					Price:            pgconv.DecimalToNumeric(decimal.RequireFromString("19.99")),
					Promotable:       true,
					RelationSourceID: id,
				}, nil)
			},
		},
		{
			name: "error: purchasable not found",
			setupMock: func(mock *readstoremock.MockCatalogQueries) {
				mock.EXPECT().GetPurchasableByID(ctx, gomock.Any(), id).Return(sqlc.Purchasables{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockCatalogQueries) {
				mock.EXPECT().GetPurchasableByID(ctx, gomock.Any(), id).Return(sqlc.Purchasables{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := readstoremock.NewMockCatalogQueries(ctrl)
			tc.setupMock(mock)
			store := readstore.NewCatalogReadStore(mock, &mockDBTX{})

			view, err := store.FindByID(ctx, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, view.PurchasableID())
			assert.True(t, decimal.RequireFromString("19.99").Equal(view.Price()))
			assert.True(t, view.IsPromotable())
			assert.Equal(t, id, view.PromotionRelationSource())
		})
	}
}

func TestCatalogReadStore_CategoryIDs(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mock := readstoremock.NewMockCatalogQueries(ctrl)
	store := readstore.NewCatalogReadStore(mock, &mockDBTX{})
	source := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	mock.EXPECT().ListCategoryIDsBySource(ctx, gomock.Any(), source).Return(ids, nil)
	mock.EXPECT().ListCategoryIDsBySource(ctx, gomock.Any(), uuid.Nil).Return(nil, errDBConnectionLost)

	got, err := store.CategoryIDs(ctx, source)
	require.NoError(t, err)
	assert.Equal(t, ids, got)

	_, err = store.CategoryIDs(ctx, uuid.Nil)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestUserGroupReadStore_GroupIDs(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mock := readstoremock.NewMockUserGroupQueries(ctrl)
	store := readstore.NewUserGroupReadStore(mock, &mockDBTX{})
	user := uuid.New()
	group := uuid.New()
	mock.EXPECT().ListUserGroupIDsByUser(ctx, gomock.Any(), user).Return([]uuid.UUID{group}, nil)

	got, err := store.GroupIDs(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{group}, got)
}

func TestOrderReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("completed order with customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mock := readstoremock.NewMockOrderQueries(ctrl)
		store := readstore.NewOrderReadStore(mock, &mockDBTX{})
		id, customer := uuid.New(), uuid.New()
		ordered := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		mock.EXPECT().GetOrderByID(ctx, gomock.Any(), id).Return(sqlc.Orders{
			ID:          id,
			UserID:      pgconv.UUIDToPgtype(customer),
			IsCompleted: true,
			DateOrdered: pgtype.Timestamptz{Time: ordered, Valid: true},
		}, nil)

		order, err := store.FindByID(ctx, id)

		require.NoError(t, err)
		assert.True(t, order.IsCompleted())
		assert.True(t, ordered.Equal(order.DateOrdered()))
		require.NotNil(t, order.UserID())
		assert.Equal(t, customer, *order.UserID())
	})

	t.Run("guest cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mock := readstoremock.NewMockOrderQueries(ctrl)
		store := readstore.NewOrderReadStore(mock, &mockDBTX{})
		id := uuid.New()
		mock.EXPECT().GetOrderByID(ctx, gomock.Any(), id).Return(sqlc.Orders{ID: id}, nil)

		order, err := store.FindByID(ctx, id)

		require.NoError(t, err)
		assert.False(t, order.IsCompleted())
		assert.Nil(t, order.UserID())
		assert.True(t, order.DateOrdered().IsZero())
	})

	t.Run("missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mock := readstoremock.NewMockOrderQueries(ctrl)
		store := readstore.NewOrderReadStore(mock, &mockDBTX{})
		mock.EXPECT().GetOrderByID(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Orders{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
