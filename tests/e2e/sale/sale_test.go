//go:build e2e

package sale_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/handler/dto/response"
	"sales-engine/internal/pkg/cookie"
	"sales-engine/internal/pkg/jwt"
	"sales-engine/tests/common/authtest"
	"sales-engine/tests/common/builder"
	"sales-engine/tests/common/dbtest"
	"sales-engine/tests/common/httptest"
	"sales-engine/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	salesURL = "/api/sales"
)

var saleTables = []string{"sales", "sale_purchasables", "sale_categories", "sale_user_groups"}

type SaleSuite struct {
	e2e.SharedSuite
}

func TestSaleSuite(t *testing.T) {
	suite.Run(t, new(SaleSuite))
}

func (s *SaleSuite) adminToken(t *testing.T) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), jwt.RoleAdmin)
}

func (s *SaleSuite) saleRowCounts(t *testing.T, saleID uuid.UUID) map[string]int {
	counts := make(map[string]int, len(saleTables))
	for _, table := range saleTables {
		counts[table] = dbtest.CountSaleRows(t, s.DB, table, saleID)
	}
	return counts
}

// =============================================================================
// TestCreateSale
// =============================================================================

func (s *SaleSuite) TestCreateSale() {
	s.Run("Normal case: sale and every association are persisted together", func() {
		t := s.T()
		token := s.adminToken(t)
		productID := dbtest.CreatePurchasable(t, s.DB, "product", "100")
		categories := []uuid.UUID{uuid.New(), uuid.New()}
		groupID := uuid.New()

		reqBody := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
			b.PurchasableIDs = []uuid.UUID{productID, productID}
			b.CategoryIDs = categories
			b.GroupIDs = []uuid.UUID{groupID}
		}).BuildSaveRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.SaleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		saleID := uuid.MustParse(created.ID)

		want := map[string]int{"sales": 1, "sale_purchasables": 1, "sale_categories": 2, "sale_user_groups": 1}
		if diff := cmp.Diff(want, s.saleRowCounts(t, saleID)); diff != "" {
			t.Errorf("row counts mismatch (-want +got):\n%s", diff)
		}

		var storedType string
		err := s.DB.QueryRow(context.Background(),
			"SELECT purchasable_type FROM sale_purchasables WHERE sale_id = $1", saleID).Scan(&storedType)
		require.NoError(t, err)
		require.Equal(t, "product", storedType)

		var allGroups, allCategories, allPurchasables bool
		err = s.DB.QueryRow(context.Background(),
			"SELECT all_groups, all_categories, all_purchasables FROM sales WHERE id = $1", saleID).
			Scan(&allGroups, &allCategories, &allPurchasables)
		require.NoError(t, err)
		require.False(t, allGroups || allCategories || allPurchasables)
	})

	s.Run("Error case: unknown purchasable rolls back the whole save", func() {
		t := s.T()
		token := s.adminToken(t)
		known := dbtest.CreatePurchasable(t, s.DB, "product", "100")

		reqBody := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
			b.PurchasableIDs = []uuid.UUID{known, uuid.New()}
			b.CategoryIDs = []uuid.UUID{uuid.New()}
		}).BuildSaveRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		for _, table := range saleTables {
			require.Zero(t, dbtest.CountRows(t, s.DB, table), "table %s should be empty", table)
		}
	})

	s.Run("Error case: invalid sale writes nothing", func() {
		t := s.T()
		token := s.adminToken(t)
		from := time.Now().UTC().Add(24 * time.Hour)
		to := from.Add(-time.Hour)

		reqBody := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
			b.DateFrom = &from
			b.DateTo = &to
		}).BuildSaveRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		require.Zero(t, dbtest.CountRows(t, s.DB, "sales"))
	})

	s.Run("Error case: non-admin caller is forbidden", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), jwt.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, builder.NewSaleBuilder().BuildSaveRequestDTO(), token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestUpdateSale / TestDeleteSale
// =============================================================================

func (s *SaleSuite) TestUpdateSale() {
	s.Run("Normal case: associations are replaced, not merged", func() {
		t := s.T()
		token := s.adminToken(t)
		keep, drop := uuid.New(), uuid.New()

		create := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
			b.CategoryIDs = []uuid.UUID{keep, drop}
		}).BuildSaveRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, create, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.SaleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		update := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
			b.Name = "Renamed"
			b.CategoryIDs = []uuid.UUID{keep}
		}).BuildSaveRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, salesURL+"/"+created.ID, update, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.SaleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		want := response.SaleResponse{
			ID:              created.ID,
			Name:            "Renamed",
			Description:     created.Description,
			DiscountType:    "percentage",
			DiscountAmount:  decimal.RequireFromString("-0.1"),
			AllGroups:       true,
			AllCategories:   false,
			AllPurchasables: true,
			Enabled:         true,
			UserGroupIDs:    []string{},
			CategoryIDs:     []string{keep.String()},
			PurchasableIDs:  []string{},
		}
		opts := cmp.Options{
			cmpopts.IgnoreFields(response.SaleResponse{}, "CreatedAt", "UpdatedAt"),
			cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
			cmpopts.EquateEmpty(),
		}
		if diff := cmp.Diff(want, updated, opts...); diff != "" {
			t.Errorf("updated sale mismatch (-want +got):\n%s", diff)
		}

		saleID := uuid.MustParse(created.ID)
		require.Equal(t, 1, dbtest.CountSaleRows(t, s.DB, "sale_categories", saleID))
	})

	s.Run("Error case: unknown sale returns 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, salesURL+"/"+uuid.NewString(),
			builder.NewSaleBuilder().BuildSaveRequestDTO(), s.adminToken(t))
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
		require.Zero(t, dbtest.CountRows(t, s.DB, "sales"))
	})
}

func (s *SaleSuite) TestDeleteSale() {
	s.Run("Normal case: delete cascades to associations", func() {
		t := s.T()
		token := s.adminToken(t)
		reqBody := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
			b.CategoryIDs = []uuid.UUID{uuid.New()}
			b.GroupIDs = []uuid.UUID{uuid.New()}
		}).BuildSaveRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.SaleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, salesURL+"/"+created.ID, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		for table, n := range s.saleRowCounts(t, uuid.MustParse(created.ID)) {
			require.Zero(t, n, "table %s should be empty", table)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, salesURL+"/"+created.ID, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestSalePrice
// =============================================================================

func (s *SaleSuite) TestSalePrice() {
	s.Run("Normal case: stacked sales price a purchasable", func() {
		t := s.T()
		token := s.adminToken(t)
		productID := dbtest.CreatePurchasable(t, s.DB, "product", "100")

		for _, b := range []*builder.SaleBuilder{
			builder.NewSaleBuilder(),
			builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
				b.DiscountType = sale.DiscountTypeFlat
				b.DiscountAmount = decimal.RequireFromString("-5")
			}),
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, b.BuildSaveRequestDTO(), token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		router := s.FreshRouter()
		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/purchasables/"+productID.String()+"/sale-price", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var quote response.SalePriceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quote))
		require.True(t, quote.SalePrice.Equal(decimal.RequireFromString("85")), "got %s", quote.SalePrice)
		require.Len(t, quote.SaleIDs, 2)
	})

	s.Run("Normal case: completed order date outside the window is not discounted", func() {
		t := s.T()
		token := s.adminToken(t)
		productID := dbtest.CreatePurchasable(t, s.DB, "product", "100")
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

		reqBody := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
			b.DateFrom = &from
			b.DateTo = &to
		}).BuildSaveRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		inside := dbtest.CreateOrder(t, s.DB, nil, true, from.Add(24*time.Hour))
		outside := dbtest.CreateOrder(t, s.DB, nil, true, to.Add(24*time.Hour))

		router := s.FreshRouter()
		priceFor := func(orderID uuid.UUID) decimal.Decimal {
			url := "/api/purchasables/" + productID.String() + "/sale-price?order_id=" + orderID.String()
			w := httptest.PerformRequest(t, router, http.MethodGet, url, nil, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var quote response.SalePriceResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quote))
			return quote.SalePrice
		}

		require.True(t, priceFor(inside).Equal(decimal.RequireFromString("90")))
		require.True(t, priceFor(outside).Equal(decimal.RequireFromString("100")))
	})

	s.Run("Normal case: category and group scope resolve through collaborator tables", func() {
		t := s.T()
		token := s.adminToken(t)
		productID := dbtest.CreatePurchasable(t, s.DB, "product", "100")
		categoryID, groupID := uuid.New(), uuid.New()
		member, outsider := uuid.New(), uuid.New()
		dbtest.AttachCategory(t, s.DB, productID, categoryID)
		dbtest.AddGroupMember(t, s.DB, member, groupID)

		reqBody := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) {
			b.CategoryIDs = []uuid.UUID{categoryID}
			b.GroupIDs = []uuid.UUID{groupID}
		}).BuildSaveRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		router := s.FreshRouter()
		jwtHelper := authtest.NewJWTHelper(s.Config.JWT)
		cases := map[string]struct {
			token string
			want  string
		}{
			"group member":   {token: jwtHelper.GenerateToken(t, member, jwt.RoleCustomer), want: "90"},
			"outsider":       {token: jwtHelper.GenerateToken(t, outsider, jwt.RoleCustomer), want: "100"},
			"anonymous":      {token: "", want: "100"},
			"expired member": {token: jwtHelper.CreateExpiredToken(t, member, jwt.RoleCustomer), want: "100"},
		}
		for name, tc := range cases {
			w := httptest.PerformRequest(t, router, http.MethodGet, "/api/purchasables/"+productID.String()+"/sale-price", nil, tc.token)
			require.Equal(t, http.StatusOK, w.Code, "%s: %s", name, w.Body.String())
			var quote response.SalePriceResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quote))
			require.True(t, quote.SalePrice.Equal(decimal.RequireFromString(tc.want)), "%s: got %s", name, quote.SalePrice)
		}
	})

	s.Run("Error case: schema rejects a completed order without a date", func() {
		t := s.T()
		_, err := s.DB.Exec(context.Background(),
			"INSERT INTO orders (id, is_completed, date_ordered) VALUES ($1, TRUE, NULL)", uuid.New())
		require.Error(t, err)
	})

	s.Run("Error case: unknown purchasable returns 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/purchasables/"+uuid.NewString()+"/sale-price", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestListSales
// =============================================================================

func (s *SaleSuite) TestListSales() {
	s.Run("Normal case: admin console cookie authenticates the listing", func() {
		t := s.T()
		token := s.adminToken(t)
		for _, name := range []string{"First", "Second"} {
			reqBody := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) { b.Name = name }).BuildSaveRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequestWithCookies(t, s.FreshRouter(), http.MethodGet, salesURL, nil,
			&http.Cookie{Name: cookie.AccessTokenCookieName, Value: token})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var list []response.SaleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		names := make([]string, len(list))
		for i, sr := range list {
			names[i] = sr.Name
		}
		require.Equal(t, []string{"First", "Second"}, names)
	})

	s.Run("Error case: expired admin token is rejected", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, uuid.New(), jwt.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, salesURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: anonymous listing is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, salesURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
