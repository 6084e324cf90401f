//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreatePurchasable inserts a promotable purchasable whose category relations
// are keyed by its own id.
func CreatePurchasable(t *testing.T, db DBLike, typ, price string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO purchasables (id, type, price, promotable, relation_source_id) VALUES ($1, $2, $3::numeric, true, $1)",
		id, typ, price)
	require.NoError(t, err)
	return id
}

func AttachCategory(t *testing.T, db DBLike, sourceID, categoryID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO category_relations (source_id, category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		sourceID, categoryID)
	require.NoError(t, err)
}

func AddGroupMember(t *testing.T, db DBLike, userID, groupID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO user_group_members (user_id, user_group_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		userID, groupID)
	require.NoError(t, err)
}

// CreateOrder inserts an order. orderedAt is only stored for completed orders.
func CreateOrder(t *testing.T, db DBLike, userID *uuid.UUID, completed bool, orderedAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	var dateOrdered *time.Time
	if completed {
		dateOrdered = &orderedAt
	}
	_, err := db.Exec(context.Background(),
		"INSERT INTO orders (id, user_id, is_completed, date_ordered) VALUES ($1, $2, $3, $4)",
		id, userID, completed, dateOrdered)
	require.NoError(t, err)
	return id
}

// CountSaleRows returns the number of rows in table that belong to saleID.
// table is one of the sale tables; the sales table itself is keyed by id.
func CountSaleRows(t *testing.T, db DBLike, table string, saleID uuid.UUID) int {
	t.Helper()

	column := "sale_id"
	if table == "sales" {
		column = "id"
	}
	var n int
	err := db.QueryRow(context.Background(),
		fmt.Sprintf("SELECT count(*) FROM %s WHERE %s = $1", table, column), saleID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
