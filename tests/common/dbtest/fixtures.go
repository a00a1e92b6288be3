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

	"marketplace-orders/internal/domain/listing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertListing stores s as-is. Listings are owned by another service, so
// tests seed them directly.
func InsertListing(t *testing.T, db DBLike, s listing.Snapshot) {
	t.Helper()

	features := s.Features
	if features == nil {
		features = []string{}
	}

	_, err := db.Exec(context.Background(), `
		INSERT INTO listings (id, provider_id, listing_type, status, title, short_description,
		    long_description, location, image_url, features, price, currency, stock_quantity,
		    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::numeric, $12, $13, $14, $15)`,
		s.ID, s.ProviderID, string(s.Type), string(s.Status), s.Title, s.ShortDescription,
		s.LongDescription, s.Location, s.ImageURL, features, s.Price.String(), s.Currency, s.StockQuantity,
		s.CreatedAt, s.UpdatedAt)
	require.NoError(t, err)
}

// StockOf returns the stored stock_quantity, nil for untracked listings.
func StockOf(t *testing.T, db DBLike, listingID uuid.UUID) *int32 {
	t.Helper()

	var stock *int32
	err := db.QueryRow(context.Background(),
		"SELECT stock_quantity FROM listings WHERE id = $1", listingID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

// CountRows counts rows of table matching where; pass "TRUE" for all rows.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", table, where), args...).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
