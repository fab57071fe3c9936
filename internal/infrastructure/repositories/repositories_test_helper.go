package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createMerchantTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchants (
		id TEXT PRIMARY KEY,
		slug TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		whatsapp_phone TEXT NOT NULL,
		currency TEXT NOT NULL DEFAULT 'ARS',
		address TEXT,
		logo_url TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		shipping_type TEXT NOT NULL DEFAULT 'free',
		shipping_cost_cents INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCategoryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE categories (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		name TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createItemTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE items (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		category_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		price_cents INTEGER NOT NULL,
		original_price_cents INTEGER,
		image_url TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOrderTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		short_code INTEGER NOT NULL,
		customer_name TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		delivery TEXT NOT NULL,
		delivery_address TEXT,
		notes TEXT,
		status TEXT NOT NULL DEFAULT 'created',
		total_cents INTEGER NOT NULL,
		whatsapp_url TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (merchant_id, short_code)
	);`)
	mustExec(t, db, `CREATE TABLE order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		item_id TEXT NOT NULL,
		qty INTEGER NOT NULL,
		notes TEXT,
		unit_price_cents INTEGER NOT NULL,
		line_total_cents INTEGER NOT NULL,
		created_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'manager',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		merchant_id TEXT,
		merchant_role TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
