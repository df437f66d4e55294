package db

import "context"

// InitSchema creates the tables if they do not exist yet. Nested collections
// (menu, plans, absence entries, notification metadata) are jsonb columns so
// every write against them stays a single-row update.
func InitSchema(ctx context.Context, database *Database) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'customer',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS messes (
		id TEXT PRIMARY KEY,
		provider_id TEXT NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		cuisine_types JSONB NOT NULL DEFAULT '[]',
		price_per_meal DOUBLE PRECISION NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		rating_average DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		menu JSONB NOT NULL DEFAULT '[]',
		plans JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL REFERENCES users(id),
		mess_id TEXT NOT NULL REFERENCES messes(id),
		quantity INTEGER NOT NULL DEFAULT 1,
		price_per_meal DOUBLE PRECISION NOT NULL,
		total_price DOUBLE PRECISION NOT NULL,
		amount_paid DOUBLE PRECISION NOT NULL DEFAULT 0,
		amount_due DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		payment_status TEXT NOT NULL DEFAULT 'unpaid',
		notes TEXT NOT NULL DEFAULT '',
		subscription_plan_id TEXT,
		subscription_start_date TIMESTAMPTZ,
		subscription_end_date TIMESTAMPTZ,
		total_days INTEGER NOT NULL DEFAULT 0,
		days_remaining INTEGER NOT NULL DEFAULT 0,
		absence_dates JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		metadata JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_messes_provider ON messes (provider_id);
	CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders (customer_id);
	CREATE INDEX IF NOT EXISTS idx_orders_mess ON orders (mess_id);
	CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id);
	`
	_, err := database.Exec(ctx, query)
	return err
}
