package postgres

// Schema is the DDL for every table the service reads or writes.
const Schema = `
CREATE TABLE IF NOT EXISTS products (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT        NOT NULL,
	initial_stock INTEGER     NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS calculation_parameters (
	id                 BIGSERIAL PRIMARY KEY,
	product_id         BIGINT  NOT NULL UNIQUE REFERENCES products(id) ON DELETE CASCADE,
	delivery_lead_time INTEGER NOT NULL CHECK (delivery_lead_time >= 0),
	order_multiple     INTEGER NOT NULL CHECK (order_multiple > 0)
);

CREATE TABLE IF NOT EXISTS sales_profiles (
	id            BIGSERIAL PRIMARY KEY,
	product_id    BIGINT  NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	day_of_week   TEXT    NOT NULL,
	quantity_sold INTEGER NOT NULL CHECK (quantity_sold >= 0)
);

CREATE INDEX IF NOT EXISTS idx_sales_profiles_product ON sales_profiles(product_id);

CREATE TABLE IF NOT EXISTS purchase_orders (
	id               BIGSERIAL PRIMARY KEY,
	product_id       BIGINT  NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	order_date       DATE    NOT NULL,
	quantity_ordered INTEGER NOT NULL CHECK (quantity_ordered >= 0),
	delivery_date    DATE    NOT NULL,
	CHECK (delivery_date >= order_date)
);

CREATE INDEX IF NOT EXISTS idx_purchase_orders_product ON purchase_orders(product_id);
`
