package postgres

import (
	"context"
	"fmt"
)

// schemaStatements DDL idempotente. NUMERIC(20,4) se mapea a shopspring/decimal vía pgx-shopspring-decimal.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS product_stock (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		name_key    TEXT NOT NULL,
		quantity    NUMERIC(20,4) NOT NULL CHECK (quantity >= 0),
		version     BIGINT NOT NULL DEFAULT 1,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT product_stock_name_key_uniq UNIQUE (name_key)
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		id             UUID PRIMARY KEY,
		name           TEXT NOT NULL,
		phone          TEXT NOT NULL DEFAULT '',
		email          TEXT NOT NULL,
		username       TEXT NOT NULL,
		password_hash  TEXT NOT NULL,
		role           TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS staff_username_uniq ON staff (lower(username))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS staff_email_uniq ON staff (lower(email))`,
	`CREATE TABLE IF NOT EXISTS audit_records (
		id            UUID PRIMARY KEY,
		product_name  TEXT NOT NULL,
		product_key   TEXT NOT NULL,
		operation     TEXT NOT NULL,
		amount        NUMERIC(20,4) NOT NULL,
		staff         TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS audit_records_created_idx ON audit_records (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS audit_records_product_idx ON audit_records (product_key, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS enquiries (
		id                  UUID PRIMARY KEY,
		kind                TEXT NOT NULL,
		product_name        TEXT NOT NULL,
		quantity            NUMERIC(20,4) NOT NULL,
		resulting_quantity  NUMERIC(20,4),
		severity            TEXT NOT NULL DEFAULT '',
		message             TEXT NOT NULL DEFAULT '',
		staff_username      TEXT NOT NULL,
		staff_name          TEXT NOT NULL DEFAULT '',
		staff_email         TEXT NOT NULL DEFAULT '',
		created_at          TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS enquiries_created_idx ON enquiries (created_at DESC)`,
}

// EnsureSchema crea tablas e índices si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
