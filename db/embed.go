// Package db carries the embedded kiosk schema, applied at startup by the
// repository layer.
package db

import _ "embed"

// Schema is the idempotent DDL for the kiosk tables: customers, orders,
// order_items and add_ons, plus the menu catalog and payments.
//
//go:embed migrations/001_schema.sql
var Schema string
