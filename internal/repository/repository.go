// Package repository contains the storage implementations backing the
// identity store, the class roster and the attendance ledger. Each store has
// an in-memory implementation seeded at startup and a PostgreSQL
// implementation; services depend on small interfaces so the driver is
// swappable without touching business rules.
package repository

import "errors"

// ErrNotFound is returned by every driver when a record does not exist, so
// services never have to care which store is behind the interface.
var ErrNotFound = errors.New("record not found")
