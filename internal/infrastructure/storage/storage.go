// Package storage defines the key-value collaborator the history service
// persists through, plus the storage keys shared by every driver.
package storage

import "context"

// Storage keys. KeyHistory is the canonical single-blob layout; the two
// legacy keys belong to an earlier split list+index layout and are only
// read during the one-time migration.
const (
	KeyHistory     = "qure_qr_codes"
	KeyLegacyList  = "qure_qr_code_list"
	KeyLegacyIndex = "qure_qr_code_index"
)

// KV is a minimal string key-value store. Get treats an absent key as
// ("", false, nil): absence is state, not an error. Set overwrites
// atomically with respect to readers of the same key.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
