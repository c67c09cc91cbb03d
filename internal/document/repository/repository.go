package repository

import "context"

// Repository persists the full document collection as one serialized blob.
// Every mutation at the service layer is a read-modify-write of this single
// value; the repository itself never interprets the payload.
type Repository interface {
	// Load returns the stored blob. ok is false when nothing has ever been
	// stored (first run), which is distinct from an empty collection.
	Load(ctx context.Context) (raw []byte, ok bool, err error)

	// Store overwrites the blob verbatim.
	Store(ctx context.Context, raw []byte) error

	// Quarantine preserves a blob that failed to parse so it can be
	// recovered manually. It must not touch the primary blob.
	Quarantine(ctx context.Context, raw []byte) error
}
