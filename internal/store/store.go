// Package store defines the persistence contract drafts live behind. The
// engine itself never performs I/O; handlers load a snapshot, apply pure
// operations and put the result back.
package store

import (
	"context"

	"github.com/dgallion1/docstruct/internal/doctree"
)

// Store persists document snapshots by draft id. Get returns (nil, nil)
// when the draft does not exist; storage technology is the implementer's
// business.
type Store interface {
	Get(ctx context.Context, draftID string) (*doctree.DocumentState, error)
	Put(ctx context.Context, draftID string, state *doctree.DocumentState) error
}
