// Package eventsource normalizes inbound triggers into typed events for the
// pipeline: object-finalize notifications from the bucket (or the dev spool
// directory) and document changes published by the database change feed.
package eventsource

import "context"

// ObjectFinalized signals that an upload has completed in the object store.
type ObjectFinalized struct {
	// Key is the storage path of the finished object,
	// e.g. "pictures/20180327123000.jpg".
	Key string
}

// ObjectHandler consumes normalized object-finalize events. Implementations
// must swallow their own failures; the event source never retries.
type ObjectHandler interface {
	HandleObjectFinalized(ctx context.Context, ev ObjectFinalized)
}

// Change operations as published by the database triggers.
const (
	OpInsert = "insert"
	OpUpdate = "update"
)

// Collection names mirrored from the schema.
const (
	CollectionRings = "rings"
	CollectionTasks = "picture_tasks"
)

// ChangeHandler consumes normalized document-change events.
type ChangeHandler interface {
	HandleChange(ctx context.Context, ch DocumentChange)
}
