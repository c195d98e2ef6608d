package domain

import "time"

// Entity holds the identity and timestamp state shared by every aggregate.
// Aggregates keep it as an unexported field and forward the read accessors,
// so Touch is only reachable from the aggregate's own methods.
//
// Version is persistence metadata: zero for an aggregate that has never been
// saved, otherwise the row version the aggregate was loaded with. Repository
// adapters use it for optimistic concurrency.
type Entity[ID comparable] struct {
	id        ID
	createdAt time.Time
	updatedAt time.Time
	version   int64
}

// NewEntity returns an Entity created at now. Both timestamps start equal.
func NewEntity[ID comparable](id ID, now time.Time) Entity[ID] {
	return Entity[ID]{id: id, createdAt: now, updatedAt: now}
}

// RestoreEntity rebuilds an Entity from stored state.
func RestoreEntity[ID comparable](id ID, createdAt, updatedAt time.Time, version int64) Entity[ID] {
	return Entity[ID]{id: id, createdAt: createdAt, updatedAt: updatedAt, version: version}
}

// ID returns the immutable identity.
func (e *Entity[ID]) ID() ID { return e.id }

// CreatedAt returns the construction timestamp.
func (e *Entity[ID]) CreatedAt() time.Time { return e.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (e *Entity[ID]) UpdatedAt() time.Time { return e.updatedAt }

// Version returns the stored row version, or 0 if never persisted.
func (e *Entity[ID]) Version() int64 { return e.version }

// IsNew reports whether the entity has never been persisted.
func (e *Entity[ID]) IsNew() bool { return e.version == 0 }

// Touch sets UpdatedAt to now on every mutation. A clock reading earlier
// than the stored value is ignored, so UpdatedAt never moves backwards; a
// reading on the same tick leaves it equal.
func (e *Entity[ID]) Touch(now time.Time) {
	if !now.Before(e.updatedAt) {
		e.updatedAt = now
	}
}

// SetVersion records the row version after a successful save.
func (e *Entity[ID]) SetVersion(v int64) { e.version = v }

// SameIdentity compares ids only. Callers are responsible for ensuring both
// entities belong to the same aggregate type; the per-aggregate Equals
// methods enforce that through their signatures.
func (e *Entity[ID]) SameIdentity(other *Entity[ID]) bool {
	if e == nil || other == nil {
		return false
	}
	return e.id == other.id
}
