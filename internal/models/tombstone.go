package models

import (
	"time"

	"gorm.io/gorm"
)

type LifecycleState string

const (
	LifecycleActive  LifecycleState = "active"
	LifecycleDeleted LifecycleState = "deleted"
)

// Lifecycle is the two-variant state of a tombstoned row. DeletedAt is set
// only for LifecycleDeleted.
type Lifecycle struct {
	State     LifecycleState
	DeletedAt *time.Time
}

// Tombstone marks a row as soft-deletable. GORM excludes tombstoned rows from
// every query on the embedding model and turns Delete into an UPDATE of
// deleted_at, so the exclusion predicate lives in exactly one place.
type Tombstone struct {
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t Tombstone) Lifecycle() Lifecycle {
	if !t.DeletedAt.Valid {
		return Lifecycle{State: LifecycleActive}
	}
	at := t.DeletedAt.Time
	return Lifecycle{State: LifecycleDeleted, DeletedAt: &at}
}
