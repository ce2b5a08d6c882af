package importer

import (
	"refeitorio/internal/model"
	"refeitorio/internal/store"
)

// Upserter persists one (record, shift) tuple. The orchestrator only
// needs this much of the store, and tests inject failing
// implementations through it.
type Upserter interface {
	Upsert(rec model.ImportRecord, shift model.Shift, actorID string) (store.UpsertResult, error)
}

// UpsertEngine production Upserter over the SQLite store. Each call is
// one transaction scoped to its single tuple; one tuple's failure never
// rolls back another's success.
type UpsertEngine struct {
	store *store.Store
}

// NewUpsertEngine creates the engine.
func NewUpsertEngine(st *store.Store) *UpsertEngine {
	return &UpsertEngine{store: st}
}

// Upsert persists the tuple idempotently: the day row is created once
// per date and merged afterwards, the shift row is created once per
// (day, shift).
func (e *UpsertEngine) Upsert(rec model.ImportRecord, shift model.Shift, actorID string) (store.UpsertResult, error) {
	return e.store.UpsertDayShift(store.UpsertParams{
		Date:     rec.Date,
		Shift:    shift,
		Fields:   rec.Fields,
		Capacity: rec.Capacity,
		ActorID:  actorID,
	})
}
