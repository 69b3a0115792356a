// Package database persists journal state in PostgreSQL.
//
// The store is a collaborator of the pure core: it materializes the
// full in-memory state for scoring and applies import results as a
// full-collection replace. Because import IDs are content-derived,
// replacing is idempotent; the delete-then-insert ordering inside one
// transaction is what keeps repeated imports from accumulating stale
// records.
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrlilholt/mycojournal/internal/core"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Store wraps a connection pool with journal-shaped operations.
type Store struct {
	pool *pgxpool.Pool
}

// New builds a Store over an existing pool. The caller owns the pool's
// lifecycle.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates all tables and indexes if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}

// ReplaceState applies imported state as a full-collection replace:
// all prior grows, logs, events and harvests are deleted before the
// new set is written, inside a single transaction. Settings are
// upserted alongside.
func (s *Store) ReplaceState(ctx context.Context, state *core.State) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		for _, table := range []string{"harvests", "events", "logs", "grows"} {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}
		for i := range state.Grows {
			if err := insertGrow(ctx, tx, &state.Grows[i]); err != nil {
				return err
			}
		}
		for i := range state.Logs {
			if err := insertLog(ctx, tx, &state.Logs[i]); err != nil {
				return err
			}
		}
		for i := range state.Events {
			if err := insertEvent(ctx, tx, &state.Events[i]); err != nil {
				return err
			}
		}
		for i := range state.Harvests {
			if err := insertHarvest(ctx, tx, &state.Harvests[i]); err != nil {
				return err
			}
		}
		return saveSettings(ctx, tx, &state.Settings)
	})
}

// LoadState materializes the whole journal. Scoring consumes this
// directly: the scorer wants the global log and event collections, not
// pre-filtered slices.
func (s *Store) LoadState(ctx context.Context) (*core.State, error) {
	state := &core.State{
		Grows:    []core.Grow{},
		Logs:     []core.Log{},
		Events:   []core.Event{},
		Harvests: []core.Harvest{},
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, name, species, method, substrate, start_date, phase,
		       status, targets, tags, notes, created_at, updated_at
		FROM grows ORDER BY start_date, id`)
	if err != nil {
		return nil, fmt.Errorf("querying grows: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var g core.Grow
		var targets, tags []byte
		if err := rows.Scan(&g.ID, &g.Name, &g.Species, &g.Method, &g.Substrate,
			&g.StartDate, &g.Phase, &g.Status, &targets, &tags, &g.Notes,
			&g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning grow: %w", err)
		}
		if err := json.Unmarshal(targets, &g.Targets); err != nil {
			return nil, fmt.Errorf("decoding targets for %s: %w", g.ID, err)
		}
		if err := json.Unmarshal(tags, &g.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags for %s: %w", g.ID, err)
		}
		state.Grows = append(state.Grows, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logRows, err := s.pool.Query(ctx, `
		SELECT id, grow_id, logged_at, temp, humidity, co2, fae, light_hours,
		       surface_condition, block, treatment, growth_mm_per_day,
		       flush_height_mm, notes, created_at
		FROM logs ORDER BY logged_at, id`)
	if err != nil {
		return nil, fmt.Errorf("querying logs: %w", err)
	}
	defer logRows.Close()
	for logRows.Next() {
		var l core.Log
		if err := logRows.Scan(&l.ID, &l.GrowID, &l.Timestamp, &l.Temp,
			&l.Humidity, &l.CO2, &l.FAE, &l.LightHours, &l.SurfaceCondition,
			&l.Block, &l.Treatment, &l.GrowthMmPerDay, &l.FlushHeightMm,
			&l.Notes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning log: %w", err)
		}
		state.Logs = append(state.Logs, l)
	}
	logRows.Close()
	if err := logRows.Err(); err != nil {
		return nil, err
	}

	eventRows, err := s.pool.Query(ctx, `
		SELECT id, grow_id, logged_at, type, severity, notes
		FROM events ORDER BY logged_at, id`)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer eventRows.Close()
	for eventRows.Next() {
		var e core.Event
		if err := eventRows.Scan(&e.ID, &e.GrowID, &e.Timestamp, &e.Type,
			&e.Severity, &e.Notes); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		state.Events = append(state.Events, e)
	}
	eventRows.Close()
	if err := eventRows.Err(); err != nil {
		return nil, err
	}

	harvestRows, err := s.pool.Query(ctx, `
		SELECT id, grow_id, harvested_on, flush_number, weight, quality, notes
		FROM harvests ORDER BY harvested_on, id`)
	if err != nil {
		return nil, fmt.Errorf("querying harvests: %w", err)
	}
	defer harvestRows.Close()
	for harvestRows.Next() {
		var h core.Harvest
		if err := harvestRows.Scan(&h.ID, &h.GrowID, &h.Date, &h.FlushNumber,
			&h.Weight, &h.Quality, &h.Notes); err != nil {
			return nil, fmt.Errorf("scanning harvest: %w", err)
		}
		state.Harvests = append(state.Harvests, h)
	}
	harvestRows.Close()
	if err := harvestRows.Err(); err != nil {
		return nil, err
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	state.Settings = settings

	return state, nil
}

// InsertGrow writes one user-created grow.
func (s *Store) InsertGrow(ctx context.Context, grow *core.Grow) error {
	return insertGrow(ctx, s.pool, grow)
}

// InsertLog appends one log. Logs are immutable; there is no update.
func (s *Store) InsertLog(ctx context.Context, log *core.Log) error {
	return insertLog(ctx, s.pool, log)
}

// InsertEvent appends one event.
func (s *Store) InsertEvent(ctx context.Context, event *core.Event) error {
	return insertEvent(ctx, s.pool, event)
}

// InsertHarvest appends one harvest.
func (s *Store) InsertHarvest(ctx context.Context, harvest *core.Harvest) error {
	return insertHarvest(ctx, s.pool, harvest)
}

// UpdateGrowNotes mutates the one directly editable field on a grow.
func (s *Store) UpdateGrowNotes(ctx context.Context, growID, notes string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE grows SET notes = $2, updated_at = now() WHERE id = $1`, growID, notes)
	if err != nil {
		return fmt.Errorf("updating notes for %s: %w", growID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("grow %s not found", growID)
	}
	return nil
}

// UpdateGrowStatus transitions a grow between active and complete.
func (s *Store) UpdateGrowStatus(ctx context.Context, growID string, status core.Status) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE grows SET status = $2, updated_at = now() WHERE id = $1`, growID, status)
	if err != nil {
		return fmt.Errorf("updating status for %s: %w", growID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("grow %s not found", growID)
	}
	return nil
}

// DeleteGrow removes a grow and cascades to its logs, events and
// harvests in one transaction.
func (s *Store) DeleteGrow(ctx context.Context, growID string) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		for _, table := range []string{"logs", "events", "harvests"} {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table+" WHERE grow_id = $1", growID); err != nil {
				return fmt.Errorf("cascading delete from %s: %w", table, err)
			}
		}
		tag, err := tx.Exec(ctx, "DELETE FROM grows WHERE id = $1", growID)
		if err != nil {
			return fmt.Errorf("deleting grow %s: %w", growID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("grow %s not found", growID)
		}
		return nil
	})
}

// SaveSettings upserts the single settings record.
func (s *Store) SaveSettings(ctx context.Context, settings *core.Settings) error {
	return saveSettings(ctx, s.pool, settings)
}

func (s *Store) loadSettings(ctx context.Context) (core.Settings, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM settings WHERE id = 1`).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return core.Settings{}, nil
	}
	if err != nil {
		return core.Settings{}, fmt.Errorf("querying settings: %w", err)
	}
	var settings core.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return core.Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return settings, nil
}

func (s *Store) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertGrow(ctx context.Context, db DBTX, grow *core.Grow) error {
	targets, err := json.Marshal(grow.Targets)
	if err != nil {
		return fmt.Errorf("encoding targets for %s: %w", grow.ID, err)
	}
	tags := grow.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("encoding tags for %s: %w", grow.ID, err)
	}
	_, err = db.Exec(ctx, `
		INSERT INTO grows (id, name, species, method, substrate, start_date,
		                   phase, status, targets, tags, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		grow.ID, grow.Name, grow.Species, grow.Method, grow.Substrate,
		grow.StartDate, grow.Phase, grow.Status, targets, tagsJSON,
		grow.Notes, grow.CreatedAt, grow.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting grow %s: %w", grow.ID, err)
	}
	return nil
}

func insertLog(ctx context.Context, db DBTX, log *core.Log) error {
	_, err := db.Exec(ctx, `
		INSERT INTO logs (id, grow_id, logged_at, temp, humidity, co2, fae,
		                  light_hours, surface_condition, block, treatment,
		                  growth_mm_per_day, flush_height_mm, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		log.ID, log.GrowID, log.Timestamp, log.Temp, log.Humidity, log.CO2,
		log.FAE, log.LightHours, log.SurfaceCondition, log.Block,
		log.Treatment, log.GrowthMmPerDay, log.FlushHeightMm, log.Notes,
		log.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting log %s: %w", log.ID, err)
	}
	return nil
}

func insertEvent(ctx context.Context, db DBTX, event *core.Event) error {
	_, err := db.Exec(ctx, `
		INSERT INTO events (id, grow_id, logged_at, type, severity, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		event.ID, event.GrowID, event.Timestamp, event.Type, event.Severity,
		event.Notes)
	if err != nil {
		return fmt.Errorf("inserting event %s: %w", event.ID, err)
	}
	return nil
}

func insertHarvest(ctx context.Context, db DBTX, harvest *core.Harvest) error {
	_, err := db.Exec(ctx, `
		INSERT INTO harvests (id, grow_id, harvested_on, flush_number, weight, quality, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		harvest.ID, harvest.GrowID, harvest.Date, harvest.FlushNumber,
		harvest.Weight, harvest.Quality, harvest.Notes)
	if err != nil {
		return fmt.Errorf("inserting harvest %s: %w", harvest.ID, err)
	}
	return nil
}

func saveSettings(ctx context.Context, db DBTX, settings *core.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	_, err = db.Exec(ctx, `
		INSERT INTO settings (id, data) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data`, raw)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
