// Package store persists wells, operation rows, and equipment for the data
// service.
package store

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// WellRow is a directory entry as stored.
type WellRow struct {
	ID       string
	Name     string
	Location string
}

// OperationRow is one drilling operation from a daily report. Depth and
// hour fields are nullable; rows with unusable depths are skipped when
// segments are assembled, not rejected wholesale.
type OperationRow struct {
	ID            string
	WellID        string
	DepthFrom     *float64
	DepthTo       *float64
	OperationType string
	Description   string
	DurationHours *float64
	NPTHours      *float64
	RecordedAt    string
}

// EquipmentRow is one equipment record as stored. RiskScore is nullable;
// absent scores are computed downstream.
type EquipmentRow struct {
	ID           string
	WellID       string
	Name         string
	Tag          string
	RiskScore    *float64
	HoursUsed    float64
	HoursMax     float64
	StressEvents int
	Action       string
	NextHours    float64
	Note         string
}

// Open opens (creating if needed) the sqlite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS wells (
		well_id   TEXT PRIMARY KEY,
		well_name TEXT NOT NULL,
		location  TEXT DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS operations (
		id             TEXT PRIMARY KEY,
		well_id        TEXT NOT NULL,
		depth_from     REAL,
		depth_to       REAL,
		operation_type TEXT DEFAULT '',
		description    TEXT DEFAULT '',
		duration_hours REAL,
		npt_hours      REAL,
		recorded_at    TEXT DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_operations_well ON operations(well_id);

	CREATE TABLE IF NOT EXISTS equipment (
		id            TEXT PRIMARY KEY,
		well_id       TEXT NOT NULL,
		name          TEXT NOT NULL,
		tag           TEXT DEFAULT '',
		risk_score    REAL,
		hours_used    REAL DEFAULT 0,
		hours_max     REAL DEFAULT 0,
		stress_events INTEGER DEFAULT 0,
		action        TEXT DEFAULT '',
		next_hours    REAL DEFAULT 0,
		note          TEXT DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_equipment_well ON equipment(well_id);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ListWells returns the directory in insertion order.
func (s *Store) ListWells(ctx context.Context) ([]WellRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT well_id, well_name, location FROM wells ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WellRow
	for rows.Next() {
		var w WellRow
		if err := rows.Scan(&w.ID, &w.Name, &w.Location); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// HasWell reports whether the well exists.
func (s *Store) HasWell(ctx context.Context, wellID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wells WHERE well_id = ?`, wellID).Scan(&n)
	return n > 0, err
}

// CreateWell inserts a well if absent. Returns false when it already
// existed.
func (s *Store) CreateWell(ctx context.Context, id, name, location string) (bool, error) {
	if name == "" {
		name = id
	}
	exists, err := s.HasWell(ctx, id)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO wells (well_id, well_name, location) VALUES (?, ?, ?)`,
		id, name, location)
	return err == nil, err
}

// OperationsForWell returns the well's operation rows ordered by depth.
func (s *Store) OperationsForWell(ctx context.Context, wellID string) ([]OperationRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, well_id, depth_from, depth_to, operation_type, description,
		       duration_hours, npt_hours, recorded_at
		FROM operations WHERE well_id = ?
		ORDER BY depth_from ASC, rowid ASC`, wellID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OperationRow
	for rows.Next() {
		var op OperationRow
		if err := rows.Scan(&op.ID, &op.WellID, &op.DepthFrom, &op.DepthTo,
			&op.OperationType, &op.Description, &op.DurationHours, &op.NPTHours,
			&op.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return out, rows.Err()
}

// InsertOperation stores one operation row.
func (s *Store) InsertOperation(ctx context.Context, op OperationRow) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO operations (id, well_id, depth_from, depth_to, operation_type,
		                        description, duration_hours, npt_hours, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		op.ID, op.WellID, op.DepthFrom, op.DepthTo, op.OperationType,
		op.Description, op.DurationHours, op.NPTHours, op.RecordedAt)
	return err
}

// EquipmentForWell returns the well's equipment rows in insertion order.
func (s *Store) EquipmentForWell(ctx context.Context, wellID string) ([]EquipmentRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, well_id, name, tag, risk_score, hours_used, hours_max,
		       stress_events, action, next_hours, note
		FROM equipment WHERE well_id = ? ORDER BY rowid`, wellID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EquipmentRow
	for rows.Next() {
		var e EquipmentRow
		if err := rows.Scan(&e.ID, &e.WellID, &e.Name, &e.Tag, &e.RiskScore,
			&e.HoursUsed, &e.HoursMax, &e.StressEvents, &e.Action,
			&e.NextHours, &e.Note); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// InsertEquipment stores one equipment row.
func (s *Store) InsertEquipment(ctx context.Context, e EquipmentRow) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO equipment (id, well_id, name, tag, risk_score, hours_used,
		                       hours_max, stress_events, action, next_hours, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.WellID, e.Name, e.Tag, e.RiskScore, e.HoursUsed, e.HoursMax,
		e.StressEvents, e.Action, e.NextHours, e.Note)
	return err
}
