package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"sitepin/internal/model"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS plans (
	id         TEXT PRIMARY KEY,
	project_id TEXT NOT NULL REFERENCES projects(id),
	name       TEXT NOT NULL,
	image_url  TEXT NOT NULL,
	width      INTEGER NOT NULL,
	height     INTEGER NOT NULL,
	is_active  INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_plans_project ON plans(project_id);

CREATE TABLE IF NOT EXISTS photos (
	id          TEXT PRIMARY KEY,
	project_id  TEXT NOT NULL REFERENCES projects(id),
	image_url   TEXT NOT NULL,
	latitude    REAL,
	longitude   REAL,
	captured_at TEXT,
	created_at  TEXT NOT NULL,
	detections  TEXT
);
CREATE INDEX IF NOT EXISTS idx_photos_project ON photos(project_id);

CREATE TABLE IF NOT EXISTS placements (
	id         TEXT PRIMARY KEY,
	photo_id   TEXT NOT NULL UNIQUE,
	plan_id    TEXT NOT NULL REFERENCES plans(id),
	x          REAL NOT NULL,
	y          REAL NOT NULL,
	method     TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_placements_plan ON placements(plan_id);
`

// SQLite implements Store on a local SQLite database.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// Open opens (creating if necessary) the database at path and runs the
// schema migration. Pass ":memory:" for an in-memory database.
func Open(path string) (*SQLite, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) CreateProject(ctx context.Context, name string) (model.Project, error) {
	p := model.Project{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, created_at) VALUES (?, ?, ?)
	`, p.ID, p.Name, p.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return model.Project{}, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

func (s *SQLite) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at FROM projects ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		var created string
		if err := rows.Scan(&p.ID, &p.Name, &created); err != nil {
			return nil, err
		}
		p.CreatedAt = parseTime(created)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *SQLite) CreatePlan(ctx context.Context, plan model.Plan) (model.Plan, error) {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	plan.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Plan{}, err
	}
	defer tx.Rollback()

	// The first plan of a project becomes active.
	var count int
	if err := tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM plans WHERE project_id = ?
	`, plan.ProjectID).Scan(&count); err != nil {
		return model.Plan{}, err
	}
	plan.IsActive = count == 0

	_, err = tx.ExecContext(ctx, `
		INSERT INTO plans (id, project_id, name, image_url, width, height, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, plan.ID, plan.ProjectID, plan.Name, plan.ImageURL, plan.Width, plan.Height,
		plan.IsActive, plan.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return model.Plan{}, fmt.Errorf("create plan: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return model.Plan{}, err
	}
	return plan, nil
}

func (s *SQLite) ListPlans(ctx context.Context, projectID string) ([]model.Plan, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, name, image_url, width, height, is_active, created_at
		FROM plans WHERE project_id = ? ORDER BY created_at
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []model.Plan
	for rows.Next() {
		var p model.Plan
		var created string
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Name, &p.ImageURL,
			&p.Width, &p.Height, &p.IsActive, &created); err != nil {
			return nil, err
		}
		p.CreatedAt = parseTime(created)
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (s *SQLite) DeletePlan(ctx context.Context, planID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var projectID string
	var active bool
	err = tx.QueryRowContext(ctx, `
		SELECT project_id, is_active FROM plans WHERE id = ?
	`, planID).Scan(&projectID, &active)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if active {
		return ErrPlanActive
	}

	var count int
	if err := tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM plans WHERE project_id = ?
	`, projectID).Scan(&count); err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastPlan
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM placements WHERE plan_id = ?`, planID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, planID); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLite) SetActivePlan(ctx context.Context, projectID, planID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var prevID string
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM plans WHERE project_id = ? AND is_active = 1
	`, projectID).Scan(&prevID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE plans SET is_active = 0 WHERE project_id = ?
	`, projectID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `
		UPDATE plans SET is_active = 1 WHERE id = ? AND project_id = ?
	`, planID, projectID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	// Cascade invalidation runs after the switch has committed.
	// Failure here leaves the switch in place; the caller surfaces
	// the inconsistency.
	if prevID != "" && prevID != planID {
		if _, err := s.db.ExecContext(ctx, `
			DELETE FROM placements WHERE plan_id = ?
		`, prevID); err != nil {
			return &CascadeError{PrevPlanID: prevID, Err: err}
		}
	}
	return nil
}

func (s *SQLite) CreatePhoto(ctx context.Context, photo model.Photo) (model.Photo, error) {
	if photo.ID == "" {
		photo.ID = uuid.NewString()
	}
	photo.CreatedAt = time.Now().UTC()

	var detections any
	if len(photo.Detections) > 0 {
		data, err := json.Marshal(photo.Detections)
		if err != nil {
			return model.Photo{}, fmt.Errorf("encode detections: %w", err)
		}
		detections = string(data)
	}
	var captured any
	if photo.CapturedAt != nil {
		captured = photo.CapturedAt.UTC().Format(time.RFC3339Nano)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO photos (id, project_id, image_url, latitude, longitude, captured_at, created_at, detections)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, photo.ID, photo.ProjectID, photo.ImageURL, photo.Latitude, photo.Longitude,
		captured, photo.CreatedAt.Format(time.RFC3339Nano), detections)
	if err != nil {
		return model.Photo{}, fmt.Errorf("create photo: %w", err)
	}
	return photo, nil
}

func (s *SQLite) ListPhotos(ctx context.Context, projectID string) ([]model.Photo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, image_url, latitude, longitude, captured_at, created_at, detections
		FROM photos WHERE project_id = ? ORDER BY created_at
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []model.Photo
	for rows.Next() {
		var p model.Photo
		var captured, detections sql.NullString
		var created string
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.ImageURL, &p.Latitude, &p.Longitude,
			&captured, &created, &detections); err != nil {
			return nil, err
		}
		p.CreatedAt = parseTime(created)
		if captured.Valid {
			t := parseTime(captured.String)
			p.CapturedAt = &t
		}
		if detections.Valid && detections.String != "" {
			if err := json.Unmarshal([]byte(detections.String), &p.Detections); err != nil {
				return nil, fmt.Errorf("decode detections for photo %s: %w", p.ID, err)
			}
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (s *SQLite) DeletePhotos(ctx context.Context, photoIDs []string) error {
	if len(photoIDs) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, id := range photoIDs {
		if _, err := tx.ExecContext(ctx, `DELETE FROM placements WHERE photo_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLite) UpsertPlacement(ctx context.Context, photoID, planID string, x, y float64, method model.PlacementMethod) (model.Placement, error) {
	if !validPercent(x) || !validPercent(y) {
		return model.Placement{}, fmt.Errorf("%w: (%v, %v)", ErrBadPosition, x, y)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Placement{}, err
	}
	defer tx.Rollback()

	// The one-placement-per-photo invariant is realized here at the
	// write boundary; the UNIQUE(photo_id) constraint is a backstop.
	p := model.Placement{
		PhotoID: photoID,
		PlanID:  planID,
		X:       x,
		Y:       y,
		Method:  method,
	}
	var created string
	err = tx.QueryRowContext(ctx, `
		SELECT id, created_at FROM placements WHERE photo_id = ?
	`, photoID).Scan(&p.ID, &created)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		p.ID = uuid.NewString()
		p.CreatedAt = time.Now().UTC()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO placements (id, photo_id, plan_id, x, y, method, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, p.ID, p.PhotoID, p.PlanID, p.X, p.Y, string(p.Method),
			p.CreatedAt.Format(time.RFC3339Nano))
		if err != nil {
			return model.Placement{}, fmt.Errorf("insert placement: %w", err)
		}
	case err != nil:
		return model.Placement{}, err
	default:
		p.CreatedAt = parseTime(created)
		_, err = tx.ExecContext(ctx, `
			UPDATE placements SET plan_id = ?, x = ?, y = ?, method = ? WHERE id = ?
		`, p.PlanID, p.X, p.Y, string(p.Method), p.ID)
		if err != nil {
			return model.Placement{}, fmt.Errorf("update placement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Placement{}, err
	}
	return p, nil
}

func (s *SQLite) DeletePlacement(ctx context.Context, photoID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM placements WHERE photo_id = ?`, photoID)
	return err
}

func (s *SQLite) ListPlacements(ctx context.Context, projectID string) ([]model.Placement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT pl.id, pl.photo_id, pl.plan_id, pl.x, pl.y, pl.method, pl.created_at
		FROM placements pl
		JOIN plans p ON p.id = pl.plan_id
		WHERE p.project_id = ?
		ORDER BY pl.created_at
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var placements []model.Placement
	for rows.Next() {
		var p model.Placement
		var method, created string
		if err := rows.Scan(&p.ID, &p.PhotoID, &p.PlanID, &p.X, &p.Y, &method, &created); err != nil {
			return nil, err
		}
		p.Method = model.PlacementMethod(method)
		p.CreatedAt = parseTime(created)
		placements = append(placements, p)
	}
	return placements, rows.Err()
}

func validPercent(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 100
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
