package scans

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const scanCols = `id, name, age, disease_type, result, subclass, confidence, uploaded_by, created_at`

func (r *repoPG) Create(ctx context.Context, e *ScanEvent) error {
	e.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO scans (id, name, age, disease_type, result, subclass, confidence, uploaded_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		e.ID, e.Name, e.Age, e.DiseaseType, e.Result, e.Subclass, e.Confidence, e.UploadedBy,
	)
	return err
}

func (r *repoPG) ListAll(ctx context.Context) ([]*ScanEvent, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+scanCols+` FROM scans ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectScans(rows)
}

func (r *repoPG) ListByUploader(ctx context.Context, uploader uuid.UUID) ([]*ScanEvent, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+scanCols+` FROM scans WHERE uploaded_by = $1 ORDER BY created_at DESC`, uploader)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectScans(rows)
}

func collectScans(rows pgx.Rows) ([]*ScanEvent, error) {
	var events []*ScanEvent
	for rows.Next() {
		var e ScanEvent
		if err := rows.Scan(&e.ID, &e.Name, &e.Age, &e.DiseaseType, &e.Result, &e.Subclass, &e.Confidence, &e.UploadedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}
