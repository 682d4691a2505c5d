package patients

import (
	"context"
	"errors"

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

const patientCols = `id, patient_id, name, age, gender, contact, address, medical_condition, created_at`

func (r *repoPG) Create(ctx context.Context, p *PatientRecord) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patients (id, patient_id, name, age, gender, contact, address, medical_condition)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.PatientID, p.Name, p.Age, p.Gender, p.Contact, p.Address, p.MedicalCondition,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*PatientRecord, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*PatientRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patients ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records, err := collectPatients(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *repoPG) ListByPatientIDs(ctx context.Context, ids []string) ([]*PatientRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patients WHERE patient_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPatients(rows)
}

func (r *repoPG) Update(ctx context.Context, p *PatientRecord) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients SET patient_id=$2, name=$3, age=$4, gender=$5, contact=$6, address=$7, medical_condition=$8
		WHERE id = $1`,
		p.ID, p.PatientID, p.Name, p.Age, p.Gender, p.Contact, p.Address, p.MedicalCondition,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPatient(row pgx.Row) (*PatientRecord, error) {
	var p PatientRecord
	err := row.Scan(&p.ID, &p.PatientID, &p.Name, &p.Age, &p.Gender, &p.Contact, &p.Address, &p.MedicalCondition, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPatients(rows pgx.Rows) ([]*PatientRecord, error) {
	var records []*PatientRecord
	for rows.Next() {
		var p PatientRecord
		if err := rows.Scan(&p.ID, &p.PatientID, &p.Name, &p.Age, &p.Gender, &p.Contact, &p.Address, &p.MedicalCondition, &p.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, &p)
	}
	return records, rows.Err()
}
