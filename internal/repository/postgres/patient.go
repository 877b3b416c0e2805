package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/docvisit/practice-api/internal/model"
	"github.com/docvisit/practice-api/internal/repository"
)

type patientRepository struct {
	pools *TenantPools
}

func NewPatientRepository(pools *TenantPools) repository.PatientRepository {
	return &patientRepository{pools: pools}
}

func (r *patientRepository) List(ctx context.Context) ([]model.Patient, error) {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return nil, err
	}

	patients := []model.Patient{}
	query := `
		SELECT id, first_name, last_name, address
		FROM patient
		ORDER BY id
	`
	if err := sqlx.SelectContext(ctx, run, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) ListPage(ctx context.Context, offset, limit int) ([]model.Patient, int64, error) {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return nil, 0, err
	}

	patients := []model.Patient{}
	query := `
		SELECT id, first_name, last_name, address
		FROM patient
		ORDER BY last_name, first_name
		OFFSET $1 LIMIT $2
	`
	if err := sqlx.SelectContext(ctx, run, &patients, query, offset, limit); err != nil {
		return nil, 0, fmt.Errorf("failed to list patients page: %w", err)
	}

	var total int64
	if err := sqlx.GetContext(ctx, run, &total, `SELECT COUNT(*) FROM patient`); err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return patients, total, nil
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return nil, err
	}

	var patient model.Patient
	query := `
		SELECT id, first_name, last_name, address
		FROM patient
		WHERE id = $1
	`
	if err := sqlx.GetContext(ctx, run, &patient, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO patient (first_name, last_name, address)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	row := run.QueryRowxContext(ctx, query, patient.FirstName, patient.LastName, patient.Address)
	if err := row.Scan(&patient.ID); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}

	query := `
		UPDATE patient
		SET first_name = $1, last_name = $2, address = $3
		WHERE id = $4
	`
	result, err := run.ExecContext(ctx, query, patient.FirstName, patient.LastName, patient.Address, patient.ID)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPatientNotFound
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}

	result, err := run.ExecContext(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPatientNotFound
	}
	return nil
}
