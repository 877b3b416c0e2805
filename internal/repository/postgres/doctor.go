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

type doctorRepository struct {
	pools *TenantPools
}

func NewDoctorRepository(pools *TenantPools) repository.DoctorRepository {
	return &doctorRepository{pools: pools}
}

func (r *doctorRepository) List(ctx context.Context) ([]model.Doctor, error) {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return nil, err
	}

	doctors := []model.Doctor{}
	query := `
		SELECT id, first_name, last_name, specialty
		FROM doctor
		ORDER BY id
	`
	if err := sqlx.SelectContext(ctx, run, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) ListPage(ctx context.Context, offset, limit int) ([]model.Doctor, int64, error) {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return nil, 0, err
	}

	doctors := []model.Doctor{}
	query := `
		SELECT id, first_name, last_name, specialty
		FROM doctor
		ORDER BY last_name, first_name
		OFFSET $1 LIMIT $2
	`
	if err := sqlx.SelectContext(ctx, run, &doctors, query, offset, limit); err != nil {
		return nil, 0, fmt.Errorf("failed to list doctors page: %w", err)
	}

	var total int64
	if err := sqlx.GetContext(ctx, run, &total, `SELECT COUNT(*) FROM doctor`); err != nil {
		return nil, 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return doctors, total, nil
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return nil, err
	}

	var doctor model.Doctor
	query := `
		SELECT id, first_name, last_name, specialty
		FROM doctor
		WHERE id = $1
	`
	if err := sqlx.GetContext(ctx, run, &doctor, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO doctor (first_name, last_name, specialty)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	row := run.QueryRowxContext(ctx, query, doctor.FirstName, doctor.LastName, doctor.Specialty)
	if err := row.Scan(&doctor.ID); err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}

	query := `
		UPDATE doctor
		SET first_name = $1, last_name = $2, specialty = $3
		WHERE id = $4
	`
	result, err := run.ExecContext(ctx, query, doctor.FirstName, doctor.LastName, doctor.Specialty, doctor.ID)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrDoctorNotFound
	}
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id int64) error {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}

	result, err := run.ExecContext(ctx, `DELETE FROM doctor WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrDoctorNotFound
	}
	return nil
}
