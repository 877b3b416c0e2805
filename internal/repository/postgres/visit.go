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

type visitRepository struct {
	pools *TenantPools
}

func NewVisitRepository(pools *TenantPools) repository.VisitRepository {
	return &visitRepository{pools: pools}
}

const visitColumns = `id, visit_date, visit_hour, place, doctor_id, patient_id`

func (r *visitRepository) List(ctx context.Context) ([]model.Visit, error) {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return nil, err
	}

	visits := []model.Visit{}
	query := `SELECT ` + visitColumns + ` FROM visit ORDER BY id`
	if err := sqlx.SelectContext(ctx, run, &visits, query); err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}

func (r *visitRepository) ListPage(ctx context.Context, patientID *int64, offset, limit int) ([]model.Visit, int64, error) {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return nil, 0, err
	}

	visits := []model.Visit{}
	query := `SELECT ` + visitColumns + ` FROM visit`
	countQuery := `SELECT COUNT(*) FROM visit`
	args := []interface{}{}
	if patientID != nil {
		query += ` WHERE patient_id = $1`
		countQuery += ` WHERE patient_id = $1`
		args = append(args, *patientID)
	}
	query += fmt.Sprintf(" ORDER BY visit_date DESC, visit_hour DESC OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)

	if err := sqlx.SelectContext(ctx, run, &visits, query, append(args, offset, limit)...); err != nil {
		return nil, 0, fmt.Errorf("failed to list visits page: %w", err)
	}

	var total int64
	if err := sqlx.GetContext(ctx, run, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count visits: %w", err)
	}
	return visits, total, nil
}

func (r *visitRepository) Get(ctx context.Context, id int64) (*model.Visit, error) {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return nil, err
	}

	var visit model.Visit
	query := `SELECT ` + visitColumns + ` FROM visit WHERE id = $1`
	if err := sqlx.GetContext(ctx, run, &visit, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}
	return &visit, nil
}

func (r *visitRepository) FindBySlot(ctx context.Context, date model.Date, at model.ClockTime, doctorID int64) (*model.Visit, error) {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return nil, err
	}

	var visit model.Visit
	query := `
		SELECT ` + visitColumns + `
		FROM visit
		WHERE visit_date = $1 AND visit_hour = $2 AND doctor_id = $3
	`
	if err := sqlx.GetContext(ctx, run, &visit, query, date, at, doctorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query visit slot: %w", err)
	}
	return &visit, nil
}

func (r *visitRepository) Create(ctx context.Context, visit *model.Visit) error {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO visit (visit_date, visit_hour, place, doctor_id, patient_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	row := run.QueryRowxContext(ctx, query,
		visit.VisitDate, visit.VisitTime, visit.Place, visit.DoctorID, visit.PatientID)
	if err := row.Scan(&visit.ID); err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}
	return nil
}

func (r *visitRepository) Update(ctx context.Context, visit *model.Visit) error {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}

	query := `
		UPDATE visit
		SET visit_date = $1, visit_hour = $2, place = $3, doctor_id = $4, patient_id = $5
		WHERE id = $6
	`
	result, err := run.ExecContext(ctx, query,
		visit.VisitDate, visit.VisitTime, visit.Place, visit.DoctorID, visit.PatientID, visit.ID)
	if err != nil {
		return fmt.Errorf("failed to update visit: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrVisitNotFound
	}
	return nil
}

func (r *visitRepository) Delete(ctx context.Context, id int64) error {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}

	result, err := run.ExecContext(ctx, `DELETE FROM visit WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrVisitNotFound
	}
	return nil
}

func (r *visitRepository) ExistsByDoctor(ctx context.Context, doctorID int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM visit WHERE doctor_id = $1)`, doctorID)
}

func (r *visitRepository) ExistsByPatient(ctx context.Context, patientID int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM visit WHERE patient_id = $1)`, patientID)
}

func (r *visitRepository) exists(ctx context.Context, query string, id int64) (bool, error) {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := sqlx.GetContext(ctx, run, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check visit existence: %w", err)
	}
	return exists, nil
}

func (r *visitRepository) DeleteByDoctor(ctx context.Context, doctorID int64) error {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}
	if _, err := run.ExecContext(ctx, `DELETE FROM visit WHERE doctor_id = $1`, doctorID); err != nil {
		return fmt.Errorf("failed to delete visits of doctor: %w", err)
	}
	return nil
}

func (r *visitRepository) DeleteByPatient(ctx context.Context, patientID int64) error {
	run, err := r.pools.runner(ctx)
	if err != nil {
		return err
	}
	if _, err := run.ExecContext(ctx, `DELETE FROM visit WHERE patient_id = $1`, patientID); err != nil {
		return fmt.Errorf("failed to delete visits of patient: %w", err)
	}
	return nil
}
