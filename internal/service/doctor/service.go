package doctor

import (
	"context"
	"fmt"

	"github.com/docvisit/practice-api/internal/model"
	"github.com/docvisit/practice-api/internal/repository"
	"github.com/docvisit/practice-api/internal/service/event"
)

type Service struct {
	repo   repository.DoctorRepository
	visits repository.VisitRepository
	tx     repository.TxRunner
	events event.Recorder
}

func NewService(repo repository.DoctorRepository, visits repository.VisitRepository, tx repository.TxRunner, events event.Recorder) *Service {
	return &Service{repo: repo, visits: visits, tx: tx, events: events}
}

func (s *Service) List(ctx context.Context) ([]model.Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListPage(ctx context.Context, page, size int) (*model.Page, error) {
	doctors, total, err := s.repo.ListPage(ctx, page*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to page doctors: %w", err)
	}
	return model.NewPage(doctors, page, size, total), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, model.ErrDoctorNotFound
	}
	return doctor, nil
}

func (s *Service) Create(ctx context.Context, req model.DoctorRequest) (*model.Doctor, error) {
	doctor := req.ToDoctor(0)
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, &doctor); err != nil {
			return err
		}
		return s.events.Record(ctx, "doctor", doctor.ID, model.EventCreated, doctor)
	})
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (s *Service) Update(ctx context.Context, id int64, req model.DoctorRequest) (*model.Doctor, error) {
	doctor := req.ToDoctor(id)
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, &doctor); err != nil {
			return err
		}
		return s.events.Record(ctx, "doctor", id, model.EventUpdated, doctor)
	})
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

// Delete removes a doctor and returns the deleted record. A doctor with
// scheduled visits is only removable with cascade, which deletes the visits
// first in the same transaction.
func (s *Service) Delete(ctx context.Context, id int64, cascade bool) (*model.Doctor, error) {
	var deleted *model.Doctor
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		doctor, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if doctor == nil {
			return model.ErrDoctorNotFound
		}

		if !cascade {
			has, err := s.visits.ExistsByDoctor(ctx, id)
			if err != nil {
				return err
			}
			if has {
				return model.ErrDoctorHasVisits
			}
		} else if err := s.visits.DeleteByDoctor(ctx, id); err != nil {
			return err
		}

		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}
		deleted = doctor
		return s.events.Record(ctx, "doctor", id, model.EventDeleted, doctor)
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
