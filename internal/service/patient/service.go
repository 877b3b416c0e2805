package patient

import (
	"context"
	"fmt"

	"github.com/docvisit/practice-api/internal/model"
	"github.com/docvisit/practice-api/internal/repository"
	"github.com/docvisit/practice-api/internal/service/event"
)

type Service struct {
	repo   repository.PatientRepository
	visits repository.VisitRepository
	tx     repository.TxRunner
	events event.Recorder
}

func NewService(repo repository.PatientRepository, visits repository.VisitRepository, tx repository.TxRunner, events event.Recorder) *Service {
	return &Service{repo: repo, visits: visits, tx: tx, events: events}
}

func (s *Service) List(ctx context.Context) ([]model.Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListPage(ctx context.Context, page, size int) (*model.Page, error) {
	patients, total, err := s.repo.ListPage(ctx, page*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to page patients: %w", err)
	}
	return model.NewPage(patients, page, size, total), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, model.ErrPatientNotFound
	}
	return patient, nil
}

func (s *Service) Create(ctx context.Context, req model.PatientRequest) (*model.Patient, error) {
	patient := req.ToPatient(0)
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, &patient); err != nil {
			return err
		}
		return s.events.Record(ctx, "patient", patient.ID, model.EventCreated, patient)
	})
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *Service) Update(ctx context.Context, id int64, req model.PatientRequest) (*model.Patient, error) {
	patient := req.ToPatient(id)
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, &patient); err != nil {
			return err
		}
		return s.events.Record(ctx, "patient", id, model.EventUpdated, patient)
	})
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// Delete removes a patient. Unlike the doctor service it does not return the
// deleted record; the endpoint answers 204 with no body.
func (s *Service) Delete(ctx context.Context, id int64, cascade bool) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		patient, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if patient == nil {
			return model.ErrPatientNotFound
		}

		if !cascade {
			has, err := s.visits.ExistsByPatient(ctx, id)
			if err != nil {
				return err
			}
			if has {
				return model.ErrPatientHasVisits
			}
		} else if err := s.visits.DeleteByPatient(ctx, id); err != nil {
			return err
		}

		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}
		return s.events.Record(ctx, "patient", id, model.EventDeleted, patient)
	})
}
