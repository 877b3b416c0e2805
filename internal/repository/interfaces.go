package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/docvisit/practice-api/internal/model"
)

// TxRunner runs fn inside a transaction on the current tenant's database.
// Repository calls made through the ctx passed to fn join that transaction.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type DoctorRepository interface {
	List(ctx context.Context) ([]model.Doctor, error)
	ListPage(ctx context.Context, offset, limit int) ([]model.Doctor, int64, error)
	Get(ctx context.Context, id int64) (*model.Doctor, error)
	Create(ctx context.Context, doctor *model.Doctor) error
	Update(ctx context.Context, doctor *model.Doctor) error
	Delete(ctx context.Context, id int64) error
}

type PatientRepository interface {
	List(ctx context.Context) ([]model.Patient, error)
	ListPage(ctx context.Context, offset, limit int) ([]model.Patient, int64, error)
	Get(ctx context.Context, id int64) (*model.Patient, error)
	Create(ctx context.Context, patient *model.Patient) error
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id int64) error
}

type VisitRepository interface {
	List(ctx context.Context) ([]model.Visit, error)
	ListPage(ctx context.Context, patientID *int64, offset, limit int) ([]model.Visit, int64, error)
	Get(ctx context.Context, id int64) (*model.Visit, error)
	// FindBySlot returns the visit occupying (date, time, doctor), or nil.
	FindBySlot(ctx context.Context, date model.Date, at model.ClockTime, doctorID int64) (*model.Visit, error)
	Create(ctx context.Context, visit *model.Visit) error
	Update(ctx context.Context, visit *model.Visit) error
	Delete(ctx context.Context, id int64) error
	ExistsByDoctor(ctx context.Context, doctorID int64) (bool, error)
	ExistsByPatient(ctx context.Context, patientID int64) (bool, error)
	DeleteByDoctor(ctx context.Context, doctorID int64) error
	DeleteByPatient(ctx context.Context, patientID int64) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *model.OutboxEvent) error
	FetchUnprocessed(ctx context.Context, limit int) ([]model.OutboxEvent, error)
	MarkProcessed(ctx context.Context, ids []uuid.UUID) error
}
