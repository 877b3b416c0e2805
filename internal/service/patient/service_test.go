package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docvisit/practice-api/internal/model"
	"github.com/docvisit/practice-api/internal/repository"
)

type fakePatientRepo struct {
	patients map[int64]model.Patient
	nextID   int64
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[int64]model.Patient), nextID: 1}
}

func (f *fakePatientRepo) List(ctx context.Context) ([]model.Patient, error) {
	out := []model.Patient{}
	for _, p := range f.patients {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePatientRepo) ListPage(ctx context.Context, offset, limit int) ([]model.Patient, int64, error) {
	all, _ := f.List(ctx)
	total := int64(len(all))
	if offset >= len(all) {
		return []model.Patient{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakePatientRepo) Get(ctx context.Context, id int64) (*model.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePatientRepo) Create(ctx context.Context, patient *model.Patient) error {
	patient.ID = f.nextID
	f.nextID++
	f.patients[patient.ID] = *patient
	return nil
}

func (f *fakePatientRepo) Update(ctx context.Context, patient *model.Patient) error {
	if _, ok := f.patients[patient.ID]; !ok {
		return model.ErrPatientNotFound
	}
	f.patients[patient.ID] = *patient
	return nil
}

func (f *fakePatientRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.patients[id]; !ok {
		return model.ErrPatientNotFound
	}
	delete(f.patients, id)
	return nil
}

type fakeVisits struct {
	repository.VisitRepository
	patientsWithVisits map[int64]bool
	cascaded           []int64
}

func (f *fakeVisits) ExistsByPatient(ctx context.Context, patientID int64) (bool, error) {
	return f.patientsWithVisits[patientID], nil
}

func (f *fakeVisits) DeleteByPatient(ctx context.Context, patientID int64) error {
	f.cascaded = append(f.cascaded, patientID)
	delete(f.patientsWithVisits, patientID)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopRecorder struct{}

func (nopRecorder) Record(ctx context.Context, entityType string, entityID int64, eventType string, payload interface{}) error {
	return nil
}

func newService() (*Service, *fakePatientRepo, *fakeVisits) {
	repo := newFakePatientRepo()
	visits := &fakeVisits{patientsWithVisits: make(map[int64]bool)}
	return NewService(repo, visits, passthroughTx{}, nopRecorder{}), repo, visits
}

func request() model.PatientRequest {
	return model.PatientRequest{FirstName: "Iris", LastName: "Boden", Address: "12 Elm Street"}
}

func TestCreateUpdateGet(t *testing.T) {
	svc, _, _ := newService()

	created, err := svc.Create(context.Background(), request())
	require.NoError(t, err)

	updated := request()
	updated.Address = "99 Oak Avenue"
	saved, err := svc.Update(context.Background(), created.ID, updated)
	require.NoError(t, err)
	assert.Equal(t, "99 Oak Avenue", saved.Address)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestDeleteRefusedWithDependentVisits(t *testing.T) {
	svc, repo, visits := newService()

	created, err := svc.Create(context.Background(), request())
	require.NoError(t, err)
	visits.patientsWithVisits[created.ID] = true

	err = svc.Delete(context.Background(), created.ID, false)
	assert.ErrorIs(t, err, model.ErrPatientHasVisits)
	assert.Contains(t, repo.patients, created.ID)
	assert.Empty(t, visits.cascaded)
}

func TestDeleteCascade(t *testing.T) {
	svc, repo, visits := newService()

	created, err := svc.Create(context.Background(), request())
	require.NoError(t, err)
	visits.patientsWithVisits[created.ID] = true

	require.NoError(t, svc.Delete(context.Background(), created.ID, true))
	assert.NotContains(t, repo.patients, created.ID)
	assert.Equal(t, []int64{created.ID}, visits.cascaded)
}

func TestDeleteNotFound(t *testing.T) {
	svc, _, _ := newService()

	err := svc.Delete(context.Background(), 42, false)
	assert.ErrorIs(t, err, model.ErrPatientNotFound)
}
