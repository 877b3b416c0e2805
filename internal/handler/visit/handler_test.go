package visit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/docvisit/practice-api/internal/model"
)

type stubService struct {
	scheduleErr   error
	rescheduleErr error
	cancelErr     error
	lastPatientID *int64
	lastPage      int
	lastSize      int
}

func (s *stubService) List(ctx context.Context) ([]model.Visit, error) {
	return []model.Visit{}, nil
}

func (s *stubService) ListPage(ctx context.Context, patientID *int64, page, size int) (*model.Page, error) {
	s.lastPatientID = patientID
	s.lastPage = page
	s.lastSize = size
	return model.NewPage([]model.Visit{}, page, size, 0), nil
}

func (s *stubService) Schedule(ctx context.Context, req model.VisitRequest) (*model.Visit, error) {
	if s.scheduleErr != nil {
		return nil, s.scheduleErr
	}
	v := req.ToVisit(11)
	return &v, nil
}

func (s *stubService) Reschedule(ctx context.Context, id int64, req model.VisitRequest) (*model.Visit, error) {
	if s.rescheduleErr != nil {
		return nil, s.rescheduleErr
	}
	v := req.ToVisit(id)
	return &v, nil
}

func (s *stubService) Cancel(ctx context.Context, id int64) error {
	return s.cancelErr
}

func setup(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group(""))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{"visitDate":"2024-01-10","visitTime":"09:00","place":"Ward 3","doctorId":5,"patientId":7}`

func TestScheduleCreatedWithLocation(t *testing.T) {
	r := setup(&stubService{})

	w := do(r, "POST", "/visits", validBody)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/visits/11", w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), `"status":"success"`)
}

// Sub-minute precision is rejected at binding, before the service runs.
func TestScheduleRejectsNonZeroSeconds(t *testing.T) {
	svc := &stubService{}
	r := setup(svc)

	body := strings.Replace(validBody, `"09:00"`, `"09:00:30"`, 1)
	w := do(r, "POST", "/visits", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleMissingFields(t *testing.T) {
	r := setup(&stubService{})

	w := do(r, "POST", "/visits", `{"visitDate":"2024-01-10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleConflict(t *testing.T) {
	r := setup(&stubService{scheduleErr: model.ErrVisitConflict})

	w := do(r, "POST", "/visits", validBody)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRescheduleStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", model.ErrVisitNotFound, http.StatusNotFound},
		{"patient change", model.ErrVisitPatientChange, http.StatusBadRequest},
		{"conflict", model.ErrVisitConflict, http.StatusConflict},
		{"success", nil, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setup(&stubService{rescheduleErr: tc.err})
			w := do(r, "PUT", "/visits/4", validBody)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRescheduleInvalidID(t *testing.T) {
	r := setup(&stubService{})

	w := do(r, "PUT", "/visits/four", validBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancel(t *testing.T) {
	r := setup(&stubService{})
	w := do(r, "DELETE", "/visits/4", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	r = setup(&stubService{cancelErr: model.ErrVisitNotFound})
	w = do(r, "DELETE", "/visits/4", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPagedDefaultsAndFilter(t *testing.T) {
	svc := &stubService{}
	r := setup(svc)

	w := do(r, "GET", "/visits/paged", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, svc.lastPage)
	assert.Equal(t, 10, svc.lastSize)
	assert.Nil(t, svc.lastPatientID)

	w = do(r, "GET", "/visits/paged?id=7&page=2&size=5", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, svc.lastPage)
	assert.Equal(t, 5, svc.lastSize)
	if assert.NotNil(t, svc.lastPatientID) {
		assert.Equal(t, int64(7), *svc.lastPatientID)
	}

	w = do(r, "GET", "/visits/paged?id=seven", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
