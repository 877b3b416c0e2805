package model

import (
	"fmt"
	"net/http"
)

// BusinessError is an expected outcome of a service operation. The error
// middleware and handlers map StatusCode to the HTTP response; anything
// that does not implement it is treated as an internal error.
type BusinessError struct {
	Code    int
	Message string
}

func (e *BusinessError) Error() string   { return e.Message }
func (e *BusinessError) StatusCode() int { return e.Code }

var (
	ErrDoctorNotFound  = &BusinessError{http.StatusNotFound, "doctor not found"}
	ErrPatientNotFound = &BusinessError{http.StatusNotFound, "patient not found"}
	ErrVisitNotFound   = &BusinessError{http.StatusNotFound, "visit not found"}

	ErrDoctorHasVisits  = &BusinessError{http.StatusConflict, "doctor has scheduled visits"}
	ErrPatientHasVisits = &BusinessError{http.StatusConflict, "patient has scheduled visits"}

	ErrVisitConflict      = &BusinessError{http.StatusConflict, "another visit occupies this date, time and doctor"}
	ErrVisitPatientChange = &BusinessError{http.StatusBadRequest, "a visit's patient cannot be changed"}

	// ErrNoTenant is returned when the ambient context carries no tenant id.
	// The tenant filter rejects such requests before any handler runs.
	ErrNoTenant = &BusinessError{http.StatusBadRequest, "no tenant in request context"}
)

// InvalidTenantError marks a tenant id that is present but not configured.
// Distinct from ErrNoTenant so misconfiguration is diagnosable.
type InvalidTenantError struct {
	TenantID string
}

func (e *InvalidTenantError) Error() string {
	return fmt.Sprintf("unknown tenant %q", e.TenantID)
}

func (e *InvalidTenantError) StatusCode() int { return http.StatusBadRequest }
