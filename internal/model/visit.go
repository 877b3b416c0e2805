package model

type Visit struct {
	ID        int64     `json:"id" db:"id"`
	VisitDate Date      `json:"visitDate" db:"visit_date"`
	VisitTime ClockTime `json:"visitTime" db:"visit_hour"`
	Place     string    `json:"place" db:"place"`
	DoctorID  int64     `json:"doctorId" db:"doctor_id"`
	PatientID int64     `json:"patientId" db:"patient_id"`
}

type VisitRequest struct {
	VisitDate Date      `json:"visitDate" binding:"required"`
	VisitTime ClockTime `json:"visitTime" binding:"required"`
	Place     string    `json:"place" binding:"required"`
	DoctorID  int64     `json:"doctorId" binding:"required"`
	PatientID int64     `json:"patientId" binding:"required"`
}

func (r VisitRequest) ToVisit(id int64) Visit {
	return Visit{
		ID:        id,
		VisitDate: r.VisitDate,
		VisitTime: r.VisitTime,
		Place:     r.Place,
		DoctorID:  r.DoctorID,
		PatientID: r.PatientID,
	}
}
