package model

type Patient struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Address   string `json:"address" db:"address"`
}

type PatientRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Address   string `json:"address" binding:"required"`
}

func (r PatientRequest) ToPatient(id int64) Patient {
	return Patient{
		ID:        id,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
	}
}
