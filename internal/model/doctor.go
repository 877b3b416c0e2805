package model

type Doctor struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Specialty string `json:"specialty" db:"specialty"`
}

type DoctorRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
}

func (r DoctorRequest) ToDoctor(id int64) Doctor {
	return Doctor{
		ID:        id,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Specialty: r.Specialty,
	}
}
