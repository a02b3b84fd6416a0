package doctors

import "time"

// Profile son los datos editables del doctor.
type Profile struct {
	FullName       string
	Specialty      string
	Workplace      string
	MedicalLicense string
	Phone          string
}

// Doctor es la cuenta que se autentica. Email e ID no cambian después del registro.
type Doctor struct {
	ID    int64
	Email string

	// PasswordHash nunca sale por la API.
	PasswordHash string

	Profile

	IsActive   bool
	IsVerified bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
