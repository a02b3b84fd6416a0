package postgres

import (
	"context"
	"database/sql"

	"clinical-rx/internal/domain/doctors"
)

type DoctorsRepo struct {
	db *sql.DB
}

func NewDoctorsRepo(db *sql.DB) *DoctorsRepo {
	return &DoctorsRepo{db: db}
}

const doctorColumns = `
	id, email, password_hash,
	full_name, specialty, workplace, medical_license, phone,
	is_active, is_verified,
	created_at, updated_at`

func (r *DoctorsRepo) Create(ctx context.Context, d doctors.Doctor) (doctors.Doctor, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO doctors (
			email, password_hash,
			full_name, specialty, workplace, medical_license, phone,
			is_active, is_verified,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`,
		d.Email,
		d.PasswordHash,
		nullIfEmpty(d.FullName),
		nullIfEmpty(d.Specialty),
		nullIfEmpty(d.Workplace),
		nullIfEmpty(d.MedicalLicense),
		nullIfEmpty(d.Phone),
		d.IsActive,
		d.IsVerified,
		d.CreatedAt,
		d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		return doctors.Doctor{}, mapErr(err)
	}
	return d, nil
}

func (r *DoctorsRepo) GetByID(ctx context.Context, id int64) (doctors.Doctor, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE id = $1`, id)
	return scanDoctor(row)
}

// GetByEmail compara exacto (sin lower()).
func (r *DoctorsRepo) GetByEmail(ctx context.Context, email string) (doctors.Doctor, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE email = $1`, email)
	return scanDoctor(row)
}

// Update solo toca el perfil y flags; email e id no cambian.
func (r *DoctorsRepo) Update(ctx context.Context, d doctors.Doctor) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE doctors
		SET
			full_name = $2,
			specialty = $3,
			workplace = $4,
			medical_license = $5,
			phone = $6,
			is_active = $7,
			is_verified = $8,
			updated_at = $9
		WHERE id = $1
	`,
		d.ID,
		nullIfEmpty(d.FullName),
		nullIfEmpty(d.Specialty),
		nullIfEmpty(d.Workplace),
		nullIfEmpty(d.MedicalLicense),
		nullIfEmpty(d.Phone),
		d.IsActive,
		d.IsVerified,
		d.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}
	return affectedOne(res)
}

func scanDoctor(row rowScanner) (doctors.Doctor, error) {
	var d doctors.Doctor
	var fullName, specialty, workplace, lic, phone sql.NullString
	if err := row.Scan(
		&d.ID,
		&d.Email,
		&d.PasswordHash,
		&fullName,
		&specialty,
		&workplace,
		&lic,
		&phone,
		&d.IsActive,
		&d.IsVerified,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return doctors.Doctor{}, mapErr(err)
	}

	d.FullName = fullName.String
	d.Specialty = specialty.String
	d.Workplace = workplace.String
	d.MedicalLicense = lic.String
	d.Phone = phone.String
	return d, nil
}
