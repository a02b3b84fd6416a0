package postgres

import (
	"context"
	"database/sql"

	"clinical-rx/internal/domain/patients"
	"clinical-rx/internal/ports/storage"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

const patientColumns = `
	id, doctor_id,
	full_name, age, gender, weight, height,
	phone, email, diagnosis,
	comorbidities, lab_results, current_medications, allergies, previous_anticoagulants,
	lifestyle_factors, risk_factors, social_factors,
	created_at, updated_at`

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	var j jsonArgs
	args := []any{
		p.DoctorID,
		p.FullName,
		p.Age,
		string(p.Gender),
		nullFloat(p.Weight),
		nullFloat(p.Height),
		nullIfEmpty(p.Phone),
		nullIfEmpty(p.Email),
		nullIfEmpty(p.Diagnosis),
		j.enc(p.Comorbidities),
		j.enc(p.LabResults),
		j.enc(p.CurrentMedications),
		j.enc(p.Allergies),
		j.enc(p.PreviousAnticoagulants),
		j.enc(p.LifestyleFactors),
		j.enc(p.RiskFactors),
		j.enc(p.SocialFactors),
		p.CreatedAt,
		p.UpdatedAt,
	}
	if j.err != nil {
		return patients.Patient{}, j.err
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO patients (
			doctor_id,
			full_name, age, gender, weight, height,
			phone, email, diagnosis,
			comorbidities, lab_results, current_medications, allergies, previous_anticoagulants,
			lifestyle_factors, risk_factors, social_factors,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		RETURNING id
	`, args...).Scan(&p.ID)
	if err != nil {
		return patients.Patient{}, mapErr(err)
	}
	return p, nil
}

func (r *PatientsRepo) GetByID(ctx context.Context, id, doctorID int64) (patients.Patient, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		WHERE id = $1 AND doctor_id = $2
	`, id, doctorID)
	return scanPatient(row)
}

func (r *PatientsRepo) List(ctx context.Context, doctorID int64, page storage.Page) ([]patients.Patient, error) {
	page = page.Normalize()

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		WHERE doctor_id = $1
		ORDER BY id ASC
		OFFSET $2
		LIMIT $3
	`, doctorID, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PatientsRepo) Update(ctx context.Context, p patients.Patient) error {
	var j jsonArgs
	args := []any{
		p.ID,
		p.DoctorID,
		p.FullName,
		p.Age,
		string(p.Gender),
		nullFloat(p.Weight),
		nullFloat(p.Height),
		nullIfEmpty(p.Phone),
		nullIfEmpty(p.Email),
		nullIfEmpty(p.Diagnosis),
		j.enc(p.Comorbidities),
		j.enc(p.LabResults),
		j.enc(p.CurrentMedications),
		j.enc(p.Allergies),
		j.enc(p.PreviousAnticoagulants),
		j.enc(p.LifestyleFactors),
		j.enc(p.RiskFactors),
		j.enc(p.SocialFactors),
		p.UpdatedAt,
	}
	if j.err != nil {
		return j.err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE patients
		SET
			full_name = $3,
			age = $4,
			gender = $5,
			weight = $6,
			height = $7,
			phone = $8,
			email = $9,
			diagnosis = $10,
			comorbidities = $11,
			lab_results = $12,
			current_medications = $13,
			allergies = $14,
			previous_anticoagulants = $15,
			lifestyle_factors = $16,
			risk_factors = $17,
			social_factors = $18,
			updated_at = $19
		WHERE id = $1 AND doctor_id = $2
	`, args...)
	if err != nil {
		return mapErr(err)
	}
	return affectedOne(res)
}

// Delete: si hay recetas apuntando al paciente la FK lo impide y se
// devuelve storage.ErrReference.
func (r *PatientsRepo) Delete(ctx context.Context, id, doctorID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1 AND doctor_id = $2`, id, doctorID)
	if err != nil {
		return mapErr(err)
	}
	return affectedOne(res)
}

func scanPatient(row rowScanner) (patients.Patient, error) {
	var p patients.Patient
	var gender string
	var weight, height sql.NullFloat64
	var phone, email, diagnosis sql.NullString
	var comorbidities, labs, currentMeds, allergies, anticoagulants sql.NullString
	var lifestyle, risk, social sql.NullString

	if err := row.Scan(
		&p.ID,
		&p.DoctorID,
		&p.FullName,
		&p.Age,
		&gender,
		&weight,
		&height,
		&phone,
		&email,
		&diagnosis,
		&comorbidities,
		&labs,
		&currentMeds,
		&allergies,
		&anticoagulants,
		&lifestyle,
		&risk,
		&social,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return patients.Patient{}, mapErr(err)
	}

	p.Gender = patients.Gender(gender)
	p.Weight = floatPtr(weight)
	p.Height = floatPtr(height)
	p.Phone = phone.String
	p.Email = email.String
	p.Diagnosis = diagnosis.String

	var j jsonCols
	j.dec(comorbidities, &p.Comorbidities)
	j.dec(labs, &p.LabResults)
	j.dec(currentMeds, &p.CurrentMedications)
	j.dec(allergies, &p.Allergies)
	j.dec(anticoagulants, &p.PreviousAnticoagulants)
	j.dec(lifestyle, &p.LifestyleFactors)
	j.dec(risk, &p.RiskFactors)
	j.dec(social, &p.SocialFactors)
	if j.err != nil {
		return patients.Patient{}, j.err
	}
	return p, nil
}
