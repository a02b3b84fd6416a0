package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"clinical-rx/internal/domain/prescriptions"
)

type PrescriptionsRepo struct {
	db *sql.DB
}

func NewPrescriptionsRepo(db *sql.DB) *PrescriptionsRepo {
	return &PrescriptionsRepo{db: db}
}

const prescriptionColumns = `
	id, patient_id, doctor_id,
	diagnosis, recommended_medications, dosage, duration, instructions,
	ai_recommendations, justification, alternative_options, warnings, monitoring_plan,
	patient_feedback, doctor_notes,
	status, is_ai_generated,
	created_at, updated_at`

// Create devuelve storage.ErrReference si el paciente o el doctor no existen.
func (r *PrescriptionsRepo) Create(ctx context.Context, p prescriptions.Prescription) (prescriptions.Prescription, error) {
	var j jsonArgs
	args := []any{
		p.PatientID,
		p.DoctorID,
		nullIfEmpty(p.Diagnosis),
		j.enc(p.RecommendedMedications),
		j.enc(p.Dosage),
		nullIfEmpty(p.Duration),
		nullIfEmpty(p.Instructions),
		j.enc(p.AIRecommendations),
		nullIfEmpty(p.Justification),
		j.enc(p.AlternativeOptions),
		j.enc(p.Warnings),
		j.enc(p.MonitoringPlan),
		nullIfEmpty(p.PatientFeedback),
		nullIfEmpty(p.DoctorNotes),
		string(p.Status),
		p.IsAIGenerated,
		p.CreatedAt,
		p.UpdatedAt,
	}
	if j.err != nil {
		return prescriptions.Prescription{}, j.err
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO prescriptions (
			patient_id, doctor_id,
			diagnosis, recommended_medications, dosage, duration, instructions,
			ai_recommendations, justification, alternative_options, warnings, monitoring_plan,
			patient_feedback, doctor_notes,
			status, is_ai_generated,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING id
	`, args...).Scan(&p.ID)
	if err != nil {
		return prescriptions.Prescription{}, mapErr(err)
	}
	return p, nil
}

func (r *PrescriptionsRepo) GetByID(ctx context.Context, id, doctorID int64) (prescriptions.Prescription, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+prescriptionColumns+`
		FROM prescriptions
		WHERE id = $1 AND doctor_id = $2
	`, id, doctorID)
	return scanPrescription(row)
}

func (r *PrescriptionsRepo) List(ctx context.Context, doctorID int64, f prescriptions.ListFilter) ([]prescriptions.Prescription, error) {
	page := f.Page.Normalize()

	q := `SELECT ` + prescriptionColumns + ` FROM prescriptions WHERE doctor_id = $1`
	args := []any{doctorID}
	if f.PatientID != nil {
		args = append(args, *f.PatientID)
		q += fmt.Sprintf(` AND patient_id = $%d`, len(args))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		q += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	args = append(args, page.Skip, page.Limit)
	q += fmt.Sprintf(` ORDER BY id ASC OFFSET $%d LIMIT $%d`, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]prescriptions.Prescription, 0)
	for rows.Next() {
		p, err := scanPrescription(rows)
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

func (r *PrescriptionsRepo) Update(ctx context.Context, p prescriptions.Prescription) error {
	var j jsonArgs
	args := []any{
		p.ID,
		p.DoctorID,
		nullIfEmpty(p.Diagnosis),
		j.enc(p.RecommendedMedications),
		j.enc(p.Dosage),
		nullIfEmpty(p.Duration),
		nullIfEmpty(p.Instructions),
		j.enc(p.AIRecommendations),
		nullIfEmpty(p.Justification),
		j.enc(p.AlternativeOptions),
		j.enc(p.Warnings),
		j.enc(p.MonitoringPlan),
		nullIfEmpty(p.PatientFeedback),
		nullIfEmpty(p.DoctorNotes),
		string(p.Status),
		p.UpdatedAt,
	}
	if j.err != nil {
		return j.err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE prescriptions
		SET
			diagnosis = $3,
			recommended_medications = $4,
			dosage = $5,
			duration = $6,
			instructions = $7,
			ai_recommendations = $8,
			justification = $9,
			alternative_options = $10,
			warnings = $11,
			monitoring_plan = $12,
			patient_feedback = $13,
			doctor_notes = $14,
			status = $15,
			updated_at = $16
		WHERE id = $1 AND doctor_id = $2
	`, args...)
	if err != nil {
		return mapErr(err)
	}
	return affectedOne(res)
}

func (r *PrescriptionsRepo) Delete(ctx context.Context, id, doctorID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM prescriptions WHERE id = $1 AND doctor_id = $2`, id, doctorID)
	if err != nil {
		return mapErr(err)
	}
	return affectedOne(res)
}

func scanPrescription(row rowScanner) (prescriptions.Prescription, error) {
	var p prescriptions.Prescription
	var status string
	var diagnosis, duration, instructions, justification, feedback, notes sql.NullString
	var recommended, dosage, ai, alternatives, warnings, monitoring sql.NullString

	if err := row.Scan(
		&p.ID,
		&p.PatientID,
		&p.DoctorID,
		&diagnosis,
		&recommended,
		&dosage,
		&duration,
		&instructions,
		&ai,
		&justification,
		&alternatives,
		&warnings,
		&monitoring,
		&feedback,
		&notes,
		&status,
		&p.IsAIGenerated,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return prescriptions.Prescription{}, mapErr(err)
	}

	p.Status = prescriptions.Status(status)
	p.Diagnosis = diagnosis.String
	p.Duration = duration.String
	p.Instructions = instructions.String
	p.Justification = justification.String
	p.PatientFeedback = feedback.String
	p.DoctorNotes = notes.String

	var j jsonCols
	j.dec(recommended, &p.RecommendedMedications)
	j.dec(dosage, &p.Dosage)
	j.dec(ai, &p.AIRecommendations)
	j.dec(alternatives, &p.AlternativeOptions)
	j.dec(warnings, &p.Warnings)
	j.dec(monitoring, &p.MonitoringPlan)
	if j.err != nil {
		return prescriptions.Prescription{}, j.err
	}
	return p, nil
}
