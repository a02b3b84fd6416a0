package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"clinical-rx/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

const medicationColumns = `
	id, name, generic_name, drug_class, mechanism_of_action,
	available_dosages, indications, contraindications, side_effects,
	drug_interactions, monitoring_parameters, therapeutic_range,
	is_active, created_at, updated_at`

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) (medications.Medication, error) {
	var j jsonArgs
	args := []any{
		m.Name,
		nullIfEmpty(m.GenericName),
		nullIfEmpty(m.DrugClass),
		nullIfEmpty(m.MechanismOfAction),
		j.enc(m.AvailableDosages),
		j.enc(m.Indications),
		j.enc(m.Contraindications),
		j.enc(m.SideEffects),
		j.enc(m.DrugInteractions),
		j.enc(m.MonitoringParameters),
		j.enc(m.TherapeuticRange),
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	}
	if j.err != nil {
		return medications.Medication{}, j.err
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medications (
			name, generic_name, drug_class, mechanism_of_action,
			available_dosages, indications, contraindications, side_effects,
			drug_interactions, monitoring_parameters, therapeutic_range,
			is_active, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING id
	`, args...).Scan(&m.ID)
	if err != nil {
		return medications.Medication{}, mapErr(err)
	}
	return m, nil
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id int64) (medications.Medication, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+medicationColumns+` FROM medications WHERE id = $1`, id)
	return scanMedication(row)
}

func (r *MedicationsRepo) List(ctx context.Context, f medications.ListFilter) ([]medications.Medication, error) {
	page := f.Page.Normalize()

	where := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if f.ActiveOnly {
		where = append(where, "is_active = TRUE")
	}
	if f.DrugClass != "" {
		args = append(args, f.DrugClass)
		where = append(where, fmt.Sprintf("drug_class = $%d", len(args)))
	}

	q := `SELECT ` + medicationColumns + ` FROM medications`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, page.Skip, page.Limit)
	q += fmt.Sprintf(` ORDER BY id ASC OFFSET $%d LIMIT $%d`, len(args)-1, len(args))

	return r.query(ctx, q, args...)
}

// Search usa ILIKE con los comodines de q escapados: q es texto literal.
// El plegado fuera de ASCII sigue el LC_CTYPE de la base; ver SearchFoldsUnicode.
func (r *MedicationsRepo) Search(ctx context.Context, q string, limit int) ([]medications.Medication, error) {
	return r.query(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY id ASC
		LIMIT $2
	`, "%"+escapeLike(q)+"%", limit)
}

func (r *MedicationsRepo) DrugClasses(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT drug_class
		FROM medications
		WHERE drug_class IS NOT NULL AND drug_class <> '' AND is_active = TRUE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	var j jsonArgs
	args := []any{
		m.ID,
		m.Name,
		nullIfEmpty(m.GenericName),
		nullIfEmpty(m.DrugClass),
		nullIfEmpty(m.MechanismOfAction),
		j.enc(m.AvailableDosages),
		j.enc(m.Indications),
		j.enc(m.Contraindications),
		j.enc(m.SideEffects),
		j.enc(m.DrugInteractions),
		j.enc(m.MonitoringParameters),
		j.enc(m.TherapeuticRange),
		m.IsActive,
		m.UpdatedAt,
	}
	if j.err != nil {
		return j.err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE medications
		SET
			name = $2,
			generic_name = $3,
			drug_class = $4,
			mechanism_of_action = $5,
			available_dosages = $6,
			indications = $7,
			contraindications = $8,
			side_effects = $9,
			drug_interactions = $10,
			monitoring_parameters = $11,
			therapeutic_range = $12,
			is_active = $13,
			updated_at = $14
		WHERE id = $1
	`, args...)
	if err != nil {
		return mapErr(err)
	}
	return affectedOne(res)
}

func (r *MedicationsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	return affectedOne(res)
}

func (r *MedicationsRepo) query(ctx context.Context, q string, args ...any) ([]medications.Medication, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMedication(row rowScanner) (medications.Medication, error) {
	var m medications.Medication
	var generic, class, mechanism sql.NullString
	var dosages, indications, contraindications, sideEffects sql.NullString
	var interactions, monitoring, therapeutic sql.NullString

	if err := row.Scan(
		&m.ID,
		&m.Name,
		&generic,
		&class,
		&mechanism,
		&dosages,
		&indications,
		&contraindications,
		&sideEffects,
		&interactions,
		&monitoring,
		&therapeutic,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return medications.Medication{}, mapErr(err)
	}

	m.GenericName = generic.String
	m.DrugClass = class.String
	m.MechanismOfAction = mechanism.String

	var j jsonCols
	j.dec(dosages, &m.AvailableDosages)
	j.dec(indications, &m.Indications)
	j.dec(contraindications, &m.Contraindications)
	j.dec(sideEffects, &m.SideEffects)
	j.dec(interactions, &m.DrugInteractions)
	j.dec(monitoring, &m.MonitoringParameters)
	j.dec(therapeutic, &m.TherapeuticRange)
	if j.err != nil {
		return medications.Medication{}, j.err
	}
	return m, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
