package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"clinical-rx/internal/domain/doctors"
	"clinical-rx/internal/domain/medications"
	"clinical-rx/internal/domain/patients"
	"clinical-rx/internal/domain/prescriptions"
	"clinical-rx/internal/ports/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func anyArgs(n int) []driver.Value {
	out := make([]driver.Value, n)
	for i := range out {
		out[i] = sqlmock.AnyArg()
	}
	return out
}

var fixedTime = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func patientRow(id, doctorID int64) []driver.Value {
	return []driver.Value{
		id, doctorID,
		"Иванов Иван", 65, "male", 80.5, nil,
		nil, "ivanov@x.com", "AF",
		`["hypertension"]`, `{"inr":2.5}`, nil, `[{"substance":"penicillin"}]`, nil,
		nil, nil, nil,
		fixedTime, fixedTime,
	}
}

var patientCols = []string{
	"id", "doctor_id",
	"full_name", "age", "gender", "weight", "height",
	"phone", "email", "diagnosis",
	"comorbidities", "lab_results", "current_medications", "allergies", "previous_anticoagulants",
	"lifestyle_factors", "risk_factors", "social_factors",
	"created_at", "updated_at",
}

func TestDoctorsRepo_Create_ReturnsID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorsRepo(db)

	mock.ExpectQuery(`INSERT INTO doctors`).
		WithArgs(anyArgs(11)...).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	d, err := repo.Create(context.Background(), doctors.Doctor{Email: "doc@x.com", PasswordHash: "h", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(42), d.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorsRepo_Create_UniqueViolationIsConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorsRepo(db)

	mock.ExpectQuery(`INSERT INTO doctors`).
		WithArgs(anyArgs(11)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "doctors_email_key"})

	_, err := repo.Create(context.Background(), doctors.Doctor{Email: "doc@x.com"})
	assert.ErrorIs(t, err, storage.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorsRepo_GetByEmail_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorsRepo(db)

	mock.ExpectQuery(`FROM doctors WHERE email = \$1`).
		WithArgs("Doc@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByEmail(context.Background(), "Doc@x.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorsRepo_Update_NoRowsIsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorsRepo(db)

	mock.ExpectExec(`UPDATE doctors`).
		WithArgs(anyArgs(9)...).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), doctors.Doctor{ID: 9})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPatientsRepo_GetByID_DecodesDocuments(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPatientsRepo(db)

	mock.ExpectQuery(`FROM patients\s+WHERE id = \$1 AND doctor_id = \$2`).
		WithArgs(int64(5), int64(1)).
		WillReturnRows(sqlmock.NewRows(patientCols).AddRow(patientRow(5, 1)...))

	p, err := repo.GetByID(context.Background(), 5, 1)
	require.NoError(t, err)

	assert.Equal(t, patients.GenderMale, p.Gender)
	require.NotNil(t, p.Weight)
	assert.Equal(t, 80.5, *p.Weight)
	assert.Nil(t, p.Height)
	assert.Equal(t, "", p.Phone)
	assert.Equal(t, []string{"hypertension"}, p.Comorbidities)
	assert.Equal(t, 2.5, p.LabResults["inr"])
	assert.Equal(t, "penicillin", p.Allergies[0]["substance"])
	assert.Nil(t, p.CurrentMedications)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientsRepo_GetByID_ForeignOwnerIsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPatientsRepo(db)

	mock.ExpectQuery(`FROM patients`).
		WithArgs(int64(5), int64(2)).
		WillReturnRows(sqlmock.NewRows(patientCols))

	_, err := repo.GetByID(context.Background(), 5, 2)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPatientsRepo_List_OrderedAndPaged(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPatientsRepo(db)

	mock.ExpectQuery(`WHERE doctor_id = \$1\s+ORDER BY id ASC\s+OFFSET \$2\s+LIMIT \$3`).
		WithArgs(int64(1), 2, 5).
		WillReturnRows(sqlmock.NewRows(patientCols).
			AddRow(patientRow(3, 1)...).
			AddRow(patientRow(4, 1)...))

	got, err := repo.List(context.Background(), 1, storage.Page{Skip: 2, Limit: 5})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientsRepo_Create_EncodesNilAsNull(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPatientsRepo(db)

	args := anyArgs(19)
	args[9] = `["ckd"]` // comorbidities
	args[10] = nil      // lab_results
	mock.ExpectQuery(`INSERT INTO patients`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	p, err := repo.Create(context.Background(), patients.Patient{
		DoctorID: 1, FullName: "A", Age: 1, Gender: patients.GenderOther,
		Comorbidities: []string{"ckd"},
		CreatedAt:     fixedTime, UpdatedAt: fixedTime,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientsRepo_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPatientsRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM patients WHERE id = $1 AND doctor_id = $2`)).
		WithArgs(int64(5), int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "prescriptions_patient_id_fkey"})
	assert.ErrorIs(t, repo.Delete(context.Background(), 5, 1), storage.ErrReference)

	mock.ExpectExec(`DELETE FROM patients`).
		WithArgs(int64(6), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 6, 1), storage.ErrNotFound)

	mock.ExpectExec(`DELETE FROM patients`).
		WithArgs(int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(context.Background(), 7, 1))

	assert.NoError(t, mock.ExpectationsWereMet())
}

var medicationCols = []string{
	"id", "name", "generic_name", "drug_class", "mechanism_of_action",
	"available_dosages", "indications", "contraindications", "side_effects",
	"drug_interactions", "monitoring_parameters", "therapeutic_range",
	"is_active", "created_at", "updated_at",
}

func TestMedicationsRepo_Search_EscapesWildcards(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMedicationsRepo(db)

	mock.ExpectQuery(`WHERE name ILIKE \$1 ESCAPE`).
		WithArgs(`%50\%\_a\\b%`, 10).
		WillReturnRows(sqlmock.NewRows(medicationCols))

	got, err := repo.Search(context.Background(), `50%_a\b`, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicationsRepo_Search_DecodesSubShapes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMedicationsRepo(db)

	mock.ExpectQuery(`ILIKE`).
		WithArgs("%аспирин%", 10).
		WillReturnRows(sqlmock.NewRows(medicationCols).AddRow(
			int64(1), "Аспирин", "Ацетилсалициловая кислота", "НПВС", nil,
			`["100 мг"]`, nil, nil, nil,
			`[{"medication":"Варфарин","severity":"высокий","description":"d","management":"m"}]`,
			nil, `{"min":0,"max":100}`,
			true, fixedTime, fixedTime,
		))

	got, err := repo.Search(context.Background(), "аспирин", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Варфарин", got[0].DrugInteractions[0].Medication)
	require.NotNil(t, got[0].TherapeuticRange)
	assert.Equal(t, float64(100), got[0].TherapeuticRange.Max)
	assert.Equal(t, "", got[0].MechanismOfAction)
}

func TestSearchFoldsUnicode(t *testing.T) {
	for _, folds := range []bool{true, false} {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT 'Аспирин' ILIKE '%аспирин%'`).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(folds))

		got, err := SearchFoldsUnicode(context.Background(), db)
		require.NoError(t, err)
		assert.Equal(t, folds, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestSearchFoldsUnicode_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(`ILIKE`).WillReturnError(errors.New("boom"))

	ok, err := SearchFoldsUnicode(context.Background(), db)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestMedicationsRepo_List_BuildsFilters(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMedicationsRepo(db)

	mock.ExpectQuery(`WHERE is_active = TRUE AND drug_class = \$1 ORDER BY id ASC OFFSET \$2 LIMIT \$3`).
		WithArgs("НПВС", 0, 100).
		WillReturnRows(sqlmock.NewRows(medicationCols))

	_, err := repo.List(context.Background(), medications.ListFilter{DrugClass: "НПВС", ActiveOnly: true})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicationsRepo_DrugClasses(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMedicationsRepo(db)

	mock.ExpectQuery(`SELECT DISTINCT drug_class`).
		WillReturnRows(sqlmock.NewRows([]string{"drug_class"}).AddRow("НПВС").AddRow("Бигуаниды"))

	got, err := repo.DrugClasses(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"НПВС", "Бигуаниды"}, got)
}

func TestPrescriptionsRepo_List_Filters(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPrescriptionsRepo(db)

	pid := int64(3)
	mock.ExpectQuery(`WHERE doctor_id = \$1 AND patient_id = \$2 AND status = \$3 ORDER BY id ASC OFFSET \$4 LIMIT \$5`).
		WithArgs(int64(1), int64(3), "active", 0, 100).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.List(context.Background(), 1, prescriptions.ListFilter{PatientID: &pid, Status: prescriptions.StatusActive})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrescriptionsRepo_Create_MissingPatientIsReference(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPrescriptionsRepo(db)

	mock.ExpectQuery(`INSERT INTO prescriptions`).
		WithArgs(anyArgs(18)...).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.Create(context.Background(), prescriptions.Prescription{PatientID: 99, DoctorID: 1, Status: prescriptions.StatusDraft})
	assert.ErrorIs(t, err, storage.ErrReference)
}

func TestPrescriptionsRepo_Update_ScopedByDoctor(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPrescriptionsRepo(db)

	args := anyArgs(16)
	args[0] = int64(4)
	args[1] = int64(2)
	args[14] = "completed"
	mock.ExpectExec(`WHERE id = \$1 AND doctor_id = \$2`).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), prescriptions.Prescription{ID: 4, DoctorID: 2, Status: prescriptions.StatusCompleted})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMapErr(t *testing.T) {
	assert.Nil(t, mapErr(nil))
	assert.ErrorIs(t, mapErr(sql.ErrNoRows), storage.ErrNotFound)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: "23505"}), storage.ErrConflict)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: "23503"}), storage.ErrReference)

	other := errors.New("boom")
	assert.Equal(t, other, mapErr(other))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "аспирин", escapeLike("аспирин"))
}
