package memory

import (
	"fmt"
	"time"

	"clinical-rx/internal/domain/clinical"
	"clinical-rx/internal/domain/doctors"
	"clinical-rx/internal/domain/medications"
	"clinical-rx/internal/domain/patients"
	"clinical-rx/internal/domain/prescriptions"
)

// Seed carga los datos de demo con ids fijos 1..3 (fuera del rango sorteado).
// Todos los doctores sembrados comparten password.
func (s *Store) Seed(hasher doctors.PasswordHasher, password string, now time.Time) error {
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	for _, d := range seedDoctors(hash, now) {
		if err := s.doctors.t.insertWithID(d); err != nil {
			return fmt.Errorf("seed doctor %d: %w", d.ID, err)
		}
	}
	for _, p := range seedPatients(now) {
		if err := s.patients.t.insertWithID(p); err != nil {
			return fmt.Errorf("seed patient %d: %w", p.ID, err)
		}
	}
	for _, m := range seedMedications(now) {
		if err := s.medications.t.insertWithID(m); err != nil {
			return fmt.Errorf("seed medication %d: %w", m.ID, err)
		}
	}
	for _, p := range seedPrescriptions(now) {
		if err := s.prescriptions.t.insertWithID(p); err != nil {
			return fmt.Errorf("seed prescription %d: %w", p.ID, err)
		}
	}
	return nil
}

func daysAgo(now time.Time, d int) time.Time { return now.Add(-time.Duration(d) * 24 * time.Hour) }

func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		age--
	}
	return age
}

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func seedDoctors(hash string, now time.Time) []doctors.Doctor {
	mk := func(id int64, email string, p doctors.Profile, days int) doctors.Doctor {
		at := daysAgo(now, days)
		return doctors.Doctor{
			ID:           id,
			Email:        email,
			PasswordHash: hash,
			Profile:      p,
			IsActive:     true,
			IsVerified:   true,
			CreatedAt:    at,
			UpdatedAt:    at,
		}
	}
	return []doctors.Doctor{
		mk(1, "doctor1@medai.com", doctors.Profile{
			FullName: "Иванов Иван Иванович", Specialty: "Терапевт", Workplace: "Городская поликлиника №1",
		}, 30),
		mk(2, "doctor2@medai.com", doctors.Profile{
			FullName: "Петрова Анна Сергеевна", Specialty: "Кардиолог", Workplace: "Городская поликлиника №2",
		}, 25),
		mk(3, "doctor3@medai.com", doctors.Profile{
			FullName: "Сидоров Петр Александрович", Specialty: "Невролог", Workplace: "Городская поликлиника №3",
		}, 20),
	}
}

func seedPatients(now time.Time) []patients.Patient {
	allergy := func(names ...string) []clinical.Attributes {
		out := make([]clinical.Attributes, 0, len(names))
		for _, n := range names {
			out = append(out, clinical.Attributes{"substance": n})
		}
		return out
	}

	return []patients.Patient{
		{
			ID: 1, DoctorID: 1,
			FullName:      "Козлов Алексей Владимирович",
			Age:           ageAt(time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC), now),
			Gender:        patients.GenderMale,
			Height:        f64(175),
			Weight:        f64(75),
			Phone:         "+7 (495) 123-45-67",
			Email:         "kozlov@email.com",
			Comorbidities: []string{"Гипертония"},
			Allergies:     allergy("Пенициллин", "Аспирин"),
			LabResults:    clinical.Attributes{"blood_type": "A+"},
			SocialFactors: clinical.Attributes{"emergency_contact": "Козлова Мария Ивановна, +7 (495) 987-65-43"},
			CreatedAt:     daysAgo(now, 15),
			UpdatedAt:     daysAgo(now, 2),
		},
		{
			ID: 2, DoctorID: 2,
			FullName:      "Морозова Елена Дмитриевна",
			Age:           ageAt(time.Date(1978, 7, 22, 0, 0, 0, 0, time.UTC), now),
			Gender:        patients.GenderFemale,
			Height:        f64(165),
			Weight:        f64(62),
			Phone:         "+7 (495) 234-56-78",
			Email:         "morozova@email.com",
			Comorbidities: []string{"Диабет 2 типа"},
			Allergies:     allergy("Кодеин"),
			LabResults:    clinical.Attributes{"blood_type": "B+"},
			SocialFactors: clinical.Attributes{"emergency_contact": "Морозов Дмитрий Петрович, +7 (495) 876-54-32"},
			CreatedAt:     daysAgo(now, 12),
			UpdatedAt:     daysAgo(now, 1),
		},
		{
			ID: 3, DoctorID: 1,
			FullName:      "Волков Сергей Николаевич",
			Age:           ageAt(time.Date(1992, 11, 8, 0, 0, 0, 0, time.UTC), now),
			Gender:        patients.GenderMale,
			Height:        f64(180),
			Weight:        f64(85),
			Phone:         "+7 (495) 345-67-89",
			Email:         "volkov@email.com",
			Comorbidities: []string{},
			Allergies:     allergy(),
			LabResults:    clinical.Attributes{"blood_type": "O+"},
			SocialFactors: clinical.Attributes{"emergency_contact": "Волкова Ольга Сергеевна, +7 (495) 765-43-21"},
			CreatedAt:     daysAgo(now, 8),
			UpdatedAt:     now.Add(-12 * time.Hour),
		},
	}
}

func seedMedications(now time.Time) []medications.Medication {
	return []medications.Medication{
		{
			ID:                1,
			Name:              "Аспирин",
			GenericName:       "Ацетилсалициловая кислота",
			DrugClass:         "НПВС",
			MechanismOfAction: "Ингибирует циклооксигеназу",
			AvailableDosages:  []string{"100 мг", "500 мг"},
			Indications:       []string{"Боль", "Воспаление", "Лихорадка"},
			Contraindications: []string{"Язвенная болезнь", "Гемофилия"},
			SideEffects:       []string{"Тошнота", "Изжога", "Кровотечения"},
			DrugInteractions: []medications.DrugInteraction{
				{Medication: "Варфарин", Severity: "высокий", Description: "Усиление антикоагулянтного эффекта", Management: "Контроль МНО"},
				{Medication: "Метотрексат", Severity: "средний", Description: "Усиление токсичности", Management: "Снижение дозы"},
			},
			MonitoringParameters: []medications.MonitoringParameter{
				{Parameter: "ЖКТ", Frequency: "ежедневно", NormalRange: "отсутствие симптомов", CriticalValues: "кровотечение"},
				{Parameter: "Кровотечения", Frequency: "при появлении", NormalRange: "отсутствие", CriticalValues: "массивное кровотечение"},
			},
			TherapeuticRange: &medications.TherapeuticRange{Min: 0, Max: 100},
			IsActive:         true,
			CreatedAt:        daysAgo(now, 20),
			UpdatedAt:        daysAgo(now, 20),
		},
		{
			ID:                2,
			Name:              "Метформин",
			GenericName:       "Метформин гидрохлорид",
			DrugClass:         "Бигуаниды",
			MechanismOfAction: "Снижает продукцию глюкозы в печени",
			AvailableDosages:  []string{"500 мг", "850 мг", "1000 мг"},
			Indications:       []string{"Сахарный диабет 2 типа"},
			Contraindications: []string{"Почечная недостаточность", "Печеночная недостаточность"},
			SideEffects:       []string{"Тошнота", "Диарея", "Металлический привкус"},
			DrugInteractions: []medications.DrugInteraction{
				{Medication: "Алкоголь", Severity: "высокий", Description: "Риск лактоацидоза", Management: "Избегать употребления"},
				{Medication: "Йодсодержащие контрасты", Severity: "высокий", Description: "Риск острой почечной недостаточности", Management: "Отмена за 48 часов"},
			},
			MonitoringParameters: []medications.MonitoringParameter{
				{Parameter: "Креатинин", Frequency: "ежемесячно", NormalRange: "60-120 мкмоль/л", CriticalValues: ">150 мкмоль/л"},
				{Parameter: "Глюкоза", Frequency: "ежедневно", NormalRange: "4-7 ммоль/л", CriticalValues: "<3 или >15 ммоль/л"},
			},
			TherapeuticRange: &medications.TherapeuticRange{Min: 0, Max: 2000},
			IsActive:         true,
			CreatedAt:        daysAgo(now, 18),
			UpdatedAt:        daysAgo(now, 18),
		},
		{
			ID:                3,
			Name:              "Амлодипин",
			GenericName:       "Амлодипин безилат",
			DrugClass:         "Блокаторы кальциевых каналов",
			MechanismOfAction: "Блокирует кальциевые каналы L-типа",
			AvailableDosages:  []string{"2.5 мг", "5 мг", "10 мг"},
			Indications:       []string{"Гипертония", "Стенокардия"},
			Contraindications: []string{"Шок", "Стеноз аорты"},
			SideEffects:       []string{"Отеки ног", "Головокружение", "Покраснение лица"},
			DrugInteractions: []medications.DrugInteraction{
				{Medication: "Грейпфрут", Severity: "средний", Description: "Усиление эффекта", Management: "Избегать употребления"},
				{Medication: "Симвастатин", Severity: "высокий", Description: "Риск миопатии", Management: "Контроль КФК"},
			},
			MonitoringParameters: []medications.MonitoringParameter{
				{Parameter: "АД", Frequency: "ежедневно", NormalRange: "120/80 мм рт.ст.", CriticalValues: ">180/110 мм рт.ст."},
				{Parameter: "ЧСС", Frequency: "ежедневно", NormalRange: "60-100 уд/мин", CriticalValues: "<50 или >120 уд/мин"},
			},
			TherapeuticRange: &medications.TherapeuticRange{Min: 0, Max: 10},
			IsActive:         true,
			CreatedAt:        daysAgo(now, 16),
			UpdatedAt:        daysAgo(now, 16),
		},
	}
}

func seedPrescriptions(now time.Time) []prescriptions.Prescription {
	return []prescriptions.Prescription{
		{
			ID: 1, PatientID: 1, DoctorID: 1,
			Diagnosis: "Гипертоническая болезнь 2 степени",
			RecommendedMedications: []prescriptions.RecommendedMedication{{
				MedicationID: i64(3), Name: "Амлодипин", Dosage: "5 мг", Frequency: "1 раз в день",
				Duration: "30 дней", EvidenceLevel: "A", Justification: "Препарат первой линии для лечения гипертонии",
			}},
			DoctorNotes:   "Контроль АД через 2 недели",
			Status:        prescriptions.StatusActive,
			IsAIGenerated: true,
			CreatedAt:     daysAgo(now, 5),
			UpdatedAt:     daysAgo(now, 1),
		},
		{
			ID: 2, PatientID: 2, DoctorID: 2,
			Diagnosis: "Сахарный диабет 2 типа",
			RecommendedMedications: []prescriptions.RecommendedMedication{{
				MedicationID: i64(2), Name: "Метформин", Dosage: "500 мг", Frequency: "2 раза в день",
				Duration: "90 дней", EvidenceLevel: "A", Justification: "Препарат первой линии для лечения диабета 2 типа",
			}},
			DoctorNotes:   "Контроль глюкозы через месяц",
			Status:        prescriptions.StatusActive,
			IsAIGenerated: true,
			CreatedAt:     daysAgo(now, 3),
			UpdatedAt:     now.Add(-6 * time.Hour),
		},
		{
			ID: 3, PatientID: 3, DoctorID: 1,
			Diagnosis: "Острая респираторная вирусная инфекция",
			RecommendedMedications: []prescriptions.RecommendedMedication{{
				MedicationID: i64(1), Name: "Аспирин", Dosage: "500 мг", Frequency: "3 раза в день",
				Duration: "7 дней", EvidenceLevel: "B", Justification: "Для снижения температуры и воспаления",
			}},
			DoctorNotes:   "Постельный режим, обильное питье",
			Status:        prescriptions.StatusCompleted,
			IsAIGenerated: true,
			CreatedAt:     daysAgo(now, 10),
			UpdatedAt:     daysAgo(now, 3),
		},
	}
}
