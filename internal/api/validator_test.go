package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
)

func strp(s string) *string { return &s }

func employmentRecord() dto.EmploymentRecord {
	return dto.EmploymentRecord{
		EmployeeID: "e-1024",
		Company:    "ООО Ромашка",
		Position:   strp("Инженер"),
		PeriodFrom: "2022-07",
		PeriodTo:   strp("2025-09"),
		Stack:      []string{"Go", "PostgreSQL"},
	}
}

func TestValidateEmploymentRecord(t *testing.T) {
	t.Run("валидная запись", func(t *testing.T) {
		assert.Empty(t, validateEmploymentRecord(employmentRecord()))
	})

	t.Run("без employee_id", func(t *testing.T) {
		rec := employmentRecord()
		rec.EmployeeID = " "
		assert.Contains(t, validateEmploymentRecord(rec), "employee_id")
	})

	t.Run("без компании", func(t *testing.T) {
		rec := employmentRecord()
		rec.Company = ""
		assert.Contains(t, validateEmploymentRecord(rec), "company")
	})

	t.Run("начало с днём не проходит", func(t *testing.T) {
		rec := employmentRecord()
		rec.PeriodFrom = "2022-07-01"
		assert.Contains(t, validateEmploymentRecord(rec), "period_from")
	})

	t.Run("несуществующий месяц", func(t *testing.T) {
		rec := employmentRecord()
		rec.PeriodTo = strp("2025-13")
		assert.Contains(t, validateEmploymentRecord(rec), "period_to")
	})

	t.Run("конец раньше начала", func(t *testing.T) {
		rec := employmentRecord()
		rec.PeriodFrom = "2025-09"
		rec.PeriodTo = strp("2022-07")
		assert.Contains(t, validateEmploymentRecord(rec), "period")
	})

	t.Run("is_current без конца валиден", func(t *testing.T) {
		rec := employmentRecord()
		rec.IsCurrent = true
		rec.PeriodTo = nil
		assert.Empty(t, validateEmploymentRecord(rec))
	})

	t.Run("is_current с явным концом отклоняется", func(t *testing.T) {
		rec := employmentRecord()
		rec.IsCurrent = true
		assert.Contains(t, validateEmploymentRecord(rec), "period_to")
	})

	t.Run("не is_current без конца отклоняется", func(t *testing.T) {
		rec := employmentRecord()
		rec.PeriodTo = nil
		assert.Contains(t, validateEmploymentRecord(rec), "period_to")
	})
}

func TestValidateCandidateProfile(t *testing.T) {
	profile := dto.CandidateProfile{
		EmployeeID: "e-1024",
		FirstName:  strp("Анна"),
		BirthDate:  strp("1994-06-12"),
		Email:      strp("anna@mail.ru"),
	}

	t.Run("валидный профиль", func(t *testing.T) {
		assert.Empty(t, validateCandidateProfile(profile))
	})

	t.Run("без имени", func(t *testing.T) {
		bad := profile
		bad.FirstName = nil
		assert.Contains(t, validateCandidateProfile(bad), "first_name")
	})

	t.Run("битая дата рождения", func(t *testing.T) {
		bad := profile
		bad.BirthDate = strp("1994-13-40")
		assert.Contains(t, validateCandidateProfile(bad), "birth_date")
	})

	t.Run("дата рождения необязательна", func(t *testing.T) {
		bad := profile
		bad.BirthDate = nil
		assert.Empty(t, validateCandidateProfile(bad))
	})

	t.Run("почта без @", func(t *testing.T) {
		bad := profile
		bad.Email = strp("anna.mail.ru")
		assert.Contains(t, validateCandidateProfile(bad), "email")
	})
}
