package consumer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func employmentPayload() EmploymentPayload {
	var p EmploymentPayload
	p.EmployeeID = "e-1024"
	p.Company = "ООО Ромашка"
	p.Position = "Инженер QA"
	p.Period.From = "2022-07"
	p.Period.To = "2025-09"
	p.Stack = []string{"Go", "PostgreSQL"}
	return p
}

func TestValidateEmployment(t *testing.T) {
	t.Run("валидная запись", func(t *testing.T) {
		assert.Empty(t, validateEmployment(employmentPayload()))
	})

	t.Run("без компании", func(t *testing.T) {
		p := employmentPayload()
		p.Company = "  "
		assert.Contains(t, validateEmployment(p), "company")
	})

	t.Run("месяц с днём не проходит", func(t *testing.T) {
		p := employmentPayload()
		p.Period.From = "2022-07-01"
		assert.Contains(t, validateEmployment(p), "period.from")
	})

	t.Run("несуществующий месяц", func(t *testing.T) {
		p := employmentPayload()
		p.Period.To = "2025-13"
		assert.Contains(t, validateEmployment(p), "period.to")
	})

	t.Run("конец раньше начала", func(t *testing.T) {
		p := employmentPayload()
		p.Period.From = "2025-09"
		p.Period.To = "2022-07"
		assert.Contains(t, validateEmployment(p), "period")
	})

	t.Run("is_current без конца валиден", func(t *testing.T) {
		p := employmentPayload()
		p.Period.IsCurrent = true
		p.Period.To = ""
		assert.Empty(t, validateEmployment(p))
	})

	t.Run("is_current с явным концом отклоняется", func(t *testing.T) {
		p := employmentPayload()
		p.Period.IsCurrent = true
		assert.NotEmpty(t, validateEmployment(p))
	})

	t.Run("не is_current без конца отклоняется", func(t *testing.T) {
		p := employmentPayload()
		p.Period.To = ""
		assert.Contains(t, validateEmployment(p), "period.to")
	})
}

func TestValidateProfile(t *testing.T) {
	var p ProfilePayload
	p.EmployeeID = "e-1024"
	p.FirstName = "Анна"
	p.BirthDate = "1994-06-12"
	p.Contacts.Email = "anna@mail.ru"

	t.Run("валидный профиль", func(t *testing.T) {
		assert.Empty(t, validateProfile(p))
	})

	t.Run("без имени", func(t *testing.T) {
		bad := p
		bad.FirstName = ""
		assert.Contains(t, validateProfile(bad), "first_name")
	})

	t.Run("битая дата рождения", func(t *testing.T) {
		bad := p
		bad.BirthDate = "1994-13-40"
		assert.Contains(t, validateProfile(bad), "birth_date")
	})

	t.Run("почта без @", func(t *testing.T) {
		bad := p
		bad.Contacts.Email = "anna.mail.ru"
		assert.Contains(t, validateProfile(bad), "email")
	})
}
