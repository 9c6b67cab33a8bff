package consumer

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var regexDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var regexMonth = regexp.MustCompile(`^\d{4}-\d{2}$`)

func validateProfile(payload ProfilePayload) string {
	if strings.TrimSpace(payload.FirstName) == "" {
		return "required field 'first_name'"
	}

	if payload.BirthDate != "" {
		if !regexDate.MatchString(payload.BirthDate) || !validDate(payload.BirthDate) {
			return fmt.Sprintf("invalid value in field 'birth_date'=%s", payload.BirthDate)
		}
	}

	if strings.TrimSpace(payload.Contacts.Email) == "" {
		return "required field 'contacts.email'"
	}

	if !strings.Contains(payload.Contacts.Email, "@") {
		return fmt.Sprintf("invalid value in field 'email'=%s", payload.Contacts.Email)
	}

	return ""
}

func validateEmployment(payload EmploymentPayload) string {
	if strings.TrimSpace(payload.Company) == "" {
		return "required field 'company'"
	}

	if strings.TrimSpace(payload.Period.From) == "" {
		return "required field 'period.from'"
	}

	if !regexMonth.MatchString(payload.Period.From) || !validMonth(payload.Period.From) {
		return fmt.Sprintf("invalid value in field 'period.from'=%s", payload.Period.From)
	}

	if payload.Period.IsCurrent {
		// действующая запись: явный конец запрещён, эффективный конец — текущий месяц
		if strings.TrimSpace(payload.Period.To) != "" {
			return fmt.Sprintf("invalid value in field 'period.to'=%s: is_current запрещает явный конец", payload.Period.To)
		}
		return ""
	}

	if strings.TrimSpace(payload.Period.To) == "" {
		return "required field 'period.to'"
	}

	if !regexMonth.MatchString(payload.Period.To) || !validMonth(payload.Period.To) {
		return fmt.Sprintf("invalid value in field 'period.to'=%s", payload.Period.To)
	}

	fromT, _ := time.Parse("2006-01", payload.Period.From)
	toT, _ := time.Parse("2006-01", payload.Period.To)
	if toT.Before(fromT) {
		return fmt.Sprintf("invalid value in field 'period'={from:%s to:%s}", payload.Period.From, payload.Period.To)
	}

	return ""
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}
