package api

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
)

var regexDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var regexMonth = regexp.MustCompile(`^\d{4}-\d{2}$`)

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

func checkDate(field, value string) string {
	if !regexDate.MatchString(value) || !validDate(value) {
		return fmt.Sprintf("invalid value in field '%s'=%s", field, value)
	}

	return ""
}

func checkMonth(field, value string) string {
	if !regexMonth.MatchString(value) || !validMonth(value) {
		return fmt.Sprintf("invalid value in field '%s'=%s", field, value)
	}

	return ""
}

func checkEmail(field, value string) string {
	if !strings.Contains(value, "@") {
		return fmt.Sprintf("invalid value in field '%s'=%s", field, value)
	}

	return ""
}

func validateCandidateProfile(p dto.CandidateProfile) string {
	if strings.TrimSpace(p.EmployeeID) == "" {
		return "required field 'employee_id'"
	}

	if p.FirstName == nil || strings.TrimSpace(*p.FirstName) == "" {
		return "required field 'first_name'"
	}

	if p.BirthDate != nil {
		val := strings.TrimSpace(*p.BirthDate)

		if val == "" {
			return "required field 'birth_date'"
		}

		if msg := checkDate("birth_date", val); msg != "" {
			return msg
		}
	}

	if p.Email == nil || strings.TrimSpace(*p.Email) == "" {
		return "required field 'email'"
	}

	if msg := checkEmail("email", strings.TrimSpace(*p.Email)); msg != "" {
		return msg
	}

	if p.Headline != nil && strings.TrimSpace(*p.Headline) == "" {
		return "required field 'headline'"
	}

	return ""
}

func validateEmploymentRecord(rec dto.EmploymentRecord) string {
	if strings.TrimSpace(rec.EmployeeID) == "" {
		return "required field 'employee_id'"
	}

	if strings.TrimSpace(rec.Company) == "" {
		return "required field 'company'"
	}

	if strings.TrimSpace(rec.PeriodFrom) == "" {
		return "required field 'period_from'"
	}

	if msg := checkMonth("period_from", strings.TrimSpace(rec.PeriodFrom)); msg != "" {
		return msg
	}

	if rec.IsCurrent {
		if rec.PeriodTo != nil && strings.TrimSpace(*rec.PeriodTo) != "" {
			return "invalid value in field 'period_to': запись с is_current не имеет явного конца"
		}

		return ""
	}

	if rec.PeriodTo == nil || strings.TrimSpace(*rec.PeriodTo) == "" {
		return "required field 'period_to'"
	}

	if msg := checkMonth("period_to", strings.TrimSpace(*rec.PeriodTo)); msg != "" {
		return msg
	}

	fromT, _ := time.Parse("2006-01", strings.TrimSpace(rec.PeriodFrom))
	toT, _ := time.Parse("2006-01", strings.TrimSpace(*rec.PeriodTo))
	if toT.Before(fromT) {
		return fmt.Sprintf("invalid value in field 'period'={from:%s to:%s}", rec.PeriodFrom, *rec.PeriodTo)
	}

	return ""
}
