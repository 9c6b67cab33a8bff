package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/beegy-labs/girok-resume-api/internal/experience"
	"github.com/beegy-labs/girok-resume-api/internal/metrics"
)

type experienceItem struct {
	ID       int64                     `json:"id" example:"42"`        // Идентификатор записи
	Company  string                    `json:"company"`                // Компания
	Duration experience.DurationResult `json:"duration"`               // Стаж по записи
}

type experienceResponse struct {
	EmployeeID string                    `json:"employee_id" example:"e-1024"` // Идентификатор владельца резюме
	Records    []experienceItem          `json:"records"`                      // Стаж по каждой записи
	Total      experience.DurationResult `json:"total"`                        // Суммарный стаж: пересечения и стыки склеены
	TotalText  string                    `json:"total_text" example:"4 года 11 месяцев"`
}

// @Summary Суммарный стаж владельца резюме
// @Tags    Experience
// @Produce json
// @Param   employee_id path string true "Идентификатор владельца резюме"
// @Success 200 {object} experienceResponse
// @Failure 400 {object} errorResponse "Некорректные даты в записях"
// @Failure 500 {object} errorResponse "Внутренняя ошибка"
// @description Параллельные места работы не удваивают стаж: пересекающиеся
// @description и примыкающие периоды склеиваются перед суммированием.
// @Router  /employments/{employee_id}/experience [get]
func (s *Service) employeeExperience(ctx *fasthttp.RequestCtx) {
	employeeID := ctx.UserValue("employee_id").(string)
	if strings.TrimSpace(employeeID) == "" {
		writeError(ctx, fasthttp.StatusBadRequest, ErrEmployeeIDRequired)
		return
	}

	// стаж считается по полному набору записей, пагинация здесь недопустима
	records, err := s.employments.ListAllByEmployee(ctx, employeeID)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("employmentRepository.ListAllByEmployee: %w", err))
		return
	}

	resp := experienceResponse{
		EmployeeID: employeeID,
		Records:    make([]experienceItem, 0, len(records)),
	}

	for _, rec := range records {
		to := ""
		if rec.PeriodTo != nil {
			to = *rec.PeriodTo
		}

		dur, err := s.calc.DurationOf(rec.PeriodFrom, to, rec.IsCurrent)
		if err != nil {
			writeExperienceError(ctx, err)
			return
		}

		resp.Records = append(resp.Records, experienceItem{
			ID:       rec.ID,
			Company:  rec.Company,
			Duration: dur,
		})
	}

	total, err := s.calc.TotalExperience(records)
	if err != nil {
		writeExperienceError(ctx, err)
		return
	}

	metrics.ExperienceCalculations.Inc()

	resp.Total = total
	resp.TotalText = formatDuration(total)
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

// Ошибки калькулятора — всегда следствие битых данных в записях,
// наружу они отдаются как 400 с понятным текстом.
func writeExperienceError(ctx *fasthttp.RequestCtx, err error) {
	var malformed *experience.MalformedDateError
	var invalid *experience.InvalidRangeError
	if errors.As(err, &malformed) || errors.As(err, &invalid) {
		writeError(ctx, fasthttp.StatusBadRequest, err)
		return
	}

	writeError(ctx, fasthttp.StatusInternalServerError, err)
}

func formatDuration(d experience.DurationResult) string {
	switch {
	case d.Years == 0 && d.Months == 0:
		return "нет стажа"
	case d.Years == 0:
		return fmt.Sprintf("%d %s", d.Months, plural(d.Months, "месяц", "месяца", "месяцев"))
	case d.Months == 0:
		return fmt.Sprintf("%d %s", d.Years, plural(d.Years, "год", "года", "лет"))
	default:
		return fmt.Sprintf("%d %s %d %s",
			d.Years, plural(d.Years, "год", "года", "лет"),
			d.Months, plural(d.Months, "месяц", "месяца", "месяцев"))
	}
}

func plural(n int, one, few, many string) string {
	n = n % 100
	if n >= 11 && n <= 14 {
		return many
	}
	switch n % 10 {
	case 1:
		return one
	case 2, 3, 4:
		return few
	default:
		return many
	}
}
