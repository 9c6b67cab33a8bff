package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
	"github.com/beegy-labs/girok-resume-api/internal/experience"
)

type fakeEmploymentRepo struct {
	records []dto.EmploymentRecord
	err     error
}

func (f *fakeEmploymentRepo) Insert(context.Context, dto.EmploymentRecord) error { return nil }
func (f *fakeEmploymentRepo) Update(context.Context, dto.EmploymentRecord) error { return nil }
func (f *fakeEmploymentRepo) Delete(context.Context, int64) error                { return nil }
func (f *fakeEmploymentRepo) GetByID(context.Context, int64) (*dto.EmploymentRecord, error) {
	return nil, dto.ErrNotFound
}

func (f *fakeEmploymentRepo) ListByEmployee(ctx context.Context, employeeID string, limit, _ int) ([]dto.EmploymentRecord, error) {
	// лимит по умолчанию как в реальном репозитории
	if limit <= 0 {
		limit = 100
	}

	out, err := f.ListAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEmploymentRepo) ListAllByEmployee(_ context.Context, employeeID string) ([]dto.EmploymentRecord, error) {
	if f.err != nil {
		return nil, f.err
	}

	var out []dto.EmploymentRecord
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func experienceService(repo *fakeEmploymentRepo) *Service {
	return &Service{
		employments: repo,
		calc: experience.NewCalculatorAt(func() time.Time {
			return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		}),
	}
}

func callExperience(t *testing.T, s *Service, employeeID string) *fasthttp.RequestCtx {
	t.Helper()

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("employee_id", employeeID)
	s.employeeExperience(ctx)
	return ctx
}

func TestEmployeeExperience(t *testing.T) {
	repo := &fakeEmploymentRepo{
		records: []dto.EmploymentRecord{
			{ID: 1, EmployeeID: "e-1024", Company: "ООО Ромашка", PeriodFrom: "2020-01", PeriodTo: strp("2021-12")},
			{ID: 2, EmployeeID: "e-1024", Company: "ООО Василёк", PeriodFrom: "2021-06", PeriodTo: strp("2022-12")},
			{ID: 3, EmployeeID: "e-2048", Company: "Чужая", PeriodFrom: "2010-01", PeriodTo: strp("2010-12")},
		},
	}

	t.Run("пересечения склеиваются", func(t *testing.T) {
		ctx := callExperience(t, experienceService(repo), "e-1024")
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		var resp experienceResponse
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))

		// 2020-01..2022-12 единым куском: ровно 3 года
		assert.Equal(t, experience.DurationResult{Years: 3, Months: 0}, resp.Total)
		assert.Equal(t, "3 года", resp.TotalText)
		require.Len(t, resp.Records, 2)
		assert.Equal(t, experience.DurationResult{Years: 2, Months: 0}, resp.Records[0].Duration)
	})

	t.Run("без записей нулевой стаж", func(t *testing.T) {
		ctx := callExperience(t, experienceService(repo), "e-4096")
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		var resp experienceResponse
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
		assert.Equal(t, experience.DurationResult{}, resp.Total)
		assert.Equal(t, "нет стажа", resp.TotalText)
	})

	t.Run("текущее место считается до сегодня", func(t *testing.T) {
		cur := &fakeEmploymentRepo{records: []dto.EmploymentRecord{
			{ID: 7, EmployeeID: "e-1", Company: "ООО Ромашка", PeriodFrom: "2024-07", IsCurrent: true},
		}}

		ctx := callExperience(t, experienceService(cur), "e-1")
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		var resp experienceResponse
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
		// 2024-07..2025-06 включительно
		assert.Equal(t, experience.DurationResult{Years: 1, Months: 0}, resp.Total)
	})

	t.Run("больше ста записей не усекаются", func(t *testing.T) {
		// 120 несмежных одномесячных записей: пагинированная выборка
		// отдала бы только 100 из них и молча занизила бы итог
		many := &fakeEmploymentRepo{}
		for i := 0; i < 120; i++ {
			m := i * 2
			month := fmt.Sprintf("%04d-%02d", 2000+m/12, m%12+1)
			many.records = append(many.records, dto.EmploymentRecord{
				ID:         int64(i + 1),
				EmployeeID: "e-1",
				Company:    "X",
				PeriodFrom: month,
				PeriodTo:   strp(month),
			})
		}

		ctx := callExperience(t, experienceService(many), "e-1")
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

		var resp experienceResponse
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
		require.Len(t, resp.Records, 120)
		assert.Equal(t, experience.DurationResult{Years: 10, Months: 0}, resp.Total)
	})

	t.Run("битый месяц в записи даёт 400", func(t *testing.T) {
		bad := &fakeEmploymentRepo{records: []dto.EmploymentRecord{
			{ID: 9, EmployeeID: "e-1", Company: "X", PeriodFrom: "2020-13", PeriodTo: strp("2021-01")},
		}}

		ctx := callExperience(t, experienceService(bad), "e-1")
		assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	})

	t.Run("пустой employee_id даёт 400", func(t *testing.T) {
		ctx := callExperience(t, experienceService(repo), "  ")
		assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	})

	t.Run("ошибка хранилища даёт 500", func(t *testing.T) {
		broken := &fakeEmploymentRepo{err: errors.New("connection refused")}
		ctx := callExperience(t, experienceService(broken), "e-1")
		assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
	})
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   experience.DurationResult
		want string
	}{
		{experience.DurationResult{}, "нет стажа"},
		{experience.DurationResult{Years: 0, Months: 1}, "1 месяц"},
		{experience.DurationResult{Years: 0, Months: 3}, "3 месяца"},
		{experience.DurationResult{Years: 0, Months: 11}, "11 месяцев"},
		{experience.DurationResult{Years: 1, Months: 0}, "1 год"},
		{experience.DurationResult{Years: 2, Months: 0}, "2 года"},
		{experience.DurationResult{Years: 5, Months: 0}, "5 лет"},
		{experience.DurationResult{Years: 4, Months: 11}, "4 года 11 месяцев"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, formatDuration(tc.in), "%+v", tc.in)
	}
}
