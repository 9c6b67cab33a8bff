package experience

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
)

func fixedNow(value string) func() time.Time {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func strptr(s string) *string { return &s }

func record(from string, to string, isCurrent bool) dto.EmploymentRecord {
	rec := dto.EmploymentRecord{
		EmployeeID: "e-1024",
		Company:    "ООО Ромашка",
		PeriodFrom: from,
		IsCurrent:  isCurrent,
	}
	if to != "" {
		rec.PeriodTo = strptr(to)
	}
	return rec
}

func TestDurationOf(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name  string
		start string
		end   string
		want  DurationResult
	}{
		{name: "один месяц считается включительно", start: "2020-01", end: "2020-01", want: DurationResult{Years: 0, Months: 1}},
		{name: "ровно год: 13 месяцев включительно", start: "2020-01", end: "2021-01", want: DurationResult{Years: 1, Months: 1}},
		{name: "несколько лет", start: "2020-01", end: "2022-06", want: DurationResult{Years: 2, Months: 6}},
		{name: "полный календарный год", start: "2020-01", end: "2020-12", want: DurationResult{Years: 1, Months: 0}},
		{name: "переход через декабрь", start: "2019-11", end: "2020-02", want: DurationResult{Years: 0, Months: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.DurationOf(tt.start, tt.end, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDurationOf_CurrentUsesInjectedClock(t *testing.T) {
	calc := NewCalculatorAt(fixedNow("2024-12"))

	got, err := calc.DurationOf("2020-02", "", true)
	require.NoError(t, err)
	// 2020-02..2024-12 = 59 месяцев включительно
	assert.Equal(t, DurationResult{Years: 4, Months: 11}, got)
}

func TestDurationOf_CurrentIgnoresExplicitEnd(t *testing.T) {
	calc := NewCalculatorAt(fixedNow("2024-12"))

	withEnd, err := calc.DurationOf("2020-02", "2021-01", true)
	require.NoError(t, err)
	withoutEnd, err := calc.DurationOf("2020-02", "", true)
	require.NoError(t, err)
	assert.Equal(t, withoutEnd, withEnd)
}

func TestDurationOf_Malformed(t *testing.T) {
	calc := NewCalculator()

	for _, bad := range []string{"", "2020", "2020-1", "2020-13", "2020-00", "20-01", "2020/01", "2020-01-01"} {
		t.Run("start="+bad, func(t *testing.T) {
			_, err := calc.DurationOf(bad, "2021-01", false)
			var merr *MalformedDateError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, bad, merr.Value)
		})
	}

	_, err := calc.DurationOf("2020-01", "2020-1", false)
	var merr *MalformedDateError
	require.ErrorAs(t, err, &merr)
}

func TestDurationOf_EndBeforeStart(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.DurationOf("2021-02", "2021-01", false)
	var rerr *InvalidRangeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "2021-02", rerr.From)
	assert.Equal(t, "2021-01", rerr.To)
}

func TestTotalExperience_Empty(t *testing.T) {
	calc := NewCalculator()

	got, err := calc.TotalExperience(nil)
	require.NoError(t, err)
	assert.Equal(t, DurationResult{}, got)

	got, err = calc.TotalExperience([]dto.EmploymentRecord{})
	require.NoError(t, err)
	assert.Equal(t, DurationResult{}, got)
}

func TestTotalExperience_Merging(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name    string
		records []dto.EmploymentRecord
		want    DurationResult
	}{
		{
			name:    "одна запись",
			records: []dto.EmploymentRecord{record("2020-01", "2022-06", false)},
			want:    DurationResult{Years: 2, Months: 6},
		},
		{
			name: "непересекающиеся смежные периоды дают сумму",
			records: []dto.EmploymentRecord{
				record("2020-01", "2021-12", false),
				record("2022-01", "2023-12", false),
			},
			want: DurationResult{Years: 4, Months: 0},
		},
		{
			name: "вложенный период схлопывается во внешний",
			records: []dto.EmploymentRecord{
				record("2020-01", "2023-12", false),
				record("2021-06", "2022-06", false),
			},
			want: DurationResult{Years: 4, Months: 0},
		},
		{
			name: "частичное пересечение без двойного счёта",
			records: []dto.EmploymentRecord{
				record("2020-01", "2022-06", false),
				record("2022-03", "2023-12", false),
			},
			want: DurationResult{Years: 4, Months: 0},
		},
		{
			name: "разрыв в один месяц не склеивается",
			records: []dto.EmploymentRecord{
				record("2020-01", "2020-06", false),
				record("2020-08", "2020-12", false),
			},
			// 6 + 5 месяцев, июль не в стаже
			want: DurationResult{Years: 0, Months: 11},
		},
		{
			name: "одинаковые записи не удваивают стаж",
			records: []dto.EmploymentRecord{
				record("2020-01", "2020-12", false),
				record("2020-01", "2020-12", false),
			},
			want: DurationResult{Years: 1, Months: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.TotalExperience(tt.records)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalExperience_OrderIndependence(t *testing.T) {
	calc := NewCalculator()

	records := []dto.EmploymentRecord{
		record("2015-03", "2016-01", false),
		record("2015-12", "2018-06", false),
		record("2018-08", "2019-01", false),
		record("2019-02", "2020-02", false),
		record("2010-01", "2010-01", false),
	}

	want, err := calc.TotalExperience(records)
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]dto.EmploymentRecord(nil), records...)
		rnd.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got, err := calc.TotalExperience(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestTotalExperience_MergedEquivalentGivesSameTotal(t *testing.T) {
	calc := NewCalculator()

	original := []dto.EmploymentRecord{
		record("2020-01", "2022-06", false),
		record("2022-03", "2023-12", false),
	}
	merged := []dto.EmploymentRecord{record("2020-01", "2023-12", false)}

	wantOriginal, err := calc.TotalExperience(original)
	require.NoError(t, err)
	wantMerged, err := calc.TotalExperience(merged)
	require.NoError(t, err)
	assert.Equal(t, wantOriginal, wantMerged)
}

func TestTotalExperience_CurrentRecord(t *testing.T) {
	calc := NewCalculatorAt(fixedNow("2024-06"))

	records := []dto.EmploymentRecord{
		record("2020-01", "2021-12", false),
		record("2023-01", "", true), // 2023-01..2024-06 = 18 месяцев
	}

	got, err := calc.TotalExperience(records)
	require.NoError(t, err)
	assert.Equal(t, DurationResult{Years: 3, Months: 6}, got)
}

func TestTotalExperience_Invalid(t *testing.T) {
	calc := NewCalculator()

	t.Run("запись без конца и без is_current", func(t *testing.T) {
		_, err := calc.TotalExperience([]dto.EmploymentRecord{record("2020-01", "", false)})
		var merr *MalformedDateError
		require.ErrorAs(t, err, &merr)
	})

	t.Run("конец раньше начала", func(t *testing.T) {
		_, err := calc.TotalExperience([]dto.EmploymentRecord{record("2021-05", "2021-01", false)})
		var rerr *InvalidRangeError
		require.ErrorAs(t, err, &rerr)
	})

	t.Run("битый месяц не превращается в ноль", func(t *testing.T) {
		got, err := calc.TotalExperience([]dto.EmploymentRecord{record("2020-13", "2021-01", false)})
		require.Error(t, err)
		assert.True(t, errors.As(err, new(*MalformedDateError)))
		assert.Equal(t, DurationResult{}, got)
	})
}
