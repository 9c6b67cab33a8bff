// Package experience считает суммарный стаж по записям о занятости.
//
// Периоды заданы с точностью до месяца и считаются закрытыми с обоих концов:
// работа с 2020-01 по 2020-01 — это один месяц стажа, а не ноль.
// Пересекающиеся и примыкающие периоды склеиваются, чтобы параллельные
// места работы не учитывались дважды.
package experience

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
)

var regexMonth = regexp.MustCompile(`^\d{4}-\d{2}$`)

// MalformedDateError — строка месяца не соответствует формату YYYY-MM.
type MalformedDateError struct {
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed month %q: want YYYY-MM", e.Value)
}

// InvalidRangeError — месяц окончания раньше месяца начала.
type InvalidRangeError struct {
	From string
	To   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid period: from=%s to=%s", e.From, e.To)
}

// DurationResult — нормализованный стаж: Months всегда в диапазоне 0..11.
type DurationResult struct {
	Years  int `json:"years" example:"4"`
	Months int `json:"months" example:"11"`
}

// Calculator вычисляет длительности периодов занятости.
// Часы инжектируются, чтобы записи с is_current детерминированно
// тестировались под фиксированным «сейчас».
type Calculator struct {
	now func() time.Time
}

func NewCalculator() *Calculator {
	return &Calculator{now: time.Now}
}

// NewCalculatorAt создаёт калькулятор с фиксированным источником времени.
func NewCalculatorAt(now func() time.Time) *Calculator {
	return &Calculator{now: now}
}

// monthIndex переводит YYYY-MM в абсолютный номер месяца: year*12 + (month-1).
func monthIndex(s string) (int, error) {
	if !regexMonth.MatchString(s) {
		return 0, &MalformedDateError{Value: s}
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, &MalformedDateError{Value: s}
	}

	return t.Year()*12 + int(t.Month()) - 1, nil
}

func (c *Calculator) currentMonthIndex() int {
	now := c.now()
	return now.Year()*12 + int(now.Month()) - 1
}

func normalize(inclusiveMonths int) DurationResult {
	return DurationResult{
		Years:  inclusiveMonths / 12,
		Months: inclusiveMonths % 12,
	}
}

// DurationOf — стаж одного периода, включая оба граничных месяца.
// При isCurrent=true явный end игнорируется, концом считается текущий месяц.
func (c *Calculator) DurationOf(start, end string, isCurrent bool) (DurationResult, error) {
	startIdx, err := monthIndex(start)
	if err != nil {
		return DurationResult{}, err
	}

	var endIdx int
	if isCurrent {
		endIdx = c.currentMonthIndex()
	} else {
		endIdx, err = monthIndex(end)
		if err != nil {
			return DurationResult{}, err
		}
	}

	if endIdx < startIdx {
		return DurationResult{}, &InvalidRangeError{From: start, To: end}
	}

	return normalize(endIdx - startIdx + 1), nil
}

type monthRange struct {
	start int
	end   int
}

// TotalExperience — суммарный стаж по списку записей.
// Периоды приводятся к закрытым диапазонам номеров месяцев, сортируются
// по началу и склеиваются: диапазон, начинающийся не позже чем через месяц
// после конца текущего склеенного (s <= curEnd+1), продолжает его.
// Порядок записей на результат не влияет. Пустой список — нулевой стаж.
func (c *Calculator) TotalExperience(records []dto.EmploymentRecord) (DurationResult, error) {
	if len(records) == 0 {
		return DurationResult{}, nil
	}

	ranges := make([]monthRange, 0, len(records))
	for _, rec := range records {
		startIdx, err := monthIndex(rec.PeriodFrom)
		if err != nil {
			return DurationResult{}, err
		}

		var endIdx int
		switch {
		case rec.IsCurrent:
			endIdx = c.currentMonthIndex()
		case rec.PeriodTo != nil:
			endIdx, err = monthIndex(*rec.PeriodTo)
			if err != nil {
				return DurationResult{}, err
			}
		default:
			return DurationResult{}, &MalformedDateError{Value: ""}
		}

		if endIdx < startIdx {
			to := ""
			if rec.PeriodTo != nil {
				to = *rec.PeriodTo
			}
			return DurationResult{}, &InvalidRangeError{From: rec.PeriodFrom, To: to}
		}

		ranges = append(ranges, monthRange{start: startIdx, end: endIdx})
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start < ranges[j].start })

	total := 0
	cur := ranges[0]
	for _, r := range ranges[1:] {
		if r.start <= cur.end+1 {
			if r.end > cur.end {
				cur.end = r.end
			}
			continue
		}

		total += cur.end - cur.start + 1
		cur = r
	}
	total += cur.end - cur.start + 1

	return normalize(total), nil
}
