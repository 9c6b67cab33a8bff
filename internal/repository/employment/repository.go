package employment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
)

type PgxPoolIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository struct {
	pool PgxPoolIface
}

func NewRepository(pool PgxPoolIface) *Repository {
	return &Repository{pool: pool}
}

// Месяцы хранятся как date (первое число месяца) и наружу отдаются
// в формате YYYY-MM. period_to = null для действующих записей.

func (r *Repository) Insert(ctx context.Context, rec dto.EmploymentRecord) error {
	query := `
INSERT INTO employment_record
	(employee_id, company, position, period_from, period_to, is_current, stack, created_at)
VALUES
	($1, $2, $3, to_date($4, 'YYYY-MM'), to_date($5, 'YYYY-MM'), $6, $7, NOW());
`
	_, err := r.pool.Exec(ctx, query,
		rec.EmployeeID, rec.Company, rec.Position, rec.PeriodFrom, rec.PeriodTo, rec.IsCurrent, rec.Stack,
	)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, rec dto.EmploymentRecord) error {
	query := `
UPDATE employment_record SET
	employee_id = $2,
	company     = $3,
	position    = $4,
	period_from = to_date($5, 'YYYY-MM'),
	period_to   = to_date($6, 'YYYY-MM'),
	is_current  = $7,
	stack       = $8
WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.EmployeeID, rec.Company, rec.Position, rec.PeriodFrom, rec.PeriodTo, rec.IsCurrent, rec.Stack,
	)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM employment_record WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]dto.EmploymentRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
SELECT id,
	   employee_id,
	   company,
	   position,
	   to_char(period_from,'YYYY-MM'),
	   to_char(period_to,'YYYY-MM'),
	   is_current,
	   stack,
	   created_at
FROM employment_record
WHERE employee_id = $1
ORDER BY period_from DESC, id DESC
LIMIT $2 OFFSET $3
`
	rows, err := r.pool.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.EmploymentRecord
	for rows.Next() {
		var it dto.EmploymentRecord

		err = rows.Scan(&it.ID, &it.EmployeeID, &it.Company, &it.Position, &it.PeriodFrom, &it.PeriodTo, &it.IsCurrent, &it.Stack, &it.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}

// ListAllByEmployee отдаёт записи работника целиком, без пагинации.
// Расчёт стажа обязан видеть все записи: усечение выборки молча
// занизило бы итог.
func (r *Repository) ListAllByEmployee(ctx context.Context, employeeID string) ([]dto.EmploymentRecord, error) {
	query := `
SELECT id,
	   employee_id,
	   company,
	   position,
	   to_char(period_from,'YYYY-MM'),
	   to_char(period_to,'YYYY-MM'),
	   is_current,
	   stack,
	   created_at
FROM employment_record
WHERE employee_id = $1
ORDER BY period_from, id
`
	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.EmploymentRecord
	for rows.Next() {
		var it dto.EmploymentRecord

		err = rows.Scan(&it.ID, &it.EmployeeID, &it.Company, &it.Position, &it.PeriodFrom, &it.PeriodTo, &it.IsCurrent, &it.Stack, &it.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*dto.EmploymentRecord, error) {
	query := `
SELECT id,
	   employee_id,
	   company,
	   position,
	   to_char(period_from,'YYYY-MM'),
	   to_char(period_to,'YYYY-MM'),
	   is_current,
	   stack,
	   created_at
FROM employment_record
WHERE id = $1;
`
	row := r.pool.QueryRow(ctx, query, id)

	var it dto.EmploymentRecord
	err := row.Scan(&it.ID, &it.EmployeeID, &it.Company, &it.Position, &it.PeriodFrom, &it.PeriodTo, &it.IsCurrent, &it.Stack, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dto.ErrNotFound
		}

		return nil, fmt.Errorf("row.Scan: %w", err)
	}

	return &it, nil
}
