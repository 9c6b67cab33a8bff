package profile

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

func (r *Repository) Create(ctx context.Context, p dto.CandidateProfile) error {
	query := `
insert into candidate_profile
  (employee_id, first_name, last_name, birth_date, email, phone, headline, about, updated_at)
values
  (@employee_id, @first_name, @last_name, nullif(@birth_date, '')::date, @email, @phone, @headline, @about, now());
`
	args := pgx.NamedArgs{
		"employee_id": p.EmployeeID,
		"first_name":  p.FirstName,
		"last_name":   p.LastName,
		"birth_date":  strptr(p.BirthDate),
		"email":       p.Email,
		"phone":       p.Phone,
		"headline":    p.Headline,
		"about":       p.About,
	}

	_, err := r.pool.Exec(ctx, query, args)
	if err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == "23505" {
			return dto.ErrAlreadyExists
		}

		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, p dto.CandidateProfile) error {
	query := `
update candidate_profile set
  first_name = @first_name,
  last_name  = @last_name,
  birth_date = nullif(@birth_date,'')::date,
  email      = @email,
  phone      = @phone,
  headline   = @headline,
  about      = @about,
  updated_at = now()
where employee_id = @employee_id;
`
	args := pgx.NamedArgs{
		"employee_id": p.EmployeeID,
		"first_name":  p.FirstName,
		"last_name":   p.LastName,
		"birth_date":  strptr(p.BirthDate),
		"email":       p.Email,
		"phone":       p.Phone,
		"headline":    p.Headline,
		"about":       p.About,
	}

	tag, err := r.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, employeeID string) error {
	query := `delete from candidate_profile where employee_id = $1`

	tag, err := r.pool.Exec(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) GetProfile(ctx context.Context, employeeID string) (*dto.CandidateProfile, error) {
	query := `
select employee_id,
	   first_name,
	   last_name,
	   to_char(birth_date,'YYYY-MM-DD'),
	   email,
	   phone,
	   headline,
	   about,
	   updated_at
from candidate_profile
where employee_id = $1;
`
	row := r.pool.QueryRow(ctx, query, employeeID)

	var (
		out       dto.CandidateProfile
		birthDate *string
	)

	err := row.Scan(
		&out.EmployeeID,
		&out.FirstName,
		&out.LastName,
		&birthDate,
		&out.Email,
		&out.Phone,
		&out.Headline,
		&out.About,
		&out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dto.ErrNotFound
		}

		return nil, fmt.Errorf("row.Scan: %w", err)
	}

	out.BirthDate = birthDate

	return &out, nil
}

func (r *Repository) ListProfiles(ctx context.Context) ([]dto.CandidateProfile, error) {
	query := `
select employee_id,
       first_name,
       last_name,
       to_char(birth_date,'YYYY-MM-DD'),
       email,
       phone,
       headline,
       about,
       updated_at
from candidate_profile
order by updated_at desc, employee_id
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.CandidateProfile
	for rows.Next() {
		var (
			profile   dto.CandidateProfile
			birthDate *string
		)

		err = rows.Scan(
			&profile.EmployeeID,
			&profile.FirstName,
			&profile.LastName,
			&birthDate,
			&profile.Email,
			&profile.Phone,
			&profile.Headline,
			&profile.About,
			&profile.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		profile.BirthDate = birthDate
		out = append(out, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}

// UpsertProfile применяет событие из Kafka: профиль создаётся либо
// обновляется целиком по employee_id.
func (r *Repository) UpsertProfile(ctx context.Context, p dto.CandidateProfile) error {
	query := `
insert into candidate_profile (employee_id, first_name, last_name, birth_date, email, phone, headline, about, updated_at)
values (@employee_id, @first_name, @last_name, nullif(@birth_date,'')::date, @email, @phone, @headline, @about, now())
on conflict (employee_id) do update set
  first_name = excluded.first_name,
  last_name  = excluded.last_name,
  birth_date = excluded.birth_date,
  email      = excluded.email,
  phone      = excluded.phone,
  headline   = excluded.headline,
  about      = excluded.about,
  updated_at = now();
`
	args := pgx.NamedArgs{
		"employee_id": p.EmployeeID,
		"first_name":  p.FirstName,
		"last_name":   p.LastName,
		"birth_date":  strptr(p.BirthDate),
		"email":       p.Email,
		"phone":       p.Phone,
		"headline":    p.Headline,
		"about":       p.About,
	}

	if _, err := r.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func strptr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
