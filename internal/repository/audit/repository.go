package audit

import (
	"context"
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

func (r *Repository) Insert(ctx context.Context, entry dto.AuditEntry) error {
	query := `
INSERT INTO audit_log
	(request_id, actor_id, actor_role, method, path, status, latency_ms, remote_addr, request, response, created_at)
VALUES
	($1, $2, $3, $4, $5, $6, $7, $8, nullif($9,'')::jsonb, nullif($10,'')::jsonb, NOW());
`
	_, err := r.pool.Exec(ctx, query,
		entry.RequestID,
		entry.ActorID,
		entry.ActorRole,
		entry.Method,
		entry.Path,
		entry.Status,
		entry.LatencyMS,
		entry.RemoteAddr,
		string(entry.Request),
		string(entry.Response),
	)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]dto.AuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
SELECT id, request_id, actor_id, actor_role, method, path, status, latency_ms, remote_addr,
	   coalesce(request::text, ''), coalesce(response::text, ''),
	   to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')
FROM audit_log
ORDER BY id DESC
LIMIT $1 OFFSET $2
`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.AuditEntry
	for rows.Next() {
		var (
			entry    dto.AuditEntry
			request  string
			response string
		)

		err = rows.Scan(
			&entry.ID,
			&entry.RequestID,
			&entry.ActorID,
			&entry.ActorRole,
			&entry.Method,
			&entry.Path,
			&entry.Status,
			&entry.LatencyMS,
			&entry.RemoteAddr,
			&request,
			&response,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		if request != "" {
			entry.Request = []byte(request)
		}
		if response != "" {
			entry.Response = []byte(response)
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}
