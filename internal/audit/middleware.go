package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/beegy-labs/girok-resume-api/internal/auth"
	"github.com/beegy-labs/girok-resume-api/internal/dto"
)

type Repository interface {
	Insert(ctx context.Context, entry dto.AuditEntry) error
}

// Interceptor пишет запись аудита по каждому запросу.
// Тела журналируются только для изменяющих методов и только после
// маскирования; вставка в БД выполняется асинхронно с собственным
// таймаутом, ошибка аудита не влияет на ответ клиенту.
type Interceptor struct {
	repo Repository
	log  zerolog.Logger
}

func NewInterceptor(repo Repository, log zerolog.Logger) *Interceptor {
	return &Interceptor{
		repo: repo,
		log:  log.With().Str("component", "audit").Logger(),
	}
}

func (i *Interceptor) Wrap(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		requestID, ok := ctx.UserValue("request-id").(string)
		if !ok {
			requestID = uuid.New().String()
			ctx.SetUserValue("request-id", requestID)
		}

		method := string(ctx.Method())
		path := string(ctx.Path())
		remoteAddr := ctx.RemoteAddr().String()

		var reqBody []byte
		if mutating(method) {
			reqBody = append([]byte(nil), ctx.PostBody()...)
		}

		begin := time.Now()
		next(ctx)
		latency := time.Since(begin)

		entry := dto.AuditEntry{
			RequestID:  requestID,
			Method:     method,
			Path:       path,
			Status:     ctx.Response.StatusCode(),
			LatencyMS:  latency.Milliseconds(),
			RemoteAddr: remoteAddr,
			Request:    Redact(reqBody),
		}

		if claims := auth.ClaimsFromCtx(ctx); claims != nil {
			entry.ActorID = claims.Subject
			entry.ActorRole = string(claims.Role)
		}

		if mutating(method) {
			entry.Response = Redact(ctx.Response.Body())
		}

		go i.persist(entry)
	}
}

func (i *Interceptor) persist(entry dto.AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := i.repo.Insert(ctx, entry); err != nil {
		i.log.Error().
			Err(err).
			Str("request_id", entry.RequestID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Msg("audit insert failed")
	}
}

func mutating(method string) bool {
	switch method {
	case fasthttp.MethodPost, fasthttp.MethodPut, fasthttp.MethodDelete, fasthttp.MethodPatch:
		return true
	}
	return false
}
