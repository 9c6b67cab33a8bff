package api

import (
	"fmt"

	"github.com/valyala/fasthttp"
)

// @Summary Проверка здоровья сервиса
// @Tags    Admin
// @Success 200 {object} okResponse
// @Router  /health [get]
func (s *Service) healthHandler(ctx *fasthttp.RequestCtx) {
	ok(ctx, "OK")
}

// @Summary Полная очистка данных сервиса (truncate tables.*)
// @Tags    Admin
// @Success 200 {object} okResponse
// @Failure 500 {object} errorResponse
// @Router  /admin/reset [post]
func (s *Service) resetHandler(ctx *fasthttp.RequestCtx) {
	if err := s.events.ResetAll(ctx); err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("events.ResetAll: %w", err))
		return
	}

	ok(ctx, "Все данные очищены")
}

// @Summary Сырые события Kafka
// @Tags    Events
// @Produce json
// @Success 200 {array} dto.KafkaEvent
// @Failure 500 {object} errorResponse
// @Router  /events [get]
func (s *Service) listEvents(ctx *fasthttp.RequestCtx) {
	rows, err := s.events.ListEvents(ctx)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("events.ListEvents: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, rows)
}

// @Summary Сообщения DLQ
// @Tags    Events
// @Produce json
// @Success 200 {array} dto.KafkaDLQ
// @Failure 500 {object} errorResponse
// @Router  /dlq [get]
func (s *Service) listDLQ(ctx *fasthttp.RequestCtx) {
	rows, err := s.events.ListDLQ(ctx)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("events.ListDLQ: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, rows)
}

// @Summary Журнал аудита (только MASTER)
// @Tags    Audit
// @Produce json
// @Param   limit  query int false "Лимит"   default(50)
// @Param   offset query int false "Смещение" default(0)
// @Success 200 {object} listResponse
// @Failure 500 {object} errorResponse
// @Router  /audit [get]
func (s *Service) listAudit(ctx *fasthttp.RequestCtx) {
	limit, offset := parseLO(ctx)

	rows, err := s.auditLog.List(ctx, limit, offset)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("audit.List: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, listResponse{Items: rows, Limit: limit, Offset: offset})
}
