package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
)

type profileProduceRequest struct {
	MessageID  string  `json:"message_id"`
	EmployeeID string  `json:"employee_id"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	BirthDate  *string `json:"birth_date"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Headline   *string `json:"headline"`
}

type employmentProduceRequest struct {
	MessageID  string   `json:"message_id"`
	EmployeeID string   `json:"employee_id"`
	Company    string   `json:"company"`
	Position   *string  `json:"position"`
	PeriodFrom string   `json:"period_from"`
	PeriodTo   *string  `json:"period_to"`
	IsCurrent  bool     `json:"is_current"`
	Stack      []string `json:"stack"`
}

// @Summary Публикация события в resume.profile
// @Tags    Producer
// @Accept  json
// @Produce json
// @Param   request body profileProduceRequest true "Событие профиля"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /producer/profile [post]
func (s *Service) producerProfile(ctx *fasthttp.RequestCtx) {
	var req profileProduceRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		badRequest(ctx, "invalid_json", "Некорректный JSON")
		return
	}

	messageID, err := parseMessageID(req.MessageID)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(req.EmployeeID) == "" {
		writeError(ctx, fasthttp.StatusBadRequest, ErrEmployeeIDRequired)
		return
	}

	profile := dto.CandidateProfile{
		EmployeeID: req.EmployeeID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		BirthDate:  req.BirthDate,
		Email:      req.Email,
		Phone:      req.Phone,
		Headline:   req.Headline,
	}

	if err := s.producer.ProduceProfile(ctx, messageID, profile); err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("producer.ProduceProfile: %w", err))
		return
	}

	ok(ctx, "Событие профиля отправлено")
}

// @Summary Публикация события в resume.employment
// @Tags    Producer
// @Accept  json
// @Produce json
// @Param   request body employmentProduceRequest true "Событие занятости"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /producer/employment [post]
func (s *Service) producerEmployment(ctx *fasthttp.RequestCtx) {
	var req employmentProduceRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		badRequest(ctx, "invalid_json", "Некорректный JSON")
		return
	}

	messageID, err := parseMessageID(req.MessageID)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(req.EmployeeID) == "" {
		writeError(ctx, fasthttp.StatusBadRequest, ErrEmployeeIDRequired)
		return
	}

	rec := dto.EmploymentRecord{
		EmployeeID: req.EmployeeID,
		Company:    req.Company,
		Position:   req.Position,
		PeriodFrom: req.PeriodFrom,
		PeriodTo:   req.PeriodTo,
		IsCurrent:  req.IsCurrent,
		Stack:      req.Stack,
	}

	if err := s.producer.ProduceEmployment(ctx, messageID, rec); err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("producer.ProduceEmployment: %w", err))
		return
	}

	ok(ctx, "Событие занятости отправлено")
}

// parseMessageID — message_id обязателен и задаётся клиентом, чтобы
// повторная отправка того же события оставалась идемпотентной.
func parseMessageID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, ErrMessageIDRequired
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("поле message_id не является UUID")
	}

	return id, nil
}
