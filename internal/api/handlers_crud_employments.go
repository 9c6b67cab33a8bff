package api

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
)

type createEmploymentRequest struct {
	EmployeeID string   `json:"employee_id" example:"e-1024"`
	Company    string   `json:"company" example:"ООО Ромашка"`
	Position   *string  `json:"position,omitempty" example:"Инженер QA"`
	PeriodFrom string   `json:"period_from" example:"2022-07"`
	PeriodTo   *string  `json:"period_to,omitempty" example:"2025-09"`
	IsCurrent  bool     `json:"is_current" example:"false"`
	Stack      []string `json:"stack" example:"Go,PostgreSQL"`
}

type updateEmploymentRequest struct {
	Company    *string  `json:"company,omitempty"`
	Position   *string  `json:"position,omitempty"`
	PeriodFrom *string  `json:"period_from,omitempty"`
	PeriodTo   *string  `json:"period_to,omitempty"`
	IsCurrent  *bool    `json:"is_current,omitempty"`
	Stack      []string `json:"stack,omitempty"`
}

// @Summary Записи о занятости владельца резюме
// @Tags    CRUD-Employments
// @Produce json
// @Param   employee_id path string true "Идентификатор владельца резюме"
// @Param   limit  query int false "Лимит"   default(50)
// @Param   offset query int false "Смещение" default(0)
// @Success 200 {object} listResponse
// @Failure 500 {object} errorResponse
// @Router  /employments/{employee_id} [get]
func (s *Service) listEmploymentsByEmployee(ctx *fasthttp.RequestCtx) {
	employeeID := ctx.UserValue("employee_id").(string)
	limit, offset := parseLO(ctx)
	rows, err := s.employments.ListByEmployee(ctx, employeeID, limit, offset)
	if err != nil {
		serverError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, listResponse{Items: rows, Limit: limit, Offset: offset})
}

// @Summary Добавить запись о занятости
// @Tags    CRUD-Employments
// @Accept  json
// @Produce json
// @Param   request body createEmploymentRequest true "Запись"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /employments [post]
func (s *Service) createEmployment(ctx *fasthttp.RequestCtx) {
	var req createEmploymentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		badRequest(ctx, "invalid_json", "Некорректный JSON")
		return
	}

	row := dto.EmploymentRecord{
		EmployeeID: req.EmployeeID,
		Company:    req.Company,
		Position:   req.Position,
		PeriodFrom: req.PeriodFrom,
		PeriodTo:   req.PeriodTo,
		IsCurrent:  req.IsCurrent,
		Stack:      req.Stack,
	}

	if msg := validateEmploymentRecord(row); msg != "" {
		badRequest(ctx, "validation_error", msg)
		return
	}

	if err := s.employments.Insert(ctx, row); err != nil {
		serverError(ctx, err)
		return
	}
	ok(ctx, "Запись о занятости добавлена")
}

// @Summary Обновить запись о занятости
// @Tags    CRUD-Employments
// @Accept  json
// @Produce json
// @Param   id path int true "ID записи"
// @Param   request body updateEmploymentRequest true "Изменяемые поля"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /employments/{id} [put]
func (s *Service) updateEmployment(ctx *fasthttp.RequestCtx) {
	idStr := ctx.UserValue("id").(string)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		badRequest(ctx, "invalid_id", "Некорректный id записи")
		return
	}

	exists, err := s.employments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			notFound(ctx, "employment_not_found", "Запись о занятости не найдена")
			return
		}
		serverError(ctx, err)
		return
	}

	var req updateEmploymentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		badRequest(ctx, "invalid_json", "Некорректный JSON")
		return
	}

	row := dto.EmploymentRecord{
		ID:         id,
		EmployeeID: exists.EmployeeID,
		Company:    exists.Company,
		Position:   exists.Position,
		PeriodFrom: exists.PeriodFrom,
		PeriodTo:   exists.PeriodTo,
		IsCurrent:  exists.IsCurrent,
		Stack:      exists.Stack,
	}

	if req.Company != nil {
		row.Company = *req.Company
	}
	if req.Position != nil {
		row.Position = req.Position
	}
	if req.PeriodFrom != nil {
		row.PeriodFrom = *req.PeriodFrom
	}
	if req.PeriodTo != nil {
		if strings.TrimSpace(*req.PeriodTo) == "" {
			row.PeriodTo = nil
		} else {
			row.PeriodTo = req.PeriodTo
		}
	}
	if req.IsCurrent != nil {
		row.IsCurrent = *req.IsCurrent
		if row.IsCurrent {
			row.PeriodTo = nil
		}
	}
	if len(req.Stack) > 0 {
		row.Stack = req.Stack
	}

	if msg := validateEmploymentRecord(row); msg != "" {
		badRequest(ctx, "validation_error", msg)
		return
	}

	if err := s.employments.Update(ctx, row); err != nil {
		serverError(ctx, err)
		return
	}
	ok(ctx, "Запись о занятости обновлена")
}

// @Summary Удалить запись о занятости
// @Tags    CRUD-Employments
// @Produce json
// @Param   id path int true "ID записи"
// @Success 200 {object} okResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router  /employments/{id} [delete]
func (s *Service) deleteEmployment(ctx *fasthttp.RequestCtx) {
	idStr := ctx.UserValue("id").(string)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		badRequest(ctx, "invalid_id", "Некорректный id записи")
		return
	}

	if err := s.employments.Delete(ctx, id); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			notFound(ctx, "employment_not_found", "Запись о занятости не найдена")
			return
		}
		serverError(ctx, err)
		return
	}

	ok(ctx, "Запись о занятости удалена")
}
