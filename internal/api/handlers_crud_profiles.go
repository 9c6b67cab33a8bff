package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
)

type candidateProfileReq struct {
	FirstName *string `json:"first_name" example:"Анна"`                        // Имя
	LastName  *string `json:"last_name,omitempty" example:"Иванова"`            // Фамилия
	BirthDate *string `json:"birth_date,omitempty" example:"1994-06-12"`        // Дата рождения в формате YYYY-MM-DD
	Email     *string `json:"email" example:"anna@mail.ru"`                     // Почта
	Phone     *string `json:"phone,omitempty" example:"+7 916 123-45-67"`       // Телефон
	Headline  *string `json:"headline,omitempty" example:"Инженер-программист"` // Заголовок резюме
	About     *string `json:"about,omitempty"`                                  // Свободное описание
}

// @Summary Список профилей
// @Tags    CRUD-Profiles
// @Produce json
// @Success 200 {array} dto.CandidateProfile
// @Failure 500 {object} errorResponse "Внутренняя ошибка"
// @Router  /profiles [get]
func (s *Service) listProfiles(ctx *fasthttp.RequestCtx) {
	rows, err := s.profiles.ListProfiles(ctx)

	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("profileRepository.ListProfiles: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, rows)
}

// @Summary Получить профиль по employee_id
// @Tags CRUD-Profiles
// @Produce json
// @Param employee_id path string true "Идентификатор владельца резюме"
// @Success 200 {object} dto.CandidateProfile
// @Failure 404 {object} errorResponse "profile not found"
// @Failure 500 {object} errorResponse "Внутренняя ошибка"
// @Router /profiles/{employee_id} [get]
func (s *Service) getProfile(ctx *fasthttp.RequestCtx) {
	employeeID := ctx.UserValue("employee_id").(string)
	if strings.TrimSpace(employeeID) == "" {
		writeError(ctx, fasthttp.StatusBadRequest, ErrEmployeeIDRequired)
		return
	}

	row, err := s.profiles.GetProfile(ctx, employeeID)

	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrProfileNotFound)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("profileRepository.GetProfile: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, row)
}

// @Summary Создать профиль
// @Tags    CRUD-Profiles
// @Accept  json
// @Produce json
// @Param   request body dto.CandidateProfile true "Профиль"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse "VALIDATION ERROR — ошибки валидации входных данных"
// @description Варианты 400 (VALIDATION ERROR):
// @description - required: employee_id, first_name, email
// @description - required (если присутствует): birth_date, headline
// @description - invalid value: email, birth_date (если присутствует)
// @Failure 409 {object} errorResponse "profile already exists"
// @Failure 500 {object} errorResponse "Внутренняя ошибка"
// @Router  /profiles [post]
func (s *Service) createProfile(ctx *fasthttp.RequestCtx) {
	var req dto.CandidateProfile

	err := json.Unmarshal(ctx.PostBody(), &req)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	if msg := validateCandidateProfile(req); msg != "" {
		writeError(ctx, fasthttp.StatusBadRequest, errors.New(msg))
		return
	}

	if err := s.profiles.Create(ctx, req); err != nil {
		if errors.Is(err, dto.ErrAlreadyExists) {
			writeError(ctx, fasthttp.StatusConflict, ErrProfileAlreadyExists)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("profileRepository.Create: %w", err))
		return
	}

	ok(ctx, "Профиль создан")
}

// @Summary Обновить профиль
// @Tags    CRUD-Profiles
// @Accept  json
// @Produce json
// @Param   employee_id path string true "Идентификатор владельца резюме"
// @Param   request body candidateProfileReq true "Профиль"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse "VALIDATION ERROR — ошибки валидации входных данных"
// @Failure 404 {object} errorResponse "profile not found"
// @Failure 500 {object} errorResponse "Внутренняя ошибка"
// @Router  /profiles/{employee_id} [put]
func (s *Service) updateProfile(ctx *fasthttp.RequestCtx) {
	var req candidateProfileReq

	err := json.Unmarshal(ctx.PostBody(), &req)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	employeeID := ctx.UserValue("employee_id").(string)
	if strings.TrimSpace(employeeID) == "" {
		writeError(ctx, fasthttp.StatusBadRequest, ErrEmployeeIDRequired)
		return
	}

	var profile = dto.CandidateProfile{
		EmployeeID: employeeID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		BirthDate:  req.BirthDate,
		Email:      req.Email,
		Phone:      req.Phone,
		Headline:   req.Headline,
		About:      req.About,
	}

	if msg := validateCandidateProfile(profile); msg != "" {
		writeError(ctx, fasthttp.StatusBadRequest, errors.New(msg))
		return
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrProfileNotFound)

			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("profileRepository.Update: %w", err))
		return
	}

	ok(ctx, "Профиль обновлён")
}

// @Summary Удалить профиль
// @Tags    CRUD-Profiles
// @Produce json
// @Param   employee_id path string true "Идентификатор владельца резюме"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse "required field 'employee_id'"
// @Failure 404 {object} errorResponse "profile not found"
// @Failure 500 {object} errorResponse "Внутренняя ошибка"
// @Router  /profiles/{employee_id} [delete]
func (s *Service) deleteProfile(ctx *fasthttp.RequestCtx) {
	employeeID := ctx.UserValue("employee_id").(string)

	if strings.TrimSpace(employeeID) == "" {
		writeError(ctx, fasthttp.StatusBadRequest, ErrEmployeeIDRequired)
		return
	}

	if err := s.profiles.Delete(ctx, employeeID); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrProfileNotFound)

			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("profileRepository.Delete: %w", err))
		return
	}

	ok(ctx, "Профиль удалён")
}
