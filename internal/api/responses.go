package api

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/valyala/fasthttp"
)

var (
	ErrMessageIDRequired = errors.New("поле message_id не передано")

	ErrEmployeeIDRequired   = errors.New("поле employee id не передано")
	ErrProfileNotFound      = errors.New("профиль не найден")
	ErrProfileAlreadyExists = errors.New("профиль уже существует")
)

type okResponse struct {
	Status string `json:"status" example:"ok"`
	Msg    string `json:"msg" example:"Готово"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type listResponse struct {
	Items  any `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(statusCode)

	_ = json.NewEncoder(ctx).Encode(body)
}

func ok(ctx *fasthttp.RequestCtx, msg string) {
	writeJSON(ctx, fasthttp.StatusOK, okResponse{Status: "ok", Msg: msg})
}

func writeError(ctx *fasthttp.RequestCtx, httpStatus int, err error) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(httpStatus)
	_ = json.NewEncoder(ctx).Encode(errorResponse{Code: fasthttp.StatusMessage(httpStatus), Message: err.Error()})
}

func badRequest(ctx *fasthttp.RequestCtx, code, msg string) {
	writeJSON(ctx, fasthttp.StatusBadRequest, errorResponse{Code: code, Message: msg})
}

func notFound(ctx *fasthttp.RequestCtx, code, msg string) {
	writeJSON(ctx, fasthttp.StatusNotFound, errorResponse{Code: code, Message: msg})
}

func serverError(ctx *fasthttp.RequestCtx, err error) {
	writeJSON(ctx, fasthttp.StatusInternalServerError, errorResponse{Code: "internal_error", Message: err.Error()})
}

func parseLO(ctx *fasthttp.RequestCtx) (int, int) {
	limit, _ := strconv.Atoi(string(ctx.QueryArgs().Peek("limit")))
	offset, _ := strconv.Atoi(string(ctx.QueryArgs().Peek("offset")))
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
