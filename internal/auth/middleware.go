package auth

import (
	"encoding/json"
	"strings"

	"github.com/valyala/fasthttp"
)

// CtxClaimsKey — ключ, под которым claims кладутся в RequestCtx.
const CtxClaimsKey = "auth-claims"

type authError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Middleware проверяет Bearer-токен и роль по статической таблице доступа.
// Публичные маршруты (минимальная роль GUEST) пропускаются без токена.
func Middleware(secret string, next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		minRole := RequiredRole(string(ctx.Method()), string(ctx.Path()))
		if minRole == RoleGuest {
			next(ctx)
			return
		}

		header := string(ctx.Request.Header.Peek("Authorization"))
		if header == "" {
			writeAuthError(ctx, fasthttp.StatusUnauthorized, ErrTokenRequired.Error())
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			writeAuthError(ctx, fasthttp.StatusUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := ParseAccessToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			writeAuthError(ctx, fasthttp.StatusUnauthorized, err.Error())
			return
		}

		if !claims.Role.AtLeast(minRole) {
			writeAuthError(ctx, fasthttp.StatusForbidden, ErrForbidden.Error())
			return
		}

		ctx.SetUserValue(CtxClaimsKey, claims)
		next(ctx)
	}
}

// ClaimsFromCtx возвращает claims текущего запроса, nil для публичных маршрутов.
func ClaimsFromCtx(ctx *fasthttp.RequestCtx) *Claims {
	claims, ok := ctx.UserValue(CtxClaimsKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}

func writeAuthError(ctx *fasthttp.RequestCtx, status int, msg string) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(status)
	_ = json.NewEncoder(ctx).Encode(authError{Code: fasthttp.StatusMessage(status), Message: msg})
}
