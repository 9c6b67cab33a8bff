// Package audit журналирует HTTP-запросы с маскированием чувствительных
// полей в телах запроса и ответа. Запись аудита никогда не блокирует
// и не ломает сам запрос.
package audit

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Поля, значения которых не должны попадать в журнал даже в замаскированном
// виде: секреты заменяются на [REDACTED] целиком.
var secretFields = map[string]struct{}{
	"password":         {},
	"current_password": {},
	"currentpassword":  {},
	"new_password":     {},
	"newpassword":      {},
	"password_hash":    {},
	"token":            {},
	"access_token":     {},
	"accesstoken":      {},
	"refresh_token":    {},
	"refreshtoken":     {},
	"authorization":    {},
	"secret":           {},
	"api_key":          {},
	"apikey":           {},
}

// Персональные контакты маскируются частично, чтобы запись оставалась
// пригодной для разбора инцидентов.
var maskedFields = map[string]struct{}{
	"email": {},
	"phone": {},
}

const redactedPlaceholder = "[REDACTED]"

// Redact возвращает копию JSON-тела с замаскированными чувствительными
// полями. Не-JSON тело заменяется заметкой о размере: сырые байты
// в журнал не попадают.
func Redact(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		note, _ := json.Marshal(map[string]any{
			"_non_json_body_bytes": len(body),
		})
		return note
	}

	out, err := json.Marshal(redactValue(parsed))
	if err != nil {
		return nil
	}

	return out
}

func redactValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			key := strings.ToLower(k)
			if _, ok := secretFields[key]; ok {
				out[k] = redactedPlaceholder
				continue
			}
			if _, ok := maskedFields[key]; ok {
				if s, isStr := inner.(string); isStr {
					out[k] = maskContact(s)
					continue
				}
			}
			out[k] = redactValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = redactValue(inner)
		}
		return out
	default:
		return v
	}
}

// maskContact оставляет первый символ и домен почты либо последние две
// цифры телефона: "anna@mail.ru" -> "a***@mail.ru", "+7 916 123-45-67" -> "***67".
func maskContact(s string) string {
	if s == "" {
		return s
	}

	if at := strings.LastIndex(s, "@"); at > 0 {
		first, _ := utf8.DecodeRuneInString(s)
		return fmt.Sprintf("%c***%s", first, s[at:])
	}

	if len(s) <= 2 {
		return "***"
	}

	return "***" + s[len(s)-2:]
}
