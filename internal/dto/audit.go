package dto

import (
	"encoding/json"
)

// AuditEntry — запись журнала аудита HTTP-запросов.
// Тела запроса/ответа сохраняются уже после маскирования чувствительных полей.
type AuditEntry struct {
	ID         int64           `json:"id"`
	RequestID  string          `json:"request_id"`
	ActorID    string          `json:"actor_id,omitempty"`  // Subject из access-токена, пусто для анонимных запросов
	ActorRole  string          `json:"actor_role,omitempty"`
	Method     string          `json:"method"`
	Path       string          `json:"path"`
	Status     int             `json:"status"`
	LatencyMS  int64           `json:"latency_ms"`
	RemoteAddr string          `json:"remote_addr"`
	Request    json.RawMessage `json:"request,omitempty"`
	Response   json.RawMessage `json:"response,omitempty"`
	CreatedAt  string          `json:"created_at"`
}
