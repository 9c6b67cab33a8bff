package audit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundtrip(t *testing.T, body string) map[string]any {
	t.Helper()

	out := Redact([]byte(body))
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestRedact_SecretsReplaced(t *testing.T) {
	m := roundtrip(t, `{"email":"anna@mail.ru","password":"qwerty123","name":"Анна"}`)

	assert.Equal(t, "[REDACTED]", m["password"])
	assert.Equal(t, "a***@mail.ru", m["email"])
	assert.Equal(t, "Анна", m["name"])
}

func TestRedact_CaseInsensitiveKeys(t *testing.T) {
	m := roundtrip(t, `{"currentPassword":"old","newPassword":"new","accessToken":"jwt"}`)

	assert.Equal(t, "[REDACTED]", m["currentPassword"])
	assert.Equal(t, "[REDACTED]", m["newPassword"])
	assert.Equal(t, "[REDACTED]", m["accessToken"])
}

func TestRedact_Nested(t *testing.T) {
	m := roundtrip(t, `{
		"profile": {"contacts": {"email": "boris@corp.io", "phone": "+7 916 123-45-67"}},
		"tokens": [{"refresh_token": "abc"}, {"refresh_token": "def"}]
	}`)

	profile := m["profile"].(map[string]any)
	contacts := profile["contacts"].(map[string]any)
	assert.Equal(t, "b***@corp.io", contacts["email"])
	assert.Equal(t, "***67", contacts["phone"])

	tokens := m["tokens"].([]any)
	for _, tok := range tokens {
		assert.Equal(t, "[REDACTED]", tok.(map[string]any)["refresh_token"])
	}
}

func TestRedact_NonJSONBody(t *testing.T) {
	m := roundtrip(t, "plain text, not json")

	assert.Equal(t, float64(len("plain text, not json")), m["_non_json_body_bytes"])
	assert.Len(t, m, 1)
}

func TestRedact_Empty(t *testing.T) {
	assert.Nil(t, Redact(nil))
	assert.Nil(t, Redact([]byte{}))
}

func TestRedact_NonStringSensitiveValue(t *testing.T) {
	// email числом — маскирование по шаблону неприменимо, значение проходит рекурсию как есть
	m := roundtrip(t, `{"email": 42, "password": 1}`)

	assert.Equal(t, float64(42), m["email"])
	assert.Equal(t, "[REDACTED]", m["password"])
}

func TestMaskContact(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"anna@mail.ru", "a***@mail.ru"},
		{"анна@mail.ru", "а***@mail.ru"},
		{"+7 916 123-45-67", "***67"},
		{"89161234567", "***67"},
		{"a", "***"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, maskContact(tt.in), tt.in)
	}
}
