package consumer

import (
	"time"

	"github.com/google/uuid"
)

type ProfilePayload struct {
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	BirthDate  string `json:"birth_date"`
	Headline   string `json:"headline"`
	Contacts   struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"contacts"`
}

type EmploymentPayload struct {
	EmployeeID string `json:"employee_id"`
	Company    string `json:"company"`
	Position   string `json:"position"`
	Period     struct {
		From      string `json:"from"`
		To        string `json:"to"`
		IsCurrent bool   `json:"is_current"`
	} `json:"period"`
	Stack []string `json:"stack"`
}

type Envelope[T any] struct {
	Kind       string    `json:"kind"`
	MessageID  uuid.UUID `json:"message_id"`
	EmployeeID string    `json:"employee_id"`
	Payload    T         `json:"payload"`
	Timestamp  time.Time `json:"timestamp"`
	Source     string    `json:"source"`
}
