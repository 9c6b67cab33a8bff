package dto

import (
	"time"
)

// CandidateProfile — профиль владельца резюме
type CandidateProfile struct {
	EmployeeID string    `json:"employee_id" example:"e-1024"`                    // Идентификатор владельца резюме
	FirstName  *string   `json:"first_name" example:"Анна"`                       // Имя
	LastName   *string   `json:"last_name,omitempty" example:"Иванова"`           // Фамилия
	BirthDate  *string   `json:"birth_date,omitempty" example:"1994-06-12"`       // Дата рождения в формате YYYY-MM-DD
	Email      *string   `json:"email,omitempty" example:"anna@mail.ru"`          // Почта
	Phone      *string   `json:"phone,omitempty" example:"+7 916 123-45-67"`      // Телефон
	Headline   *string   `json:"headline,omitempty" example:"Инженер-программист"` // Заголовок резюме
	About      *string   `json:"about,omitempty"`                                 // Свободное описание
	UpdatedAt  time.Time `json:"updated_at"`
}
