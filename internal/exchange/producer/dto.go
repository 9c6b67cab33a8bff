package producer

import (
	"time"

	"github.com/google/uuid"
)

// ProfilePayload — событие об изменении профиля владельца резюме
type ProfilePayload struct {
	EmployeeID string `json:"employee_id" example:"e-1024"`             // Внутренний идентификатор владельца
	FirstName  string `json:"first_name" example:"Анна"`                // Имя
	LastName   string `json:"last_name"  example:"Иванова"`             // Фамилия
	BirthDate  string `json:"birth_date" example:"1994-06-12"`          // Дата рождения (YYYY-MM-DD)
	Headline   string `json:"headline"   example:"Инженер-программист"` // Заголовок резюме

	Contacts struct {
		Email string `json:"email" example:"anna.ivanova@company.ru"` // E-mail
		Phone string `json:"phone" example:"+7 916 123-45-67"`        // Телефон
	} `json:"contacts" swaggertype:"object"` // Контактные данные
}

// EmploymentPayload — событие о добавлении записи о занятости
type EmploymentPayload struct {
	EmployeeID string `json:"employee_id" example:"e-1024"`      // Внутренний идентификатор владельца
	Company    string `json:"company"     example:"ООО Ромашка"` // Компания
	Position   string `json:"position"    example:"Инженер QA"`  // Должность
	Period     struct {
		From      string `json:"from" example:"2022-07"`     // Первый месяц (YYYY-MM)
		To        string `json:"to"   example:"2025-09"`     // Последний месяц (YYYY-MM), пусто при is_current
		IsCurrent bool   `json:"is_current" example:"false"` // Признак «работаю сейчас»
	} `json:"period" swaggertype:"object"` // Период занятости
	Stack []string `json:"stack" example:"Go,PostgreSQL,Kafka"` // Технологический стек
}

// Envelope — общий конверт событий обмена: консьюмеры разбирают
// его же, идемпотентность обеспечивается по MessageID.
type Envelope[T any] struct {
	Kind       string    `json:"kind"        example:"employment"`                           // Тип события
	MessageID  uuid.UUID `json:"message_id"  example:"c7e06db5-4b71-4c54-9334-3f9a6e6c5d0e"` // Идентификатор события (UUID v4)
	EmployeeID string    `json:"employee_id" example:"e-1024"`                               // Внутренний идентификатор владельца
	Payload    T         `json:"payload"`                                                    // Полезная нагрузка (структура зависит от kind)
	Timestamp  time.Time `json:"timestamp"   example:"2025-10-19T12:34:56Z"`                 // Время формирования события
	Source     string    `json:"source"      example:"girok-resume-api"`                     // Сервис-источник
}
