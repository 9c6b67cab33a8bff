package dto

import (
	"time"
)

// EmploymentRecord — запись о периоде занятости в резюме.
// Даты хранятся с точностью до месяца (YYYY-MM); period_to отсутствует,
// если is_current=true — тогда запись считается действующей по текущий месяц.
type EmploymentRecord struct {
	ID         int64     `json:"id" example:"42"`                           // Идентификатор записи (БД)
	EmployeeID string    `json:"employee_id" example:"e-1024"`              // Идентификатор владельца резюме
	Company    string    `json:"company" example:"ООО Ромашка"`             // Компания
	Position   *string   `json:"position,omitempty" example:"Инженер QA"`   // Должность
	PeriodFrom string    `json:"period_from" example:"2022-07"`             // Первый месяц занятости (YYYY-MM), включительно
	PeriodTo   *string   `json:"period_to,omitempty" example:"2025-09"`     // Последний месяц занятости (YYYY-MM), включительно
	IsCurrent  bool      `json:"is_current" example:"false"`                // Признак «работаю сейчас»
	Stack      []string  `json:"stack" example:"Go,PostgreSQL,Kafka"`       // Технологический стек
	CreatedAt  time.Time `json:"created_at" example:"2025-10-19T10:15:30Z"` // Время создания записи
}
