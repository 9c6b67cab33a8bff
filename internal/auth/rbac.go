package auth

import (
	"strings"
)

// Permission — правило доступа: метод + шаблон пути → минимальная роль.
// Сегмент вида {name} совпадает с любым одним сегментом пути.
type Permission struct {
	Method  string
	Pattern string
	MinRole Role
}

// PermissionTable — статическая таблица доступа сервиса.
// Чтение доступно авторизованным пользователям, изменения — менеджерам,
// журнал аудита и административные операции — только мастеру.
var PermissionTable = []Permission{
	{Method: "GET", Pattern: "/health", MinRole: RoleGuest},
	{Method: "GET", Pattern: "/metrics", MinRole: RoleGuest},

	{Method: "GET", Pattern: "/profiles", MinRole: RoleUser},
	{Method: "GET", Pattern: "/profiles/{employee_id}", MinRole: RoleUser},
	{Method: "POST", Pattern: "/profiles", MinRole: RoleManager},
	{Method: "PUT", Pattern: "/profiles/{employee_id}", MinRole: RoleManager},
	{Method: "DELETE", Pattern: "/profiles/{employee_id}", MinRole: RoleManager},

	{Method: "GET", Pattern: "/employments/{employee_id}", MinRole: RoleUser},
	{Method: "GET", Pattern: "/employments/{employee_id}/experience", MinRole: RoleUser},
	{Method: "POST", Pattern: "/employments", MinRole: RoleManager},
	{Method: "PUT", Pattern: "/employments/{id}", MinRole: RoleManager},
	{Method: "DELETE", Pattern: "/employments/{id}", MinRole: RoleManager},

	{Method: "POST", Pattern: "/producer/profile", MinRole: RoleManager},
	{Method: "POST", Pattern: "/producer/employment", MinRole: RoleManager},

	{Method: "GET", Pattern: "/events", MinRole: RoleUser},
	{Method: "GET", Pattern: "/dlq", MinRole: RoleUser},

	{Method: "GET", Pattern: "/audit", MinRole: RoleMaster},
	{Method: "POST", Pattern: "/admin/reset", MinRole: RoleMaster},
}

// RequiredRole возвращает минимальную роль для метода и пути.
// Для путей вне таблицы доступ требует USER: такие запросы всё равно
// закончатся 404, но не должны обходить авторизацию.
func RequiredRole(method, path string) Role {
	for _, p := range PermissionTable {
		if p.Method == method && matchPattern(p.Pattern, path) {
			return p.MinRole
		}
	}

	return RoleUser
}

func matchPattern(pattern, path string) bool {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")

	if len(ps) != len(xs) {
		return false
	}

	for i := range ps {
		if strings.HasPrefix(ps[i], "{") && strings.HasSuffix(ps[i], "}") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}

	return true
}
