package yamlenv

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Env[T] — значение конфигурации из yaml с возможностью
// переопределения переменной окружения:
//
//	port:
//	  value: 8080
//	  env: API_PORT
//
// Если переменная окружения задана, она имеет приоритет над value.
type Env[T any] struct {
	Value  T      `yaml:"value"`
	EnvKey string `yaml:"env"`
}

func (e *Env[T]) UnmarshalYAML(node *yaml.Node) error {
	type plain struct {
		Value  yaml.Node `yaml:"value"`
		EnvKey string    `yaml:"env"`
	}

	var p plain
	if err := node.Decode(&p); err != nil {
		// допускаем краткую форму: поле задано скаляром без value/env
		if err := node.Decode(&e.Value); err != nil {
			return fmt.Errorf("yamlenv: decode: %w", err)
		}
		return nil
	}

	if !p.Value.IsZero() {
		if err := p.Value.Decode(&e.Value); err != nil {
			return fmt.Errorf("yamlenv: decode value: %w", err)
		}
	}
	e.EnvKey = p.EnvKey

	if e.EnvKey == "" {
		return nil
	}

	raw, ok := os.LookupEnv(e.EnvKey)
	if !ok {
		return nil
	}

	v, err := parse[T](raw)
	if err != nil {
		return fmt.Errorf("yamlenv: env %s: %w", e.EnvKey, err)
	}
	e.Value = v

	return nil
}

func parse[T any](raw string) (T, error) {
	var out T

	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return out, err
		}
		*p = n
	case *bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return out, err
		}
		*p = b
	default:
		if err := yaml.Unmarshal([]byte(raw), &out); err != nil {
			return out, err
		}
	}

	return out, nil
}
