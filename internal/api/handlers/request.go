package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// OptionalQuery возвращает значение query параметра или nil, если параметр пустой
func OptionalQuery(r *http.Request, key string) *string {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return nil
	}
	return &value
}

// QueryInt разбирает целочисленный query параметр; отсутствующий параметр дает 0
func QueryInt(r *http.Request, key string) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

// QueryTime разбирает query параметр в формате RFC 3339; отсутствующий параметр дает nil
func QueryTime(r *http.Request, key string) (*time.Time, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatInstant форматирует момент времени в RFC 3339 со смещением
func FormatInstant(t time.Time) string {
	return t.Format(time.RFC3339)
}
