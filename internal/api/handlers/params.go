package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// PathID извлекает UUID из переменной пути
func PathID(r *http.Request, name string) (string, error) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return id.String(), nil
}

// QueryTime разбирает необязательный параметр времени: RFC3339 или YYYY-MM-DD
// Дата без времени трактуется как начало суток UTC, для верхней границы как конец суток
func QueryTime(r *http.Request, name string, endOfDay bool) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	t, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: expected RFC3339 or %s", name, raw, domain.DateFormat)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// QueryInt разбирает необязательный целочисленный параметр
func QueryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return &n, nil
}

// QueryString необязательный строковый параметр
func QueryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}
