package model

import (
	"time"

	"github.com/google/uuid"
)

type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastWarning ToastLevel = "warning"
	ToastError   ToastLevel = "error"
)

// Toast is a transient user-visible notification pushed to connected
// dashboard clients (session expired, scrape started).
type Toast struct {
	Id        uuid.UUID  `json:"id"`
	Level     ToastLevel `json:"level"`
	Code      string     `json:"code"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewToast(level ToastLevel, code, message string) Toast {
	return Toast{
		Id:        uuid.New(),
		Level:     level,
		Code:      code,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
