package utils

import "github.com/google/uuid"

// GenerateRequestID tạo ID cho request (UUID v4)
func GenerateRequestID() string {
	return uuid.NewString()
}
