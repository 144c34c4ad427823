package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateReceiptNumber generates a unique receipt reference for payments
func GenerateReceiptNumber() string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, 8)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}

	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("RCP_%s_%s", timestamp, string(result))
}
