package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config lấy giá trị biến môi trường từ file .env (fallback sang env hệ thống)
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Print("")
	}
	return os.Getenv(key)
}

// ConfigOrDefault lấy biến môi trường, nếu rỗng thì dùng giá trị mặc định
func ConfigOrDefault(key, fallback string) string {
	value := Config(key)
	if value == "" {
		return fallback
	}
	return value
}
