package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger 建立模組共用的zerolog logger
// service name會附加在每一筆log上
func NewLogger(serviceName string) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
	return &logger
}
