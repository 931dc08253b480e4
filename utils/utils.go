package utils

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	PortEnvVar  = "PORT"
	DefaultPort = 5000
)

// LoadEnvFile reads a .env file into the process environment. Variables
// that are already set are left alone, so the real environment always wins.
func LoadEnvFile(filenames ...string) {
	err := godotenv.Load(filenames...)
	if err != nil {
		log.Debug().Err(err).Msg("No .env file loaded, using process environment only")
	}
}

func GetEnvOrDefault(varName string, defaultValue string) string {
	envVar, ok := os.LookupEnv(varName)
	if !ok || envVar == "" {
		return defaultValue
	}
	return envVar
}

// GetPort returns the TCP port from PORT, or DefaultPort when the variable is
// unset or does not hold a number in 1-65535.
func GetPort() int {
	raw, ok := os.LookupEnv(PortEnvVar)
	if !ok || raw == "" {
		return DefaultPort
	}
	port, err := ParsePort(raw)
	if err != nil {
		log.Warn().Err(err).Str("value", raw).Int("default", DefaultPort).Msg("Invalid PORT, falling back to default")
		return DefaultPort
	}
	return port
}

func ParsePort(raw string) (int, error) {
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InvalidPortError{Value: raw}
	}
	if port < 1 || port > 65535 {
		return 0, &InvalidPortError{Value: raw}
	}
	return port, nil
}
