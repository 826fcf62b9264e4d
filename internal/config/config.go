package config

import (
	"os"
	"strings"

	"github.com/GregMSThompson/userdata-api/internal/dto"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverMongo     = "mongo"
	DriverFirestore = "firestore"
	DriverMemory    = "memory"
)

type Config struct {
	Port              string
	GraphQLPath       string
	LogLevel          string
	LogFormat         string
	StoreDriver       string
	MongoURI          string
	DatabaseName      string
	ProjectID         string
	ReadFailurePolicy dto.ReadFailurePolicy
}

func New() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		GraphQLPath:       getEnv("GRAPHQL_PATH", "/api/graphql"),
		LogLevel:          os.Getenv("LOGLEVEL"),
		LogFormat:         os.Getenv("LOG_FORMAT"),
		StoreDriver:       getStoreDriver(os.Getenv("STORE_DRIVER")),
		MongoURI:          os.Getenv("MONGODB_URI"),
		DatabaseName:      os.Getenv("DATABASE_NAME"),
		ProjectID:         os.Getenv("PROJECTID"),
		ReadFailurePolicy: getReadFailurePolicy(os.Getenv("READ_FAILURE_POLICY")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getStoreDriver(driver string) string {
	switch strings.ToLower(driver) {
	case DriverFirestore:
		return DriverFirestore
	case DriverMemory:
		return DriverMemory
	default: // "mongo"
		return DriverMongo
	}
}

func getReadFailurePolicy(policy string) dto.ReadFailurePolicy {
	switch strings.ToLower(policy) {
	case string(dto.ReadFailurePropagate):
		return dto.ReadFailurePropagate
	default: // "swallow"
		return dto.ReadFailureSwallow
	}
}
