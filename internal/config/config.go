package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret           string
	Issuer              string
	ServerPort          string
	ClaimsAPIBaseURL    string
	DocumentsAPIBaseURL string
	RequestTimeoutSec   int
	MaxUploadBytes      int64
	ClaimTypeCatalog    string
	LogLevel            string
	LogFormat           string
	ReviewerRoles       = []string{"hr", "agent"}
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "claims-portal")
	ServerPort = getEnv("SERVER_PORT", "8080")

	ClaimsAPIBaseURL = getEnv("CLAIMS_API_BASE_URL", "http://localhost:9090/api")
	DocumentsAPIBaseURL = getEnv("DOCUMENTS_API_BASE_URL", "http://localhost:9091/api")
	RequestTimeoutSec, _ = strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "30"))
	MaxUploadBytes, _ = strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "10485760"), 10, 64)

	ClaimTypeCatalog = getEnv("CLAIM_TYPE_CATALOG", "")
	LogLevel = getEnv("LOG_LEVEL", "info")
	LogFormat = getEnv("LOG_FORMAT", "json")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
