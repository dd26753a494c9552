package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration. It is loaded once at startup and
// read-only afterwards.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	AWSAccessKeyID  string
	AWSSecretKey    string
	S3Bucket        string
	S3Prefix        string

	RecordStoreType string
	DynamoTable     string
	DatabaseURL     string

	GroqAPIKey string
	LLMModel   string

	// UploadsDebugDir, when non-empty, enables best-effort local copies of
	// uploaded files for debugging. Copies are removed at end of request.
	UploadsDebugDir string

	// MaxExtractedTextChars bounds the extracted text echoed back to clients.
	MaxExtractedTextChars int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	return Config{
		Port:                  getEnv("PORT", "8080"),
		Env:                   normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:       splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		ObjectStoreType:       normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:         getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:             getEnv("AWS_REGION", ""),
		AWSAccessKeyID:        os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:          os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:              getEnv("S3_BUCKET_NAME", ""),
		S3Prefix:              getEnv("S3_PREFIX", ""),
		RecordStoreType:       normalizeRecordStore(getEnv("RECORD_STORE", "memory")),
		DynamoTable:           getEnv("DYNAMO_TABLE_NAME", ""),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		GroqAPIKey:            os.Getenv("GROQ_API_KEY"),
		LLMModel:              getEnv("LLM_MODEL", "llama3-70b-8192"),
		UploadsDebugDir:       getEnv("UPLOADS_DEBUG_DIR", ""),
		MaxExtractedTextChars: 10000,
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeRecordStore(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dynamo", "dynamodb":
		return "dynamo"
	case "postgres", "pg":
		return "postgres"
	default:
		return "memory"
	}
}
