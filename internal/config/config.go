package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
	"time"
)

type DB struct {
	DatabaseURL string
	DbHOST      string
	DbPORT      string
	DbUSER      string
	DbPASSWORD  string
	DbNAME      string
	DbSSLMODE   string
}

type MinIO struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	BucketName   string
	UseSSL       bool
	ResumeObject string
}

type Trustifi struct {
	URL       string
	Key       string
	Secret    string
	Recipient string
	Timeout   time.Duration
}

type Config struct {
	ServerPort      int
	DB              DB
	MinIO           MinIO
	Trustifi        Trustifi
	SessionSecret   string
	SessionDuration time.Duration
	AdminUserID     int64
	ResumeCode      string
	ResumeFile      string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DbHOST:      getEnv("DB_HOST", "localhost"),
		DbPORT:      getEnv("DB_PORT", "5432"),
		DbUSER:      getEnv("DB_USER", "postgres"),
		DbPASSWORD:  getEnv("DB_PASSWORD", "password"),
		DbNAME:      getEnv("DB_NAME", "blog"),
		DbSSLMODE:   getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:     getEnv("MINIO_ENDPOINT", ""),
		AccessKey:    getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:    getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName:   getEnv("MINIO_BUCKET_NAME", "files"),
		UseSSL:       getEnvBool("MINIO_USE_SSL", false),
		ResumeObject: getEnv("RESUME_OBJECT", "files/resume.pdf"),
	}
}

func LoadTrustifi() Trustifi {
	return Trustifi{
		URL:       getEnv("TRUSTIFI_URL", ""),
		Key:       getEnv("TRUSTIFI_KEY", ""),
		Secret:    getEnv("TRUSTIFI_SECRET", ""),
		Recipient: getEnv("CONTACT_RECIPIENT", "maxnes500@gmail.com"),
		Timeout:   parseDuration(getEnv("CONTACT_TIMEOUT", "10s"), 10*time.Second),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 8080),
		DB:              LoadDB(),
		MinIO:           LoadMinIO(),
		Trustifi:        LoadTrustifi(),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionDuration: parseDuration(getEnv("SESSION_DURATION", "168h"), 168*time.Hour),
		AdminUserID:     getEnvAsInt64("ADMIN_USER_ID", 1),
		ResumeCode:      getEnv("SECRET_CODE", ""),
		ResumeFile:      getEnv("RESUME_FILE", "static/files/resume.pdf"),
	}
}
