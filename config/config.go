package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DatasetPath   string // CSV, XLSX or SQLite file, chosen by DatasetFormat
	DatasetFormat string // "csv", "xlsx" or "sqlite"
	SQLiteTable   string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	PersistDataset   bool

	CSVExportPath string // empty disables the normalized CSV export

	ServerAddr string
	LogLevel   string
	ReportTopN int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		DatasetPath:   getEnv("DATASET_PATH", "./data/zomato.csv"),
		DatasetFormat: getEnv("DATASET_FORMAT", "csv"),
		SQLiteTable:   getEnv("SQLITE_TABLE", "restaurants"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "zomato"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "zomato123"),
		PostgresDB:       getEnv("POSTGRES_DB", "zomato_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PersistDataset:   getEnvBool("PERSIST_DATASET", false),

		CSVExportPath: getEnv("CSV_EXPORT_PATH", ""),

		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		ReportTopN: getEnvInt("REPORT_TOP_N", 10),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
