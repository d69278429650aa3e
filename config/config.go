package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

var (
	MAIN_ROUTES string
	APP_PORT    string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Volumetric factors in kg per CBM. Zero disables the volumetric step for that mode.
	AirVolumetricFactor float64
	SeaVolumetricFactor float64

	RequestTimeout time.Duration
	SnowflakeNode  int64

	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPassword   string
	SMTPSender     string
	SRNotifyEmails []string

	KafkaBroker string
	KafkaTopic  string

	ImportUnprocessedDir string
	ImportProcessedDir   string
	ImportNotifyEmails   []string

	SeedDemo bool

	allowedOrigins map[string]bool
)

// LoadConfig membaca file .env dan menginisialisasi variabel konfigurasi
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using system environment variables")
	}

	// Server
	MAIN_ROUTES = getEnv("MAIN_ROUTES", "/api/v1")
	APP_PORT = getEnv("APP_PORT", "9000")
	RequestTimeout = time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second

	// Database
	DBDriver = getEnv("DB_DRIVER", "mysql")
	DBHost = getEnv("DB_HOST", "localhost")
	DBPort = getEnv("DB_PORT", "3306")
	DBUser = getEnv("DB_USER", "fms")
	DBPassword = getEnv("DB_PASSWORD", "")
	DBName = getEnv("DB_NAME", "fms")
	SeedDemo = getEnvAsBool("SEED_DEMO", false)

	// Cargo
	AirVolumetricFactor = getEnvAsFloat("AIR_VOLUMETRIC_FACTOR", 167)
	SeaVolumetricFactor = getEnvAsFloat("SEA_VOLUMETRIC_FACTOR", 0)

	SnowflakeNode = int64(getEnvAsInt("SNOWFLAKE_NODE", 1))

	// Mail
	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getEnvAsInt("SMTP_PORT", 587)
	SMTPUser = getEnv("SMTP_USER", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")
	SMTPSender = getEnv("SMTP_SENDER", SMTPUser)
	SRNotifyEmails = getEnvAsList("SR_NOTIFY_EMAILS")

	// Events
	KafkaBroker = getEnv("KAFKA_BROKER", "")
	KafkaTopic = getEnv("KAFKA_TOPIC", "booking.status_changed")

	// Batch import
	ImportUnprocessedDir = getEnv("IMPORT_UNPROCESSED_DIR", "data/unprocessed")
	ImportProcessedDir = getEnv("IMPORT_PROCESSED_DIR", "data/processed")
	ImportNotifyEmails = getEnvAsList("IMPORT_NOTIFY_EMAILS")

	loadAllowedOrigins()
}

// getEnv membaca environment variable dengan nilai default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, ""), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func loadAllowedOrigins() {
	allowedOrigins = make(map[string]bool)
	origins := getEnvAsList("ALLOWED_ORIGINS")
	if len(origins) == 0 {
		allowedOrigins["http://127.0.0.1:3000"] = true
		allowedOrigins["http://localhost:3000"] = true
		return
	}
	for _, origin := range origins {
		allowedOrigins[origin] = true
	}
}

func SetupCORS(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if allowedOrigins[origin] {
			c.Set("Access-Control-Allow-Origin", origin)
			c.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			c.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-User-ID, X-Request-ID")
			c.Set("Access-Control-Allow-Credentials", "true")
		}

		// preflight
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	})
}
