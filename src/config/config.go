package config

import (
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ServerHost      string `env:"SERVER_HOST,default=:8080"`
	DatabaseDSN     string `env:"DB_DSN,required"`
	JWTSecret       string `env:"JWT_SECRET,required"`
	UploadRoot      string `env:"UPLOAD_ROOT,default=static"`
	FrontendBaseURL string `env:"FRONTEND_BASE_URL"`
	SystemEmail     string `env:"SYSTEM_EMAIL,default=ngd-portal@ngd.gov.sa"`
	AllowedOrigins  string `env:"ALLOWED_ORIGINS,default=*"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT,default=587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
}

// Load reads .env (when present) and decodes the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, relying on process environment")
	}

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
