package config

import (
	"errors"
	"os"
	"strconv"
)

// Config is the environment-sourced runtime configuration. Values are read
// once at startup; .env loading happens through the godotenv autoload import
// in main.
type Config struct {
	AppEnv                 string
	Port                   int
	JWTSecret              string
	UploadsDir             string
	MercadoPagoAccessToken string
}

func (c Config) Production() bool {
	return c.AppEnv == "production"
}

// Load reads configuration from the environment. JWT_SECRET is mandatory in
// production; outside production a development-only fallback keeps local
// setups working without a .env file.
func Load() (Config, error) {
	cfg := Config{
		AppEnv:                 getenvDefault("APP_ENV", "local"),
		Port:                   getenvInt("PORT", 8080),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		UploadsDir:             getenvDefault("UPLOADS_DIR", "uploads"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}

	if cfg.JWTSecret == "" {
		if cfg.Production() {
			return Config{}, errors.New("missing env: JWT_SECRET")
		}
		cfg.JWTSecret = "local-dev-secret"
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
