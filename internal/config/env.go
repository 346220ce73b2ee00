package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type Env struct {
	AppAddr  string `yaml:"app_addr"`
	GinMode  string `yaml:"gin_mode"`
	LogLevel string `yaml:"log_level"`

	DB DBConfig `yaml:"database"`

	JWTSecret string        `yaml:"jwt_secret"`
	JWTExpire time.Duration `yaml:"jwt_expire"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	SeedOnStart        bool     `yaml:"seed_on_start"`

	OptimizeRatePerSec float64 `yaml:"optimize_rate_per_sec"`
	OptimizeRateBurst  int     `yaml:"optimize_rate_burst"`

	GeoEnabled   bool   `yaml:"geo_enabled"`
	NominatimURL string `yaml:"nominatim_url"`
	OSRMURL      string `yaml:"osrm_url"`
}

func defaultEnv() Env {
	return Env{
		AppAddr:  ":5000",
		LogLevel: "info",
		DB: DBConfig{
			Host: "127.0.0.1",
			Port: "3306",
			User: "root",
			Name: "travel_mitr",
		},
		JWTSecret: "super-secret-key-change-me",
		JWTExpire: 24 * time.Hour,
		CORSAllowedOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		},
		SeedOnStart:        true,
		OptimizeRatePerSec: 5,
		OptimizeRateBurst:  10,
		NominatimURL:       "https://nominatim.openstreetmap.org",
		OSRMURL:            "https://router.project-osrm.org",
	}
}

// LoadEnv builds the runtime config. Precedence, lowest first: built-in
// defaults, CONFIG_FILE (yaml), .env, process environment.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("load .env: %w", err)
	}

	env := defaultEnv()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadYAML(path, &env); err != nil {
			return Env{}, err
		}
	}
	if err := applyEnvVars(&env); err != nil {
		return Env{}, err
	}
	return env, nil
}

func loadYAML(path string, env *Env) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, env); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnvVars(env *Env) error {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	str("APP_ADDR", &env.AppAddr)
	str("GIN_MODE", &env.GinMode)
	str("LOG_LEVEL", &env.LogLevel)
	str("DB_HOST", &env.DB.Host)
	str("DB_PORT", &env.DB.Port)
	str("DB_USER", &env.DB.User)
	str("DB_NAME", &env.DB.Name)
	str("JWT_SECRET", &env.JWTSecret)
	str("NOMINATIM_URL", &env.NominatimURL)
	str("OSRM_URL", &env.OSRMURL)

	// empty password is a valid local setup, so presence matters, not value
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		env.DB.Password = v
	}

	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		env.CORSAllowedOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, o)
			}
		}
	}

	if v := strings.TrimSpace(os.Getenv("JWT_EXPIRE")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("JWT_EXPIRE: %w", err)
		}
		env.JWTExpire = d
	}
	if err := boolVar("SEED_ON_START", &env.SeedOnStart); err != nil {
		return err
	}
	if err := boolVar("GEO_ENABLED", &env.GeoEnabled); err != nil {
		return err
	}
	if v := strings.TrimSpace(os.Getenv("OPTIMIZE_RATE_PER_SEC")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("OPTIMIZE_RATE_PER_SEC: %w", err)
		}
		env.OptimizeRatePerSec = f
	}
	if v := strings.TrimSpace(os.Getenv("OPTIMIZE_RATE_BURST")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("OPTIMIZE_RATE_BURST: %w", err)
		}
		env.OptimizeRateBurst = n
	}
	return nil
}

func boolVar(key string, dst *bool) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}
