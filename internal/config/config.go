package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	// SyncCron is the cron expression for the remote calendar refresh.
	SyncCron string

	Calendar CalendarConfig
}

// Feed is one subscribed remote calendar source.
type Feed struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// CalendarConfig is the calendar-integration section, loaded from a
// yaml file next to the env config. Token is the stored integration
// token; the feed list is empty when nothing is connected.
type CalendarConfig struct {
	Token       string `yaml:"token"`
	HorizonDays int    `yaml:"horizon_days"`
	Feeds       []Feed `yaml:"feeds"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          mustGetenv("DATABASE_URL"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		SyncCron:             getenv("CALENDAR_SYNC_CRON", "*/15 * * * *"),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cal, err := loadCalendar(getenv("CALENDAR_CONFIG", "calendar.yaml"))
	if err != nil {
		return cfg, err
	}
	cfg.Calendar = cal

	return cfg, nil
}

// loadCalendar reads the yaml calendar config. A missing file is not an
// error: it just means no integration is connected yet.
func loadCalendar(path string) (CalendarConfig, error) {
	var cal CalendarConfig

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cal, nil
		}
		return cal, err
	}
	if err := yaml.Unmarshal(b, &cal); err != nil {
		return cal, err
	}
	if cal.HorizonDays <= 0 {
		cal.HorizonDays = 60
	}
	return cal, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
