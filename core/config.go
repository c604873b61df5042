package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Conf holds the app configuration. It is loaded once at startup from the
// environment, optionally seeded from config/.env.<env>.
var Conf *Config

type (
	Config struct {
		Debug      bool
		TestMode   bool
		Env        string
		AppName    string
		SecretKey  string
		SchoolID   string
		SchoolName string
		Build      string

		Server ServerConfig

		RollbarToken string
	}

	ServerConfig struct {
		Host                string
		Port                string
		ShutdownTimeout     time.Duration
		SessionTokenMaxAge  time.Duration
		SessionRefreshDelta time.Duration
	}
)

func (c Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "SkillLogic School CRM")
	v.SetDefault("secretKey", "x1u$8s)d#demo-only-not-a-secret#(fz&2qp7y3vm4w_g")
	v.SetDefault("schoolId", "DEMO001")
	v.SetDefault("schoolName", "Demo High School")
	v.SetDefault("serverHost", "")
	v.SetDefault("serverPort", "8000")
	v.SetDefault("shutdownTimeout", 5*time.Second)
	v.SetDefault("sessionTokenMaxAge", 24*time.Hour)
	v.SetDefault("sessionRefreshDelta", 4*time.Hour)
	v.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:      v.GetBool("debug"),
		TestMode:   v.GetBool("testMode"),
		Env:        env,
		AppName:    v.GetString("appName"),
		SecretKey:  v.GetString("secretKey"),
		SchoolID:   v.GetString("schoolId"),
		SchoolName: v.GetString("schoolName"),
		Build:      v.GetString("build"),
		Server: ServerConfig{
			Host:                v.GetString("serverHost"),
			Port:                v.GetString("serverPort"),
			ShutdownTimeout:     v.GetDuration("shutdownTimeout"),
			SessionTokenMaxAge:  v.GetDuration("sessionTokenMaxAge"),
			SessionRefreshDelta: v.GetDuration("sessionRefreshDelta"),
		},
		RollbarToken: v.GetString("rollbarToken"),
	}
}
