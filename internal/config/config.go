package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	DatabaseURL string
	BindAddr    string
	CORSOrigins []string
}

func Load() Config {
	c := Config{
		DatabaseURL: env("DATABASE_URL", "postgres://postgres:postgres@db:5432/postgres"),
		BindAddr:    env("BIND_ADDR", ":8080"),
		CORSOrigins: split(env("CORS_ORIGINS", "*")),
	}
	return c
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	log.Printf("[config] %s not set, using default", key)
	return def
}

func split(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
