package config

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// KeyNone disables the key check.
const KeyNone = "none"

const (
	DefaultPort    = 8049
	DefaultTimeout = 10 * time.Second
)

// Config is built once at startup and only read afterwards.
type Config struct {
	Port     int
	Key      string
	Platform bool
	Uptime   bool
	Memory   bool
	Load     bool
	Storage  []string

	ProcRoot string
	DF       string
	Timeout  time.Duration
	Debug    bool
}

var ErrEmptyKey = errors.New(`empty key, use "none" to disable the key check`)

// AuthEnabled reports whether requests must carry a matching key.
func (c Config) AuthEnabled() bool {
	return c.Key != KeyNone
}

// Validate rejects settings the server can't start with.
func (c Config) Validate() error {
	if c.Key == "" {
		return ErrEmptyKey
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	return nil
}

// Authorized compares in constant time so the key can't be guessed byte by byte.
func (c Config) Authorized(key string) bool {
	if !c.AuthEnabled() {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(c.Key), []byte(key)) == 1
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Defaults returns the values flags fall back to, taken from the
// environment and an optional .env file in the working directory.
// SYSINFO_KEY set to the empty string yields an empty Key, which
// Validate rejects.
func Defaults() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env: %v", err)
	}

	port, err := strconv.Atoi(os.Getenv("SYSINFO_PORT"))
	if err != nil || port < 1 || port > 65535 {
		port = DefaultPort
	}
	cfg := Config{
		Port:     port,
		Key:      KeyNone,
		Storage:  splitList(os.Getenv("SYSINFO_STORAGE")),
		ProcRoot: getEnv("HOST_PROC", "/proc"),
		DF:       getEnv("SYSINFO_DF", "df"),
		Timeout:  DefaultTimeout,
	}
	if key, ok := os.LookupEnv("SYSINFO_KEY"); ok {
		cfg.Key = key
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
