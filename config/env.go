package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort       = "3000"
	defaultAppEnv        = "local"
	defaultMongoURI      = "mongodb://localhost:27017"
	defaultMongoDatabase = "restaurant"
	defaultMongoTimeout  = "10s"
	defaultBcryptCost    = "10"
	defaultTLSCertFile   = "cert.pem"
	defaultTLSKeyFile    = "key.pem"
	defaultStaticDir     = "public"
	defaultLogCollection = "logs"
	defaultShutdownWait  = "10s"
	defaultMaxBodyBytes  = "1048576"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env once. Values from the process
// environment take precedence over both files.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_PORT":       defaultAppPort,
		"APP_ENV":        defaultAppEnv,
		"MONGO_URI":      defaultMongoURI,
		"MONGO_DATABASE": defaultMongoDatabase,
		"MONGO_TIMEOUT":  defaultMongoTimeout,
		"BCRYPT_COST":    defaultBcryptCost,
		"TLS_ENABLED":    "true",
		"TLS_CERT_FILE":  defaultTLSCertFile,
		"TLS_KEY_FILE":   defaultTLSKeyFile,
		"STATIC_DIR":     defaultStaticDir,
		"LOG_TO_MONGO":   "false",
		"LOG_COLLECTION": defaultLogCollection,
		"SEED_FILE":      "",
		"CORS_ORIGINS":   "*",
		"SHUTDOWN_WAIT":  defaultShutdownWait,
		"MAX_BODY_BYTES": defaultMaxBodyBytes,
	}
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// ── MongoDB ──────────────────────────────────────────────────────────────────

func MongoURI() string {
	_ = Load()
	return get("MONGO_URI", defaultMongoURI)
}

func MongoDatabase() string {
	_ = Load()
	return get("MONGO_DATABASE", defaultMongoDatabase)
}

// MongoTimeout bounds connect, ping and index creation at startup.
func MongoTimeout() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("MONGO_TIMEOUT", defaultMongoTimeout))
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// ── Security ─────────────────────────────────────────────────────────────────

// BcryptCost returns the configured work factor. Out-of-range values are
// clamped by pkg/auth.
func BcryptCost() int {
	_ = Load()
	n, err := strconv.Atoi(get("BCRYPT_COST", defaultBcryptCost))
	if err != nil {
		n, _ = strconv.Atoi(defaultBcryptCost)
	}
	return n
}

func TLSEnabled() bool {
	_ = Load()
	return parseBool(get("TLS_ENABLED", "true"))
}

func TLSCertFile() string { _ = Load(); return get("TLS_CERT_FILE", defaultTLSCertFile) }
func TLSKeyFile() string  { _ = Load(); return get("TLS_KEY_FILE", defaultTLSKeyFile) }

// ── Misc ─────────────────────────────────────────────────────────────────────

func StaticDir() string {
	_ = Load()
	return get("STATIC_DIR", defaultStaticDir)
}

func LogToMongo() bool {
	_ = Load()
	return parseBool(get("LOG_TO_MONGO", "false"))
}

func LogCollection() string {
	_ = Load()
	return get("LOG_COLLECTION", defaultLogCollection)
}

func SeedFile() string {
	_ = Load()
	return get("SEED_FILE", "")
}

// CORSOrigins returns the comma-separated CORS_ORIGINS list.
func CORSOrigins() []string {
	_ = Load()
	var out []string
	for _, o := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// ShutdownWait bounds graceful shutdown.
func ShutdownWait() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("SHUTDOWN_WAIT", defaultShutdownWait))
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(defaultShutdownWait)
	}
	return d
}

// MaxBodyBytes caps request bodies accepted by pkg/bind.
func MaxBodyBytes() int64 {
	_ = Load()
	n, err := strconv.ParseInt(get("MAX_BODY_BYTES", defaultMaxBodyBytes), 10, 64)
	if err != nil || n <= 0 {
		n, _ = strconv.ParseInt(defaultMaxBodyBytes, 10, 64)
	}
	return n
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mergeEnviron(loaded)

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		switch v := val.(type) {
		case string:
			out[k] = strings.TrimSpace(v)
		case bool:
			out[k] = strconv.FormatBool(v)
		case float64:
			out[k] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return err
	}

	for key, value := range env {
		if k := strings.ToUpper(strings.TrimSpace(key)); k != "" {
			out[k] = strings.TrimSpace(value)
		}
	}

	return nil
}

// mergeEnviron overrides known keys with values set in the process environment.
func mergeEnviron(out map[string]string) {
	for key := range defaultValues() {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			out[key] = strings.TrimSpace(v)
		}
	}
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

// Set overrides a single key at runtime. Intended for tests and CLI flags.
func Set(key, value string) {
	_ = Load()
	mu.Lock()
	defer mu.Unlock()
	values[strings.ToUpper(key)] = value
}
