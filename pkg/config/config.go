package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Proveedores de chat-completion soportados.
const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// ErrMissingAPIKey la credencial del proveedor de IA no está configurada.
var ErrMissingAPIKey = errors.New("API key del proveedor de IA no configurada")

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Log     LogConfig
	AI      AIConfig
	Stock   StockConfig
	Session SessionConfig
	Upload  UploadConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// AIConfig credencial y parámetros del proveedor de chat-completion.
// Se construye una sola vez y se inyecta en el adaptador; nunca se lee del entorno en otro lugar.
type AIConfig struct {
	Provider      string
	APIKey        string
	Model         string
	BaseURL       string // vacío = URL por defecto del proveedor
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
	CacheSize     int
	CacheTTL      time.Duration
}

// StockConfig política de clasificación.
type StockConfig struct {
	OverstockThreshold float64
}

// SessionConfig retención en memoria de los archivos subidos.
type SessionConfig struct {
	TTL     time.Duration
	MaxSize int
}

// UploadConfig límites y codificación de archivos subidos.
type UploadConfig struct {
	MaxBytes    int
	CSVEncoding string // utf-8, windows-1252, iso-8859-1
}

// defaultModels modelo por defecto de cada proveedor.
var defaultModels = map[string]string{
	ProviderGroq:      "llama-3.1-8b-instant",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-5-haiku-20241022",
	ProviderGemini:    "gemini-1.5-flash",
}

// providerKeyEnv variable de entorno específica del proveedor, usada si AI_API_KEY no está.
var providerKeyEnv = map[string]string{
	ProviderGroq:      "GROQ_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderAnthropic: "ANTHROPIC_API_KEY",
	ProviderGemini:    "GEMINI_API_KEY",
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. No valida la credencial; para eso está Validate.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia de viper ya poblada.
func FromViper(v *viper.Viper) (*Config, error) {
	provider := strings.ToLower(getString(v, "AI_PROVIDER", ProviderGroq))
	if _, ok := defaultModels[provider]; !ok {
		return nil, fmt.Errorf("config: AI_PROVIDER desconocido %q", provider)
	}

	apiKey := getString(v, "AI_API_KEY", "")
	if apiKey == "" {
		apiKey = getString(v, providerKeyEnv[provider], "")
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "restocker-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		AI: AIConfig{
			Provider:      provider,
			APIKey:        apiKey,
			Model:         getString(v, "AI_MODEL", defaultModels[provider]),
			BaseURL:       getString(v, "AI_BASE_URL", ""),
			Timeout:       time.Duration(getInt(v, "LLM_TIMEOUT_SECONDS", 30)) * time.Second,
			RatePerSecond: getFloat(v, "LLM_RATE_PER_SECOND", 1),
			Burst:         getInt(v, "LLM_BURST", 5),
			CacheSize:     getInt(v, "LLM_CACHE_SIZE", 256),
			CacheTTL:      time.Duration(getInt(v, "LLM_CACHE_TTL_MINUTES", 60)) * time.Minute,
		},
		Stock: StockConfig{
			OverstockThreshold: getFloat(v, "STOCK_OVERSTOCK_THRESHOLD", 50),
		},
		Session: SessionConfig{
			TTL:     time.Duration(getInt(v, "SESSION_TTL_MINUTES", 120)) * time.Minute,
			MaxSize: getInt(v, "SESSION_MAX", 1000),
		},
		Upload: UploadConfig{
			MaxBytes:    getInt(v, "UPLOAD_MAX_MB", 10) * 1024 * 1024,
			CSVEncoding: strings.ToLower(getString(v, "CSV_ENCODING", "utf-8")),
		},
	}
	return cfg, nil
}

// Validate verifica lo que debe existir antes de atender peticiones.
// Sin API key la aplicación no arranca (error de configuración, no recuperable en runtime).
func (c *Config) Validate() error {
	if c.AI.APIKey == "" {
		return fmt.Errorf("config: %w: defina AI_API_KEY o %s para el proveedor %q",
			ErrMissingAPIKey, providerKeyEnv[c.AI.Provider], c.AI.Provider)
	}
	if c.AI.Model == "" {
		return fmt.Errorf("config: AI_MODEL vacío")
	}
	if c.Session.MaxSize <= 0 || c.AI.CacheSize <= 0 {
		return fmt.Errorf("config: SESSION_MAX y LLM_CACHE_SIZE deben ser mayores que cero")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		if s, ok := v.Get(key).(string); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return def
			}
			return f
		}
		return v.GetFloat64(key)
	}
	return def
}
