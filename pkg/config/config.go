package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	API     APIConfig
	Session SessionConfig
	Console ConsoleConfig
	Log     LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	WriteRateLimit int // escrituras por minuto y usuario; 0 desactiva el límite
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig backend REST que persiste gastos, clientes y organizaciones.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout devuelve el timeout por petición al backend.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig cookie de sesión firmada (HS256).
type SessionConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// ConsoleConfig parámetros de las vistas y de la exportación.
type ConsoleConfig struct {
	PageSize           int
	ExportFetchLimit   int
	DocumentTTLSeconds int
	CurrencyLabel      string
	DateLocation       string
}

// DocumentTTL tiempo que un PDF sigue disponible tras abrirse.
func (c ConsoleConfig) DocumentTTL() time.Duration {
	return time.Duration(c.DocumentTTLSeconds) * time.Second
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, SESSION_SECRET, etc.
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

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "gastos-admin"),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 8080),
			WriteRateLimit: getInt(v, "WRITE_RATE_LIMIT", 60),
		},
		API: APIConfig{
			BaseURL:        strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:5000/api"), "/"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", ""),
			Expiration: getInt(v, "SESSION_EXPIRATION_MINUTES", 720),
			Issuer:     getString(v, "SESSION_ISSUER", "gastos-admin"),
		},
		Console: ConsoleConfig{
			PageSize:           getInt(v, "PAGE_SIZE", 10),
			ExportFetchLimit:   getInt(v, "EXPORT_FETCH_LIMIT", 1000),
			DocumentTTLSeconds: getInt(v, "DOCUMENT_TTL_SECONDS", 10),
			CurrencyLabel:      getString(v, "CURRENCY_LABEL", "Rs."),
			DateLocation:       getString(v, "DATE_LOCATION", "Local"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Validate revisa la configuración completa y devuelve todos los problemas juntos.
func (c *Config) Validate() error {
	var errs []error
	if c.Session.Secret == "" {
		errs = append(errs, errors.New("SESSION_SECRET es obligatorio"))
	}
	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("API_BASE_URL inválida: %q", c.API.BaseURL))
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT fuera de rango: %d", c.HTTP.Port))
	}
	if c.API.TimeoutSeconds <= 0 {
		errs = append(errs, errors.New("API_TIMEOUT_SECONDS debe ser mayor que 0"))
	}
	if c.Console.PageSize <= 0 {
		errs = append(errs, errors.New("PAGE_SIZE debe ser mayor que 0"))
	}
	if c.Console.ExportFetchLimit <= 0 {
		errs = append(errs, errors.New("EXPORT_FETCH_LIMIT debe ser mayor que 0"))
	}
	if c.Console.DocumentTTLSeconds <= 0 {
		errs = append(errs, errors.New("DOCUMENT_TTL_SECONDS debe ser mayor que 0"))
	}
	if c.Session.Expiration <= 0 {
		errs = append(errs, errors.New("SESSION_EXPIRATION_MINUTES debe ser mayor que 0"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("DATE_LOCATION inválida: %w", err))
	}
	return errors.Join(errs...)
}

// Location resuelve DATE_LOCATION ("Local", "UTC" o un nombre IANA).
func (c *Config) Location() (*time.Location, error) {
	switch c.Console.DateLocation {
	case "", "Local":
		return time.Local, nil
	default:
		return time.LoadLocation(c.Console.DateLocation)
	}
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
			n, err := strconv.Atoi(v.GetString(key))
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
