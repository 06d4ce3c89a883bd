package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Proveedores de identidad soportados.
const (
	AuthProviderSupabase = "supabase" // valida el token contra GoTrue (/auth/v1/user)
	AuthProviderJWT      = "jwt"      // valida la firma localmente con SUPABASE_JWT_SECRET
)

// Valores por defecto heredados de la tienda original.
var (
	defaultAllowedOrigins = []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5500",
		"http://127.0.0.1:5500",
		"null", // páginas abiertas desde file://
		"https://tudominio.com",
	}
	defaultAllowedRoles = []string{"admin", "editor"}
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Se construye una sola vez en main y se pasa explícitamente a cada componente.
type Config struct {
	App      AppConfig
	DB       DBConfig
	HTTP     HTTPConfig
	Supabase SupabaseConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	DocsEnabled bool
}

// IsProduction indica si los errores internos deben ocultarse al cliente.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host                string
	Port                int
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SupabaseConfig datos del proyecto Supabase (Auth/GoTrue).
type SupabaseConfig struct {
	URL       string
	AnonKey   string
	JWTSecret string
}

// AuthConfig selección de proveedor de identidad y lista blanca de roles.
type AuthConfig struct {
	Provider     string
	AllowedRoles []string
}

// CORSConfig lista blanca de orígenes.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATABASE_URL, SUPABASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := getString(v, "APP_ENV", "development")
	cfg := &Config{
		App: AppConfig{
			Env:         env,
			Name:        getString(v, "APP_NAME", "tienda-api"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			DocsEnabled: getBool(v, "DOCS_ENABLED", env != "production"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "postgres"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host:                getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:                getInt(v, "HTTP_PORT", 3000),
			ReadTimeoutSeconds:  getInt(v, "HTTP_READ_TIMEOUT_SECONDS", 10),
			WriteTimeoutSeconds: getInt(v, "HTTP_WRITE_TIMEOUT_SECONDS", 10),
		},
		Supabase: SupabaseConfig{
			URL:       strings.TrimRight(getString(v, "SUPABASE_URL", ""), "/"),
			AnonKey:   getString(v, "SUPABASE_ANON_KEY", ""),
			JWTSecret: getString(v, "SUPABASE_JWT_SECRET", ""),
		},
		Auth: AuthConfig{
			Provider:     strings.ToLower(getString(v, "AUTH_PROVIDER", AuthProviderSupabase)),
			AllowedRoles: getList(v, "AUTH_ALLOWED_ROLES", defaultAllowedRoles),
		},
		CORS: CORSConfig{
			AllowedOrigins: getList(v, "CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica que el proveedor de identidad elegido tenga sus credenciales.
func (c *Config) Validate() error {
	switch c.Auth.Provider {
	case AuthProviderSupabase:
		if c.Supabase.URL == "" || c.Supabase.AnonKey == "" {
			return errors.New("config: SUPABASE_URL y SUPABASE_ANON_KEY son requeridos")
		}
	case AuthProviderJWT:
		if c.Supabase.JWTSecret == "" {
			return errors.New("config: SUPABASE_JWT_SECRET es requerido con AUTH_PROVIDER=jwt")
		}
	default:
		return fmt.Errorf("config: AUTH_PROVIDER desconocido %q", c.Auth.Provider)
	}
	if len(c.Auth.AllowedRoles) == 0 {
		return errors.New("config: AUTH_ALLOWED_ROLES no puede estar vacío")
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

// getList lee una lista separada por comas; los elementos vacíos se descartan.
func getList(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return append([]string(nil), def...)
	}
	var out []string
	for _, item := range strings.Split(v.GetString(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
