package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultFile es el archivo ini que se busca si no se indica otro.
const DefaultFile = "database.ini"

// Config agrupa la configuración de la aplicación (ini + .env + variables de entorno vía Viper).
type Config struct {
	App   AppConfig
	DB    DBConfig
	HTTP  HTTPConfig
	Files FilesConfig
	Auth  AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL (sección [postgresql] del ini).
// Si DatabaseURL no está vacío, se usa como connection string completo.
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
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FilesConfig rutas de los archivos auxiliares: plantillas SQL y hoja de estilos.
type FilesConfig struct {
	Queries string // vacío = solo las consultas embebidas
	Styles  string
}

// AuthConfig configuración del login administrativo y de los tokens JWT.
type AuthConfig struct {
	JWTSecret         string
	JWTExpiration     int // minutos
	JWTIssuer         string
	AdminUser         string
	AdminPasswordHash string // bcrypt
}

// bindings relaciona cada clave "seccion.clave" del ini con su variable de entorno.
var bindings = map[string]string{
	"app.env":                     "APP_ENV",
	"app.name":                    "APP_NAME",
	"app.log_level":               "LOG_LEVEL",
	"postgresql.database_url":     "DATABASE_URL",
	"postgresql.host":             "DB_HOST",
	"postgresql.port":             "DB_PORT",
	"postgresql.user":             "DB_USER",
	"postgresql.password":         "DB_PASSWORD",
	"postgresql.dbname":           "DB_NAME",
	"postgresql.sslmode":          "DB_SSLMODE",
	"http.host":                   "HTTP_HOST",
	"http.port":                   "HTTP_PORT",
	"files.queries":               "QUERIES_FILE",
	"files.styles":                "STYLES_FILE",
	"auth.jwt_secret":             "JWT_SECRET",
	"auth.jwt_expiration_minutes": "JWT_EXPIRATION_MINUTES",
	"auth.jwt_issuer":             "JWT_ISSUER",
	"auth.admin_user":             "ADMIN_USER",
	"auth.admin_password_hash":    "ADMIN_PASSWORD_HASH",
}

// Load lee la configuración desde el archivo ini indicado (o CONFIG_FILE, o database.ini),
// luego .env y por último las variables de entorno, que tienen prioridad.
// Un ini inexistente no es error; uno mal formado sí.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // ignoramos error si no existe .env

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path == "" {
		path = DefaultFile
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	setDefaults(v)
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("app.env"),
			Name:     v.GetString("app.name"),
			LogLevel: v.GetString("app.log_level"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("postgresql.database_url"),
			Host:        v.GetString("postgresql.host"),
			Port:        v.GetInt("postgresql.port"),
			User:        v.GetString("postgresql.user"),
			Password:    v.GetString("postgresql.password"),
			DBName:      v.GetString("postgresql.dbname"),
			SSLMode:     v.GetString("postgresql.sslmode"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("http.host"),
			Port: v.GetInt("http.port"),
		},
		Files: FilesConfig{
			Queries: v.GetString("files.queries"),
			Styles:  v.GetString("files.styles"),
		},
		Auth: AuthConfig{
			JWTSecret:         v.GetString("auth.jwt_secret"),
			JWTExpiration:     v.GetInt("auth.jwt_expiration_minutes"),
			JWTIssuer:         v.GetString("auth.jwt_issuer"),
			AdminUser:         v.GetString("auth.admin_user"),
			AdminPasswordHash: v.GetString("auth.admin_password_hash"),
		},
	}
	if cfg.DB.Port <= 0 {
		return nil, fmt.Errorf("puerto de PostgreSQL inválido: %q", v.GetString("postgresql.port"))
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.name", "clasificador")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("postgresql.host", "localhost")
	v.SetDefault("postgresql.port", 5432)
	v.SetDefault("postgresql.user", "postgres")
	v.SetDefault("postgresql.dbname", "classifier")
	v.SetDefault("postgresql.sslmode", "disable")
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("files.styles", "styles.yaml")
	v.SetDefault("auth.jwt_expiration_minutes", 60)
	v.SetDefault("auth.jwt_issuer", "clasificador")
	v.SetDefault("auth.admin_user", "admin")
}
