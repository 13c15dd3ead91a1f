package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Motores de renderizado disponibles para PDF_ENGINE.
const (
	EngineChrome = "chrome" // HTML → Chromium headless
	EngineMaroto = "maroto" // componentes declarativos en proceso
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	PDF  PDFConfig
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

// PDFConfig selección y ajuste del motor de renderizado. La elección
// local-vs-gestionado de Chromium es una decisión de despliegue, por eso
// vive aquí y no en la lógica de render.
type PDFConfig struct {
	Engine          string // "chrome" (por defecto) o "maroto"
	ChromePath      string // ruta explícita al binario; vacío = búsqueda estándar
	ChromeManaged   bool   // true = descargar/cachear un Chromium (entornos restringidos)
	ChromeNoSandbox bool   // necesario al correr como root (contenedores)
	TimeoutSeconds  int    // límite por render; 0 = sin límite
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, PDF_ENGINE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "rekini-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		PDF: PDFConfig{
			Engine:          getString(v, "PDF_ENGINE", EngineChrome),
			ChromePath:      getString(v, "CHROME_PATH", ""),
			ChromeManaged:   getBool(v, "CHROME_MANAGED", false),
			ChromeNoSandbox: getBool(v, "CHROME_NO_SANDBOX", false),
			TimeoutSeconds:  getInt(v, "PDF_TIMEOUT_SECONDS", 30),
		},
	}

	if cfg.PDF.Engine != EngineChrome && cfg.PDF.Engine != EngineMaroto {
		return nil, fmt.Errorf("config: PDF_ENGINE desconocido %q (use %q o %q)",
			cfg.PDF.Engine, EngineChrome, EngineMaroto)
	}

	return cfg, nil
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
