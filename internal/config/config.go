package config

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrMissingBaseURL é devolvido quando BESPOKED_BASE_URL não foi configurada
var ErrMissingBaseURL = errors.New("BESPOKED_BASE_URL não configurada")

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Bespoked         Bespoked         `mapstructure:",squash"`
	Session          Session          `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	CommissionReport CommissionReport `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Bespoked agrupa o acesso à API remota da BeSpoked Bikes
type Bespoked struct {
	BaseURL string `mapstructure:"bespoked_base_url"`
	APIKey  string `mapstructure:"bespoked_api_key"`
	// Zero desliga o timeout do cliente; o cancelamento fica a cargo do contexto
	Timeout time.Duration `mapstructure:"bespoked_timeout"`
	// Token usado pelos jobs agendados, que não têm cookie de sessão
	ServiceToken string `mapstructure:"bespoked_service_token"`
}

type Session struct {
	RememberDuration time.Duration `mapstructure:"session_remember_duration"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type CommissionReport struct {
	CronSchedule string `mapstructure:"commission_report_cron"`
	Enabled      bool   `mapstructure:"commission_report_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("BESPOKED_BASE_URL", "")
	viper.SetDefault("BESPOKED_API_KEY", "")
	viper.SetDefault("BESPOKED_TIMEOUT", "0s")
	viper.SetDefault("BESPOKED_SERVICE_TOKEN", "")

	viper.SetDefault("SESSION_REMEMBER_DURATION", "168h") // 7 dias com "lembrar de mim"

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.SetDefault("COMMISSION_REPORT_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("COMMISSION_REPORT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	c.Bespoked.BaseURL = strings.TrimSpace(c.Bespoked.BaseURL)
	if c.Bespoked.BaseURL == "" {
		return ErrMissingBaseURL
	}

	u, err := url.Parse(c.Bespoked.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("BESPOKED_BASE_URL inválida: " + c.Bespoked.BaseURL)
	}

	origins := make([]string, 0, len(c.Cors.AllowedOrigins))
	for _, origin := range c.Cors.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Cors.AllowedOrigins = origins

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
