package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Google              Google              `mapstructure:",squash"`
	Analytics           Analytics           `mapstructure:",squash"`
	SearchConsole       SearchConsole       `mapstructure:",squash"`
	GoogleAds           GoogleAds           `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	DailyMetricsSync    DailyMetricsSync    `mapstructure:",squash"`
	EnhancedMetricsSync EnhancedMetricsSync `mapstructure:",squash"`
	RetentionSweep      RetentionSweep      `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Google concentra as credenciais OAuth compartilhadas pelos três clientes de API
type Google struct {
	ClientID     string `mapstructure:"google_client_id"`
	ClientSecret string `mapstructure:"google_client_secret"`
	RefreshToken string `mapstructure:"google_refresh_token"`
	TokenURL     string `mapstructure:"google_token_url"`
}

type Analytics struct {
	BaseURL    string `mapstructure:"analytics_base_url"`
	PropertyID string `mapstructure:"analytics_property_id"`
}

type SearchConsole struct {
	BaseURL string `mapstructure:"search_console_base_url"`
	SiteURL string `mapstructure:"search_console_site_url"`
}

type GoogleAds struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	Version         string `mapstructure:"google_ads_version"`
	URL             string `mapstructure:"-"`
	CustomerID      string `mapstructure:"google_ads_customer_id"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
	DemoFallback    bool   `mapstructure:"google_ads_demo_fallback"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type DailyMetricsSync struct {
	CronSchedule string `mapstructure:"daily_metrics_sync_cron"`
	LookbackDays int    `mapstructure:"daily_metrics_sync_lookback_days"`
	Enabled      bool   `mapstructure:"daily_metrics_sync_enabled"`
}

type EnhancedMetricsSync struct {
	CronSchedule string `mapstructure:"enhanced_metrics_sync_cron"`
	LookbackDays int    `mapstructure:"enhanced_metrics_sync_lookback_days"`
	Enabled      bool   `mapstructure:"enhanced_metrics_sync_enabled"`
}

type RetentionSweep struct {
	CronSchedule string `mapstructure:"retention_sweep_cron"`
	DaysToKeep   int    `mapstructure:"retention_sweep_days_to_keep"`
	Enabled      bool   `mapstructure:"retention_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/metrics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")

	viper.SetDefault("ANALYTICS_BASE_URL", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("ANALYTICS_PROPERTY_ID", "")

	viper.SetDefault("SEARCH_CONSOLE_BASE_URL", "https://www.googleapis.com/webmasters/v3")
	viper.SetDefault("SEARCH_CONSOLE_SITE_URL", "")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v16")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_DEMO_FALLBACK", true) // ONLY LOCAL: dados de demonstração quando a API falhar

	// Defaults para sincronização diária das três fontes principais
	viper.SetDefault("DAILY_METRICS_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DAILY_METRICS_SYNC_LOOKBACK_DAYS", 7)  // 7 dias para buscar dados
	viper.SetDefault("DAILY_METRICS_SYNC_ENABLED", false)    // Habilitar sincronização diária

	// Defaults para sincronização com quebras por página e termo de busca
	viper.SetDefault("ENHANCED_METRICS_SYNC_CRON", "0 7 * * 1") // Toda segunda-feira às 7h da manhã
	viper.SetDefault("ENHANCED_METRICS_SYNC_LOOKBACK_DAYS", 30) // 30 dias para buscar dados
	viper.SetDefault("ENHANCED_METRICS_SYNC_ENABLED", false)    // Habilitar sincronização com quebras

	// Defaults para a varredura de retenção
	viper.SetDefault("RETENTION_SWEEP_CRON", "30 5 * * *") // Todos os dias às 5h30 da manhã
	viper.SetDefault("RETENTION_SWEEP_DAYS_TO_KEEP", 90)   // 90 dias de retenção
	viper.SetDefault("RETENTION_SWEEP_ENABLED", false)     // Habilitar varredura de retenção

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
