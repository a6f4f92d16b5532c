package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Dataset      Dataset      `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	Session      Session      `mapstructure:",squash"`
	SessionSweep SessionSweep `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Dataset struct {
	Seed         uint64    `mapstructure:"dataset_seed"`
	RawStartDate string    `mapstructure:"dataset_start_date"`
	RawEndDate   string    `mapstructure:"dataset_end_date"`
	StartDate    time.Time `mapstructure:"-"`
	EndDate      time.Time `mapstructure:"-"`
}

type Dashboard struct {
	DetailTableLimit int `mapstructure:"detail_table_limit"`
	TopSubCategories int `mapstructure:"top_sub_categories"`
	TopSalespersons  int `mapstructure:"top_salespersons"`
}

type Session struct {
	TTL time.Duration `mapstructure:"session_ttl"`
}

type SessionSweep struct {
	CronSchedule string `mapstructure:"session_sweep_cron"`
	Enabled      bool   `mapstructure:"session_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("LOG_LEVEL", "debug")

	// Tabela sintética: mesma semente gera sempre a mesma tabela
	viper.SetDefault("DATASET_SEED", 42)
	viper.SetDefault("DATASET_START_DATE", "2022-01-01")
	viper.SetDefault("DATASET_END_DATE", "2023-12-31")

	viper.SetDefault("DETAIL_TABLE_LIMIT", 1000)
	viper.SetDefault("TOP_SUB_CATEGORIES", 15)
	viper.SetDefault("TOP_SALESPERSONS", 10)

	viper.SetDefault("SESSION_TTL", "30m")
	viper.SetDefault("SESSION_SWEEP_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("SESSION_SWEEP_ENABLED", true)
}

func NewConfig() (*Config, error) {
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
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	if err := config.Dataset.parseDates(); err != nil {
		return nil, err
	}

	return config, nil
}

func (d *Dataset) parseDates() error {
	start, err := time.Parse(time.DateOnly, d.RawStartDate)
	if err != nil {
		return errors.Wrapf(err, "DATASET_START_DATE inválida: %s", d.RawStartDate)
	}

	end, err := time.Parse(time.DateOnly, d.RawEndDate)
	if err != nil {
		return errors.Wrapf(err, "DATASET_END_DATE inválida: %s", d.RawEndDate)
	}

	if end.Before(start) {
		return errors.Errorf("período do dataset invertido: %s > %s", d.RawStartDate, d.RawEndDate)
	}

	d.StartDate = start
	d.EndDate = end
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
