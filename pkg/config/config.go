package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	MulenPay MulenPay
	Logger   Logger
}

type MulenPay struct {
	BaseURL          string        `env:"MULENPAY_BASE_URL" envDefault:"https://mulenpay.ru"`
	APIKey           string        `env:"MULENPAY_API_KEY"`
	SecretKey        string        `env:"MULENPAY_SECRET_KEY"`
	Timeout          time.Duration `env:"MULENPAY_TIMEOUT" envDefault:"10s"`
	ValidationPolicy string        `env:"MULENPAY_VALIDATION_POLICY" envDefault:"strict"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
