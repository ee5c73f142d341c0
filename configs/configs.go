package configs

import (
	"errors"

	"github.com/spf13/viper"
)

type Conf struct {
	AppEnv        string `mapstructure:"APP_ENV"`
	DBHost        string `mapstructure:"DB_HOST"`
	DBPort        string `mapstructure:"DB_PORT"`
	DBUser        string `mapstructure:"DB_USER"`
	DBPassword    string `mapstructure:"DB_PASSWORD"`
	DBName        string `mapstructure:"DB_NAME"`
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	WebServerPort string `mapstructure:"WEB_SERVER_PORT"`
	AMQPURL       string `mapstructure:"AMQP_URL"`
	OTELCollector string `mapstructure:"OTEL_COLLECTOR_ADDR"`

	RateLimitRPS   int `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int `mapstructure:"RATE_LIMIT_BURST"`

	CatalogIndexURL     string `mapstructure:"CATALOG_INDEX_URL"`
	CatalogOutputDir    string `mapstructure:"CATALOG_OUTPUT_DIR"`
	CatalogFilePrefix   string `mapstructure:"CATALOG_FILE_PREFIX"`
	CatalogAPIBaseURL   string `mapstructure:"CATALOG_API_BASE_URL"`
	CatalogOrgName      string `mapstructure:"CATALOG_ORG_NAME"`
	CatalogOrgOOID      int    `mapstructure:"CATALOG_ORG_OOID"`
	CatalogContactEmail string `mapstructure:"CATALOG_CONTACT_EMAIL"`
	CatalogContactURL   string `mapstructure:"CATALOG_CONTACT_URL"`
}

func LoadConfig(path string) (*Conf, error) {
	var cfg *Conf

	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WEB_SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_RPS", 50)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	viper.SetDefault("CATALOG_OUTPUT_DIR", "datasets")
	viper.SetDefault("CATALOG_FILE_PREFIX", "gemeente-amsterdam")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// no .env file; environment variables still apply
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
