package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"sales-dashboard/internal/report"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Reports  ReportsConfig  `mapstructure:"reports"`
	Logger   LoggerConfig   `mapstructure:"log"`
	Security SecurityConfig `mapstructure:"security"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type ReportsConfig struct {
	DataDir            string              `mapstructure:"data_dir"`
	MaxUploadBytes     int64               `mapstructure:"max_upload_bytes" validate:"gt=0"`
	GroupingSeparators string              `mapstructure:"grouping_separators"`
	SalesColumns       report.SalesColumns `mapstructure:"sales_columns"`
	ItemsColumns       report.ItemsColumns `mapstructure:"items_columns"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json text"`
}

type SecurityConfig struct {
	EnableRateLimit bool     `mapstructure:"rate_limit_enabled"`
	RateLimitRPS    int      `mapstructure:"rate_limit_rps" validate:"gt=0"`
	RateLimitBurst  int      `mapstructure:"rate_limit_burst" validate:"gt=0"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	TrustedProxies  []string `mapstructure:"trusted_proxies"`
}

// Load reads configuration from defaults, an optional config.yaml in the
// working directory or ./config, and environment variables. Nested keys
// map to env names with underscores, e.g. SERVER_PORT or
// REPORTS_SALES_COLUMNS_TOTAL_SALES.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	cfg.Logger.Level = strings.ToLower(cfg.Logger.Level)
	cfg.Logger.Format = strings.ToLower(cfg.Logger.Format)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8084)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("reports.data_dir", "Data")
	v.SetDefault("reports.max_upload_bytes", 10<<20)
	v.SetDefault("reports.grouping_separators", report.DefaultGroupingSeparators)

	sales := report.DefaultSalesColumns()
	v.SetDefault("reports.sales_columns.date", sales.Date)
	v.SetDefault("reports.sales_columns.total_sales", sales.TotalSales)
	v.SetDefault("reports.sales_columns.total_bills", sales.TotalBills)
	v.SetDefault("reports.sales_columns.cash", sales.Cash)
	v.SetDefault("reports.sales_columns.card", sales.Card)
	v.SetDefault("reports.sales_columns.due", sales.Due)

	items := report.DefaultItemsColumns()
	v.SetDefault("reports.items_columns.item", items.Item)
	v.SetDefault("reports.items_columns.category", items.Category)
	v.SetDefault("reports.items_columns.quantity", items.Quantity)
	v.SetDefault("reports.items_columns.revenue", items.Revenue)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("security.rate_limit_enabled", true)
	v.SetDefault("security.rate_limit_rps", 100)
	v.SetDefault("security.rate_limit_burst", 10)
	v.SetDefault("security.allowed_origins", []string{"http://localhost:8084"})
	v.SetDefault("security.trusted_proxies", []string{"127.0.0.1"})
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s failed %q check (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}

	if err := c.Reports.SalesColumns.Validate(); err != nil {
		return err
	}
	return c.Reports.ItemsColumns.Validate()
}

// LoaderOptions returns the report loader settings from this config.
func (c *Config) LoaderOptions() []report.Option {
	opts := []report.Option{
		report.WithSalesColumns(c.Reports.SalesColumns),
		report.WithItemsColumns(c.Reports.ItemsColumns),
	}
	if c.Reports.GroupingSeparators != "" {
		opts = append(opts, report.WithGroupingSeparators(c.Reports.GroupingSeparators))
	}
	return opts
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
