package config

import (
	"os"
	"path"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	Secret    string `yaml:"secret" json:"secret"`
	JwtExpire int    `yaml:"jwt_expire" json:"jwt_expire"` // hours
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type PaymentConfig struct {
	// EnableStripe registers the Stripe provider in addition to the
	// default three.
	EnableStripe bool `yaml:"enable_stripe" json:"enable_stripe"`
	// DefaultAmount is the mock price charged per unit until real
	// product pricing exists.
	DefaultAmount float64 `yaml:"default_amount" json:"default_amount"`
}

type AppConfig struct {
	System   SysConfig     `yaml:"system" json:"system"`
	Web      WebConfig     `yaml:"web" json:"web"`
	Database DBConfig      `yaml:"database" json:"database"`
	Logger   LogConfig     `yaml:"logger" json:"logger"`
	Payment  PaymentConfig `yaml:"payment" json:"payment"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "shopd",
		Location: "UTC",
		Workdir:  "/var/shopd",
		Debug:    true,
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      1816,
		Secret:    "9b6de5cc-shopd-1816-8846-37f1c48e7ba0",
		JwtExpire: 24,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "shopd",
		User:     "postgres",
		Passwd:   "postgres",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/shopd/shopd.log",
	},
	Payment: PaymentConfig{
		EnableStripe:  false,
		DefaultAmount: 99.99,
	},
}

func setEnvValue(name string, f func(v string)) {
	if v := os.Getenv(name); v != "" {
		f(v)
	}
}

// LoadConfig reads the yaml configuration file and applies environment
// overrides. A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	defaults := *DefaultAppConfig
	cfg := &defaults
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			cfg = new(AppConfig)
			if err := yaml.Unmarshal(data, cfg); err != nil {
				panic(err)
			}
		}
	}

	setEnvValue("SHOPD_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("SHOPD_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = cast.ToBool(v) })
	setEnvValue("SHOPD_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("SHOPD_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("SHOPD_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvValue("SHOPD_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvValue("SHOPD_DB_PORT", func(v string) { cfg.Database.Port = cast.ToInt(v) })
	setEnvValue("SHOPD_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("SHOPD_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("SHOPD_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("SHOPD_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvValue("SHOPD_PAYMENT_ENABLE_STRIPE", func(v string) { cfg.Payment.EnableStripe = cast.ToBool(v) })

	return cfg
}

// InitDirs creates the working directory layout.
func (c *AppConfig) InitDirs() {
	_ = os.MkdirAll(path.Join(c.System.Workdir, "logs"), 0o755)
	_ = os.MkdirAll(path.Join(c.System.Workdir, "data"), 0o755)
}
