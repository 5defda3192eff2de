package configs

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Postgres `mapstructure:"postgres"`
	JWT      `mapstructure:"jwt"`
	Groq     `mapstructure:"groq"`
	Chat     `mapstructure:"chat"`
	Giphy    `mapstructure:"giphy"`
	SMTP     `mapstructure:"smtp"`
}

// App struct
type App struct {
	Debug            bool   `mapstructure:"debug"`
	Env              string `mapstructure:"env"`
	Port             string `mapstructure:"port"`
	FrontendURL      string `mapstructure:"frontend_url"`
	FrontendLocalURL string `mapstructure:"frontend_local_url"`
}

// IsProduction reports whether cookies and CORS should use production settings
func (a App) IsProduction() bool {
	return a.Env == "production"
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// JWT struct
type JWT struct {
	Secret string `mapstructure:"secret"`
}

// Groq struct
type Groq struct {
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	Model      string `mapstructure:"model"`
	Timeout    int    `mapstructure:"timeout"` // seconds
	MaxRetries int    `mapstructure:"max_retries"`
}

// Chat struct - zero values fall back to the conversation store defaults
type Chat struct {
	SystemPrompt    string `mapstructure:"system_prompt"`
	MaxMessages     int    `mapstructure:"max_messages"`
	CleanupInterval int    `mapstructure:"cleanup_interval"` // minutes
	PinSystemPrompt bool   `mapstructure:"pin_system_prompt"`
}

// Giphy struct
type Giphy struct {
	APIKey          string `mapstructure:"api_key"`
	Tag             string `mapstructure:"tag"`
	Rating          string `mapstructure:"rating"`
	FallbackURL     string `mapstructure:"fallback_url"`
	RequestsPerHour int    `mapstructure:"requests_per_hour"`
}

// SMTP struct
type SMTP struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		logrus.Infof("Config file has changed: %s", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		logrus.Fatalln(err)
	}
	logrus.Debugf("Config loaded for env %s from %s", env, viper.ConfigFileUsed())
}
