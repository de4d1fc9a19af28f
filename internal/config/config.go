package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env     string       `env:"ENV" env-default:"local" yaml:"env"`
	DataDir string       `env:"ASSISTANT_DATA_DIR" env-default:"data" yaml:"data_dir"`
	Speech  SpeechConfig `yaml:"speech"`
	Lookup  LookupConfig `yaml:"lookup"`
}

type SpeechConfig struct {
	Enabled bool   `env:"ASSISTANT_SPEECH" env-default:"false" yaml:"enabled"`
	Command string `env:"ASSISTANT_SPEECH_COMMAND" env-default:"espeak" yaml:"command"`
}

type LookupConfig struct {
	WeatherAPIKey string        `env:"OPENWEATHER_API_KEY" yaml:"weather_api_key"`
	NewsAPIKey    string        `env:"NEWS_API_KEY" yaml:"news_api_key"`
	HTTPTimeout   time.Duration `env:"ASSISTANT_HTTP_TIMEOUT" env-default:"8s" yaml:"http_timeout"`
}
