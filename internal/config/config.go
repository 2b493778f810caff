package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string      `yaml:"env" env-default:"local"`
	HTTPServer  HTTPServer  `yaml:"http_server"`
	Store       Store       `yaml:"store"`
	Import      Import      `yaml:"import"`
	Quiz        Quiz        `yaml:"quiz"`
	OpenAI      OpenAI      `yaml:"openai"`
	Admin       Admin       `yaml:"admin"`
	Certificate Certificate `yaml:"certificate"`
}

type HTTPServer struct {
	Address       string        `yaml:"address" env-default:"localhost:8081"`
	Timeout       time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout   time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigin string        `yaml:"allowed_origin" env-default:"http://localhost:5173"`
}

type Store struct {
	Path string `yaml:"path" env-default:"data/courses.json"`
}

type Import struct {
	MaxBodyBytes   int64         `yaml:"max_body_bytes" env-default:"2097152"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout" env-default:"10s"`
	MaxQuestions   int           `yaml:"max_questions" env-default:"5"`
	MaxPromptChars int           `yaml:"max_prompt_chars" env-default:"2000"`
}

type Quiz struct {
	DefaultPassThreshold float64 `yaml:"default_pass_threshold" env-default:"70"`
}

type OpenAI struct {
	APIKey string `yaml:"api_key" env:"OPENAI_API_KEY"`
	Model  string `yaml:"model" env-default:"gpt-4o-mini"`
}

type Admin struct {
	Passcode   string        `yaml:"passcode" env:"ADMIN_PASSCODE" env-default:"admin123"`
	JWTSecret  string        `yaml:"jwt_secret" env:"ADMIN_JWT_SECRET"`
	SessionTTL time.Duration `yaml:"session_ttl" env-default:"12h"`
}

type Certificate struct {
	SiteTitle string `yaml:"site_title" env-default:"Tutorial Platform"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {

		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Can not read config file %s", err)
	}

	return &cfg
}
