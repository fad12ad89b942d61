package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB     DBConfig
	Server ServerConfig
	Logger LoggerConfig
	Trivia TriviaConfig
	Client ClientConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// TriviaConfig points the seed job at the upstream trivia API.
type TriviaConfig struct {
	BaseURL string
}

// ClientConfig tells the terminal client where the API server lives.
type ClientConfig struct {
	ServerURL string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("trivia.base_url", "https://opentdb.com")
	viper.SetDefault("client.server_url", "http://localhost:8080")

	viper.AutomaticEnv()

	// Missing config file is fine, defaults and env vars cover it.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Trivia: TriviaConfig{
			BaseURL: viper.GetString("trivia.base_url"),
		},
		Client: ClientConfig{
			ServerURL: viper.GetString("client.server_url"),
		},
	}

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		config.DB.Port = viper.GetInt("DB_PORT")
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = viper.GetInt("PORT")
	}
	if baseURL := os.Getenv("TRIVIA_BASE_URL"); baseURL != "" {
		config.Trivia.BaseURL = baseURL
	}
	if serverURL := os.Getenv("QUIZ_SERVER_URL"); serverURL != "" {
		config.Client.ServerURL = serverURL
	}

	return config, nil
}

// GetDSN builds the Postgres connection string for the pgx driver.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}
