package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	LogLevel string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	PostgresSSLMode  string

	OperatorWorkers int
}

// ProcessEnvironmentVariables builds the config from the environment. A .env
// file in the working directory is loaded first when present; variables that
// are already set win over the file.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "5000",
		LogLevel:         "info",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		PostgresSSLMode:  "disable",
		OperatorWorkers:  1,
	}

	setFromEnv(&env.Port, "PORT")
	setFromEnv(&env.LogLevel, "LOG_LEVEL")
	setFromEnv(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setFromEnv(&env.PostgresPort, "POSTGRES_PORT")
	setFromEnv(&env.PostgresDB, "POSTGRES_DB")
	setFromEnv(&env.PostgresUsername, "POSTGRES_USERNAME")
	setFromEnv(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setFromEnv(&env.PostgresSSLMode, "POSTGRES_SSLMODE")

	if workers := os.Getenv("OPERATOR_WORKERS"); len(workers) != 0 {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q: %w", workers, err)
		}
		env.OperatorWorkers = n
	}

	return &env, nil
}

func setFromEnv(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}

	if c.PostgresAddress == "" {
		problems = append(problems, "postgres address cannot be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// PostgresURL is the connection string for the configured database.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=" + url.QueryEscape(c.PostgresSSLMode),
	}
	return u.String()
}
