package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort int
	JWTSecret  string
	UsersFile  string
	PostsFile  string
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "5000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort: port,
		JWTSecret:  getEnv("JWT_SECRET", "dev_secret_change_me"),
		UsersFile:  getEnv("USERS_FILE", "./data/users.json"),
		PostsFile:  getEnv("POSTS_FILE", "./data/posts.json"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
