package env

import (
	"os"

	"github.com/joho/godotenv"
)

var fileEnv map[string]string

func GetEnv(key, def string) string {
	// First check the loaded .env map
	if val, ok := fileEnv[key]; ok {
		return val
	}
	// Fallback to OS environment variables (for Docker/tests)
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func SetupEnvFile() {
	// Look for .env file in project root
	envFiles := []string{
		".env",          // Current directory
		"../../.env",    // From cmd/matsci to project root
		"../../../.env", // Fallback for deeper nesting
	}

	var err error
	for _, envFile := range envFiles {
		fileEnv, err = godotenv.Read(envFile)
		if err == nil {
			// Successfully loaded env file
			return
		}
	}

	// No .env file is a supported configuration: the AI provider runs in
	// fallback mode and storage stays in-memory. Everything else comes
	// from OS env vars or defaults.
	fileEnv = map[string]string{}
}

func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}
