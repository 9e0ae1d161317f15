package utils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const ENV_FILENAME = ".env"

// InitEnvironmentVariables loads the local .env file unless running in
// production, where the environment is expected to be set externally.
func InitEnvironmentVariables() error {
	if os.Getenv("GO_ENV") == "production" {
		log.Info("Running in production environment")
		return nil
	}

	if _, err := os.Stat(ENV_FILENAME); os.IsNotExist(err) {
		log.Debugf("no %s file found, using current environment", ENV_FILENAME)
		return nil
	}

	if err := godotenv.Load(ENV_FILENAME); err != nil {
		return fmt.Errorf("failed to load %s file: %v", ENV_FILENAME, err)
	}

	return nil
}
