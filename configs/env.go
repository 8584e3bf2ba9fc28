package configs

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	PropertiesPath  string
	MessagesPath    string
}

// LoadEnv reads an optional .env file into the process environment and returns the bootstrap settings.
// Variables already set in the environment win over the file.
func LoadEnv(files ...string) (*EnvConfig, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault(v, "APPLICATION_NAME", "ecogarden-api"),
		PropertiesPath:  getStringOrDefault(v, "PROPERTIES_FILE_PATH", "configs/application.yml"),
		MessagesPath:    v.GetString("MESSAGES_FILE_PATH"),
	}, nil
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
