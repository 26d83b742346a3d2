package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/myownipgit/mcp-server-qrcode-enhanced/pkg/logger"
)

// Config is the resolved process configuration.
type Config struct {
	OutputDir string
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("settings.debug", false)
	viper.SetDefault("settings.log-to-file", false)
	viper.SetDefault("settings.logs-dir", "logs")
	viper.SetDefault("service.output-dir", "./qr-output")

	// Config file is optional; defaults plus env cover the whole surface.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
	}
}

func Get() *Config {
	initConfig()

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	outputDir := viper.GetString("service.output-dir")
	if env := os.Getenv("QR_OUTPUT_DIR"); env != "" {
		outputDir = env
	}

	return &Config{
		OutputDir: outputDir,
	}
}
