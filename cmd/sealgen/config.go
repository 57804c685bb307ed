package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "sealgen"
	configFileType = "yaml"
	envPrefix      = "SEALGEN"

	keyDataDir       = "data_dir"
	keyDefaultType   = "default_type"
	keyOutputDir     = "output.dir"
	keyOutputFormat  = "output.format"
	keyDrawingWidth  = "drawing.width"
	keyDrawingHeight = "drawing.height"
	keyWorkers       = "workers"
	keyLogLevel      = "log.level"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyDataDir, "")
	v.SetDefault(keyDefaultType, "")
	v.SetDefault(keyOutputDir, ".")
	v.SetDefault(keyOutputFormat, "yaml")
	v.SetDefault(keyDrawingWidth, 400)
	v.SetDefault(keyDrawingHeight, 400)
	v.SetDefault(keyWorkers, 4)
	v.SetDefault(keyLogLevel, "info")
}

// loadConfig reads the configuration into v. An explicit path must exist.
// Without one sealgen.yaml is searched in the working directory and in
// $HOME/.config/sealgen; a missing file is not an error.
func loadConfig(v *viper.Viper, path string) error {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "sealgen"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
