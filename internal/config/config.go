package config

import (
	"log"
	"os"
	"strconv"

	"github.com/ghodss/yaml"
	"github.com/joho/godotenv"
)

type Config struct {
	DBPath            string `json:"db_path"`
	ImageDir          string `json:"image_dir"`
	ImageMaxDimension int    `json:"image_max_dimension"`
	Theme             string `json:"theme"`
	AdminUsername     string `json:"admin_username"`
	AdminPassword     string `json:"admin_password"`
}

const defaultImageMaxDimension = 3840

// Load resolves configuration in three layers: built-in defaults, an
// optional YAML file (TOURBOOK_CONFIG, default tourbook.yaml in the working
// directory), then environment variables, strongest last. A .env file is
// honored the same way as the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	cfg := Config{
		DBPath:            "tourism.db",
		ImageDir:          "app_images",
		ImageMaxDimension: defaultImageMaxDimension,
		Theme:             "Light",
	}

	path := getenv("TOURBOOK_CONFIG", "tourbook.yaml")
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Printf("Warning: ignoring malformed config file %s: %v", path, err)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("Warning: could not read config file %s: %v", path, err)
	}

	cfg.DBPath = getenv("TOURBOOK_DB_PATH", cfg.DBPath)
	cfg.ImageDir = getenv("TOURBOOK_IMAGE_DIR", cfg.ImageDir)
	cfg.Theme = getenv("TOURBOOK_THEME", cfg.Theme)
	cfg.AdminUsername = getenv("TOURBOOK_ADMIN_USERNAME", cfg.AdminUsername)
	cfg.AdminPassword = getenv("TOURBOOK_ADMIN_PASSWORD", cfg.AdminPassword)

	if v, err := strconv.Atoi(getenv("TOURBOOK_IMAGE_MAX_DIMENSION", "")); err == nil && v > 0 {
		cfg.ImageMaxDimension = v
	}
	if cfg.ImageMaxDimension <= 0 {
		cfg.ImageMaxDimension = defaultImageMaxDimension
	}

	return cfg
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
