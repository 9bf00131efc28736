package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that provide flag defaults.
const (
	EnvRegistry = "VKGEN_REGISTRY"
	EnvOutput   = "VKGEN_OUTPUT"
	EnvConfig   = "VKGEN_CONFIG"
)

// Env holds flag defaults taken from the environment.
type Env struct {
	Registry string
	Output   string
	Config   string
}

// LoadEnv reads an optional .env file from the working directory and returns
// the flag defaults found in the environment. A missing .env is not an error.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		Registry: strings.TrimSpace(os.Getenv(EnvRegistry)),
		Output:   firstNonEmpty(strings.TrimSpace(os.Getenv(EnvOutput)), "-"),
		Config:   strings.TrimSpace(os.Getenv(EnvConfig)),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
