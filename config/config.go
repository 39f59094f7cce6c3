package config

import (
	"os"
	"strconv"
	"strings"
)

// New snapshots the process environment into a plain map. Handlers and
// services read from the snapshot instead of os.Getenv so tests can
// inject configuration directly.
func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value := split(entry)
		envAsMap[key] = value
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	s, ok := lookup(config, key)
	if !ok {
		return defaultValue
	}
	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return asInt
}

func GetBool(config map[string]string, key string, defaultValue bool) bool {
	s, ok := lookup(config, key)
	if !ok {
		return defaultValue
	}
	asBool, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}
	return asBool
}

func lookup(config map[string]string, key string) (string, bool) {
	if config == nil {
		return "", false
	}
	val, ok := config[key]
	return val, ok
}
