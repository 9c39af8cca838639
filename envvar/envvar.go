// Package envvar exposes utilities for reading configuration from the environment.
package envvar

import (
	"os"
	"strconv"
	"strings"
)

// GetString returns the trimmed value of the environmental variable varName, if the env var is unset or blank it will
// return "", false.
func GetString(varName string) (string, bool) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return "", false
	}

	env = strings.TrimSpace(env)
	if env == "" {
		return "", false
	}

	return env, true
}

// GetInt returns the int value of the environmental variable varName  if the env var is not an int or empty it will
// return 0, false.
func GetInt(varName string) (int, bool) {
	env, ok := GetString(varName)
	if !ok {
		return 0, false
	}

	val, err := strconv.Atoi(env)
	if err != nil {
		return 0, false
	}

	return val, true
}

// GetBool returns the boolean value of the environmental variable varName  if the env var is empty or not a boolean it
// will return false, false.
func GetBool(varName string) (bool, bool) {
	val, ok := GetString(varName)
	if !ok {
		return false, false
	}

	ret, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}

	return ret, true
}
