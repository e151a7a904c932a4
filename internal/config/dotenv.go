// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DotEnvPathEnvVar overrides the location of the .env file.
const DotEnvPathEnvVar = "DOTENV_PATH"

// defaultDotEnvPath is read when DOTENV_PATH is unset.
const defaultDotEnvPath = ".env"

// loadDotEnv merges a .env file into the process environment. A missing
// default file is not an error; a missing DOTENV_PATH file is.
func loadDotEnv() error {
	path := os.Getenv(DotEnvPathEnvVar)
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvPath
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	// godotenv.Load never overrides variables that are already set.
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
