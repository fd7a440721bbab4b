// Copyright 2026 numseq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log builds the zap loggers used by the command line tools.
//
// The seq packages never log; only binaries under cmd/ do.
//
// See the Zap docs for more details: https://pkg.go.dev/go.uber.org/zap
package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Env selects a logging configuration.
type Env string

// String implements the Stringer interface.
func (e Env) String() string {
	return string(e)
}

const (
	EnvDev  Env = "dev"
	EnvProd Env = "prod"
)

// EnvVar names the environment variable holding the default Env.
const EnvVar = "NUMSEQ_LOG_ENV"

// ParseEnv maps "dev" or "prod" (case-insensitive) to an Env. The empty
// string selects EnvDev.
func ParseEnv(s string) (Env, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", EnvDev.String():
		return EnvDev, nil
	case EnvProd.String():
		return EnvProd, nil
	}
	return "", fmt.Errorf("unknown logging env %q (want %q or %q)", s, EnvDev, EnvProd)
}

// New returns a logger for env writing to stderr.
//
// EnvDev uses Zap's console development configuration, EnvProd its JSON
// production configuration with sampling disabled. Both log at Info unless
// verbose is set, which lowers the level to Debug.
func New(env Env, verbose bool) (*zap.Logger, error) {
	var config zap.Config
	switch env {
	case EnvProd:
		config = zap.NewProductionConfig()
		config.Sampling = nil
	case EnvDev:
		config = zap.NewDevelopmentConfig()
		config.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("unknown logging env %q", env)
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	return config.Build()
}
