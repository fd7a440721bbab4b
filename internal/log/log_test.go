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

package log

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseEnv(t *testing.T) {
	tests := []struct {
		in   string
		want Env
	}{
		{"", EnvDev},
		{"dev", EnvDev},
		{"DEV", EnvDev},
		{" prod ", EnvProd},
	}
	for _, tt := range tests {
		got, err := ParseEnv(tt.in)
		if err != nil {
			t.Errorf("ParseEnv(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseEnv("staging"); err == nil {
		t.Errorf("ParseEnv(staging) succeeded, want error")
	}
}

func TestNewLevels(t *testing.T) {
	for _, env := range []Env{EnvDev, EnvProd} {
		for _, verbose := range []bool{false, true} {
			logger, err := New(env, verbose)
			if err != nil {
				t.Fatalf("New(%s, %v): %v", env, verbose, err)
			}
			core := logger.Core()
			if !core.Enabled(zapcore.InfoLevel) {
				t.Errorf("New(%s, %v): Info disabled", env, verbose)
			}
			if got := core.Enabled(zapcore.DebugLevel); got != verbose {
				t.Errorf("New(%s, %v): Debug enabled = %v, want %v", env, verbose, got, verbose)
			}
		}
	}
}

func TestNewUnknownEnv(t *testing.T) {
	if _, err := New(Env("qa"), false); err == nil {
		t.Errorf("New(qa) succeeded, want error")
	}
}
