/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config_test

import (
	"testing"

	"dirpx.dev/actx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.AppPrefix != config.DefaultAppPrefix {
		t.Fatalf("AppPrefix = %q, want %q", got.AppPrefix, config.DefaultAppPrefix)
	}
	if got.Separator != config.DefaultSeparator {
		t.Fatalf("Separator = %q, want %q", got.Separator, byte(config.DefaultSeparator))
	}
	if got.MaxFields != config.DefaultMaxFields {
		t.Fatalf("MaxFields = %d, want %d", got.MaxFields, config.DefaultMaxFields)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithAppPrefix(t *testing.T) {
	c := config.NewConfig(config.WithAppPrefix("$vendor."))
	if c.AppPrefix != "$vendor." {
		t.Fatalf("AppPrefix = %q, want %q", c.AppPrefix, "$vendor.")
	}

	// Empty prefix resets to the default.
	c2 := config.NewConfig(config.WithAppPrefix(""))
	if c2.AppPrefix != config.DefaultAppPrefix {
		t.Fatalf("AppPrefix = %q, want default %q", c2.AppPrefix, config.DefaultAppPrefix)
	}
}

func TestWithSeparator(t *testing.T) {
	c := config.NewConfig(config.WithSeparator('/'))
	if c.Separator != '/' {
		t.Fatalf("Separator = %q, want '/'", c.Separator)
	}

	// Zero separator resets to the default.
	c2 := config.NewConfig(config.WithSeparator(0))
	if c2.Separator != config.DefaultSeparator {
		t.Fatalf("Separator = %q, want default %q", c2.Separator, byte(config.DefaultSeparator))
	}
}

func TestWithMaxFields(t *testing.T) {
	c := config.NewConfig(config.WithMaxFields(4))
	if c.MaxFields != 4 {
		t.Fatalf("MaxFields = %d, want 4", c.MaxFields)
	}

	// Non-positive values reset to the default.
	c2 := config.NewConfig(config.WithMaxFields(-1))
	if c2.MaxFields != config.DefaultMaxFields {
		t.Fatalf("MaxFields = %d, want default %d", c2.MaxFields, config.DefaultMaxFields)
	}
}
