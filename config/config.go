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

package config

import (
	"dirpx.dev/actx/apis"
)

const (
	// DefaultAppPrefix is the reserved namespace prefix for application
	// context providers.
	DefaultAppPrefix = "$app."
	// DefaultSeparator splits a qualified field name ("provider:instance")
	// into provider prefix and instance suffix.
	DefaultSeparator = ':'
	// DefaultMaxFields bounds a context array. 256 distinct context
	// fields is far beyond anything a session configures in practice.
	DefaultMaxFields = 256
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure the knobs are valid.
	if cfg.AppPrefix == "" {
		cfg.AppPrefix = DefaultAppPrefix
	}
	if cfg.Separator == 0 {
		cfg.Separator = DefaultSeparator
	}
	if cfg.MaxFields <= 0 {
		cfg.MaxFields = DefaultMaxFields
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		AppPrefix: DefaultAppPrefix,
		Separator: DefaultSeparator,
		MaxFields: DefaultMaxFields,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithAppPrefix sets the reserved application namespace prefix.
// An empty value resets to the default.
func WithAppPrefix(prefix string) Option {
	return func(c *apis.Config) {
		if prefix == "" {
			c.AppPrefix = DefaultAppPrefix
			return
		}
		c.AppPrefix = prefix
	}
}

// WithSeparator sets the qualified-name separator character.
// A zero value resets to the default.
func WithSeparator(sep byte) Option {
	return func(c *apis.Config) {
		if sep == 0 {
			c.Separator = DefaultSeparator
			return
		}
		c.Separator = sep
	}
}

// WithMaxFields caps context array length.
// A non-positive value resets to the default.
func WithMaxFields(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxFields = DefaultMaxFields
			return
		}
		c.MaxFields = max
	}
}
