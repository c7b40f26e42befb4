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

package apis

// Config carries read-only context-subsystem knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// AppPrefix is the reserved namespace prefix every application
	// provider name must start with (e.g. "$app.").
	AppPrefix string

	// Separator splits a qualified context-field name into the provider
	// prefix and the instance suffix. Provider names must not contain it.
	Separator byte

	// MaxFields caps the length of a context array. Appending beyond it
	// fails at the array layer.
	MaxFields int
}
