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

// Builder composes Registry and BindingSet instances from a Config.
// Implementations may migrate state from previous instances (prev*), or ignore them.
type Builder interface {
	// BuildBindings constructs one scope's BindingSet for Config.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildBindings(cfg Config, prev BindingSet, ext any) BindingSet

	// BuildRegistry constructs a Registry wired to the given binding
	// sets. May migrate providers from a previous registry.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildRegistry(cfg Config, prev Registry, session, notifier BindingSet, ext any) Registry
}
