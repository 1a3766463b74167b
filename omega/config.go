// Copyright 2025 Google LLC
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

package omega

// Config controls the shape of the execution core.
type Config struct {
	// WavefrontSize is the number of lanes that execute an instruction in
	// lock-step. GFX9-class hardware runs wave64; wave32 is accepted for
	// narrower experiments. Default: 64.
	WavefrontSize int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{WavefrontSize: 64}
}
