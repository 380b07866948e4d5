// This file is part of gel - https://github.com/tigrux/gel-sub000
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

package gel

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Config is the optional, YAML-decoded configuration consumed by cmd/gel
// and by any embedder that wants the same knobs:
//
//	prelude: []          # paths to .gel files loaded into the root Context
//	                      # before the main script
//	stack-size: 0         # 0 = unbounded; otherwise caps lambda-call
//	                      # recursion depth (value.Context.SetMaxDepth)
//	macro-expansion: true # disable to get raw, unexpanded parse trees
type Config struct {
	Prelude        []string `yaml:"prelude"`
	StackSize      int      `yaml:"stack-size"`
	MacroExpansion bool     `yaml:"macro-expansion"`
}

// DefaultConfig returns the configuration an Interpreter uses when none is
// supplied explicitly: no prelude files, unbounded recursion, macro
// expansion on.
func DefaultConfig() Config {
	return Config{MacroExpansion: true}
}

// LoadConfig reads and decodes a YAML configuration file at path. Fields
// absent from the file keep DefaultConfig's values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "decoding config %s", path)
	}
	return cfg, nil
}
