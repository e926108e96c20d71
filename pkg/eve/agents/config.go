// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package agents

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// File is the format of an agents file, which describes the external
// agents available to the referee:
//
//	agents:
//	  - name: mess
//	    cmd: ./engines/mess
//	    tc: 10+0.1
type File struct {
	Agents []ExternalConfig `yaml:"agents"`
}

// Load registers every external agent described in the agents file at
// path. A missing file is not an error.
func (registry *Registry) Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("load agents: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("load agents %s: %w", path, err)
	}

	for _, config := range file.Agents {
		if config.Name == "" || config.Cmd == "" {
			return fmt.Errorf("load agents %s: agents need a name and a cmd", path)
		}

		config := config
		registry.Register(config.Name, func(log *logrus.Logger) (Agent, error) {
			return StartExternal(config, log)
		})
	}

	return nil
}
