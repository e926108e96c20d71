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

package logging

import "github.com/sirupsen/logrus"

// Suppression lowers the verbosity of a logger until it is restored.
// It should be restored with a defer right after being acquired, so
// that the logger recovers on every path out of the silenced code.
type Suppression struct {
	logger   *logrus.Logger
	previous logrus.Level
}

// Suppress makes the logger drop every entry less severe than level.
// A logger which is already quieter than level is left untouched.
func Suppress(logger *logrus.Logger, level logrus.Level) *Suppression {
	suppression := &Suppression{
		logger:   logger,
		previous: logger.GetLevel(),
	}

	if level < suppression.previous {
		logger.SetLevel(level)
	}

	return suppression
}

// Restore returns the logger to the level it had before Suppress.
func (suppression *Suppression) Restore() {
	suppression.logger.SetLevel(suppression.previous)
}
