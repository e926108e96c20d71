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

package match

import "time"

const (
	DefaultAgent        = "random_agent"
	DefaultRosterDir    = "boards/"
	DefaultDisplayDelay = 400 * time.Millisecond
	DefaultSavePath     = "plots/"
	DefaultRuns         = 100
	DefaultMaxSteps     = 10_000
)

// Config is the configuration of a single invocation of the referee. It
// is passed around by value and never modified once built.
type Config struct {
	// Agents sitting at seat 1 and seat 2 when no swap is requested.
	Player1 string
	Player2 string

	// Board used when a match is started without an explicit board.
	// Empty means the engine's default starting position.
	BoardPath string

	// Directory scanned for boards in autoplay mode.
	BoardRosterDir string

	Display DisplayConfig

	Autoplay     bool
	AutoplayRuns int

	// Step budget of a single match. Zero means unbounded.
	MaxSteps int

	// Wall clock budget of a single match, checked between steps.
	// Zero means unbounded.
	MatchTimeout time.Duration
}

// DisplayConfig holds the rendering options. They are only interpreted
// by the engine.
type DisplayConfig struct {
	Enabled  bool
	Delay    time.Duration
	Save     bool
	SavePath string
}

// DefaultConfig returns a Config with every option at its default.
func DefaultConfig() Config {
	return Config{
		Player1:        DefaultAgent,
		Player2:        DefaultAgent,
		BoardRosterDir: DefaultRosterDir,

		Display: DisplayConfig{
			Delay:    DefaultDisplayDelay,
			SavePath: DefaultSavePath,
		},

		AutoplayRuns: DefaultRuns,
		MaxSteps:     DefaultMaxSteps,
	}
}
