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

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Engine is a single game in progress between two seated agents.
type Engine interface {
	// Step advances the game by a single turn and reports whether the
	// game has ended, along with the current score of both seats.
	Step() (terminal bool, score1, score2 float64, err error)

	// Times returns the time taken by each turn of each seat so far.
	Times() [2][]time.Duration

	// Close releases any resources held by the game and its agents.
	Close() error
}

// EngineConfig is everything an EngineFactory needs to set up a game.
type EngineConfig struct {
	// Agents by seat, after any swap has been applied.
	Seats [2]string

	BoardPath string
	Display   DisplayConfig

	// Log is the logger of the match, which the game and its agents
	// should log to.
	Log *logrus.Logger
}

// EngineFactory creates a new game from the given configuration.
type EngineFactory func(EngineConfig) (Engine, error)
