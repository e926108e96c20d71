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

// Package matchtest provides scripted engines for testing code which
// plays matches.
package matchtest

import (
	"time"

	"laptudirm.com/x/referee/pkg/eve/match"
)

// Engine is a scripted match.Engine. It ends after Turns calls to Step,
// reporting Scores, or fails on the last of them if Err is set. Every
// turn is timed as TurnTime for the seat to move.
type Engine struct {
	Config match.EngineConfig

	Turns    int
	Scores   [2]float64
	TurnTime [2]time.Duration
	Err      error

	// Never makes the engine ignore Turns and run forever.
	Never bool

	Steps  int
	Closed bool

	times [2][]time.Duration
}

func (engine *Engine) Step() (bool, float64, float64, error) {
	seat := engine.Steps % 2
	engine.Steps++
	engine.times[seat] = append(engine.times[seat], engine.TurnTime[seat])

	if engine.Never || engine.Steps < engine.Turns {
		return false, 0, 0, nil
	}

	if engine.Err != nil {
		return false, 0, 0, engine.Err
	}

	return true, engine.Scores[0], engine.Scores[1], nil
}

func (engine *Engine) Times() [2][]time.Duration {
	return engine.times
}

func (engine *Engine) Close() error {
	engine.Closed = true
	return nil
}

// Factory returns an EngineFactory which builds its engines with the
// given function and records every one of them in created.
func Factory(build func(match.EngineConfig) *Engine, created *[]*Engine) match.EngineFactory {
	return func(config match.EngineConfig) (match.Engine, error) {
		engine := build(config)
		engine.Config = config
		if created != nil {
			*created = append(*created, engine)
		}

		return engine, nil
	}
}
