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
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Seat names used in match reports.
const (
	Seat1Name = "Blue"
	Seat2Name = "Brown"
)

// Runner plays single matches with a fixed configuration.
type Runner struct {
	Config    Config
	NewEngine EngineFactory

	// Log receives the match reports. Nil means the standard logger.
	Log *logrus.Logger
}

func (runner *Runner) logger() *logrus.Logger {
	if runner.Log == nil {
		return logrus.StandardLogger()
	}

	return runner.Log
}

// Run plays a single match to completion and returns its seat indexed
// Result. If swap is set, Player2 takes seat 1 and Player1 seat 2. An
// empty boardPath falls back to the configured BoardPath.
//
// The match is stepped until the engine reports that it has ended, or
// until one of the step and time budgets of the Config runs out.
func (runner *Runner) Run(ctx context.Context, swap bool, boardPath string) (Result, error) {
	config := runner.Config
	if boardPath == "" {
		boardPath = config.BoardPath
	}

	seats := [2]string{config.Player1, config.Player2}
	if swap {
		seats[0], seats[1] = seats[1], seats[0]
	}

	log := runner.logger()
	log.WithFields(logrus.Fields{
		"seat1": seats[0],
		"seat2": seats[1],
		"board": boardPath,
	}).Debug("Starting match")

	engine, err := runner.NewEngine(EngineConfig{
		Seats:     seats,
		BoardPath: boardPath,
		Display:   config.Display,
		Log:       log,
	})
	if err != nil {
		return Result{}, fmt.Errorf("match: start engine: %w", err)
	}

	defer func() {
		if err := engine.Close(); err != nil {
			log.WithError(err).Warn("Unable to close engine")
		}
	}()

	if config.MatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.MatchTimeout)
		defer cancel()
	}

	var score1, score2 float64
	for steps := 0; ; steps++ {
		if config.MaxSteps > 0 && steps >= config.MaxSteps {
			return Result{}, fmt.Errorf("%w: no result after %d steps", ErrStepBudget, steps)
		}

		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return Result{}, fmt.Errorf("%w: no result after %s", ErrMatchTimeout, config.MatchTimeout)
			}

			return Result{}, err
		}

		terminal, s1, s2, err := engine.Step()
		if err != nil {
			return Result{}, fmt.Errorf("match: step %d: %w", steps+1, err)
		}

		if terminal {
			score1, score2 = s1, s2
			break
		}
	}

	log.Infof(
		"Run finished. %s player, agent %s: %v. %s player, agent %s: %v",
		Seat1Name, seats[0], score1,
		Seat2Name, seats[1], score2,
	)

	return Result{
		Scores: [2]float64{score1, score2},
		Times:  engine.Times(),
	}, nil
}
