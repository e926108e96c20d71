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

package tournament

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/referee/pkg/eve/logging"
	"laptudirm.com/x/referee/pkg/eve/match"
	"laptudirm.com/x/referee/pkg/eve/roster"
	"laptudirm.com/x/referee/pkg/eve/stats"
)

// QuietLevel is the most verbose level which is logged while the
// matches of a tournament are being played.
const QuietLevel = logrus.WarnLevel

// Tournament plays repeated matches between the two agents of a Config
// on boards picked from a Roster, alternating their seats.
type Tournament struct {
	Config match.Config
	Roster roster.Roster

	newEngine match.EngineFactory

	log      *logrus.Logger
	rng      *rand.Rand
	progress func(run, runs int)
	sprt     *stats.SPRT
}

type Option func(*Tournament)

// WithRand sets the source of randomness used to pick boards.
func WithRand(rng *rand.Rand) Option {
	return func(tour *Tournament) { tour.rng = rng }
}

// WithLogger sets the logger used by the tournament and its matches.
func WithLogger(log *logrus.Logger) Option {
	return func(tour *Tournament) { tour.log = log }
}

// WithRoster replaces the Roster discovered from the Config.
func WithRoster(boards roster.Roster) Option {
	return func(tour *Tournament) { tour.Roster = boards }
}

// WithProgress sets a function to be called after each finished match.
func WithProgress(progress func(run, runs int)) Option {
	return func(tour *Tournament) { tour.progress = progress }
}

// WithSPRT ends the tournament early once the given test accepts either
// of its hypotheses about Player1's elo over Player2.
func WithSPRT(test stats.SPRT) Option {
	return func(tour *Tournament) { tour.sprt = &test }
}

// NewTournament prepares a tournament. It fails with a ConfigurationError
// if there are no boards to play on.
func NewTournament(config match.Config, newEngine match.EngineFactory, options ...Option) (*Tournament, error) {
	tour := &Tournament{
		Config:    config,
		Roster:    roster.Discover(config.BoardRosterDir),
		newEngine: newEngine,
		log:       logrus.StandardLogger(),
	}

	for _, option := range options {
		option(tour)
	}

	if tour.rng == nil {
		tour.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if err := tour.Roster.Validate(); err != nil {
		return nil, err
	}

	return tour, nil
}

// Summary is the outcome of a finished tournament.
type Summary struct {
	Session string
	Runs    int

	Players [2]string
	Agents  [2]stats.AgentSummary

	// Wins, Draws, and Losses of Player1 against Player2.
	Wins, Draws, Losses int
	Elo                 stats.Estimate

	// Result of the early stopping test, if one was run.
	LLR        float64
	Hypothesis stats.Hypothesis
}

// Autoplay plays the given number of matches and aggregates their
// results by agent. The agents alternate seats: Player2 sits at seat 1
// in the first match, and in every other match after it. With WithSPRT
// the tournament may stop before all matches are played.
//
// Display is turned off and logging below QuietLevel is dropped while the
// matches are played. Any failed match ends the tournament with an error.
func (tour *Tournament) Autoplay(ctx context.Context, runs int) (*Summary, error) {
	if runs <= 0 {
		return nil, &match.ConfigurationError{
			Option: "autoplay_runs",
			Err:    fmt.Errorf("need at least one run, got %d", runs),
		}
	}

	session := uuid.NewString()
	log := tour.log.WithField("session", session)

	config := tour.Config
	if config.Display.Enabled {
		log.Warn("Since running autoplay mode, display will be disabled")
		config.Display.Enabled = false
	}

	runner := match.Runner{
		Config:    config,
		NewEngine: tour.newEngine,
		Log:       tour.log,
	}

	agg, err := tour.play(ctx, &runner, runs, log)
	if err != nil {
		return nil, err
	}

	agents, err := agg.Summary()
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Session: session,
		Runs:    agg.Runs,
		Players: [2]string{config.Player1, config.Player2},
		Agents:  agents,
		Wins:    agg.Wins,
		Draws:   agg.Draws,
		Losses:  agg.Losses,
		Elo:     agg.Elo(),
	}

	if tour.sprt != nil {
		summary.LLR = tour.sprt.LLR(agg.Wins, agg.Draws, agg.Losses)
		summary.Hypothesis = tour.sprt.Decide(agg.Wins, agg.Draws, agg.Losses)
		if summary.Hypothesis != stats.Undecided {
			log.WithField("llr", summary.LLR).Infof("%s accepted after %d runs", summary.Hypothesis, agg.Runs)
		}
	}

	for i, agent := range summary.Agents {
		tour.log.Infof(
			"Player %d, agent %s, win percentage: %v. Maximum turn time was %.5f seconds.",
			i+1, summary.Players[i], agent.WinRate, agent.MaxTurn.Seconds(),
		)
	}

	return summary, nil
}

func (tour *Tournament) play(ctx context.Context, runner *match.Runner, runs int, log *logrus.Entry) (*stats.Aggregator, error) {
	quiet := logging.Suppress(tour.log, QuietLevel)
	defer quiet.Restore()

	var agg stats.Aggregator
	for i := 0; i < runs; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		swap := i%2 == 0

		board, err := tour.Roster.Pick(tour.rng)
		if err != nil {
			return nil, err
		}

		log.WithFields(logrus.Fields{
			"run":   i + 1,
			"board": board,
			"swap":  swap,
		}).Debug("Playing match")

		raw, err := runner.Run(ctx, swap, board)
		if err != nil {
			return nil, fmt.Errorf("autoplay: run %d on %s: %w", i+1, board, err)
		}

		agg.Update(match.Canonicalize(raw, swap))

		if tour.progress != nil {
			tour.progress(i+1, runs)
		}

		if tour.sprt != nil && tour.sprt.Decide(agg.Wins, agg.Draws, agg.Losses) != stats.Undecided {
			break
		}
	}

	return &agg, nil
}

// IsConfigurationError reports whether err was caused by the configuration
// rather than by a match.
func IsConfigurationError(err error) bool {
	var config *match.ConfigurationError
	return errors.As(err, &config)
}
