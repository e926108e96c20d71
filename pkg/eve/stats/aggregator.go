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

package stats

import (
	"errors"
	"fmt"
	"time"

	"laptudirm.com/x/referee/pkg/eve/match"
)

// ErrNoTimings is returned when a summary is asked of an agent which
// has not played a single timed turn.
var ErrNoTimings = errors.New("stats: no timed turns")

// Aggregator accumulates the results of matches between two agents.
// Results must be canonical, i.e. indexed by agent and not by seat.
type Aggregator struct {
	Runs int

	// Credits are 1 for a win and 0.5 for a draw.
	Credits [2]float64

	// Every turn time of each agent, over all matches.
	Times [2][]time.Duration

	// Wins, Draws, and Losses of the first agent.
	Wins, Draws, Losses int
}

// Update adds a finished match to the statistics.
func (agg *Aggregator) Update(result match.Result) {
	agg.Runs++

	switch result.Outcome() {
	case match.Win:
		agg.Credits[0]++
		agg.Wins++
	case match.Loss:
		agg.Credits[1]++
		agg.Losses++
	case match.Draw:
		agg.Credits[0] += 0.5
		agg.Credits[1] += 0.5
		agg.Draws++
	}

	agg.Times[0] = append(agg.Times[0], result.Times[0]...)
	agg.Times[1] = append(agg.Times[1], result.Times[1]...)
}

// AgentSummary is the performance of a single agent over all matches.
type AgentSummary struct {
	WinRate float64
	MaxTurn time.Duration
}

// Summary returns the win rate and longest turn of both agents. Both
// agents need to have played at least one timed turn.
func (agg *Aggregator) Summary() ([2]AgentSummary, error) {
	var summary [2]AgentSummary

	for i := range summary {
		if len(agg.Times[i]) == 0 {
			return summary, &match.ConfigurationError{
				Option: fmt.Sprintf("player_%d", i+1),
				Err:    ErrNoTimings,
			}
		}

		summary[i].WinRate = agg.Credits[i] / float64(agg.Runs)
		for _, turn := range agg.Times[i] {
			summary[i].MaxTurn = max(summary[i].MaxTurn, turn)
		}
	}

	return summary, nil
}

// Elo estimates the elo difference of the first agent over the second.
func (agg *Aggregator) Elo() Estimate {
	return Elo(agg.Wins, agg.Draws, agg.Losses)
}
