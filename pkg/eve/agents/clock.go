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
	"strconv"
	"strings"
	"time"
)

// Clock is the time control of an external agent along with the time
// it has left on it.
type Clock struct {
	// Moves in each time period, or -1 if the whole game is one period.
	MovesToGo int
	Base, Inc time.Duration

	// Time and moves left in the current period.
	Left  time.Duration
	Moves int
}

// ParseClock parses a time control in the [moves/]time+increment format,
// with both time and increment in seconds.
func ParseClock(tc string) (Clock, error) {
	clock := Clock{MovesToGo: -1}

	if moves, rest, found := strings.Cut(tc, "/"); found {
		n, err := strconv.Atoi(moves)
		if err != nil {
			return Clock{}, err
		}

		clock.MovesToGo, tc = n, rest
	}

	base, inc, found := strings.Cut(tc, "+")
	if !found {
		return Clock{}, errors.New("parse tc: increment not found")
	}

	secs, err := strconv.ParseFloat(base, 64)
	if err != nil {
		return Clock{}, err
	}

	incs, err := strconv.ParseFloat(inc, 64)
	if err != nil {
		return Clock{}, err
	}

	clock.Base = time.Duration(secs * float64(time.Second))
	clock.Inc = time.Duration(incs * float64(time.Second))
	clock.Left, clock.Moves = clock.Base, clock.MovesToGo
	return clock, nil
}

// Spend takes the time used by a move off the clock and adds the
// increment. The base time is added again once a period is over.
func (clock *Clock) Spend(used time.Duration) {
	clock.Left += clock.Inc - used

	if clock.MovesToGo > 0 {
		if clock.Moves--; clock.Moves == 0 {
			clock.Moves = clock.MovesToGo
			clock.Left += clock.Base
		}
	}
}
