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

// Outcome is the result of a match from the point of view of the
// agent in the first slot of a Result.
type Outcome int

const (
	Win  Outcome = +1
	Draw Outcome = 0
	Loss Outcome = -1
)

func (outcome Outcome) String() string {
	switch outcome {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}

// Result is the final state of a finished match. Fresh out of Run it is
// indexed by seat; after Canonicalize it is indexed by logical agent,
// i.e. Player1 and Player2 of the Config.
type Result struct {
	Scores [2]float64
	Times  [2][]time.Duration
}

// Outcome compares the two scores. Equal scores are a draw.
func (result Result) Outcome() Outcome {
	switch {
	case result.Scores[0] > result.Scores[1]:
		return Win
	case result.Scores[0] < result.Scores[1]:
		return Loss
	default:
		return Draw
	}
}

// Canonicalize maps a seat indexed Result to a logical agent indexed one.
// If the agents were swapped for the match, the two sides of the result
// are exchanged, otherwise it is returned as is.
func Canonicalize(raw Result, swapped bool) Result {
	if !swapped {
		return raw
	}

	return Result{
		Scores: [2]float64{raw.Scores[1], raw.Scores[0]},
		Times:  [2][]time.Duration{raw.Times[1], raw.Times[0]},
	}
}
