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

package ataxx

// Outcome is the state of a game in a Position.
type Outcome int

const (
	Ongoing Outcome = iota
	Seat1Wins
	Seat2Wins
	Draw
)

func (outcome Outcome) String() string {
	switch outcome {
	case Seat1Wins:
		return "1-0"
	case Seat2Wins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Result reports whether the game has ended and why. A finished game is
// always decided by the stone count of each side.
func (pos *Position) Result() (Outcome, string) {
	reason := ""

	both := pos.stones[Seat1] | pos.stones[Seat2]
	switch {
	case pos.stones[Seat1] == 0 || pos.stones[Seat2] == 0:
		reason = "Eradication"
	case pos.HalfMoves >= 100:
		reason = "50-move Rule"
	case (both.Singles()|both.Doubles())&pos.empty() == 0:
		reason = "Population Count"
	default:
		return Ongoing, ""
	}

	n1, n2 := pos.Count(Seat1), pos.Count(Seat2)
	switch {
	case n1 > n2:
		return Seat1Wins, reason
	case n2 > n1:
		return Seat2Wins, reason
	default:
		return Draw, reason
	}
}

// Score returns the stone count of both seats, which is what a finished
// game is decided by.
func (pos *Position) Score() (float64, float64) {
	return float64(pos.Count(Seat1)), float64(pos.Count(Seat2))
}
