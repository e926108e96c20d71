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
	"math"
	"math/rand"

	"laptudirm.com/x/referee/pkg/eve/games/ataxx"
)

const GreedyName = "greedy_agent"

const cornerBonus = 5

var corners = []ataxx.Square{
	ataxx.NewSquare(0, 0), ataxx.NewSquare(6, 0),
	ataxx.NewSquare(0, 6), ataxx.NewSquare(6, 6),
}

// Greedy looks a single move ahead, and plays the move which maximizes
// the stone difference and corner control while minimizing the number
// of replies the opponent has. Ties are broken at random.
type Greedy struct {
	random *Random
}

func NewGreedy(rng *rand.Rand) *Greedy {
	return &Greedy{random: NewRandom(rng)}
}

func (agent *Greedy) Name() string { return GreedyName }

func (agent *Greedy) Move(position ataxx.Position) (ataxx.Move, error) {
	us := position.SideToMove

	var best []ataxx.Move
	bestScore := math.MinInt

	for _, move := range position.Moves() {
		child := position
		child.MakeMove(move)

		score := evaluate(&child, us)
		switch {
		case score > bestScore:
			bestScore = score
			best = append(best[:0], move)
		case score == bestScore:
			best = append(best, move)
		}
	}

	if len(best) == 0 {
		return ataxx.Pass, nil
	}

	return best[agent.random.rng.Intn(len(best))], nil
}

func evaluate(position *ataxx.Position, us ataxx.Color) int {
	score := position.Count(us) - position.Count(us.Other())

	stones := position.Stones(us)
	for _, corner := range corners {
		if stones.Has(corner) {
			score += cornerBonus
		}
	}

	// the opponent is to move after our move
	for _, reply := range position.Moves() {
		if reply != ataxx.Pass {
			score--
		}
	}

	return score
}
