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
	"math/rand"
	"time"

	"laptudirm.com/x/referee/pkg/eve/games/ataxx"
)

const RandomName = "random_agent"

// Random plays a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random agent drawing from rng, or from a time
// seeded source if rng is nil.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Random{rng: rng}
}

func (agent *Random) Name() string { return RandomName }

func (agent *Random) Move(position ataxx.Position) (ataxx.Move, error) {
	moves := position.Moves()
	if len(moves) == 0 {
		return ataxx.Pass, nil
	}

	return moves[agent.rng.Intn(len(moves))], nil
}
