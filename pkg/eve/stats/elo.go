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

import "math"

// Estimate is an elo difference along with its 95% confidence interval.
type Estimate struct {
	Lower, Elo, Upper float64
}

// Margin is the larger distance of the estimate to either of its bounds.
func (estimate Estimate) Margin() float64 {
	return math.Abs(math.Max(estimate.Upper-estimate.Elo, estimate.Elo-estimate.Lower))
}

// Elo returns the likely elo difference of a player who scored the given
// number of wins, draws, and losses against an opponent.
func Elo(ws, ds, ls int) Estimate {
	N := float64(ws+ds+ls) + 1.5 // total number of games, with a prior

	w := (float64(ws) + 0.5) / N // measured win probability
	d := (float64(ds) + 0.5) / N // measured draw probability
	l := (float64(ls) + 0.5) / N // measured loss probability

	// empirical mean of random variable
	mu := w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(
		w*math.Pow(1-mu, 2)+
			d*math.Pow(0.5-mu, 2)+
			l*math.Pow(0-mu, 2),
	) / math.Sqrt(N)

	return Estimate{
		Lower: scoreToElo(mu + phiInv(0.025)*sigma),
		Elo:   scoreToElo(mu),
		Upper: scoreToElo(mu + phiInv(0.975)*sigma),
	}
}

// scoreToElo converts an expected score to an elo difference.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
