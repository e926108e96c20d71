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

// Hypothesis is the state of a sequential probability ratio test.
type Hypothesis int

const (
	Undecided Hypothesis = iota
	H0                   // elo is at most elo0
	H1                   // elo is at least elo1
)

func (hypothesis Hypothesis) String() string {
	switch hypothesis {
	case H0:
		return "H0"
	case H1:
		return "H1"
	default:
		return "undecided"
	}
}

// SPRT is a sequential probability ratio test of elo0 against elo1.
type SPRT struct {
	Elo0, Elo1 float64

	// Stopping bounds of the log-likelihood ratio.
	Lower, Upper float64
}

// NewSPRT returns a test with the given elo bounds and error rates.
func NewSPRT(elo0, elo1, alpha, beta float64) SPRT {
	lower, upper := StoppingBounds(alpha, beta)
	return SPRT{
		Elo0: elo0, Elo1: elo1,
		Lower: lower, Upper: upper,
	}
}

// LLR returns the log-likelihood ratio of the given results.
func (test SPRT) LLR(ws, ds, ls int) float64 {
	// the prior keeps every probability positive
	w := float64(ws) + 0.5
	d := float64(ds) + 0.5
	l := float64(ls) + 0.5

	N := w + d + l // total number of games
	_, dlo := wdlToElo(w/N, d/N, l/N)

	w0, d0, l0 := eloToWDL(test.Elo0, dlo) // elo0 WDL probabilities
	w1, d1, l1 := eloToWDL(test.Elo1, dlo) // elo1 WDL probabilities

	// log-likelihood ratio (llr)
	return w*math.Log(w1/w0) +
		d*math.Log(d1/d0) +
		l*math.Log(l1/l0)
}

// Decide returns the hypothesis accepted by the given results, if any.
func (test SPRT) Decide(ws, ds, ls int) Hypothesis {
	switch llr := test.LLR(ws, ds, ls); {
	case llr <= test.Lower:
		return H0
	case llr >= test.Upper:
		return H1
	default:
		return Undecided
	}
}

func StoppingBounds(alpha, beta float64) (lower float64, upper float64) {
	lower = math.Log(beta / (1 - alpha))
	upper = math.Log((1 - beta) / alpha)
	return
}

// eloToWDL converts the bayesian elo to its wdl probabilities.
func eloToWDL(elo, dlo float64) (w float64, d float64, l float64) {
	w = 1 / (1 + math.Pow(10, (-elo+dlo)/400)) // win probability sigmoid
	l = 1 / (1 + math.Pow(10, (+elo+dlo)/400)) // loss probability sigmoid
	d = 1 - w - l                              // draw probability curve
	return w, d, l
}

// wdlToElo converts the wdl probabilities to its bayesian elo.
func wdlToElo(w, d, l float64) (elo float64, dlo float64) {
	elo = 200 * math.Log10((w/l)*((1-l)/(1-w)))
	dlo = 200 * math.Log10(((1-l)/l)*((1-w)/w))
	return elo, dlo
}
