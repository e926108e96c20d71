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

package cmd

import (
	"fmt"
	"io"

	"laptudirm.com/x/referee/pkg/eve/stats"
	"laptudirm.com/x/referee/pkg/eve/tournament"
)

func report(w io.Writer, summary *tournament.Summary, test *stats.SPRT) {
	n := summary.Wins + summary.Losses + summary.Draws

	elo_str := fmt.Sprintf("║ ELO   | %.2f +- %.2f (95%%)", summary.Elo.Elo, summary.Elo.Margin())
	gam_str := fmt.Sprintf("║ GAMES | N: %d W: %d L: %d D: %d", n, summary.Wins, summary.Losses, summary.Draws)

	fmt.Fprintln(w, "╔═════════════════════════════════════════════════╗")
	for i, agent := range summary.Agents {
		agent_str := fmt.Sprintf(
			"║ P%d    | %-16s %6.2f%% %9.5fs",
			i+1, summary.Players[i], 100*agent.WinRate, agent.MaxTurn.Seconds(),
		)
		fmt.Fprintf(w, "%-50s║\n", agent_str)
	}
	fmt.Fprintf(w, "%-50s║\n", elo_str)
	if test != nil {
		llr_str := fmt.Sprintf(
			"║ LLR   | %.2f (%.2f, %.2f) [%.2f, %.2f] %s",
			summary.LLR, test.Lower, test.Upper, test.Elo0, test.Elo1, summary.Hypothesis,
		)
		fmt.Fprintf(w, "%-50s║\n", llr_str)
	}
	fmt.Fprintf(w, "%-50s║\n", gam_str)
	fmt.Fprintln(w, "╚═════════════════════════════════════════════════╝")
}
