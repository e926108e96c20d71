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
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	referee "laptudirm.com/x/referee/pkg/common"
	"laptudirm.com/x/referee/pkg/eve/agents"
	"laptudirm.com/x/referee/pkg/eve/match"
	"laptudirm.com/x/referee/pkg/eve/stats"
	"laptudirm.com/x/referee/pkg/eve/tournament"
	"laptudirm.com/x/referee/pkg/eve/world"
	"laptudirm.com/x/referee/internal/util"
)

func Root() *cobra.Command {
	config := match.DefaultConfig()

	var (
		delay      float64
		agentsFile string
		resultsDir string
		sprtBounds []float64
	)

	root := &cobra.Command{
		Use:   "referee",
		Short: "Play Ataxx agents against each other",
		Long: heredoc.Doc(`
			Referee plays Ataxx matches between two agents.

			By default a single match is played between --player_1 and
			--player_2 on --board_path, or the standard starting position.

			With --autoplay, --autoplay_runs matches are played on boards
			picked at random from --board_roster_dir, and the agents swap
			seats every match. The win percentage and the longest turn of
			each agent are reported at the end.
		`),
		Example: heredoc.Doc(`
			$ referee --player_1 greedy_agent --display
			$ referee --autoplay --autoplay_runs 500 --player_2 greedy_agent
			$ referee --autoplay --results_dir
			$ referee --autoplay --autoplay_runs 5000 --sprt 0,10 --player_1 greedy_agent
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			config.Display.Delay = time.Duration(delay * float64(time.Second))

			registry, err := loadRegistry(agentsFile)
			if err != nil {
				return err
			}

			factory := world.Factory(registry, cmd.OutOrStdout())

			if !config.Autoplay {
				runner := match.Runner{
					Config:    config,
					NewEngine: factory,
					Log:       logrus.StandardLogger(),
				}

				result, err := runner.Run(cmd.Context(), false, "")
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Result: \x1b[33m%s\x1b[0m\n", result.Outcome())
				return nil
			}

			progress := util.NewProgress(cmd.ErrOrStderr())
			options := []tournament.Option{tournament.WithProgress(progress.Update)}

			var test *stats.SPRT
			if cmd.Flag("sprt").Changed {
				if len(sprtBounds) != 2 {
					return &match.ConfigurationError{
						Option: "sprt",
						Err:    fmt.Errorf("expected elo0,elo1, got %v", sprtBounds),
					}
				}

				sprt := stats.NewSPRT(sprtBounds[0], sprtBounds[1], 0.05, 0.05)
				options = append(options, tournament.WithSPRT(sprt))
				test = &sprt
			}

			tour, err := tournament.NewTournament(config, factory, options...)
			if err != nil {
				return err
			}

			progress.Start()
			summary, err := tour.Autoplay(cmd.Context(), config.AutoplayRuns)
			progress.Stop()
			if err != nil {
				return err
			}

			report(cmd.OutOrStdout(), summary, test)

			if resultsDir != "" {
				path, err := summary.Record(resultsDir, time.Now())
				if err != nil {
					return err
				}

				logrus.WithField("file", path).Info("Results recorded")
			}

			return nil
		},
	}

	flags := root.Flags()
	flags.StringVar(&config.Player1, "player_1", config.Player1, "Agent playing as player 1")
	flags.StringVar(&config.Player2, "player_2", config.Player2, "Agent playing as player 2")
	flags.StringVar(&config.BoardPath, "board_path", "", "Board file to play on, standard start position if empty")
	flags.StringVar(&config.BoardRosterDir, "board_roster_dir", config.BoardRosterDir, "Directory of boards used in autoplay")
	flags.BoolVar(&config.Display.Enabled, "display", false, "Print the board after every move")
	flags.Float64Var(&delay, "display_delay", config.Display.Delay.Seconds(), "Seconds to wait after printing the board")
	flags.BoolVar(&config.Display.Save, "display_save", false, "Save the printed boards to a file")
	flags.StringVar(&config.Display.SavePath, "display_save_path", config.Display.SavePath, "Directory the printed boards are saved to")
	flags.BoolVar(&config.Autoplay, "autoplay", false, "Play many matches without display")
	flags.IntVar(&config.AutoplayRuns, "autoplay_runs", config.AutoplayRuns, "Number of matches played in autoplay")
	flags.IntVar(&config.MaxSteps, "max_steps", config.MaxSteps, "Most moves played in a match, 0 for no limit")
	flags.DurationVar(&config.MatchTimeout, "match_timeout", 0, "Longest time a match may take, 0 for no limit")
	flags.StringVar(&agentsFile, "agents", referee.AgentsFile, "File describing the external agents")
	flags.StringVar(&resultsDir, "results_dir", "", "Directory the autoplay results are recorded in")
	flags.Lookup("results_dir").NoOptDefVal = referee.ResultsDirectory
	flags.Float64SliceVar(&sprtBounds, "sprt", nil, "Stop autoplay early once an SPRT of elo0,elo1 is decided")

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Referee's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Agents())
	root.AddCommand(Boards())

	return root
}

// loadRegistry returns the built-in agents along with the ones described
// in the given agents file.
func loadRegistry(path string) (*agents.Registry, error) {
	registry := agents.NewRegistry()
	if err := registry.Load(path); err != nil {
		return nil, err
	}

	logrus.WithField("file", path).Debug("Agents loaded")
	return registry, nil
}
