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
	"path/filepath"

	"github.com/spf13/cobra"

	"laptudirm.com/x/referee/pkg/eve/match"
	"laptudirm.com/x/referee/pkg/eve/roster"
	"laptudirm.com/x/referee/internal/util"
)

func Boards() *cobra.Command {
	return &cobra.Command{
		Use:   "boards [directory]",
		Short: "Lists the boards autoplay picks from",
		Args:  cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			dir := match.DefaultRosterDir
			if len(args) == 1 {
				dir = args[0]
			}

			boards := roster.Discover(dir).Boards()
			if len(boards) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\x1b[31mNo Boards found in %s.\x1b[0m\n", dir)
				return nil
			}

			util.SortNatural(boards)

			fmt.Fprintf(cmd.OutOrStdout(), "\u001B[32mBoards in %s\u001B[0m:\n", dir)
			for _, board := range boards {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", filepath.Base(board))
			}

			return nil
		},
	}
}
