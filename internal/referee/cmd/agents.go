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

	"github.com/spf13/cobra"

	referee "laptudirm.com/x/referee/pkg/common"
)

func Agents() *cobra.Command {
	var agentsFile string

	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Lists the agents which can be played",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(agentsFile)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\u001B[32mAvailable Agents\u001B[0m:")
			for _, name := range registry.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "- \x1b[34m%s\x1b[0m\n", name)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&agentsFile, "agents", referee.AgentsFile, "File describing the external agents")
	return cmd
}
