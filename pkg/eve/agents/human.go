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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"laptudirm.com/x/referee/pkg/eve/games/ataxx"
)

const HumanName = "human_agent"

var ErrQuit = errors.New("game ended by user")

// Human reads its moves from a terminal.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

func (agent *Human) Name() string { return HumanName }

func (agent *Human) Move(position ataxx.Position) (ataxx.Move, error) {
	fmt.Fprint(agent.out, position)

	for {
		fmt.Fprintf(agent.out, "Your move as %s (f3, a1c3 or 0000) or q to quit: ", position.SideToMove)
		if !agent.in.Scan() {
			if err := agent.in.Err(); err != nil {
				return ataxx.Move{}, err
			}

			return ataxx.Move{}, ErrQuit
		}

		text := strings.TrimSpace(agent.in.Text())
		if strings.EqualFold(text, "q") {
			return ataxx.Move{}, ErrQuit
		}

		move, err := ataxx.ParseMove(strings.ToLower(text))
		if err != nil {
			fmt.Fprintln(agent.out, "\x1b[31mWrong input format!\x1b[0m")
			continue
		}

		if !position.IsLegal(move) {
			fmt.Fprintln(agent.out, "\x1b[31mIllegal move!\x1b[0m")
			continue
		}

		return move, nil
	}
}
