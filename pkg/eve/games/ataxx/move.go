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

import (
	"fmt"
)

// Square is the index of a square on the board, rank*7 + file.
type Square uint8

// SquareN is the number of squares on the board. It doubles as the
// invalid square used by the passing Move.
const SquareN = 49

func NewSquare(file, rank int) Square {
	return Square(rank*7 + file)
}

func (sq Square) File() int { return int(sq) % 7 }
func (sq Square) Rank() int { return int(sq) / 7 }

func (sq Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// Move is a single or double Ataxx move. A single move has From == To.
type Move struct {
	From, To Square
}

// Pass is played by a side with no legal moves.
var Pass = Move{SquareN, SquareN}

// ParseMove parses a move in the "f3" (single), "a1c3" (double) or
// "0000" (pass) notation.
func ParseMove(str string) (Move, error) {
	parse := func(s string) (Square, error) {
		file, rank := int(s[0]-'a'), int(s[1]-'1')
		if file < 0 || file > 6 || rank < 0 || rank > 6 {
			return 0, fmt.Errorf("parse move: invalid square %q", s)
		}

		return NewSquare(file, rank), nil
	}

	switch len(str) {
	case 2:
		to, err := parse(str)
		if err != nil {
			return Move{}, err
		}

		return Move{to, to}, nil

	case 4:
		if str == "0000" {
			return Pass, nil
		}

		from, err := parse(str[:2])
		if err != nil {
			return Move{}, err
		}

		to, err := parse(str[2:])
		if err != nil {
			return Move{}, err
		}

		return Move{from, to}, nil
	}

	return Move{}, fmt.Errorf("parse move: invalid move string %q", str)
}

func (move Move) IsSingle() bool {
	return move.From == move.To
}

func (move Move) String() string {
	switch {
	case move == Pass:
		return "0000"
	case move.IsSingle():
		return move.To.String()
	default:
		return move.From.String() + move.To.String()
	}
}
