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
	"strconv"
	"strings"
)

// Color identifies one of the two seats at the board.
type Color int

const (
	Seat1 Color = iota // moves first, 'x' in FENs
	Seat2              // 'o' in FENs
)

func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Seat1 {
		return "x"
	}

	return "o"
}

// Piece is the content of a single square.
type Piece int

const (
	Empty Piece = iota
	Stone1
	Stone2
	Gap
)

// StartFEN is the standard starting position.
const StartFEN = "x5o/7/7/7/7/7/o5x x 0 1"

// Position is an Ataxx position. The zero value is an empty board with
// seat 1 to move. Positions are values and may be copied freely.
type Position struct {
	stones [2]Bitboard
	gaps   Bitboard

	SideToMove Color

	HalfMoves int
	FullMoves int
}

// ParseFEN parses an Ataxx FEN: the piece placement from rank 7 down to
// rank 1, the side to move, and optional half and full move counters.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("parse fen: empty fen")
	}

	var pos Position
	pos.FullMoves = 1

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 7 {
		return nil, fmt.Errorf("parse fen: expected 7 ranks, found %d", len(ranks))
	}

	for i, rank := range ranks {
		r, file := 6-i, 0
		for _, char := range rank {
			if file >= 7 {
				return nil, fmt.Errorf("parse fen: rank %d is too long", r+1)
			}

			sq := NewSquare(file, r)
			switch {
			case char == 'x':
				pos.Put(sq, Stone1)
			case char == 'o':
				pos.Put(sq, Stone2)
			case char == '-':
				pos.Put(sq, Gap)
			case char >= '1' && char <= '7':
				file += int(char-'1') + 1
				continue
			default:
				return nil, fmt.Errorf("parse fen: invalid character %q", char)
			}

			file++
		}

		if file != 7 {
			return nil, fmt.Errorf("parse fen: rank %d has %d files", r+1, file)
		}
	}

	if len(fields) > 1 {
		switch fields[1] {
		case "x":
			pos.SideToMove = Seat1
		case "o":
			pos.SideToMove = Seat2
		default:
			return nil, fmt.Errorf("parse fen: invalid side to move %q", fields[1])
		}
	}

	var err error
	if len(fields) > 2 {
		if pos.HalfMoves, err = strconv.Atoi(fields[2]); err != nil {
			return nil, fmt.Errorf("parse fen: half moves: %w", err)
		}
	}

	if len(fields) > 3 {
		if pos.FullMoves, err = strconv.Atoi(fields[3]); err != nil {
			return nil, fmt.Errorf("parse fen: full moves: %w", err)
		}
	}

	return &pos, nil
}

// FEN returns the FEN string of the position.
func (pos *Position) FEN() string {
	var fen strings.Builder

	for rank := 6; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 7; file++ {
			var char byte
			switch pos.Get(NewSquare(file, rank)) {
			case Stone1:
				char = 'x'
			case Stone2:
				char = 'o'
			case Gap:
				char = '-'
			default:
				empty++
				continue
			}

			if empty > 0 {
				fen.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			fen.WriteByte(char)
		}

		if empty > 0 {
			fen.WriteString(strconv.Itoa(empty))
		}

		if rank > 0 {
			fen.WriteByte('/')
		}
	}

	fmt.Fprintf(&fen, " %s %d %d", pos.SideToMove, pos.HalfMoves, pos.FullMoves)
	return fen.String()
}

func (pos *Position) Put(sq Square, piece Piece) {
	pos.stones[Seat1].Unset(sq)
	pos.stones[Seat2].Unset(sq)
	pos.gaps.Unset(sq)

	switch piece {
	case Stone1:
		pos.stones[Seat1].Set(sq)
	case Stone2:
		pos.stones[Seat2].Set(sq)
	case Gap:
		pos.gaps.Set(sq)
	}
}

func (pos *Position) Get(sq Square) Piece {
	switch {
	case pos.stones[Seat1].Has(sq):
		return Stone1
	case pos.stones[Seat2].Has(sq):
		return Stone2
	case pos.gaps.Has(sq):
		return Gap
	default:
		return Empty
	}
}

// Stones returns the squares occupied by the given seat.
func (pos *Position) Stones(c Color) Bitboard {
	return pos.stones[c]
}

// Count returns the number of stones the given seat has on the board.
func (pos *Position) Count(c Color) int {
	return pos.stones[c].Count()
}

func (pos *Position) empty() Bitboard {
	return all &^ (pos.stones[Seat1] | pos.stones[Seat2] | pos.gaps)
}

// String renders the board from rank 7 down, one rank per line.
func (pos Position) String() string {
	var str strings.Builder
	for rank := 6; rank >= 0; rank-- {
		fmt.Fprintf(&str, "%d ", rank+1)
		for file := 0; file < 7; file++ {
			switch pos.Get(NewSquare(file, rank)) {
			case Stone1:
				str.WriteString("x ")
			case Stone2:
				str.WriteString("o ")
			case Gap:
				str.WriteString("# ")
			default:
				str.WriteString(". ")
			}
		}
		str.WriteByte('\n')
	}

	str.WriteString("  a b c d e f g\n")
	return str.String()
}
