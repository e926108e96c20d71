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

// Moves generates every legal move for the side to move. A side which
// has no moves while the game is still going must play Pass, so Moves
// returns []Move{Pass} in that case, and nil once the game is over.
func (pos *Position) Moves() []Move {
	if result, _ := pos.Result(); result != Ongoing {
		return nil
	}

	us, empty := pos.stones[pos.SideToMove], pos.empty()

	var moves []Move

	singles := us.Singles() & empty
	for singles != 0 {
		to := singles.Pop()
		moves = append(moves, Move{to, to})
	}

	for pieces := us; pieces != 0; {
		from := pieces.Pop()
		doubles := (Bitboard(1) << from).Doubles() & empty
		for doubles != 0 {
			moves = append(moves, Move{from, doubles.Pop()})
		}
	}

	if len(moves) == 0 {
		return []Move{Pass}
	}

	return moves
}

// IsLegal reports whether the move can be played in the position.
func (pos *Position) IsLegal(move Move) bool {
	if move == Pass {
		us, empty := pos.stones[pos.SideToMove], pos.empty()
		return (us.Singles()|us.Doubles())&empty == 0
	}

	if move.From >= SquareN || move.To >= SquareN {
		return false
	}

	if !pos.empty().Has(move.To) {
		return false
	}

	if move.IsSingle() {
		return pos.stones[pos.SideToMove].Singles().Has(move.To)
	}

	return pos.stones[pos.SideToMove].Has(move.From) &&
		(Bitboard(1)<<move.From).Doubles().Has(move.To)
}

// MakeMove plays the given move on the board. The move is assumed to
// be legal; see IsLegal.
func (pos *Position) MakeMove(move Move) {
	stm, xtm := pos.SideToMove, pos.SideToMove.Other()

	if move != Pass {
		to := Bitboard(1) << move.To
		from := Bitboard(1) << move.From

		// a single move duplicates a stone, a double move jumps it
		pos.stones[stm] ^= to | from

		captured := pos.stones[xtm] & to.Singles()
		pos.stones[stm] ^= captured
		pos.stones[xtm] ^= captured

		pos.HalfMoves++
		if captured != 0 || move.IsSingle() {
			pos.HalfMoves = 0
		}
	} else {
		pos.HalfMoves++
	}

	pos.SideToMove = xtm
	if pos.SideToMove == Seat1 {
		pos.FullMoves++
	}
}
