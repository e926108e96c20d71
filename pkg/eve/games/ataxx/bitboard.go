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

import "math/bits"

// Bitboard is a set of squares on the 7x7 board. Bit n represents the
// square with index n, where a1 is 0 and g7 is 48.
type Bitboard uint64

const (
	all Bitboard = 0x1FFFFFFFFFFFF

	fileA Bitboard = 0x0040810204081
	fileB Bitboard = fileA << 1
	fileF Bitboard = fileA << 5
	fileG Bitboard = fileA << 6

	notFileA  = all &^ fileA
	notFileG  = all &^ fileG
	notFileAB = all &^ (fileA | fileB)
	notFileFG = all &^ (fileF | fileG)
)

func (bb Bitboard) Has(sq Square) bool {
	return bb&(1<<sq) != 0
}

func (bb *Bitboard) Set(sq Square) {
	*bb |= 1 << sq
}

func (bb *Bitboard) Unset(sq Square) {
	*bb &^= 1 << sq
}

func (bb Bitboard) Count() int {
	return bits.OnesCount64(uint64(bb))
}

// Pop removes the least significant square from the Bitboard and returns it.
func (bb *Bitboard) Pop() Square {
	sq := Square(bits.TrailingZeros64(uint64(*bb)))
	*bb &= *bb - 1
	return sq
}

// Singles returns every square one step away from a square in bb.
func (bb Bitboard) Singles() Bitboard {
	return ((bb << 7) & all) | // North
		(bb >> 7) | // South
		((bb << 1) & notFileA) | // East
		((bb >> 1) & notFileG) | // West
		((bb << 8) & notFileA) | // North East
		((bb << 6) & notFileG) | // North West
		((bb >> 6) & notFileA) | // South East
		((bb >> 8) & notFileG) // South West
}

// Doubles returns every square exactly two steps away from a square in bb.
func (bb Bitboard) Doubles() Bitboard {
	var targets Bitboard

	targets |= (bb << 12) & notFileFG // North North West West
	targets |= (bb << 13) & notFileG  // North North West
	targets |= (bb << 14)             // North North
	targets |= (bb << 15) & notFileA  // North North East
	targets |= (bb << 16) & notFileAB // North North East East

	targets |= (bb >> 16) & notFileFG // South South West West
	targets |= (bb >> 15) & notFileG  // South South West
	targets |= (bb >> 14)             // South South
	targets |= (bb >> 13) & notFileA  // South South East
	targets |= (bb >> 12) & notFileAB // South South East East

	targets |= (bb << 9) & notFileAB // East East North
	targets |= (bb << 2) & notFileAB // East East
	targets |= (bb >> 5) & notFileAB // East East South

	targets |= (bb << 5) & notFileFG // West West North
	targets |= (bb >> 2) & notFileFG // West West
	targets |= (bb >> 9) & notFileFG // West West South

	return targets & all
}
