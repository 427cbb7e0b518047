//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package movegen

import (
	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

// maxMoves bounds a single legal position's move count; no legal chess
// position exceeds it, so a list made by NewMoveList never reallocates
// mid-generation. There is no separate per-piece-kind reservation: every
// piece's moves share this one buffer.
const maxMoves = 256

// MoveList is a reusable, non-allocating move buffer: Reset clears it
// without shrinking its backing array, so a caller walking perft can reuse
// one MoveList per ply across the whole search tree.
type MoveList struct {
	moves []Move
}

// NewMoveList returns a MoveList with capacity for any legal position.
func NewMoveList() *MoveList {
	return &MoveList{moves: make([]Move, 0, maxMoves)}
}

// Push appends m to the list.
func (ml *MoveList) Push(m Move) { ml.moves = append(ml.moves, m) }

// Reset empties the list, keeping its backing array.
func (ml *MoveList) Reset() { ml.moves = ml.moves[:0] }

// Len returns the number of moves currently in the list.
func (ml *MoveList) Len() int { return len(ml.moves) }

// At returns the i'th move.
func (ml *MoveList) At(i int) Move { return ml.moves[i] }

// Moves returns the list's backing slice. Valid only until the next Push
// or Reset.
func (ml *MoveList) Moves() []Move { return ml.moves }
