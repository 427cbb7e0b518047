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
	"github.com/frankkopp/chessmagic/internal/chess/bitboard"
	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

// betweenBB[from][to] is the set of squares strictly between from and to
// when they share a rank, file or diagonal (exclusive of both ends), empty
// otherwise. Used to turn a checking slider's square into the set of
// squares a blocking move may land on, and to test whether exactly one
// friendly piece stands between the king and a would-be pinner.
var betweenBB [64][64]bitboard.Board

// lineBB[from][to] is the full board-spanning line through from and to when
// they share a rank, file or diagonal (inclusive of both, extended to both
// edges), empty otherwise. A pinned piece may only move to a square on
// lineBB[kingSquare][pieceSquare] - the line the pin itself lies on.
var lineBB [64][64]bitboard.Board

func init() {
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			betweenBB[from][to] = between(Square(from), Square(to))
			lineBB[from][to] = line(Square(from), Square(to))
		}
	}
}

// between finds the one direction (if any) that steps from "from" towards
// "to" on an empty board, then fills just that direction with "to" as the
// sole blocker and drops "to" itself - the squares strictly in between.
// Checking every direction and intersecting the two rays (as opposed to
// picking the single aligned one) looks equivalent but isn't: a corner like
// a1 or h1 has an unblocked diagonal ray alongside its rank/file ray, and
// those extra rays can coincide at a distant square (a1's a1-h8 diagonal and
// h1's h-file both end on h8), so naively intersecting full 8-way ray sets
// leaks squares that have nothing to do with the from-to line.
func between(from, to Square) bitboard.Board {
	if from == to {
		return 0
	}
	origin := bitboard.Square(int(from))
	target := bitboard.Square(int(to))
	for _, d := range bitboard.Directions {
		if bitboard.Fill(origin, bitboard.Universe, d)&target != 0 {
			return bitboard.Fill(origin, ^target, d) &^ target
		}
	}
	return 0
}

var oppositeDirection = map[bitboard.Direction]bitboard.Direction{
	bitboard.North: bitboard.South, bitboard.South: bitboard.North,
	bitboard.East: bitboard.West, bitboard.West: bitboard.East,
	bitboard.NorthEast: bitboard.SouthWest, bitboard.SouthWest: bitboard.NorthEast,
	bitboard.NorthWest: bitboard.SouthEast, bitboard.SouthEast: bitboard.NorthWest,
}

// line finds the one direction (if any) that steps from "from" towards
// "to" on an empty board, then fills both that direction and its opposite
// from "from" to get the whole line, edge to edge.
func line(from, to Square) bitboard.Board {
	if from == to {
		return 0
	}
	origin := bitboard.Square(int(from))
	target := bitboard.Square(int(to))
	for _, d := range bitboard.Directions {
		ray := bitboard.Fill(origin, bitboard.Universe, d)
		if ray&target != 0 {
			back := bitboard.Fill(origin, bitboard.Universe, oppositeDirection[d])
			return ray | back | origin
		}
	}
	return 0
}
