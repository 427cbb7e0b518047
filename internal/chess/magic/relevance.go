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

// Package magic builds and reads the perfect-hash sliding-attack tables:
// for each square and slider kind, a relevance mask plus a 64-bit constant
// that hashes every occupancy subset of that mask into a collision-free
// bucket of a shared attack table. See Build for the offline search and
// Tables for the O(1) reader.
package magic

import (
	"github.com/frankkopp/chessmagic/internal/chess/bitboard"
	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

// edgeMask returns the board edges that never constrain a rook/bishop ray
// from sq, i.e. the ranks/files the square does not itself lie on. Those
// edge squares never need to enter a relevance mask: an occupant there
// can only ever be the ray's last visible square, and whether it is
// occupied or not makes no difference to the attack set computed beyond
// it, since there is nothing beyond it.
func edgeMask(sq Square) bitboard.Board {
	var edges bitboard.Board
	if sq.RankOf() != Rank1 {
		edges |= bitboard.Rank1
	}
	if sq.RankOf() != Rank8 {
		edges |= bitboard.Rank8
	}
	if sq.FileOf() != FileA {
		edges |= bitboard.FileA
	}
	if sq.FileOf() != FileH {
		edges |= bitboard.FileH
	}
	return edges
}

// RookMask returns the rook relevance mask for sq: the rook's full-ray
// attack set on an empty board, minus the square itself and minus the
// board edges that do not belong to the square's own rank/file.
func RookMask(sq Square) bitboard.Board {
	rays := slidingAttacksDirs(sq, bitboard.Empty, RookDirs)
	return rays &^ edgeMask(sq)
}

// BishopMask is RookMask's diagonal counterpart.
func BishopMask(sq Square) bitboard.Board {
	rays := slidingAttacksDirs(sq, bitboard.Empty, BishopDirs)
	return rays &^ edgeMask(sq)
}

// RookDirs and BishopDirs translate the chess-types Direction values into
// bitboard.Direction values understood by bitboard.SlidingAttacks.
var RookDirs = []bitboard.Direction{bitboard.North, bitboard.South, bitboard.East, bitboard.West}
var BishopDirs = []bitboard.Direction{bitboard.NorthEast, bitboard.NorthWest, bitboard.SouthEast, bitboard.SouthWest}

func slidingAttacksDirs(sq Square, occ bitboard.Board, dirs []bitboard.Direction) bitboard.Board {
	return bitboard.SlidingAttacks(int(sq), occ, dirs)
}
