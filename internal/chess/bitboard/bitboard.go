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

// Package bitboard implements the 64-bit board-mask primitives every other
// chess package builds on: population count, bit scan, directional shifts
// with wrap guards, and the Kogge-Stone occluded fill used both as the
// reference sliding-attack calculator and as the ground truth the magic
// wizard verifies its tables against.
//
// Square numbering follows bit 0 == a8: bits 0-7 are rank 8, bits 56-63 are
// rank 1, and within a rank file a is the low bit. Every direction delta in
// this package is derived from that single convention; changing it requires
// re-deriving every mask below.
package bitboard

import "math/bits"

// Board is a 64-bit mask, one bit per square.
type Board uint64

// Empty and Universe are the two degenerate boards.
const (
	Empty    Board = 0
	Universe Board = 0xFFFFFFFFFFFFFFFF
)

// File and rank masks under the bit0=a8 layout: file a is the low bit of
// each 8-bit rank group, rank 8 is the low byte.
const (
	FileA Board = 0x0101010101010101
	FileB Board = FileA << 1
	FileC Board = FileA << 2
	FileD Board = FileA << 3
	FileE Board = FileA << 4
	FileF Board = FileA << 5
	FileG Board = FileA << 6
	FileH Board = FileA << 7

	Rank8 Board = 0x00000000000000FF
	Rank7 Board = Rank8 << 8
	Rank6 Board = Rank8 << 16
	Rank5 Board = Rank8 << 24
	Rank4 Board = Rank8 << 32
	Rank3 Board = Rank8 << 40
	Rank2 Board = Rank8 << 48
	Rank1 Board = Rank8 << 56
)

var notFileA = ^FileA
var notFileH = ^FileH

// Square returns the single-bit board for square index s (0-63).
func Square(s int) Board { return Board(1) << uint(s) }

// PopCount returns the number of set bits.
func (b Board) PopCount() int { return bits.OnesCount64(uint64(b)) }

// Lsb returns the index of the least significant set bit, or 64 if b is empty.
func (b Board) Lsb() int { return bits.TrailingZeros64(uint64(b)) }

// PopLsb returns the index of the least significant set bit and the board
// with that bit cleared.
func (b Board) PopLsb() (int, Board) {
	sq := b.Lsb()
	return sq, b & (b - 1)
}

// Has reports whether square sq is set.
func (b Board) Has(sq int) bool { return b&Square(sq) != 0 }

// PushSquare sets the bit for sq and returns the new board; it also mutates
// *b in place, mirroring the teacher idiom of chaining pointer-receiver
// bit-twiddling calls during piece placement.
func (b *Board) PushSquare(sq int) Board {
	*b |= Square(sq)
	return *b
}

// PopSquare clears the bit for sq and returns the new board.
func (b *Board) PopSquare(sq int) Board {
	*b &^= Square(sq)
	return *b
}

// North, South, ... are one-step shifts with the wrap mask applied so a
// piece on the h-file never "shifts" onto the a-file of an adjacent rank.
// Deltas and mask pairings are the same eight used by the wizard's
// Kogge-Stone reference fill (see generate_line_mask in the retained wizard
// source): (shift amount, guard mask) per direction.
func (b Board) North() Board     { return b >> 8 }
func (b Board) South() Board     { return b << 8 }
func (b Board) East() Board      { return (b << 1) & notFileA }
func (b Board) West() Board      { return (b >> 1) & notFileH }
func (b Board) NorthEast() Board { return (b >> 7) & notFileA }
func (b Board) NorthWest() Board { return (b >> 9) & notFileH }
func (b Board) SouthEast() Board { return (b << 9) & notFileA }
func (b Board) SouthWest() Board { return (b << 7) & notFileH }

// Direction identifies one of the eight compass directions used by sliding
// pieces and by the shift table below.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// Directions lists all eight compass directions, rooks first then bishops -
// rook directions are used for the rook relevance mask/attack fill, the
// remaining four for the bishop.
var Directions = [8]Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// RookDirections and BishopDirections split Directions by slider kind.
var RookDirections = [4]Direction{North, South, East, West}
var BishopDirections = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}

// Shift moves every set bit of b one step in direction d, discarding bits
// that would wrap around a board edge.
func (b Board) Shift(d Direction) Board {
	switch d {
	case North:
		return b.North()
	case South:
		return b.South()
	case East:
		return b.East()
	case West:
		return b.West()
	case NorthEast:
		return b.NorthEast()
	case NorthWest:
		return b.NorthWest()
	case SouthEast:
		return b.SouthEast()
	case SouthWest:
		return b.SouthWest()
	default:
		panic("bitboard: invalid direction")
	}
}

// Fill computes, for every set bit of sliders, every square reachable by
// repeatedly stepping in direction d while staying on empty squares, plus
// the first blocked square - i.e. a sliding-piece ray that stops at (and
// includes) the first piece of either color it meets. It uses the
// Kogge-Stone doubling technique (distances 1, 2, 4 square in one pass
// instead of a seven-step walk) and serves as the reference implementation
// the magic wizard checks its perfect-hash tables against.
//
// empty is the set of unoccupied squares (occupancy's complement); sliders
// is the set of slider origin squares.
func Fill(sliders, empty Board, d Direction) Board {
	gen, pro := sliders, empty
	for _, dist := range [3]int{1, 2, 4} {
		gen |= pro & shiftBy(gen, d, dist)
		pro &= shiftBy(pro, d, dist)
	}
	return shiftBy(gen, d, 1)
}

// shiftBy shifts b by dist squares in direction d, applying the edge-wrap
// guard at every unit step so multi-square shifts never wrap a file.
func shiftBy(b Board, d Direction, dist int) Board {
	for i := 0; i < dist; i++ {
		b = b.Shift(d)
	}
	return b
}

// SlidingAttacks is the Kogge-Stone-backed reference slider-attack
// calculator: the set of squares a slider standing on "from" attacks given
// occupancy, stepping along each direction in dirs and stopping at (and
// including) the first blocker. It is used to build the magic tables and,
// in the magic package's tests, to exhaustively verify them; it is not used
// on the hot move-generation path.
func SlidingAttacks(from int, occupied Board, dirs []Direction) Board {
	origin := Square(from)
	empty := ^occupied
	var attacks Board
	for _, d := range dirs {
		attacks |= Fill(origin, empty, d) & ^origin
	}
	return attacks
}

// String renders a board as an 8x8 grid, rank 8 on top, for debugging.
func (b Board) String() string {
	out := make([]byte, 0, 64+8)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			if b.Has(sq) {
				out = append(out, '1')
			} else {
				out = append(out, '0')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
