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

// Package types holds the small value types shared by every chess package:
// Square, Color, PieceType, Piece, Direction, CastlingRights and Move. They
// are kept dependency-free and dot-importable so the larger packages (magic,
// position, movegen) read close to algebraic chess notation.
package types

import "fmt"

// Square identifies one of the 64 board squares. Numbering follows bit 0 ==
// a8: SqA8 is 0, SqH8 is 7, SqA1 is 56, SqH1 is 63.
type Square uint8

//noinspection GoUnusedConst
const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone
	SqLength = SqNone
)

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool { return sq < SqNone }

// FileOf returns the file of the square (0 = file a ... 7 = file h).
func (sq Square) FileOf() File { return File(sq & 7) }

// RankOf returns the rank of the square (0 = rank 8 ... 7 = rank 1).
func (sq Square) RankOf() Rank { return Rank(sq >> 3) }

// SquareOf builds a square from a file and a rank, or SqNone if either is
// out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + int(f))
}

// MakeSquare parses an algebraic square string ("e4") into a Square, or
// SqNone if the string is not a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := rankFromChar(s[1])
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// String renders the square in algebraic notation ("e4"), or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

var sqTo [int(SqLength)][8]Square

func init() {
	for sq := SqA8; sq < SqNone; sq++ {
		for i, d := range allDirections {
			sqTo[sq][i] = sq.step(d)
		}
	}
}

// To returns the square reached by moving one step from sq in direction d,
// or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	return sqTo[sq][d]
}

// step computes To the slow way; only called once per square at init time.
func (sq Square) step(d Direction) Square {
	f, r := sq.FileOf(), sq.RankOf()
	switch d {
	case North:
		if r == Rank8 {
			return SqNone
		}
		return sq - 8
	case South:
		if r == Rank1 {
			return SqNone
		}
		return sq + 8
	case East:
		if f == FileH {
			return SqNone
		}
		return sq + 1
	case West:
		if f == FileA {
			return SqNone
		}
		return sq - 1
	case NorthEast:
		if r == Rank8 || f == FileH {
			return SqNone
		}
		return sq - 7
	case NorthWest:
		if r == Rank8 || f == FileA {
			return SqNone
		}
		return sq - 9
	case SouthEast:
		if r == Rank1 || f == FileH {
			return SqNone
		}
		return sq + 9
	case SouthWest:
		if r == Rank1 || f == FileA {
			return SqNone
		}
		return sq + 7
	default:
		panic(fmt.Sprintf("types: invalid direction %d", d))
	}
}

// Distance returns the Chebyshev (king-move) distance between two squares.
func Distance(a, b Square) int {
	df := int(a.FileOf()) - int(b.FileOf())
	dr := int(a.RankOf()) - int(b.RankOf())
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
