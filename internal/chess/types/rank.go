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

package types

// Rank represents a chess board rank 1-8. Unlike the rank-1-is-zero
// convention, this module numbers rank 8 as zero to match the bit0==a8
// bitboard layout: Rank8 is the top row and is rank index 0.
type Rank uint8

//noinspection GoUnusedConst
const (
	Rank8      Rank = 0
	Rank7      Rank = 1
	Rank6      Rank = 2
	Rank5      Rank = 3
	Rank4      Rank = 4
	Rank3      Rank = 5
	Rank2      Rank = 6
	Rank1      Rank = 7
	RankNone   Rank = 8
	RankLength      = RankNone
)

// IsValid checks if r represents a valid rank.
func (r Rank) IsValid() bool {
	return r < RankNone
}

const rankLabels string = "87654321"

// String returns a string digit for the rank (e.g. 1 - 8).
// If r is not a valid rank returns "-".
func (r Rank) String() string {
	if r > Rank1 {
		return "-"
	}
	return string(rankLabels[r])
}

// rankFromChar parses a FEN/algebraic rank digit ('1'-'8') into a Rank, or
// RankNone if c is not a valid rank digit.
func rankFromChar(c byte) Rank {
	switch c {
	case '1':
		return Rank1
	case '2':
		return Rank2
	case '3':
		return Rank3
	case '4':
		return Rank4
	case '5':
		return Rank5
	case '6':
		return Rank6
	case '7':
		return Rank7
	case '8':
		return Rank8
	default:
		return RankNone
	}
}
