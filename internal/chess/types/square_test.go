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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareConstants(t *testing.T) {
	assert.Equal(t, Square(0), SqA8)
	assert.Equal(t, Square(7), SqH8)
	assert.Equal(t, Square(56), SqA1)
	assert.Equal(t, Square(63), SqH1)
	assert.True(t, SqA8.IsValid())
	assert.True(t, SqH1.IsValid())
	assert.False(t, SqNone.IsValid())
}

func TestSquareFileAndRankOf(t *testing.T) {
	assert.Equal(t, FileA, SqA8.FileOf())
	assert.Equal(t, Rank8, SqA8.RankOf())
	assert.Equal(t, FileH, SqH1.FileOf())
	assert.Equal(t, Rank1, SqH1.RankOf())
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
}

func TestSquareOfRoundTrip(t *testing.T) {
	for sq := SqA8; sq < SqNone; sq++ {
		assert.Equal(t, sq, SquareOf(sq.FileOf(), sq.RankOf()))
	}
	assert.Equal(t, SqNone, SquareOf(FileNone, Rank1))
	assert.Equal(t, SqNone, SquareOf(FileA, RankNone))
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqNone, MakeSquare("e"))
	assert.Equal(t, SqNone, MakeSquare("i4"))
	assert.Equal(t, SqNone, MakeSquare("e9"))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareToStepsOffBoard(t *testing.T) {
	assert.Equal(t, SqNone, SqA8.To(North))
	assert.Equal(t, SqNone, SqA8.To(West))
	assert.Equal(t, SqNone, SqH1.To(South))
	assert.Equal(t, SqNone, SqH1.To(East))
	assert.Equal(t, SqE3, SqE4.To(South))
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqD4, SqE4.To(West))
	assert.Equal(t, SqF4, SqE4.To(East))
	assert.Equal(t, SqD5, SqE4.To(NorthWest))
	assert.Equal(t, SqF5, SqE4.To(NorthEast))
	assert.Equal(t, SqD3, SqE4.To(SouthWest))
	assert.Equal(t, SqF3, SqE4.To(SouthEast))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, Distance(SqE4, SqE4))
	assert.Equal(t, 1, Distance(SqE4, SqE5))
	assert.Equal(t, 1, Distance(SqE4, SqF5))
	assert.Equal(t, 7, Distance(SqA8, SqH1))
}
