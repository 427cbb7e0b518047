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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessmagic/internal/chess/bitboard"
	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

func TestBetweenSameRank(t *testing.T) {
	// a1-h1: b1..g1 lie strictly between.
	got := betweenBB[SqA1][SqH1]
	assert.Equal(t, 6, got.PopCount())
	for _, sq := range []Square{SqB1, SqC1, SqD1, SqE1, SqF1, SqG1} {
		assert.True(t, got.Has(int(sq)))
	}
	assert.False(t, got.Has(int(SqA1)))
	assert.False(t, got.Has(int(SqH1)))
}

func TestBetweenSameFile(t *testing.T) {
	// e1-e8: e2..e7 lie strictly between.
	got := betweenBB[SqE1][SqE8]
	assert.Equal(t, 6, got.PopCount())
	assert.True(t, got.Has(int(SqE4)))
	assert.True(t, got.Has(int(SqE5)))
	assert.False(t, got.Has(int(SqE1)))
	assert.False(t, got.Has(int(SqE8)))
}

func TestBetweenDiagonal(t *testing.T) {
	// a1-h8: b2..g7 lie strictly between.
	got := betweenBB[SqA1][SqH8]
	assert.Equal(t, 6, got.PopCount())
	assert.True(t, got.Has(int(SqD4)))
	assert.True(t, got.Has(int(SqE5)))
}

func TestBetweenAdjacentSquaresIsEmpty(t *testing.T) {
	assert.Equal(t, bitboard.Empty, betweenBB[SqE1][SqE2])
}

func TestBetweenUnalignedSquaresIsEmpty(t *testing.T) {
	// a1-b3 shares neither rank, file, nor diagonal.
	assert.Equal(t, bitboard.Empty, betweenBB[SqA1][SqB3])
}

func TestBetweenSameSquareIsEmpty(t *testing.T) {
	assert.Equal(t, bitboard.Empty, betweenBB[SqD4][SqD4])
}

func TestLineSameRankSpansBothEdges(t *testing.T) {
	got := lineBB[SqC1][SqF1]
	assert.Equal(t, 8, got.PopCount(), "a rank line always spans all 8 files")
	assert.True(t, got.Has(int(SqA1)))
	assert.True(t, got.Has(int(SqH1)))
	assert.True(t, got.Has(int(SqC1)))
	assert.True(t, got.Has(int(SqF1)))
}

func TestLineSameFileSpansBothEdges(t *testing.T) {
	got := lineBB[SqE2][SqE5]
	assert.Equal(t, 8, got.PopCount())
	assert.True(t, got.Has(int(SqE1)))
	assert.True(t, got.Has(int(SqE8)))
}

func TestLineDiagonalSpansBothEdges(t *testing.T) {
	got := lineBB[SqC3][SqE5]
	assert.True(t, got.Has(int(SqA1)))
	assert.True(t, got.Has(int(SqH8)))
	assert.True(t, got.Has(int(SqC3)))
	assert.True(t, got.Has(int(SqE5)))
}

func TestLineUnalignedSquaresIsEmpty(t *testing.T) {
	assert.Equal(t, bitboard.Empty, lineBB[SqA1][SqB3])
}

func TestLineSameSquareIsEmpty(t *testing.T) {
	assert.Equal(t, bitboard.Empty, lineBB[SqD4][SqD4])
}

func TestLineIsSymmetric(t *testing.T) {
	for _, pair := range [][2]Square{{SqA1, SqH8}, {SqA1, SqH1}, {SqE1, SqE8}} {
		assert.Equal(t, lineBB[pair[0]][pair[1]], lineBB[pair[1]][pair[0]])
	}
}
