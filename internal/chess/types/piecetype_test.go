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

func TestPieceTypeIsValid(t *testing.T) {
	assert.False(t, PieceTypeNone.IsValid())
	assert.True(t, Pawn.IsValid())
	assert.True(t, King.IsValid())
	assert.False(t, PieceTypeLength.IsValid())
}

func TestPieceTypeString(t *testing.T) {
	assert.Equal(t, "-", PieceTypeNone.String())
	assert.Equal(t, "P", Pawn.String())
	assert.Equal(t, "N", Knight.String())
	assert.Equal(t, "B", Bishop.String())
	assert.Equal(t, "R", Rook.String())
	assert.Equal(t, "Q", Queen.String())
	assert.Equal(t, "K", King.String())
}

func TestIsSlider(t *testing.T) {
	assert.False(t, Pawn.IsSlider())
	assert.False(t, Knight.IsSlider())
	assert.False(t, King.IsSlider())
	assert.True(t, Bishop.IsSlider())
	assert.True(t, Rook.IsSlider())
	assert.True(t, Queen.IsSlider())
}
