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

func TestRankIsValid(t *testing.T) {
	assert.True(t, Rank8.IsValid())
	assert.True(t, Rank1.IsValid())
	assert.False(t, RankNone.IsValid())
}

func TestRankString(t *testing.T) {
	assert.Equal(t, "8", Rank8.String())
	assert.Equal(t, "1", Rank1.String())
	assert.Equal(t, "4", Rank4.String())
	assert.Equal(t, "-", RankNone.String())
}

func TestRankFromChar(t *testing.T) {
	assert.Equal(t, Rank1, rankFromChar('1'))
	assert.Equal(t, Rank8, rankFromChar('8'))
	assert.Equal(t, Rank4, rankFromChar('4'))
	assert.Equal(t, RankNone, rankFromChar('9'))
	assert.Equal(t, RankNone, rankFromChar('a'))
}
