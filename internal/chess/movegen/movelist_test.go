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

	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

func TestNewMoveListStartsEmpty(t *testing.T) {
	ml := NewMoveList()
	assert.Equal(t, 0, ml.Len())
	assert.Empty(t, ml.Moves())
}

func TestPushAppendsAndLenTracksIt(t *testing.T) {
	ml := NewMoveList()
	ml.Push(NewMove(SqE2, SqE4, DoublePawnPush))
	ml.Push(NewMove(SqG1, SqF3, Quiet))
	assert.Equal(t, 2, ml.Len())
	assert.Equal(t, NewMove(SqE2, SqE4, DoublePawnPush), ml.At(0))
	assert.Equal(t, NewMove(SqG1, SqF3, Quiet), ml.At(1))
}

func TestMovesReturnsAllPushedMovesInOrder(t *testing.T) {
	ml := NewMoveList()
	want := []Move{
		NewMove(SqE2, SqE4, DoublePawnPush),
		NewMove(SqD2, SqD4, DoublePawnPush),
		NewMove(SqB1, SqC3, Quiet),
	}
	for _, m := range want {
		ml.Push(m)
	}
	assert.Equal(t, want, ml.Moves())
}

func TestResetEmptiesTheListButKeepsCapacity(t *testing.T) {
	ml := NewMoveList()
	for i := 0; i < 10; i++ {
		ml.Push(NewMove(SqE2, SqE4, DoublePawnPush))
	}
	before := cap(ml.Moves())

	ml.Reset()

	assert.Equal(t, 0, ml.Len())
	assert.Empty(t, ml.Moves())
	assert.Equal(t, before, cap(ml.Moves()), "reset must not shrink the backing array")
}

func TestMoveListReusableAcrossResets(t *testing.T) {
	ml := NewMoveList()
	ml.Push(NewMove(SqE2, SqE4, DoublePawnPush))
	ml.Reset()
	ml.Push(NewMove(SqG1, SqF3, Quiet))
	assert.Equal(t, 1, ml.Len())
	assert.Equal(t, NewMove(SqG1, SqF3, Quiet), ml.At(0))
}
