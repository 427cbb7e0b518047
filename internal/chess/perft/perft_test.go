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

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessmagic/internal/chess/magic"
	"github.com/frankkopp/chessmagic/internal/chess/position"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
const position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
const position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RQ1 w kq - 0 1"
const position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"

var sharedTables = magic.Build()

func nodesAt(t *testing.T, fen string, depth int) uint64 {
	t.Helper()
	pos, err := position.NewFromFEN(fen)
	assert.NoError(t, err)
	pf := New(sharedTables)
	return pf.Run(pos, depth)
}

func TestPerftStartingPosition(t *testing.T) {
	want := []uint64{20, 400, 8902, 197281, 4865609}
	for i, w := range want {
		depth := i + 1
		assert.Equal(t, w, nodesAt(t, startFEN, depth), "depth %d", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	want := []uint64{48, 2039, 97862, 4085603}
	for i, w := range want {
		depth := i + 1
		assert.Equal(t, w, nodesAt(t, kiwipeteFEN, depth), "depth %d", depth)
	}
}

func TestPerftPosition3(t *testing.T) {
	want := []uint64{14, 191, 2812, 43238, 674624}
	for i, w := range want {
		depth := i + 1
		assert.Equal(t, w, nodesAt(t, position3FEN, depth), "depth %d", depth)
	}
}

func TestPerftPosition4(t *testing.T) {
	want := []uint64{6, 264, 9467}
	for i, w := range want {
		depth := i + 1
		assert.Equal(t, w, nodesAt(t, position4FEN, depth), "depth %d", depth)
	}
}

func TestPerftPosition5(t *testing.T) {
	want := []uint64{44, 1486, 62379}
	for i, w := range want {
		depth := i + 1
		assert.Equal(t, w, nodesAt(t, position5FEN, depth), "depth %d", depth)
	}
}

func TestPerftDepthZeroIsOneLeaf(t *testing.T) {
	assert.Equal(t, uint64(1), nodesAt(t, startFEN, 0))
}

func TestPerftExtendedCountersStartingPositionDepth3(t *testing.T) {
	pos, err := position.NewFromFEN(startFEN)
	assert.NoError(t, err)
	pf := New(sharedTables)
	nodes := pf.Run(pos, 3)
	assert.Equal(t, uint64(8902), nodes)
	assert.Equal(t, uint64(34), pf.Captures)
	assert.Equal(t, uint64(0), pf.EnPassant)
	assert.Equal(t, uint64(0), pf.Castles)
	assert.Equal(t, uint64(0), pf.Promotions)
	assert.Equal(t, uint64(12), pf.Checks)
	assert.Equal(t, uint64(0), pf.Checkmates)
}

func TestPerftExtendedCountersStartingPositionDepth4(t *testing.T) {
	pos, err := position.NewFromFEN(startFEN)
	assert.NoError(t, err)
	pf := New(sharedTables)
	nodes := pf.Run(pos, 4)
	assert.Equal(t, uint64(197281), nodes)
	assert.Equal(t, uint64(1576), pf.Captures)
	assert.Equal(t, uint64(0), pf.EnPassant)
	assert.Equal(t, uint64(469), pf.Checks)
	assert.Equal(t, uint64(8), pf.Checkmates)
}

func TestPerftStopReturnsZero(t *testing.T) {
	pos, err := position.NewFromFEN(startFEN)
	assert.NoError(t, err)
	pf := New(sharedTables)
	pf.Stop()
	assert.Equal(t, uint64(0), pf.Run(pos, 4))
}

func TestDivideRunsOnStartingPosition(t *testing.T) {
	pos, err := position.NewFromFEN(startFEN)
	assert.NoError(t, err)
	// Divide only prints; its postcondition (sum of subtrees == perft total)
	// is exercised indirectly via the shared search() path already proven
	// correct by the perft tests above, so this just checks it runs cleanly
	// from the starting position.
	Divide(sharedTables, pos, 2)
}
