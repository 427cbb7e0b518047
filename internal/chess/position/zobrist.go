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

package position

import (
	"math/rand"

	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

// zobristTable holds the random constants an incremental hash XORs in and
// out as pieces move. This is the optional incremental-hashing feature the
// minimum spec leaves out but the ambient position model always carries;
// the key is exposed through Position.ZobristKey, and no repetition
// detection in this module consumes it.
type zobristTable struct {
	pieceSquare [PieceLength][64]uint64
	castling    [CastlingRightsLength]uint64
	epFile      [8]uint64
	sideToMove  uint64
}

var zobrist = newZobristTable()

// newZobristTable fills every slot from a fixed-seed generator so the keys
// - and therefore any key printed in a log or test fixture - are the same
// on every run.
func newZobristTable() *zobristTable {
	rng := rand.New(rand.NewSource(0x5DEECE66D))
	t := &zobristTable{}
	for p := Piece(0); p < PieceLength; p++ {
		for sq := 0; sq < 64; sq++ {
			t.pieceSquare[p][sq] = rng.Uint64()
		}
	}
	for cr := CastlingRights(0); cr < CastlingRightsLength; cr++ {
		t.castling[cr] = rng.Uint64()
	}
	for f := 0; f < 8; f++ {
		t.epFile[f] = rng.Uint64()
	}
	t.sideToMove = rng.Uint64()
	return t
}
