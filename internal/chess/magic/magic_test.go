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

package magic

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chessmagic/internal/chess/bitboard"
	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

// Well-known relevant-occupancy-bit counts (Chess Programming Wiki's magic
// bitboards page): corners carry the most bits for the rook, the four
// center squares carry the most for the bishop.
func TestRookMaskBitCounts(t *testing.T) {
	assert.Equal(t, 12, RookMask(SqA1).PopCount())
	assert.Equal(t, 12, RookMask(SqH1).PopCount())
	assert.Equal(t, 12, RookMask(SqA8).PopCount())
	assert.Equal(t, 12, RookMask(SqH8).PopCount())
	assert.Equal(t, 10, RookMask(SqD4).PopCount())
	assert.Equal(t, 10, RookMask(SqE5).PopCount())
}

func TestBishopMaskBitCounts(t *testing.T) {
	assert.Equal(t, 6, BishopMask(SqA1).PopCount())
	assert.Equal(t, 6, BishopMask(SqH1).PopCount())
	assert.Equal(t, 6, BishopMask(SqA8).PopCount())
	assert.Equal(t, 6, BishopMask(SqH8).PopCount())
	assert.Equal(t, 9, BishopMask(SqD4).PopCount())
	assert.Equal(t, 9, BishopMask(SqD5).PopCount())
	assert.Equal(t, 9, BishopMask(SqE4).PopCount())
	assert.Equal(t, 9, BishopMask(SqE5).PopCount())
}

func TestMasksNeverIncludeTheSquareItself(t *testing.T) {
	for sq := SqA8; sq < SqNone; sq++ {
		assert.False(t, RookMask(sq).Has(int(sq)))
		assert.False(t, BishopMask(sq).Has(int(sq)))
	}
}

var sharedTables = Build()

// subsetsOf enumerates every subset of mask via the Carry-Rippler trick,
// the same technique the wizard itself uses to build reference attacks.
func subsetsOf(mask bitboard.Board) []bitboard.Board {
	var subs []bitboard.Board
	var sub bitboard.Board
	for {
		subs = append(subs, sub)
		sub = (sub - mask) & mask
		if sub == 0 {
			break
		}
	}
	return subs
}

// TestExhaustiveRookAttacksMatchReference sweeps every occupancy subset of
// every square's rook relevance mask and checks the magic-hashed lookup
// against the Kogge-Stone reference computation directly - exactly the
// correctness guarantee spec section 8 requires of the table build.
func TestExhaustiveRookAttacksMatchReference(t *testing.T) {
	for sq := SqA8; sq < SqNone; sq++ {
		mask := RookMask(sq)
		for _, occ := range subsetsOf(mask) {
			want := slidingAttacksDirs(sq, occ, RookDirs)
			got := sharedTables.RookAttacks(sq, occ)
			require.Equal(t, want, got, "square %s occupancy %#x", sq, uint64(occ))
		}
	}
}

func TestExhaustiveBishopAttacksMatchReference(t *testing.T) {
	for sq := SqA8; sq < SqNone; sq++ {
		mask := BishopMask(sq)
		for _, occ := range subsetsOf(mask) {
			want := slidingAttacksDirs(sq, occ, BishopDirs)
			got := sharedTables.BishopAttacks(sq, occ)
			require.Equal(t, want, got, "square %s occupancy %#x", sq, uint64(occ))
		}
	}
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	occ := bitboard.Square(int(SqD5)) | bitboard.Square(int(SqD2)) | bitboard.Square(int(SqA4))
	for _, sq := range []Square{SqD4, SqA1, SqE5} {
		want := sharedTables.RookAttacks(sq, occ) | sharedTables.BishopAttacks(sq, occ)
		assert.Equal(t, want, sharedTables.QueenAttacks(sq, occ))
	}
}

func TestKnightAttacksFromCorner(t *testing.T) {
	attacks := sharedTables.Knight[SqA1]
	assert.Equal(t, 2, attacks.PopCount(), "a knight in the corner has exactly two squares to jump to")
	assert.True(t, attacks.Has(int(SqB3)))
	assert.True(t, attacks.Has(int(SqC2)))
}

func TestKnightAttacksFromCenter(t *testing.T) {
	attacks := sharedTables.Knight[SqD4]
	assert.Equal(t, 8, attacks.PopCount())
}

func TestKingAttacksFromCorner(t *testing.T) {
	attacks := sharedTables.King[SqA1]
	assert.Equal(t, 3, attacks.PopCount())
}

func TestKingAttacksFromCenter(t *testing.T) {
	attacks := sharedTables.King[SqD4]
	assert.Equal(t, 8, attacks.PopCount())
}

func TestPawnAttacksOppositeColorsMirror(t *testing.T) {
	whiteAttacks := sharedTables.Pawn[White][SqE4]
	blackAttacks := sharedTables.Pawn[Black][SqE4]
	assert.Equal(t, 2, whiteAttacks.PopCount())
	assert.Equal(t, 2, blackAttacks.PopCount())
	assert.True(t, whiteAttacks.Has(int(SqD5)))
	assert.True(t, whiteAttacks.Has(int(SqF5)))
	assert.True(t, blackAttacks.Has(int(SqD3)))
	assert.True(t, blackAttacks.Has(int(SqF3)))
}

func TestPawnAttacksOnFileAEdge(t *testing.T) {
	attacks := sharedTables.Pawn[White][SqA4]
	assert.Equal(t, 1, attacks.PopCount(), "a-file pawn only attacks towards the b-file")
	assert.True(t, attacks.Has(int(SqB5)))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.bin")

	err := sharedTables.Save(path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, sharedTables.RookMagics, loaded.RookMagics)
	assert.Equal(t, sharedTables.BishopMagics, loaded.BishopMagics)
	assert.Equal(t, sharedTables.Sliding, loaded.Sliding)
	assert.Equal(t, sharedTables.Knight, loaded.Knight)
	assert.Equal(t, sharedTables.King, loaded.King)
	assert.Equal(t, sharedTables.Pawn, loaded.Pawn)
}

func TestLoadRejectsBadHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.bin")
	require.NoError(t, os.WriteFile(path, []byte("not a table file at all"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.bin"))
	assert.Error(t, err)
}

func TestBuildParallelMatchesSequentialBuild(t *testing.T) {
	parallel, err := BuildParallel(context.Background())
	require.NoError(t, err)

	assert.Equal(t, sharedTables.RookMagics, parallel.RookMagics)
	assert.Equal(t, sharedTables.BishopMagics, parallel.BishopMagics)
	assert.Equal(t, sharedTables.Sliding, parallel.Sliding)
	assert.Equal(t, sharedTables.Knight, parallel.Knight)
	assert.Equal(t, sharedTables.King, parallel.King)
	assert.Equal(t, sharedTables.Pawn, parallel.Pawn)
}
