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

// Package position represents a chess position: an 8x8 mailbox, per-color
// per-piece-type bitboards, castling rights, en-passant square, move
// clocks and an incrementally maintained Zobrist key, plus a fixed-size
// history stack so DoMove/UndoMove never allocate.
//
// Create one with New() for the start position or NewFromFEN(fen) for an
// arbitrary one.
package position

import (
	"fmt"

	"github.com/frankkopp/chessmagic/internal/assert"
	"github.com/frankkopp/chessmagic/internal/chess/bitboard"
	"github.com/frankkopp/chessmagic/internal/chess/magic"
	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Key is the incremental Zobrist hash type.
type Key uint64

// maxPly bounds the fixed-size undo history; no legal game exceeds it by
// several orders of magnitude, and perft never unwinds past its own depth.
const maxPly = 1024

// undoState is one ply's worth of information UndoMove cannot reconstruct by
// inverting the board alone: whatever was true of the position BEFORE the
// move, needed to restore it in O(1).
type undoState struct {
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	zobristKey      Key
}

// Position is a mutable chess position. The zero value is not usable;
// build one with New or NewFromFEN.
type Position struct {
	board [SqLength]Piece

	piecesBb   [ColorLength][PieceTypeLength]bitboard.Board
	occupiedBb [ColorLength]bitboard.Board
	kingSquare [ColorLength]Square

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int
	zobristKey      Key

	ply     int
	history [maxPly]undoState
}

// New returns the standard chess starting position.
func New() *Position {
	p, err := NewFromFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("position: start FEN failed to parse: %v", err))
	}
	return p
}

// NewFromFEN builds a position from a FEN string, or returns an error if
// the FEN is malformed or describes an illegal position (see parseFEN).
func NewFromFEN(fen string) (*Position, error) {
	p := &Position{}
	if err := p.parseFEN(fen); err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	return p, nil
}

// Piece returns the piece on sq, or PieceNone if it is empty.
func (p *Position) Piece(sq Square) Piece { return p.board[sq] }

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) bitboard.Board { return p.piecesBb[c][pt] }

// Occupied returns every occupied square, either color.
func (p *Position) Occupied() bitboard.Board { return p.occupiedBb[White] | p.occupiedBb[Black] }

// OccupiedBy returns the squares occupied by color c.
func (p *Position) OccupiedBy(c Color) bitboard.Board { return p.occupiedBb[c] }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// SideToMove returns the color to move next.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfMoveClock returns the 50-move-rule half-move counter.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the FEN full-move number.
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// ZobristKey returns the incrementally maintained Zobrist hash.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// Ply returns the number of moves played since the position was created,
// i.e. the current depth of the undo history.
func (p *Position) Ply() int { return p.ply }

// IsAttacked reports whether sq is attacked by a piece of color by. It
// reconstructs the attack directly from the board (reverse-attack /
// "superpiece" trick via bitboard.SlidingAttacks) rather than consulting
// the magic tables, since it is used off the hot move-generation path: FEN
// legality validation and the king-in-check queries perft's extended
// counters need.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	origin := bitboard.Square(int(sq))
	occ := p.Occupied()

	if magic.PawnAttacksFrom(origin, by.Flip())&p.piecesBb[by][Pawn] != 0 {
		return true
	}
	if magic.KnightAttacksFrom(origin)&p.piecesBb[by][Knight] != 0 {
		return true
	}
	if magic.KingAttacksFrom(origin)&p.piecesBb[by][King] != 0 {
		return true
	}
	rookLike := p.piecesBb[by][Rook] | p.piecesBb[by][Queen]
	if rookLike != 0 && bitboard.SlidingAttacks(int(sq), occ, magic.RookDirs)&rookLike != 0 {
		return true
	}
	bishopLike := p.piecesBb[by][Bishop] | p.piecesBb[by][Queen]
	if bishopLike != 0 && bitboard.SlidingAttacks(int(sq), occ, magic.BishopDirs)&bishopLike != 0 {
		return true
	}
	return false
}

// String renders the position as an ASCII board followed by its FEN.
func (p *Position) String() string {
	var out string
	for r := Rank8; r <= Rank1; r++ {
		out += "+---+---+---+---+---+---+---+---+\n"
		for f := FileA; f <= FileH; f++ {
			out += fmt.Sprintf("| %s ", p.board[SquareOf(f, r)].String())
		}
		out += fmt.Sprintf("| %s\n", r.String())
	}
	out += "+---+---+---+---+---+---+---+---+\n"
	out += "  a   b   c   d   e   f   g   h\n\n"
	out += p.FEN() + "\n"
	return out
}

// assertInvariants runs the checked-build sanity assertions the teacher's
// DoMove/UndoMove gate behind assert.DEBUG: cheap structural checks that
// would otherwise panic deep inside a bitboard update.
func (p *Position) assertInvariants() {
	if !assert.DEBUG {
		return
	}
	assert.Assert(p.board[p.kingSquare[White]] == WhiteKing, "white king square out of sync")
	assert.Assert(p.board[p.kingSquare[Black]] == BlackKing, "black king square out of sync")
}
