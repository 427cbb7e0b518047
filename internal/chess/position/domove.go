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
	"github.com/frankkopp/chessmagic/internal/assert"
	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

// DoMove commits m to the board. The caller is responsible for only ever
// passing a move a legal move generator produced for this exact position;
// DoMove does not re-validate legality.
func (p *Position) DoMove(m Move) {
	fromSq, toSq := m.From(), m.To()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()
	targetPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "position DoMove: invalid move %s", m)
		assert.Assert(fromPc != PieceNone, "position DoMove: no piece on %s for move %s", fromSq, m)
		assert.Assert(myColor == p.sideToMove, "position DoMove: piece on %s does not belong to side to move", fromSq)
		assert.Assert(targetPc.TypeOf() != King, "position DoMove: king cannot be captured")
	}

	h := &p.history[p.ply]
	h.move = m
	h.capturedPiece = targetPc
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.zobristKey = p.zobristKey
	p.ply++

	switch {
	case m.IsCastle():
		p.doCastle(m, myColor)
	case m.IsEnPassant():
		p.doEnPassant(fromSq, toSq, myColor)
	case m.IsPromotion():
		p.doPromotion(m, fromSq, toSq, myColor, targetPc)
	default:
		p.doNormal(fromSq, toSq, fromPc, targetPc, myColor)
	}

	if p.sideToMove == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobrist.sideToMove

	p.assertInvariants()
}

// UndoMove reverts the most recently applied move, restoring the position
// to exactly the state it was in before DoMove. O(1): nothing is
// recomputed, every field comes back from the history slot DoMove wrote.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.ply > 0, "position UndoMove: no move to undo")
	}

	p.sideToMove = p.sideToMove.Flip()
	if p.sideToMove == Black {
		p.fullMoveNumber--
	}
	p.ply--
	h := &p.history[p.ply]
	m := h.move
	myColor := p.sideToMove

	switch {
	case m.IsCastle():
		p.undoCastle(m, myColor)
	case m.IsEnPassant():
		p.undoEnPassant(m, myColor, h.capturedPiece)
	case m.IsPromotion():
		p.undoPromotion(m, myColor, h.capturedPiece)
	default:
		p.movePiece(m.To(), m.From())
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, m.To())
		}
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.zobristKey = h.zobristKey
}

func (p *Position) doNormal(fromSq, toSq Square, fromPc, targetPc Piece, myColor Color) {
	p.updateCastlingRights(fromSq, toSq)
	p.clearEnPassant()

	switch {
	case targetPc != PieceNone:
		p.removePiece(toSq)
		p.halfMoveClock = 0
	case fromPc.TypeOf() == Pawn:
		p.halfMoveClock = 0
		if rankDistance(fromSq, toSq) == 2 {
			p.enPassantSquare = toSq.To(myColor.Flip().PawnDirection())
			p.zobristKey ^= zobrist.epFile[p.enPassantSquare.FileOf()]
		}
	default:
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doCastle(m Move, myColor Color) {
	fromSq, toSq := m.From(), m.To()
	p.movePiece(fromSq, toSq)
	switch toSq {
	case SqG1:
		p.movePiece(SqH1, SqF1)
	case SqC1:
		p.movePiece(SqA1, SqD1)
	case SqG8:
		p.movePiece(SqH8, SqF8)
	case SqC8:
		p.movePiece(SqA8, SqD8)
	}
	p.zobristKey ^= zobrist.castling[p.castlingRights]
	p.castlingRights.Remove(OfColor(myColor))
	p.zobristKey ^= zobrist.castling[p.castlingRights]
	p.clearEnPassant()
	p.halfMoveClock++
}

func (p *Position) undoCastle(m Move, _ Color) {
	p.movePiece(m.To(), m.From())
	switch m.To() {
	case SqG1:
		p.movePiece(SqF1, SqH1)
	case SqC1:
		p.movePiece(SqD1, SqA1)
	case SqG8:
		p.movePiece(SqF8, SqH8)
	case SqC8:
		p.movePiece(SqD8, SqA8)
	}
}

func (p *Position) doEnPassant(fromSq, toSq Square, myColor Color) {
	capSq := toSq.To(myColor.Flip().PawnDirection())
	if assert.DEBUG {
		assert.Assert(p.board[capSq] == MakePiece(myColor.Flip(), Pawn), "position doEnPassant: no enemy pawn on capture square")
	}
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) undoEnPassant(m Move, myColor Color, _ Piece) {
	p.movePiece(m.To(), m.From())
	capSq := m.To().To(myColor.Flip().PawnDirection())
	p.putPiece(MakePiece(myColor.Flip(), Pawn), capSq)
}

func (p *Position) doPromotion(m Move, fromSq, toSq Square, myColor Color, targetPc Piece) {
	if targetPc != PieceNone {
		p.removePiece(toSq)
	}
	p.updateCastlingRights(fromSq, toSq)
	p.removePiece(fromSq)
	p.putPiece(MakePiece(myColor, m.PromotionType()), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) undoPromotion(m Move, myColor Color, capturedPiece Piece) {
	p.removePiece(m.To())
	p.putPiece(MakePiece(myColor, Pawn), m.From())
	if capturedPiece != PieceNone {
		p.putPiece(capturedPiece, m.To())
	}
}

// updateCastlingRights clears whatever rights a move touching from/to
// squares invalidates: a king or rook leaving its home square, or a rook
// being captured on its home square, in one symmetric check so a capture
// on a starting rook square clears rights exactly like a rook move would
// (the naive version that only checks the moving piece misses captures).
func (p *Position) updateCastlingRights(fromSq, toSq Square) {
	if p.castlingRights == CastlingNone {
		return
	}
	cr := CastlingRightsForSquare(fromSq) | CastlingRightsForSquare(toSq)
	if cr == CastlingNone {
		return
	}
	p.zobristKey ^= zobrist.castling[p.castlingRights]
	p.castlingRights.Remove(cr)
	p.zobristKey ^= zobrist.castling[p.castlingRights]
}

func (p *Position) movePiece(fromSq, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) putPiece(piece Piece, sq Square) {
	c, pt := piece.ColorOf(), piece.TypeOf()
	if assert.DEBUG {
		assert.Assert(p.board[sq] == PieceNone, "position putPiece: %s already occupied", sq)
	}
	p.board[sq] = piece
	if pt == King {
		p.kingSquare[c] = sq
	}
	p.piecesBb[c][pt].PushSquare(int(sq))
	p.occupiedBb[c].PushSquare(int(sq))
	p.zobristKey ^= zobrist.pieceSquare[piece][sq]
}

func (p *Position) removePiece(sq Square) Piece {
	removed := p.board[sq]
	c, pt := removed.ColorOf(), removed.TypeOf()
	if assert.DEBUG {
		assert.Assert(removed != PieceNone, "position removePiece: %s already empty", sq)
	}
	p.board[sq] = PieceNone
	p.piecesBb[c][pt].PopSquare(int(sq))
	p.occupiedBb[c].PopSquare(int(sq))
	p.zobristKey ^= zobrist.pieceSquare[removed][sq]
	return removed
}

func rankDistance(a, b Square) int {
	d := int(a.RankOf()) - int(b.RankOf())
	if d < 0 {
		d = -d
	}
	return d
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.epFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}
