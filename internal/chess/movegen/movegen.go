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

// Package movegen generates fully legal moves directly - no pseudo-legal
// pass followed by a make/is-it-check/unmake filter. A king-safety pass
// (genState) computes which squares answer any current check, which
// pieces are pinned and along which axis, and which squares the enemy
// attacks; every piece-specific appender below masks its pseudo-legal
// targets against that state before a move ever reaches the MoveList.
package movegen

import (
	"github.com/frankkopp/chessmagic/internal/chess/bitboard"
	"github.com/frankkopp/chessmagic/internal/chess/magic"
	"github.com/frankkopp/chessmagic/internal/chess/position"
	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

// Movegen generates legal moves for a position using a shared, read-only
// magic.Tables. It carries no per-call state itself - genState does - so a
// single Movegen is safe to reuse (including concurrently) across many
// positions.
type Movegen struct {
	tables *magic.Tables
}

// NewMoveGen returns a Movegen backed by t.
func NewMoveGen(t *magic.Tables) *Movegen {
	return &Movegen{tables: t}
}

// GenerateLegalMoves fills ml (after resetting it) with every legal move
// in pos. King moves are generated first since they remain legal even
// under double check, when every other piece is frozen in place.
func (mg *Movegen) GenerateLegalMoves(pos *position.Position, ml *MoveList) {
	ml.Reset()
	gs := newGenState(pos, mg.tables)

	mg.appendKingMoves(pos, gs, ml)
	if gs.doubleCheck() {
		return
	}

	mg.appendCastlingMoves(pos, gs, ml)
	mg.appendKnightMoves(pos, gs, ml)
	mg.appendSliderMoves(pos, gs, ml, Bishop)
	mg.appendSliderMoves(pos, gs, ml, Rook)
	mg.appendSliderMoves(pos, gs, ml, Queen)
	mg.appendPawnMoves(pos, gs, ml)
}

// HasLegalMove reports whether pos has at least one legal move, for
// checkmate/stalemate detection without the caller needing to inspect a
// full move list.
func (mg *Movegen) HasLegalMove(pos *position.Position) bool {
	var ml MoveList
	ml.moves = make([]Move, 0, 8)
	mg.GenerateLegalMoves(pos, &ml)
	return ml.Len() > 0
}

func (mg *Movegen) appendKingMoves(pos *position.Position, gs *genState, ml *MoveList) {
	king := gs.kingSq
	targets := mg.tables.King[king] &^ gs.friendlyOcc &^ gs.seenByEnemy
	for targets != 0 {
		var to int
		to, targets = targets.PopLsb()
		flag := Quiet
		if gs.enemyOcc.Has(to) {
			flag = Capture
		}
		ml.Push(NewMove(king, Square(to), flag))
	}
}

// Castling square masks, one per side per color: emptySquares must be
// clear for the rook to reach its destination, safeSquares (the king's
// transit and landing squares) must not be attacked - the king's start
// square is already known safe since castling is forbidden while in check.
var (
	whiteOOEmpty  = bitboard.Square(int(SqF1)) | bitboard.Square(int(SqG1))
	whiteOOSafe   = whiteOOEmpty
	whiteOOOEmpty = bitboard.Square(int(SqB1)) | bitboard.Square(int(SqC1)) | bitboard.Square(int(SqD1))
	whiteOOOSafe  = bitboard.Square(int(SqC1)) | bitboard.Square(int(SqD1))
	blackOOEmpty  = bitboard.Square(int(SqF8)) | bitboard.Square(int(SqG8))
	blackOOSafe   = blackOOEmpty
	blackOOOEmpty = bitboard.Square(int(SqB8)) | bitboard.Square(int(SqC8)) | bitboard.Square(int(SqD8))
	blackOOOSafe  = bitboard.Square(int(SqC8)) | bitboard.Square(int(SqD8))
)

func (mg *Movegen) appendCastlingMoves(pos *position.Position, gs *genState, ml *MoveList) {
	if gs.inCheck() {
		return
	}
	rights := pos.CastlingRights()
	if gs.us == White {
		if rights.Has(CastlingWhiteOO) && gs.occupied&whiteOOEmpty == 0 && gs.seenByEnemy&whiteOOSafe == 0 {
			ml.Push(NewMove(SqE1, SqG1, CastleKingSide))
		}
		if rights.Has(CastlingWhiteOOO) && gs.occupied&whiteOOOEmpty == 0 && gs.seenByEnemy&whiteOOOSafe == 0 {
			ml.Push(NewMove(SqE1, SqC1, CastleQueenSide))
		}
		return
	}
	if rights.Has(CastlingBlackOO) && gs.occupied&blackOOEmpty == 0 && gs.seenByEnemy&blackOOSafe == 0 {
		ml.Push(NewMove(SqE8, SqG8, CastleKingSide))
	}
	if rights.Has(CastlingBlackOOO) && gs.occupied&blackOOOEmpty == 0 && gs.seenByEnemy&blackOOOSafe == 0 {
		ml.Push(NewMove(SqE8, SqC8, CastleQueenSide))
	}
}

// appendKnightMoves excludes pinned knights outright rather than masking
// against the pin line: no knight move is ever collinear with its own
// square and the king, so a pinned knight never has a legal move.
func (mg *Movegen) appendKnightMoves(pos *position.Position, gs *genState, ml *MoveList) {
	knights := pos.PiecesBb(gs.us, Knight) &^ gs.pinnedHV &^ gs.pinnedD
	for knights != 0 {
		var from int
		from, knights = knights.PopLsb()
		targets := mg.tables.Knight[from] &^ gs.friendlyOcc & gs.checkMask
		for targets != 0 {
			var to int
			to, targets = targets.PopLsb()
			flag := Quiet
			if gs.enemyOcc.Has(to) {
				flag = Capture
			}
			ml.Push(NewMove(Square(from), Square(to), flag))
		}
	}
}

// appendSliderMoves handles bishops, rooks and queens uniformly: a bishop
// pinned along a rank/file, or a rook pinned along a diagonal, has no
// legal move at all, while a queen (or a piece pinned along its own kind
// of line) is masked down to the pin line via pinRestrict.
func (mg *Movegen) appendSliderMoves(pos *position.Position, gs *genState, ml *MoveList, pt PieceType) {
	pieces := pos.PiecesBb(gs.us, pt)
	for pieces != 0 {
		var from int
		from, pieces = pieces.PopLsb()
		fromSq := Square(from)

		if pt == Bishop && gs.pinnedHV.Has(from) {
			continue
		}
		if pt == Rook && gs.pinnedD.Has(from) {
			continue
		}

		var attacks bitboard.Board
		switch pt {
		case Bishop:
			attacks = mg.tables.BishopAttacks(fromSq, gs.occupied)
		case Rook:
			attacks = mg.tables.RookAttacks(fromSq, gs.occupied)
		default:
			attacks = mg.tables.QueenAttacks(fromSq, gs.occupied)
		}
		attacks = gs.pinRestrict(from, attacks) &^ gs.friendlyOcc & gs.checkMask

		for attacks != 0 {
			var to int
			to, attacks = attacks.PopLsb()
			flag := Quiet
			if gs.enemyOcc.Has(to) {
				flag = Capture
			}
			ml.Push(NewMove(fromSq, Square(to), flag))
		}
	}
}

var pawnCaptureDirs = [2][2]Direction{
	White: {NorthEast, NorthWest},
	Black: {SouthEast, SouthWest},
}

func (mg *Movegen) appendPawnMoves(pos *position.Position, gs *genState, ml *MoveList) {
	us, them := gs.us, gs.them
	dir := us.PawnDirection()
	promoRank := us.PromotionRank()
	startRank := us.PawnStartRank()
	empty := ^gs.occupied

	pawns := pos.PiecesBb(us, Pawn)
	for pawns != 0 {
		var from int
		from, pawns = pawns.PopLsb()
		fromSq := Square(from)

		if to := fromSq.To(dir); to.IsValid() && empty.Has(int(to)) {
			if gs.pinRestrict(from, bitboard.Square(int(to)))&gs.checkMask != 0 {
				appendPawnTarget(ml, fromSq, to, false, promoRank)
			}
			if fromSq.RankOf() == startRank {
				if to2 := to.To(dir); to2.IsValid() && empty.Has(int(to2)) {
					if gs.pinRestrict(from, bitboard.Square(int(to2)))&gs.checkMask != 0 {
						ml.Push(NewMove(fromSq, to2, DoublePawnPush))
					}
				}
			}
		}

		for _, capDir := range pawnCaptureDirs[us] {
			to := fromSq.To(capDir)
			if !to.IsValid() || !gs.enemyOcc.Has(int(to)) {
				continue
			}
			if gs.pinRestrict(from, bitboard.Square(int(to)))&gs.checkMask != 0 {
				appendPawnTarget(ml, fromSq, to, true, promoRank)
			}
		}

		ep := pos.EnPassantSquare()
		if !ep.IsValid() {
			continue
		}
		for _, capDir := range pawnCaptureDirs[us] {
			to := fromSq.To(capDir)
			if to != ep {
				continue
			}
			capturedSq := ep.To(them.PawnDirection())
			if gs.checkMask&(bitboard.Square(int(ep))|bitboard.Square(int(capturedSq))) == 0 {
				continue
			}
			if gs.pinRestrict(from, bitboard.Square(int(ep))) == 0 {
				continue
			}
			if !mg.enPassantSafe(pos, gs, fromSq, capturedSq) {
				continue
			}
			ml.Push(NewMove(fromSq, ep, EnPassantCapture))
		}
	}
}

func appendPawnTarget(ml *MoveList, from, to Square, isCapture bool, promoRank Rank) {
	if to.RankOf() == promoRank {
		if isCapture {
			ml.Push(NewMove(from, to, PromoQueenCapture))
			ml.Push(NewMove(from, to, PromoRookCapture))
			ml.Push(NewMove(from, to, PromoBishopCapture))
			ml.Push(NewMove(from, to, PromoKnightCapture))
		} else {
			ml.Push(NewMove(from, to, PromoQueen))
			ml.Push(NewMove(from, to, PromoRook))
			ml.Push(NewMove(from, to, PromoBishop))
			ml.Push(NewMove(from, to, PromoKnight))
		}
		return
	}
	if isCapture {
		ml.Push(NewMove(from, to, Capture))
	} else {
		ml.Push(NewMove(from, to, Quiet))
	}
}

// enPassantSafe re-checks slider attacks on the king against the board as
// it stands after the capture - the capturing and captured pawns removed
// from their squares, the capturing pawn placed on the en-passant square:
// the one case the pin masks above cannot see, since neither pawn alone
// blocks the rank (or diagonal) a slider sits on - only the two of them
// together do.
func (mg *Movegen) enPassantSafe(pos *position.Position, gs *genState, from, capturedSq Square) bool {
	occ := gs.occupied&^bitboard.Square(int(from))&^bitboard.Square(int(capturedSq)) | bitboard.Square(int(pos.EnPassantSquare()))
	them := gs.them

	rookLike := pos.PiecesBb(them, Rook) | pos.PiecesBb(them, Queen)
	if rookLike != 0 && mg.tables.RookAttacks(gs.kingSq, occ)&rookLike != 0 {
		return false
	}
	bishopLike := pos.PiecesBb(them, Bishop) | pos.PiecesBb(them, Queen)
	if bishopLike != 0 && mg.tables.BishopAttacks(gs.kingSq, occ)&bishopLike != 0 {
		return false
	}
	return true
}
