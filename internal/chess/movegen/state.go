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
	"github.com/frankkopp/chessmagic/internal/chess/bitboard"
	"github.com/frankkopp/chessmagic/internal/chess/magic"
	"github.com/frankkopp/chessmagic/internal/chess/position"
	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

// genState is the king-safety bookkeeping computed once per
// GenerateLegalMoves call and consulted by every piece-specific appender:
// which squares answer the current check(s), which friendly pieces are
// pinned and along which axis, and which squares the enemy attacks. This
// replaces a make-move/is-it-check/unmake trial for every pseudo-legal
// move with one upfront pass.
type genState struct {
	us, them                 Color
	kingSq                   Square
	friendlyOcc, enemyOcc    bitboard.Board
	occupied                 bitboard.Board

	// checkMask is the set of squares a non-king move must land on to be
	// legal: Universe when the king is not in check, the checking piece's
	// own square plus any blocking squares when it is, Empty when two
	// pieces check at once (no single non-king move answers both).
	checkMask  bitboard.Board
	checkCount int

	// pinnedHV/pinnedD mark friendly pieces pinned by a rook/queen along a
	// rank or file, respectively a bishop/queen along a diagonal. A pinned
	// piece's legal destinations are further restricted to lineBB[kingSq][sq].
	pinnedHV, pinnedD bitboard.Board

	// seenByEnemy is every square an enemy piece attacks, computed with the
	// friendly king removed from the occupancy so a slider's ray is seen to
	// extend through the square the king currently stands on.
	seenByEnemy bitboard.Board
}

func newGenState(pos *position.Position, t *magic.Tables) *genState {
	us := pos.SideToMove()
	them := us.Flip()
	gs := &genState{
		us:          us,
		them:        them,
		kingSq:      pos.KingSquare(us),
		friendlyOcc: pos.OccupiedBy(us),
		enemyOcc:    pos.OccupiedBy(them),
		occupied:    pos.Occupied(),
	}
	gs.calculateCheckMask(pos, t)
	gs.calculatePinMask(pos, t)
	gs.calculateSeenByEnemy(pos, t)
	return gs
}

func (gs *genState) inCheck() bool     { return gs.checkCount > 0 }
func (gs *genState) doubleCheck() bool { return gs.checkCount >= 2 }

// pinRestrict narrows targets to the pin line when the piece standing on
// "from" is pinned, a no-op otherwise. Works uniformly for sliders and
// pawns: a pinned piece's only legal destinations are squares collinear
// with the king and the piece itself.
func (gs *genState) pinRestrict(from int, targets bitboard.Board) bitboard.Board {
	if gs.pinnedHV.Has(from) || gs.pinnedD.Has(from) {
		return targets & lineBB[gs.kingSq][Square(from)]
	}
	return targets
}

// calculateCheckMask finds every enemy piece attacking the king via the
// "superpiece" trick: place each attacker kind on the king's square and
// see which real enemy pieces of that kind it would hit. A knight or pawn
// checker can only be answered by capturing it (its mask is its own
// square); a slider checker can also be answered by blocking, so its mask
// extends across the ray between it and the king.
func (gs *genState) calculateCheckMask(pos *position.Position, t *magic.Tables) {
	king, us, them := gs.kingSq, gs.us, gs.them
	var mask bitboard.Board
	count := 0

	if knights := t.Knight[king] & pos.PiecesBb(them, Knight); knights != 0 {
		count += knights.PopCount()
		mask |= knights
	}
	if pawns := t.Pawn[us][king] & pos.PiecesBb(them, Pawn); pawns != 0 {
		count += pawns.PopCount()
		mask |= pawns
	}

	rookLike := pos.PiecesBb(them, Rook) | pos.PiecesBb(them, Queen)
	if checkers := t.RookAttacks(king, gs.occupied) & rookLike; checkers != 0 {
		count += checkers.PopCount()
		for checkers != 0 {
			var sq int
			sq, checkers = checkers.PopLsb()
			mask |= betweenBB[king][sq] | bitboard.Square(sq)
		}
	}
	bishopLike := pos.PiecesBb(them, Bishop) | pos.PiecesBb(them, Queen)
	if checkers := t.BishopAttacks(king, gs.occupied) & bishopLike; checkers != 0 {
		count += checkers.PopCount()
		for checkers != 0 {
			var sq int
			sq, checkers = checkers.PopLsb()
			mask |= betweenBB[king][sq] | bitboard.Square(sq)
		}
	}

	gs.checkCount = count
	if count == 0 {
		mask = bitboard.Universe
	}
	gs.checkMask = mask
}

// calculatePinMask finds pins by sliding from the king through an
// occupancy of enemy pieces only: the ray stops at the first enemy piece
// regardless of kind, so intersecting the result with enemy rooks/queens
// (or bishops/queens) tells us whether that first piece is actually a
// slider able to pin. Whatever friendly piece, if exactly one, sits
// between the king and that slider is pinned.
func (gs *genState) calculatePinMask(pos *position.Position, t *magic.Tables) {
	king, them := gs.kingSq, gs.them

	rookLike := pos.PiecesBb(them, Rook) | pos.PiecesBb(them, Queen)
	if rookLike != 0 {
		pinners := t.RookAttacks(king, gs.enemyOcc) & rookLike
		for pinners != 0 {
			var sq int
			sq, pinners = pinners.PopLsb()
			if blockers := betweenBB[king][sq] & gs.friendlyOcc; blockers.PopCount() == 1 {
				gs.pinnedHV |= blockers
			}
		}
	}
	bishopLike := pos.PiecesBb(them, Bishop) | pos.PiecesBb(them, Queen)
	if bishopLike != 0 {
		pinners := t.BishopAttacks(king, gs.enemyOcc) & bishopLike
		for pinners != 0 {
			var sq int
			sq, pinners = pinners.PopLsb()
			if blockers := betweenBB[king][sq] & gs.friendlyOcc; blockers.PopCount() == 1 {
				gs.pinnedD |= blockers
			}
		}
	}
}

// calculateSeenByEnemy computes every square the enemy attacks, with the
// friendly king removed from the occupancy first: otherwise a slider
// checking the king along a ray would appear to stop AT the king, making
// the square directly behind it look falsely safe to retreat to.
func (gs *genState) calculateSeenByEnemy(pos *position.Position, t *magic.Tables) {
	them := gs.them
	occ := gs.occupied &^ bitboard.Square(int(gs.kingSq))
	var seen bitboard.Board

	knights := pos.PiecesBb(them, Knight)
	for knights != 0 {
		var sq int
		sq, knights = knights.PopLsb()
		seen |= t.Knight[sq]
	}
	seen |= t.King[pos.KingSquare(them)]
	pawns := pos.PiecesBb(them, Pawn)
	for pawns != 0 {
		var sq int
		sq, pawns = pawns.PopLsb()
		seen |= t.Pawn[them][sq]
	}
	rookLike := pos.PiecesBb(them, Rook) | pos.PiecesBb(them, Queen)
	for rookLike != 0 {
		var sq int
		sq, rookLike = rookLike.PopLsb()
		seen |= t.RookAttacks(Square(sq), occ)
	}
	bishopLike := pos.PiecesBb(them, Bishop) | pos.PiecesBb(them, Queen)
	for bishopLike != 0 {
		var sq int
		sq, bishopLike = bishopLike.PopLsb()
		seen |= t.BishopAttacks(Square(sq), occ)
	}

	gs.seenByEnemy = seen
}
