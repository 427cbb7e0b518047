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

import "fmt"

// Move is a packed 16-bit chess move:
//  bits 0-5   to-square
//  bits 6-11  from-square
//  bits 12-15 flag (one of the MoveFlag constants)
//
// Unlike the search-oriented 32-bit move (16-bit move plus a 16-bit sort
// value) this is the bare move the position model and move generator trade
// in; a search layer built on top is free to carry its own ordering value
// alongside a Move rather than packed into it.
type Move uint16

// MoveNone is the zero value, used as a sentinel ("no move").
const MoveNone Move = 0

const (
	toMask    = 0x003F
	fromShift = 6
	fromMask  = 0x0FC0
	flagShift = 12
)

// MoveFlag is the 4-bit tag identifying one of the 14 move kinds.
type MoveFlag uint8

//noinspection GoUnusedConst
const (
	Quiet MoveFlag = iota
	DoublePawnPush
	CastleKingSide
	CastleQueenSide
	Capture
	EnPassantCapture
	PromoKnight
	PromoBishop
	PromoRook
	PromoQueen
	PromoKnightCapture
	PromoBishopCapture
	PromoRookCapture
	PromoQueenCapture
)

// NewMove packs a from/to/flag triple into a Move.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(to)&toMask | (uint16(from)<<fromShift)&fromMask | uint16(flag)<<flagShift)
}

// From returns the origin square.
func (m Move) From() Square { return Square((m & fromMask) >> fromShift) }

// To returns the destination square.
func (m Move) To() Square { return Square(m & toMask) }

// Flag returns the move's tag.
func (m Move) Flag() MoveFlag { return MoveFlag(m >> flagShift) }

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flag() >= PromoKnight }

// IsCapture reports whether this move captures a piece (including
// en passant and capture-promotions).
func (m Move) IsCapture() bool {
	switch m.Flag() {
	case Capture, EnPassantCapture, PromoKnightCapture, PromoBishopCapture, PromoRookCapture, PromoQueenCapture:
		return true
	default:
		return false
	}
}

// IsCastle reports whether this move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == CastleKingSide || f == CastleQueenSide
}

// IsEnPassant reports whether this move is an en passant capture.
func (m Move) IsEnPassant() bool { return m.Flag() == EnPassantCapture }

// IsDoublePawnPush reports whether this move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool { return m.Flag() == DoublePawnPush }

// PromotionType returns the piece type a promotion move upgrades to.
// Only meaningful when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	switch m.Flag() {
	case PromoKnight, PromoKnightCapture:
		return Knight
	case PromoBishop, PromoBishopCapture:
		return Bishop
	case PromoRook, PromoRookCapture:
		return Rook
	case PromoQueen, PromoQueenCapture:
		return Queen
	default:
		return PieceTypeNone
	}
}

// IsValid reports whether m carries well-formed from/to squares. It does
// not check whether m is a legal move in any position - that is the legal
// move generator's contract, never the Move type's.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid()
}

// String renders the move in long algebraic form ("e2e4", "e7e8q").
func (m Move) String() string {
	if m == MoveNone {
		return "no-move"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promotionLetters[m.PromotionType()]
	}
	return s
}

var promotionLetters = map[PieceType]string{
	Knight: "n",
	Bishop: "b",
	Rook:   "r",
	Queen:  "q",
}

// StringUci is an alias of String: the packed move's text rendering is
// already UCI's long algebraic form.
func (m Move) StringUci() string { return m.String() }

// StringBits renders the move's raw encoding, useful when debugging a
// mismatch between an expected and actual packed value.
func (m Move) StringBits() string {
	return fmt.Sprintf("%016b (from=%s to=%s flag=%d)", uint16(m), m.From(), m.To(), m.Flag())
}
