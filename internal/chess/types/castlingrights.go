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

import "strings"

// CastlingRights packs the four castling flags into one nibble:
//  CastlingWhiteOO  = 0001
//  CastlingWhiteOOO = 0010
//  CastlingBlackOO  = 0100
//  CastlingBlackOOO = 1000
type CastlingRights uint8

const (
	CastlingNone         CastlingRights = 0
	CastlingWhiteOO      CastlingRights = 1
	CastlingWhiteOOO     CastlingRights = CastlingWhiteOO << 1
	CastlingWhite        CastlingRights = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlackOO      CastlingRights = CastlingWhiteOO << 2
	CastlingBlackOOO     CastlingRights = CastlingBlackOO << 1
	CastlingBlack        CastlingRights = CastlingBlackOO | CastlingBlackOOO
	CastlingAny          CastlingRights = CastlingWhite | CastlingBlack
	CastlingRightsLength CastlingRights = 16
)

// Has reports whether every flag set in rhs is also set in cr. Has with
// CastlingNone (no flags) is always false.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs && rhs != 0
}

// Remove clears the given flags and returns the new value.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr = *cr &^ rhs
	return *cr
}

// Add sets the given flags and returns the new value.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr = *cr | rhs
	return *cr
}

// KingSide and QueenSide return the single castling flag for color c,
// useful when rook moves/captures must clear only one side's right.
func KingSide(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOO
	}
	return CastlingBlackOO
}

func QueenSide(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOOO
	}
	return CastlingBlackOOO
}

// OfColor returns both of a single color's castling flags, used to clear
// both rights at once on a king move.
func OfColor(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// castlingRightsOfSquare maps the six squares that matter for castling
// bookkeeping (both kings' home squares, all four rooks' home squares) to
// the right(s) a move touching that square - as either origin or
// destination - invalidates. Every other square maps to CastlingNone.
var castlingRightsOfSquare = [64]CastlingRights{
	SqA8: CastlingBlackOOO,
	SqE8: CastlingBlack,
	SqH8: CastlingBlackOO,
	SqA1: CastlingWhiteOOO,
	SqE1: CastlingWhite,
	SqH1: CastlingWhiteOO,
}

// CastlingRightsForSquare returns the castling right(s) invalidated by a
// piece moving onto or off of sq: a king or rook leaving its home square,
// or an enemy capturing a rook still sitting on its home square, both
// clear the corresponding right.
func CastlingRightsForSquare(sq Square) CastlingRights {
	return castlingRightsOfSquare[sq]
}

// String renders the FEN castling-rights field ("KQkq", or "-" if none).
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr.Has(CastlingWhiteOO) {
		sb.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		sb.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		sb.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		sb.WriteString("q")
	}
	return sb.String()
}
