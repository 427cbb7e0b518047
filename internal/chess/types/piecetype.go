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

// PieceType is one of the six chess piece kinds, color-agnostic.
type PieceType uint8

//noinspection GoUnusedConst
const (
	PieceTypeNone PieceType = 0
	Pawn          PieceType = 1
	Knight        PieceType = 2
	Bishop        PieceType = 3
	Rook          PieceType = 4
	Queen         PieceType = 5
	King          PieceType = 6
	PieceTypeLength PieceType = 7
)

// IsValid checks if pt represents a real piece type (excludes the None
// sentinel).
func (pt PieceType) IsValid() bool {
	return pt > PieceTypeNone && pt < PieceTypeLength
}

const pieceTypeLabels string = "-PNBRQK"

// String returns an upper-case letter label ("P","N","B","R","Q","K"), or
// "-" for PieceTypeNone.
func (pt PieceType) String() string {
	if pt >= PieceTypeLength {
		return "-"
	}
	return string(pieceTypeLabels[pt])
}

// IsSlider reports whether this piece type's attacks come from the magic
// sliding-attack tables (bishop, rook, queen) rather than a fixed pattern.
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}
