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
	"fmt"
	"strconv"
	"strings"

	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

// FEN renders the position as a FEN string. Each rank's empty-square run
// is flushed independently - it never continues across a rank boundary,
// the inverse of how parseFEN reads one rank at a time.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := Rank8; r <= Rank1; r++ {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r < Rank1 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	return sb.String()
}

// parseFEN fills p from the six space-separated FEN fields. Only the
// piece-placement field is mandatory; an absent field after it falls back
// to white to move, no castling rights, no en-passant square, halfmove
// clock 0 and fullmove number 1, matching how test positions are
// frequently given as placement-only strings.
func (p *Position) parseFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return fmt.Errorf("empty fen")
	}

	if err := p.parsePlacement(fields[0]); err != nil {
		return err
	}

	p.sideToMove = White
	p.castlingRights = CastlingNone
	p.enPassantSquare = SqNone
	p.halfMoveClock = 0
	p.fullMoveNumber = 1

	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.sideToMove = White
		case "b":
			p.sideToMove = Black
			p.zobristKey ^= zobrist.sideToMove
		default:
			return fmt.Errorf("invalid side to move %q", fields[1])
		}
	}

	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights.Add(CastlingWhiteOO)
			case 'Q':
				p.castlingRights.Add(CastlingWhiteOOO)
			case 'k':
				p.castlingRights.Add(CastlingBlackOO)
			case 'q':
				p.castlingRights.Add(CastlingBlackOOO)
			default:
				return fmt.Errorf("invalid castling rights %q", fields[2])
			}
		}
	}
	p.zobristKey ^= zobrist.castling[p.castlingRights]

	if len(fields) >= 4 && fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if !sq.IsValid() {
			return fmt.Errorf("invalid en passant square %q", fields[3])
		}
		p.enPassantSquare = sq
		p.zobristKey ^= zobrist.epFile[sq.FileOf()]
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid half move clock %q", fields[4])
		}
		p.halfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n == 0 {
			return fmt.Errorf("invalid full move number %q", fields[5])
		}
		p.fullMoveNumber = n
	}

	return p.validate()
}

// parsePlacement reads field[0] rank by rank (top rank = rank 8), so an
// empty-run digit or a "/" separator can never be misread as crossing into
// the next rank - each rank is parsed independently and must itself sum to
// exactly 8 files.
func (p *Position) parsePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen placement must have 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank(i)
		file := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			pc := PieceFromChar(string(c))
			if pc == PieceNone {
				return fmt.Errorf("invalid piece character %q", c)
			}
			if !file.IsValid() {
				return fmt.Errorf("rank %d overflows 8 files", 8-i)
			}
			p.putPiece(pc, SquareOf(file, r))
			file++
		}
		if file != File(8) {
			return fmt.Errorf("rank %d does not sum to 8 files", 8-i)
		}
	}
	return nil
}

// validate rejects structurally well-formed but illegal positions: a
// missing or duplicated king, the side not to move left in check (it
// should have been captured on the previous move), or an en-passant
// square that is inconsistent with the side to move.
func (p *Position) validate() error {
	if p.piecesBb[White][King].PopCount() != 1 {
		return fmt.Errorf("white must have exactly one king")
	}
	if p.piecesBb[Black][King].PopCount() != 1 {
		return fmt.Errorf("black must have exactly one king")
	}
	if p.IsAttacked(p.kingSquare[p.sideToMove.Flip()], p.sideToMove) {
		return fmt.Errorf("side not to move is in check")
	}
	if p.enPassantSquare != SqNone {
		// A pawn just double-pushed by the side NOT to move: if white to
		// move, black pushed last and the target sits on rank 6; if black
		// to move, white pushed last and it sits on rank 3.
		expectedRank := Rank6
		if p.sideToMove == Black {
			expectedRank = Rank3
		}
		if p.enPassantSquare.RankOf() != expectedRank {
			return fmt.Errorf("en passant square %s inconsistent with side to move", p.enPassantSquare)
		}
	}
	return nil
}
