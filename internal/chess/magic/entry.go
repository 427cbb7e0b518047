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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/frankkopp/chessmagic/internal/chess/bitboard"
	. "github.com/frankkopp/chessmagic/internal/chess/types"
)

// Entry is one square's magic record: the relevance mask, the magic
// constant, the shift, and the entry's offset into the shared sliding
// attack table.
type Entry struct {
	Mask   bitboard.Board
	Magic  bitboard.Board
	Shift  uint64
	Offset uint64
}

// Index computes the bucket for occupancy occ: ((occ & mask) * magic) >> shift.
func (e Entry) Index(occ bitboard.Board) uint64 {
	return uint64((occ & e.Mask) * e.Magic >> e.Shift)
}

// Tables is the full set of precomputed attack data: process-wide,
// immutable once built or loaded. Every field is a plain value or slice;
// nothing here is mutated after Build/Load returns.
type Tables struct {
	RookMagics   [64]Entry
	BishopMagics [64]Entry
	Sliding      []bitboard.Board
	Knight       [64]bitboard.Board
	King         [64]bitboard.Board
	Pawn         [2][64]bitboard.Board
}

// RookAttacks, BishopAttacks and QueenAttacks are the O(1) sliding-attack
// lookups described in spec section 4.4. occupied includes blockers of
// either color; the caller masks away its own pieces.
func (t *Tables) RookAttacks(sq Square, occupied bitboard.Board) bitboard.Board {
	e := t.RookMagics[sq]
	return t.Sliding[e.Offset+e.Index(occupied)]
}

func (t *Tables) BishopAttacks(sq Square, occupied bitboard.Board) bitboard.Board {
	e := t.BishopMagics[sq]
	return t.Sliding[e.Offset+e.Index(occupied)]
}

func (t *Tables) QueenAttacks(sq Square, occupied bitboard.Board) bitboard.Board {
	return t.RookAttacks(sq, occupied) | t.BishopAttacks(sq, occupied)
}

const (
	fileMagicHeader  = "FGCMAGIC"
	fileMagicVersion = uint32(1)
)

// Save serializes the tables to path in the binary layout described by
// spec section 6: an 8-byte header, a u32 version, the two magic entry
// arrays, the length-prefixed sliding table, then the three non-sliding
// attack arrays, all little-endian.
func (t *Tables) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("magic: create table file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	if _, err = w.WriteString(fileMagicHeader); err != nil {
		return err
	}
	if err = binary.Write(w, binary.LittleEndian, fileMagicVersion); err != nil {
		return err
	}
	for _, e := range t.RookMagics {
		if err = writeEntry(w, e); err != nil {
			return err
		}
	}
	for _, e := range t.BishopMagics {
		if err = writeEntry(w, e); err != nil {
			return err
		}
	}
	if err = binary.Write(w, binary.LittleEndian, uint64(len(t.Sliding))); err != nil {
		return err
	}
	for _, bb := range t.Sliding {
		if err = binary.Write(w, binary.LittleEndian, uint64(bb)); err != nil {
			return err
		}
	}
	for _, bb := range t.Knight {
		if err = binary.Write(w, binary.LittleEndian, uint64(bb)); err != nil {
			return err
		}
	}
	for _, bb := range t.King {
		if err = binary.Write(w, binary.LittleEndian, uint64(bb)); err != nil {
			return err
		}
	}
	for _, color := range t.Pawn {
		for _, bb := range color {
			if err = binary.Write(w, binary.LittleEndian, uint64(bb)); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

func writeEntry(w io.Writer, e Entry) error {
	for _, v := range []uint64{uint64(e.Magic), uint64(e.Mask), e.Shift, e.Offset} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a table file written by Save. A missing file, a truncated
// file, or a header/version mismatch is returned as an error; what to do
// about it is the caller's decision (cmd/FrankyGoCore logs a warning and
// builds the tables in process instead).
func Load(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("magic: open table file: %w", err)
	}
	defer f.Close()
	r := bufio.NewReader(f)

	header := make([]byte, len(fileMagicHeader))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("magic: read header: %w", err)
	}
	if string(header) != fileMagicHeader {
		return nil, fmt.Errorf("magic: bad header %q, table file is not a chessmagic table", header)
	}
	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("magic: read version: %w", err)
	}
	if version != fileMagicVersion {
		return nil, fmt.Errorf("magic: unsupported table version %d, expected %d", version, fileMagicVersion)
	}

	t := &Tables{}
	for i := range t.RookMagics {
		if t.RookMagics[i], err = readEntry(r); err != nil {
			return nil, fmt.Errorf("magic: read rook magic %d: %w", i, err)
		}
	}
	for i := range t.BishopMagics {
		if t.BishopMagics[i], err = readEntry(r); err != nil {
			return nil, fmt.Errorf("magic: read bishop magic %d: %w", i, err)
		}
	}
	var slidingLen uint64
	if err := binary.Read(r, binary.LittleEndian, &slidingLen); err != nil {
		return nil, fmt.Errorf("magic: read sliding table length: %w", err)
	}
	t.Sliding = make([]bitboard.Board, slidingLen)
	for i := range t.Sliding {
		if t.Sliding[i], err = readBoard(r); err != nil {
			return nil, fmt.Errorf("magic: read sliding table entry %d: %w", i, err)
		}
	}
	for i := range t.Knight {
		if t.Knight[i], err = readBoard(r); err != nil {
			return nil, fmt.Errorf("magic: read knight attacks %d: %w", i, err)
		}
	}
	for i := range t.King {
		if t.King[i], err = readBoard(r); err != nil {
			return nil, fmt.Errorf("magic: read king attacks %d: %w", i, err)
		}
	}
	for c := range t.Pawn {
		for i := range t.Pawn[c] {
			if t.Pawn[c][i], err = readBoard(r); err != nil {
				return nil, fmt.Errorf("magic: read pawn attacks %d/%d: %w", c, i, err)
			}
		}
	}
	return t, nil
}

func readEntry(r io.Reader) (Entry, error) {
	vals := make([]uint64, 4)
	for i := range vals {
		if err := binary.Read(r, binary.LittleEndian, &vals[i]); err != nil {
			return Entry{}, err
		}
	}
	return Entry{Magic: bitboard.Board(vals[0]), Mask: bitboard.Board(vals[1]), Shift: vals[2], Offset: vals[3]}, nil
}

func readBoard(r io.Reader) (bitboard.Board, error) {
	var v uint64
	err := binary.Read(r, binary.LittleEndian, &v)
	return bitboard.Board(v), err
}
