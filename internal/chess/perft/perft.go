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

// Package perft counts the leaf nodes of the legal-move tree at a fixed
// depth - the standard correctness oracle for a move generator, since a
// single miscounted move kind (a missing promotion, a wrongly allowed
// pinned-piece move) reliably throws off the node count at some depth even
// when it looks right by eye at depth 1.
package perft

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessmagic/internal/chess/magic"
	"github.com/frankkopp/chessmagic/internal/chess/movegen"
	"github.com/frankkopp/chessmagic/internal/chess/position"
)

var out = message.NewPrinter(language.German)

// Perft accumulates extended node-count statistics for one run. Every
// generated move is already fully legal (movegen.Movegen never emits an
// illegal one), so unlike a pseudo-legal generator this needs no
// do/check/undo-if-illegal dance - every DoMove counts.
type Perft struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64

	mg       *movegen.Movegen
	stopFlag bool
}

// New returns a Perft backed by the magic tables in t.
func New(t *magic.Tables) *Perft {
	return &Perft{mg: movegen.NewMoveGen(t)}
}

// Stop requests that the running perft run (or, if none is running, the
// next one) abandon the remaining search as soon as it next checks. The
// request is cleared when that run returns.
func (pf *Perft) Stop() { pf.stopFlag = true }

func (pf *Perft) reset() {
	pf.Nodes = 0
	pf.Captures = 0
	pf.EnPassant = 0
	pf.Castles = 0
	pf.Promotions = 0
	pf.Checks = 0
	pf.Checkmates = 0
}

// Run counts the leaf nodes of pos's legal-move tree at depth (depth 0
// returns 1, the empty product) and logs a summary in the teacher's
// German-locale format.
func (pf *Perft) Run(pos *position.Position, depth int) uint64 {
	pf.reset()

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", pos.FEN())
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	nodes := pf.search(pos, depth)
	elapsed := time.Since(start)

	if pf.stopFlag {
		pf.stopFlag = false
		out.Print("Perft stopped\n")
		return 0
	}
	pf.Nodes = nodes

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (pf.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", pf.Nodes)
	out.Printf("   Captures  : %d\n", pf.Captures)
	out.Printf("   EnPassant : %d\n", pf.EnPassant)
	out.Printf("   Checks    : %d\n", pf.Checks)
	out.Printf("   CheckMates: %d\n", pf.Checkmates)
	out.Printf("   Castles   : %d\n", pf.Castles)
	out.Printf("   Promotions: %d\n", pf.Promotions)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)

	return nodes
}

func (pf *Perft) search(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	ml := movegen.NewMoveList()
	pf.mg.GenerateLegalMoves(pos, ml)

	var total uint64
	for i := 0; i < ml.Len(); i++ {
		if pf.stopFlag {
			return 0
		}
		move := ml.At(i)

		if depth > 1 {
			pos.DoMove(move)
			total += pf.search(pos, depth-1)
			pos.UndoMove()
			continue
		}

		mover := pos.SideToMove()
		pos.DoMove(move)
		total++
		if move.IsCapture() {
			pf.Captures++
		}
		if move.IsEnPassant() {
			pf.EnPassant++
		}
		if move.IsCastle() {
			pf.Castles++
		}
		if move.IsPromotion() {
			pf.Promotions++
		}
		opponent := mover.Flip()
		if pos.IsAttacked(pos.KingSquare(opponent), mover) {
			pf.Checks++
			if !pf.mg.HasLegalMove(pos) {
				pf.Checkmates++
			}
		}
		pos.UndoMove()
	}
	return total
}

// Divide prints, for each legal root move, the size of its own subtree at
// depth-1 - the standard way to bisect a node-count mismatch down to the
// exact move responsible.
func Divide(t *magic.Tables, pos *position.Position, depth int) {
	if depth == 0 {
		out.Printf("\nMoves: 0\n")
		out.Printf("Total: 1\n")
		return
	}
	mg := movegen.NewMoveGen(t)
	ml := movegen.NewMoveList()
	mg.GenerateLegalMoves(pos, ml)

	pf := New(t)
	var total uint64
	for i := 0; i < ml.Len(); i++ {
		move := ml.At(i)
		pos.DoMove(move)
		nodes := pf.search(pos, depth-1)
		pos.UndoMove()
		total += nodes
		out.Printf("%s: %d\n", move.String(), nodes)
	}
	out.Printf("\nMoves: %d\n", ml.Len())
	out.Printf("Total: %d\n", total)
}
