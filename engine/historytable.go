package engine

import c "github.com/ChizhovVadim/gochess/common"

// historyTable accumulates a quiet cutoff score per side/from/to square.
type historyTable [2][64][64]int

func (ht *historyTable) clear() {
	*ht = historyTable{}
}

func (ht *historyTable) add(side bool, m c.Move, depth int) {
	ht[colorSideIndex(side)][m.From()][m.To()] += depth * depth
}

func (ht *historyTable) score(side bool, m c.Move) int {
	return ht[colorSideIndex(side)][m.From()][m.To()]
}

// killerTable holds two killer slots per ply, rotated on update.
type killerTable [c.MaxPly][2]c.Move

func (kt *killerTable) clear() {
	*kt = killerTable{}
}

func (kt *killerTable) add(ply int, m c.Move) {
	if kt[ply][0] != m {
		kt[ply][1] = kt[ply][0]
		kt[ply][0] = m
	}
}

func (kt *killerTable) probe(ply int) (c.Move, c.Move) {
	return kt[ply][0], kt[ply][1]
}
