package engine

import c "github.com/ChizhovVadim/gochess/common"

const (
	boundExact = iota + 1
	boundLower
	boundUpper
)

type transEntry struct {
	key   uint64
	move  c.Move
	score int16
	depth int8
	bound uint8
}

// transTable is a fixed-size hash table with depth-preferred replacement.
// One Engine value has exactly one searcher at a time, so entries need no
// synchronization.
type transTable struct {
	entries []transEntry
	mask    uint64
}

const ttSizeLog2 = 20 // 2^20 entries

func newTransTable() *transTable {
	var size = 1 << ttSizeLog2
	return &transTable{
		entries: make([]transEntry, size),
		mask:    uint64(size - 1),
	}
}

func (tt *transTable) clear() {
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

func (tt *transTable) probe(key uint64) (entry transEntry, ok bool) {
	var e = &tt.entries[key&tt.mask]
	if e.key == key && key != 0 {
		return *e, true
	}
	return transEntry{}, false
}

func (tt *transTable) store(key uint64, depth, score, bound int, move c.Move) {
	var e = &tt.entries[key&tt.mask]
	if e.key == 0 || depth >= int(e.depth) {
		e.key = key
		e.move = move
		e.score = int16(score)
		e.depth = int8(depth)
		e.bound = uint8(bound)
	}
}
