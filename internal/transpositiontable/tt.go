//
// Xiangqi - Chinese Chess engine in GO for learning purposes
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

// Package transpositiontable implements a direct-mapped transposition
// table for the search. It is not thread safe; the search guards all
// access with its own concurrency primitives.
package transpositiontable

import (
	"sync"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/xiangqi/internal/logging"
	"github.com/frankkopp/xiangqi/internal/xqtypes"
	"github.com/frankkopp/xiangqi/internal/zobrist"
)

var out = message.NewPrinter(language.German)

// MateValue and MateThreshold bound how search scores express a forced
// mate; values beyond the threshold are mate scores and need the
// distance-to-root adjustment on TT store/probe.
const (
	MateValue     = 9999
	MateThreshold = MateValue - 512
)

// Table is a direct-mapped transposition table with a fixed number of
// slots (a power of two, 1<<bits as passed to NewTable; cmd/xiangqi
// passes config.Settings.Search.TTBits unless its -ttbits flag is set).
type Table struct {
	log   *logging.Logger
	data  []TtEntry
	mask  uint32
	count uint64
	Stats Stats
}

// Stats holds usage counters for diagnostics.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// NewTable creates a Table with 1<<bits slots.
func NewTable(bits int) *Table {
	size := uint32(1) << uint(bits)
	t := &Table{
		log:  myLogging.GetLog(),
		data: make([]TtEntry, size),
		mask: size - 1,
	}
	t.log.Info(out.Sprintf("TT allocated with %d entries", size))
	return t
}

func (t *Table) index(key zobrist.Key) uint32 {
	return uint32(key) & t.mask
}

// Probe returns the entry for key, or nil on a miss. A hit nudges the
// entry's age back down toward 0 so frequently-reached nodes survive
// longer under the replacement policy.
func (t *Table) Probe(key zobrist.Key) *TtEntry {
	t.Stats.Probes++
	e := &t.data[t.index(key)]
	if e.key == key {
		e.decreaseAge()
		t.Stats.Hits++
		return e
	}
	t.Stats.Misses++
	return nil
}

// Put stores a search result, adjusting mate scores to be
// distance-from-this-node before storage (ValueToTT).
func (t *Table) Put(key zobrist.Key, move xqtypes.Move, depth int8, value int16, vt ValueType, eval int16, ply int) {
	e := &t.data[t.index(key)]
	stored := ValueToTT(value, ply)
	t.Stats.Puts++

	if e.key == 0 {
		t.count++
		*e = TtEntry{key: key, move: uint32(move.MoveOf()), value: stored, eval: eval,
			vmeta: uint16(depth)<<depthShift | uint16(vt)<<vtypeShift}
		return
	}

	if e.key != key {
		t.Stats.Collisions++
		if depth >= e.Depth() || e.Age() > 0 {
			t.Stats.Overwrites++
			*e = TtEntry{key: key, move: uint32(move.MoveOf()), value: stored, eval: eval,
				vmeta: uint16(depth)<<depthShift | uint16(vt)<<vtypeShift}
		}
		return
	}

	// same position: always refresh, the caller would not be storing
	// again unless this search reached it with new information.
	if move != xqtypes.MoveNone {
		e.move = uint32(move.MoveOf())
	}
	e.value = stored
	e.eval = eval
	e.vmeta = uint16(depth)<<depthShift | uint16(vt)<<vtypeShift
}

// Clear empties every slot.
func (t *Table) Clear() {
	t.data = make([]TtEntry, len(t.data))
	t.count = 0
	t.Stats = Stats{}
}

// AgeEntries increments every occupied entry's age by one, run once at
// the start of each new search so stale entries from prior searches
// become preferred replacement targets.
func (t *Table) AgeEntries() {
	numGoroutines := 8
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	slice := len(t.data) / numGoroutines
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			start := i * slice
			end := start + slice
			if i == numGoroutines-1 {
				end = len(t.data)
			}
			for n := start; n < end; n++ {
				if t.data[n].key != 0 {
					t.data[n].increaseAge()
				}
			}
		}(i)
	}
	wg.Wait()
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 { return t.count }

// Hashfull returns how full the table is, in permille.
func (t *Table) Hashfull() int {
	if len(t.data) == 0 {
		return 0
	}
	return int(1000 * t.count / uint64(len(t.data)))
}

// ValueToTT converts a search score at the given ply into a
// distance-from-this-node score safe to store: mate scores are
// shifted so that when later retrieved at a different ply
// (ValueFromTT), the mate distance is correctly recomputed.
func ValueToTT(value int16, ply int) int16 {
	v := int(value)
	switch {
	case v >= MateThreshold:
		return int16(v + ply)
	case v <= -MateThreshold:
		return int16(v - ply)
	default:
		return value
	}
}

// ValueFromTT is the inverse of ValueToTT, applied when reading a
// stored value back in at the current ply.
func ValueFromTT(value int16, ply int) int16 {
	v := int(value)
	switch {
	case v >= MateThreshold:
		return int16(v - ply)
	case v <= -MateThreshold:
		return int16(v + ply)
	default:
		return value
	}
}
