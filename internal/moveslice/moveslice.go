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

// Package moveslice provides a reusable, append-based slice of
// xqtypes.Move, kept alive across move generation calls to avoid
// per-ply allocation.
package moveslice

import (
	"fmt"
	"strings"

	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

// MoveSlice is a slice of moves with in-place helpers for the
// generate/sort/filter cycle move generation runs every ply.
type MoveSlice []xqtypes.Move

// NewMoveSlice creates a new move slice with the given capacity and
// 0 elements.
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]xqtypes.Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends a move at the end of the slice.
func (ms *MoveSlice) PushBack(m xqtypes.Move) {
	*ms = append(*ms, m)
}

// At returns the move at index i.
func (ms *MoveSlice) At(i int) xqtypes.Move {
	return (*ms)[i]
}

// Set replaces the move at index i.
func (ms *MoveSlice) Set(i int, m xqtypes.Move) {
	(*ms)[i] = m
}

// FilterCopy copies elements for which f returns true into dest,
// leaving ms untouched.
func (ms *MoveSlice) FilterCopy(dest *MoveSlice, f func(index int) bool) {
	for i := range *ms {
		if f(i) {
			*dest = append(*dest, (*ms)[i])
		}
	}
}

// ForEach calls f with the index of every element, in order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for index := range *ms {
		f(index)
	}
}

// Clear empties the slice while retaining its backing array.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Sort orders moves from highest Value to lowest using a stable
// insertion sort - move lists are short and mostly pre-sorted by
// generation order, so this beats a general-purpose sort.
func (ms *MoveSlice) Sort() {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmp := (*ms)[i]
		j := i
		for j > 0 && tmp.Value() > (*ms)[j-1].Value() {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}

// String renders the move list for logs and test failures.
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveSlice: [%d] { ", len(*ms)))
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
