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

package xqtypes

// PstTable is a Red-oriented 10x9 table of positional bonuses for one
// piece kind in one game phase. Black looks up the mirrored row
// (NumRows-1-row) so a single table serves both sides.
type PstTable [NumRows][NumCols]int16

// PstMid and PstEnd hold the middlegame/endgame tables per piece kind.
// Built once in init() from simple geometric heuristics (centralization,
// advancement, palace occupancy) rather than hand-tuned constants -
// there is no teacher table to port since chess PSTs assume an 8x8
// board with no palace/river concept.
var (
	PstMid [PieceTypeLength]PstTable
	PstEnd [PieceTypeLength]PstTable
)

func init() {
	const centerCol = 4.0 // column 4 is the board's central file

	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			colDist := col - centerCol
			if colDist < 0 {
				colDist = -colDist
			}
			centralization := int16(4 - colDist) // 0..4, highest on the central file

			// Horse and cannon favor central, non-edge squares in both
			// phases; horses lose mobility on the rim.
			PstMid[Horse][row][col] = centralization * 3
			PstEnd[Horse][row][col] = centralization * 3
			PstMid[Cannon][row][col] = centralization * 2
			PstEnd[Cannon][row][col] = centralization * 2

			// Rooks like open files near the center a little, but the
			// effect is much smaller than for horse/cannon since rooks
			// already dominate open lines regardless of file.
			PstMid[Rook][row][col] = centralization
			PstEnd[Rook][row][col] = centralization * 2

			// Advisors and elephants only ever occupy a handful of
			// fixed points; give a small bonus to the palace/eye
			// centerpoint they can reach.
			if InPalace(Red, row, col) || InPalace(Black, row, col) {
				if col == 4 {
					PstMid[Advisor][row][col] = 4
					PstEnd[Advisor][row][col] = 4
				}
			}
			PstMid[Elephant][row][col] = 2
			PstEnd[Elephant][row][col] = 2

			// King: tiny centralizing nudge within the palace, stronger
			// in the endgame where it must help defend and block files.
			PstMid[King][row][col] = 0
			PstEnd[King][row][col] = centralization
		}
	}

	// Pawns: worthless until they cross the river, then increasingly
	// valuable as they approach the enemy back rank, with a premium on
	// the central files where sideways mobility threatens more.
	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			colDist := col - centerCol
			if colDist < 0 {
				colDist = -colDist
			}
			centralBonus := int16(3 - colDist)
			if centralBonus < 0 {
				centralBonus = 0
			}

			// Red pawns start high (row 6) and advance toward row 0.
			if HasCrossedRiver(Red, row) {
				advance := int16(RiverRedMax - row) // 0 at the river, 4 at enemy back rank
				PstMid[Pawn][row][col] = 10 + advance*6 + centralBonus
				PstEnd[Pawn][row][col] = 10 + advance*8 + centralBonus
			}
		}
	}
}

// MirrorRow returns the row used to look up a Black piece's PST entry
// in the Red-oriented tables.
func MirrorRow(row int) int {
	return NumRows - 1 - row
}
