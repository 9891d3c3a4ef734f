package kitty

// Placeholder is the code point the emulator replaces with image cells
const Placeholder = '\U0010EEEE'

// DiacriticTable is the ordered list of combining marks used to tag row and
// column indices on placeholder glyphs. The order matches the protocol's
// rowcolumn-diacritics list; only the first 24 entries are carried, which
// bounds virtual placements to 24 rows and 24 columns.
var DiacriticTable = []rune{
	0x0305, 0x030D, 0x030E, 0x0310, 0x0312, 0x033D, 0x033E, 0x033F,
	0x0346, 0x034A, 0x034B, 0x034C, 0x0350, 0x0351, 0x0352, 0x0357,
	0x035B, 0x0363, 0x0364, 0x0365, 0x0366, 0x0367, 0x0368, 0x0369,
}

// Placeholders generates the rows x cols matrix of placeholder glyphs for a
// virtual placement, using the default diacritic table
func Placeholders(cols, rows int) [][]string {
	return PlaceholdersTable(cols, rows, DiacriticTable)
}

// PlaceholdersTable generates placeholder glyphs with a caller-supplied
// diacritic table. Each glyph is the placeholder code point followed by the
// row mark, then the column mark.
//
// Indices beyond the table wrap to entry 0, so a grid wider or taller than
// the table yields glyphs that collide with row or column 0. The emulator
// then maps two cells to the same pixel region. Callers must keep placements
// within the table size; the wrap is kept for compatibility with emulators
// that tolerate it.
func PlaceholdersTable(cols, rows int, table []rune) [][]string {
	grid := make([][]string, rows)
	for r := 0; r < rows; r++ {
		row := make([]string, cols)
		for c := 0; c < cols; c++ {
			row[c] = string([]rune{Placeholder, mark(r, table), mark(c, table)})
		}
		grid[r] = row
	}
	return grid
}

func mark(idx int, table []rune) rune {
	if idx < len(table) {
		return table[idx]
	}
	return table[0]
}
