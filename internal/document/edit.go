package document

import "strings"

// DeleteWordBackward removes the text on line row between col and the end of
// the nearest preceding word boundary: just after the closest space, or the
// start of the line if there is none. Spaces directly before the cursor are
// skipped first and deleted with the word, so "hello |" becomes "|" rather
// than staying put on the space the way a plain nearest-space search would.
// Rows and columns count runes from zero; out of range positions are
// clamped. It returns the new text and cursor column.
func DeleteWordBackward(text string, row, col int) (string, int) {
	lines := strings.Split(text, "\n")
	if row < 0 || row >= len(lines) || col <= 0 {
		return text, max(col, 0)
	}

	line := []rune(lines[row])
	if col > len(line) {
		col = len(line)
	}

	start := col
	for start > 0 && line[start-1] == ' ' {
		start--
	}
	for start > 0 && line[start-1] != ' ' {
		start--
	}
	if start == col {
		return text, col
	}

	lines[row] = string(line[:start]) + string(line[col:])
	return strings.Join(lines, "\n"), start
}

// DeleteWordBackward applies the package-level edit to the document's text
// and returns the new cursor column.
func (d *Document) DeleteWordBackward(row, col int) int {
	text, newCol := DeleteWordBackward(d.text, row, col)
	d.SetText(text)
	return newCol
}
