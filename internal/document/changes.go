package document

import (
	"fmt"
	"unicode/utf8"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// Changes summarises how the buffer differs from its baseline.
type Changes struct {
	Inserted int
	Deleted  int
}

func (c Changes) empty() bool { return c.Inserted == 0 && c.Deleted == 0 }

func (c Changes) String() string {
	if c.empty() {
		return "no changes"
	}
	return fmt.Sprintf("%d characters added, %d removed", c.Inserted, c.Deleted)
}

// Changes diffs the baseline against the current text, counting runes.
func (d *Document) Changes() Changes {
	if !d.dirty {
		return Changes{}
	}
	differ := dmp.New()
	diffs := differ.DiffMain(d.baseline, d.text, false)
	diffs = differ.DiffCleanupSemantic(diffs)

	var c Changes
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			c.Inserted += utf8.RuneCountInString(df.Text)
		case dmp.DiffDelete:
			c.Deleted += utf8.RuneCountInString(df.Text)
		}
	}
	return c
}
