// Copyright 2020 The golang.design Initiative Authors.
// All rights reserved. Use of this source code is governed
// by a GNU GPLv3 license that can be found in the LICENSE file.

package stat

import (
	"fmt"
	"io"
)

// FormatText writes the three report lines for r to w: the estimate,
// its error from π and the elapsed seconds.
func FormatText(w io.Writer, r *Result) error {
	rows := toText(r)
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row.cols...); err != nil {
			return fmt.Errorf("write %q: %w", row.label(), err)
		}
	}
	return nil
}

// A textRow is one printed line. The first column is the label.
type textRow struct {
	cols []interface{}
}

func newTextRow(label string, cols ...interface{}) *textRow {
	return &textRow{cols: append([]interface{}{label + ": "}, cols...)}
}

func (r *textRow) label() string {
	return r.cols[0].(string)
}

// toText converts the Result to its rows. Println separates columns
// with a single space, so each label is followed by two.
func toText(r *Result) []*textRow {
	return []*textRow{
		newTextRow("Estimate of pi", r.Estimate),
		newTextRow("Error from exact value", r.Error),
		newTextRow("Time", r.Elapsed.Seconds(), " seconds"),
	}
}
