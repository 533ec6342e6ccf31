package rendering

import "strings"

// Run is one contiguous stretch of text with uniform styling.
type Run struct {
	Text string
	Bold bool
}

// SegmentBoldRuns splits a line containing zero or more "**text**" spans into
// alternating normal and bold runs. An unmatched or malformed marker leaves
// the remainder of the line as a single normal run.
func SegmentBoldRuns(line string) []Run {
	var runs []Run
	rest := line

	for {
		open := strings.Index(rest, "**")
		if open < 0 {
			break
		}
		end := strings.Index(rest[open+2:], "**")
		if end < 0 {
			// Unmatched opener: treat everything from here as normal text.
			break
		}

		if open > 0 {
			runs = append(runs, Run{Text: rest[:open]})
		}
		runs = append(runs, Run{Text: rest[open+2 : open+2+end], Bold: true})
		rest = rest[open+2+end+2:]
	}

	if rest != "" {
		runs = append(runs, Run{Text: rest})
	}
	return runs
}
