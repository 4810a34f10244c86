package liquid

import (
	"sort"
	"strings"

	"github.com/taigrr/devto-mcp/internal/types"
)

// Detect lists the liquid tags in markdown. Tags inside ``` fences are not
// reported. A block tag is reported once, spanning its opening and closing
// markers; markers inside a block are covered by that entry.
func Detect(markdown string) types.LiquidTagReport {
	report := types.LiquidTagReport{Tags: []types.LiquidTagMatch{}}
	if markdown == "" {
		return report
	}

	ms := scanMarkers(markdown)

	var (
		blocks, inline []types.LiquidTagMatch
		tracker        fenceTracker
		cursor         int
		line           = 1
	)

	advance := func(to int) {
		tracker.feed(markdown[cursor:to])
		line += strings.Count(markdown[cursor:to], "\n")
		cursor = to
	}

	for i := 0; i < len(ms.list); i++ {
		m := ms.list[i]
		advance(m.start)

		if tracker.inside() || m.closing() {
			continue
		}

		if j := ms.closerFor(i); j >= 0 {
			end := ms.list[j].end
			blocks = append(blocks, newMatch(m, markdown[m.start:end], line, true))
			advance(end)
			i = j
			continue
		}

		inline = append(inline, newMatch(m, markdown[m.start:m.end], line, false))
	}

	report.Tags = append(report.Tags, blocks...)
	report.Tags = append(report.Tags, inline...)
	sort.SliceStable(report.Tags, func(i, j int) bool {
		return report.Tags[i].LineNumber < report.Tags[j].LineNumber
	})

	for _, tag := range report.Tags {
		if !tag.CrossPostSafe {
			report.HasCrossPostUnsafe = true
			break
		}
	}

	return report
}

func newMatch(m marker, full string, line int, hasEnd bool) types.LiquidTagMatch {
	return types.LiquidTagMatch{
		Tag:           m.name,
		Argument:      m.argument,
		FullMatch:     full,
		LineNumber:    line,
		CrossPostSafe: IsCrossPostSafe(m.name),
		HasEndTag:     hasEnd,
	}
}
