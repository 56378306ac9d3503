package generator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var markerPattern = regexp.MustCompile(`^\s*//@@elide (\d+)@@\s*$`)

// Marker is the sentinel line meaning "drop this line and the next k".
func Marker(k int) string {
	return fmt.Sprintf("//@@elide %d@@", k)
}

// Elide post-processes legacy marked text such as Template.RenderMarked
// output; generation itself renders the node tree directly. Every marker line
// is dropped together with the k lines that follow it. Dropped lines are not
// scanned again; a count past the end drops the rest.
func Elide(s string) string {
	lines := strings.SplitAfter(s, "\n")

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(lines); i++ {
		if k, ok := parseMarker(lines[i]); ok {
			if k >= len(lines)-i-1 {
				break
			}
			i += k
			continue
		}
		b.WriteString(lines[i])
	}
	return b.String()
}

func parseMarker(l string) (int, bool) {
	m := markerPattern.FindStringSubmatch(strings.TrimRight(l, "\r\n"))
	if m == nil {
		return 0, false
	}
	k, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return k, true
}
