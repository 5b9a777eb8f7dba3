package sources

import (
	"fmt"
	"regexp"
	"strconv"
)

// ISO-8601 duration as the Data API emits it: PT#H#M#S, with a possible
// leading P#D for multi-day live archives.
var isoDurationRE = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration converts a Data API duration string to whole seconds.
// "P0D" (still-processing uploads) parses to 0.
func ParseISODuration(s string) (int, error) {
	m := isoDurationRE.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("duration: cannot parse %q", s)
	}
	total := 0
	for i, mult := range []int{86400, 3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, fmt.Errorf("duration: cannot parse %q", s)
		}
		total += n * mult
	}
	return total, nil
}
