package captions

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize reformats a timestamp as hh:mm:ss or mm:ss, dropping fractional
// seconds. Input it cannot interpret is returned unchanged.
func Normalize(ts string) string {
	whole := ts
	if i := strings.IndexByte(whole, '.'); i >= 0 {
		whole = whole[:i]
	}

	parts := strings.Split(whole, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return ts
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return ts
		}
		nums[i] = n
	}

	if len(nums) == 3 {
		return fmt.Sprintf("%02d:%02d:%02d", nums[0], nums[1], nums[2])
	}
	return fmt.Sprintf("%02d:%02d", nums[0], nums[1])
}

// NormalizeCues normalizes the start and end of every cue in place.
func NormalizeCues(cues []Cue) {
	for i := range cues {
		cues[i].Start = Normalize(cues[i].Start)
		cues[i].End = Normalize(cues[i].End)
	}
}
