package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingIntRe = regexp.MustCompile(`^[+-]?\d+`)
	minutesRe    = regexp.MustCompile(`(\d+)\s*minutes?`)
)

// ParseETA turns a model answer into "N min". The answer may start with the
// number or mention "N minutes" anywhere; anything else is "Not available".
func ParseETA(answer string) string {
	answer = strings.TrimSpace(answer)
	if m := leadingIntRe.FindString(answer); m != "" {
		return formatMinutes(m)
	}
	if m := minutesRe.FindStringSubmatch(answer); m != nil {
		return formatMinutes(m[1])
	}
	return ETANotAvailable
}

func formatMinutes(digits string) string {
	minutes, err := strconv.Atoi(digits)
	if err != nil {
		return ETANotAvailable
	}
	if minutes < 1 {
		return "< 1 min"
	}
	return fmt.Sprintf("%d min", minutes)
}
