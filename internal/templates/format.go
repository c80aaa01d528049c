package templates

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime converts a 24-hour "HH:MM" value to "H:MM AM/PM".
// Empty input stays empty; anything with a non-numeric or out of range hour,
// or without a minute part, is returned unchanged.
func FormatTime(value string) string {
	if value == "" {
		return ""
	}

	parts := strings.SplitN(value, ":", 3)
	if len(parts) < 2 {
		return value
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return value
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%s %s", hour12, parts[1], suffix)
}
