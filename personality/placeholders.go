package personality

import (
	"github.com/kardolus/aipersonality/types"
	"strings"
	"time"
)

const (
	PlaceholderDateTime = "{{date_time}}"
	PlaceholderDate     = "{{date}}"
	PlaceholderTime     = "{{time}}"
)

// Placeholders in replacement order.
var placeholders = []string{PlaceholderDateTime, PlaceholderDate, PlaceholderTime}

func formatPlaceholder(tag string, now time.Time) string {
	switch tag {
	case PlaceholderDateTime:
		return now.Format(time.ANSIC)
	case PlaceholderDate:
		return now.Format("2006-01-02")
	case PlaceholderTime:
		return now.Format("15:04:05")
	default:
		return tag
	}
}

// ExpandPlaceholders replaces the known time placeholders in str using now.
// Unknown {{...}} tokens are left untouched.
func ExpandPlaceholders(str string, now time.Time) string {
	for _, tag := range placeholders {
		if strings.Contains(str, tag) {
			str = strings.ReplaceAll(str, tag, formatPlaceholder(tag, now))
		}
	}
	return str
}

func Conditioning(p types.Personality, now time.Time) string {
	return ExpandPlaceholders(p.PersonalityConditioning, now)
}
