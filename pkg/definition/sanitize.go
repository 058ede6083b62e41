package definition

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// maxSanitizePasses bounds the strip and decode loop for text carrying nested
// entity encoded markup.
const maxSanitizePasses = 4

// sanitizeText removes every element from raw and returns plain text. The
// policy output is entity decoded so "Tom's" survives as written; decoded text
// is stripped again until no markup remains.
func sanitizeText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	policy := textSanitizer()
	current := raw
	for pass := 0; pass < maxSanitizePasses; pass++ {
		stripped := policy.Sanitize(current)
		decoded := html.UnescapeString(stripped)
		if decoded == current {
			return strings.TrimSpace(decoded)
		}
		current = decoded
	}
	return strings.TrimSpace(policy.Sanitize(current))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

func (c config) text(value *string) *string {
	if value == nil || !c.sanitize {
		return value
	}
	cleaned := sanitizeText(*value)
	return &cleaned
}

func (c config) plain(value string) string {
	if !c.sanitize {
		return value
	}
	return sanitizeText(value)
}
