package logging

import (
	"regexp"
	"strings"
)

// sensitiveKeyPatterns match field names whose values are never logged.
var sensitiveKeyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(password|passwd|pwd)`),
	regexp.MustCompile(`(?i)(token|api[_-]?key|secret|credential)`),
	regexp.MustCompile(`(?i)(private[_-]?key)`),
}

// emailPattern matches e-mail addresses inside string values.
var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

const (
	redactedValue = "[REDACTED]"
	piiValue      = "[PII]"
)

// RedactSensitive hides values of sensitive keys and masks e-mail
// addresses in string values.
func RedactSensitive(key string, value any) any {
	lowerKey := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if pattern.MatchString(lowerKey) {
			return redactedValue
		}
	}
	if str, ok := value.(string); ok {
		return emailPattern.ReplaceAllString(str, piiValue)
	}
	return value
}
