package types

import "regexp"

var (
	slackIDPattern        = regexp.MustCompile(`^[A-Z][A-Z0-9]{8,}$`)
	slackTimestampPattern = regexp.MustCompile(`^\d{10}\.\d{6}$`)
)

// IsSlackID reports whether s looks like a workspace object id
// (C…, U…, T…, B…): an uppercase letter followed by at least eight
// uppercase letters or digits.
func IsSlackID(s string) bool {
	return slackIDPattern.MatchString(s)
}

// IsSlackTimestamp reports whether s is a message timestamp of the form
// "1609459200.000000"
func IsSlackTimestamp(s string) bool {
	return slackTimestampPattern.MatchString(s)
}
