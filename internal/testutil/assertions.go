package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cecil-the-coder/slack-api-types/pkg/types"
)

// AssertSlackID fails the test unless s looks like a workspace object id
func AssertSlackID(t testing.TB, s string) bool {
	t.Helper()
	return assert.Truef(t, types.IsSlackID(s),
		"expected %s to be a valid Slack ID (e.g., 'U12345678' or 'C01234567')", s)
}

// AssertNotSlackID fails the test if s looks like a workspace object id
func AssertNotSlackID(t testing.TB, s string) bool {
	t.Helper()
	return assert.Falsef(t, types.IsSlackID(s), "expected %s not to be a valid Slack ID", s)
}

// AssertSlackTimestamp fails the test unless s is a message timestamp
func AssertSlackTimestamp(t testing.TB, s string) bool {
	t.Helper()
	return assert.Truef(t, types.IsSlackTimestamp(s),
		"expected %s to be a valid Slack timestamp (e.g., '1609459200.000000')", s)
}

// AssertNotSlackTimestamp fails the test if s is a message timestamp
func AssertNotSlackTimestamp(t testing.TB, s string) bool {
	t.Helper()
	return assert.Falsef(t, types.IsSlackTimestamp(s), "expected %s not to be a valid Slack timestamp", s)
}
