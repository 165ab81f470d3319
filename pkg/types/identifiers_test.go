package types_test

import (
	"testing"

	"github.com/cecil-the-coder/slack-api-types/internal/testutil"
)

func TestSlackIDs(t *testing.T) {
	for _, id := range []string{
		"C1234567890", // public channel
		"D1234567890", // DM
		"G1234567890", // private channel
		"U0123456789",
		"USLACKBOT",
		"B987654321A",
		"T123456789",
	} {
		testutil.AssertSlackID(t, id)
	}

	for _, id := range []string{
		"invalid",
		"c1234567890", // lowercase
		"1234567890",  // starts with a digit
		"C123",        // too short
		"",
	} {
		testutil.AssertNotSlackID(t, id)
	}
}

func TestSlackTimestamps(t *testing.T) {
	for _, ts := range []string{
		"1234567890.123456",
		"1609459200.000000",
		"1640995200.123456",
	} {
		testutil.AssertSlackTimestamp(t, ts)
	}

	for _, ts := range []string{
		"invalid",
		"1234567890",       // missing fraction
		"1234567890.123",   // short fraction
		"123456789.123456", // short seconds
		"invalid-timestamp",
	} {
		testutil.AssertNotSlackTimestamp(t, ts)
	}
}
