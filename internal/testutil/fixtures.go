// Package testutil provides shared fixtures and assertions for the
// slack-api-types test suite.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cecil-the-coder/slack-api-types/pkg/types"
)

// FixtureDir returns the directory holding the YAML fixtures
func FixtureDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata")
}

// ReadFixture loads testdata/<name>.yaml and returns it re-encoded as JSON, so
// callers see exactly what a JSON decoder would produce for the same document
func ReadFixture(name string) ([]byte, error) {
	path := filepath.Join(FixtureDir(), name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", name, err)
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", name, err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode fixture %s: %w", name, err)
	}
	return out, nil
}

// FixtureJSON is ReadFixture for tests
func FixtureJSON(t testing.TB, name string) []byte {
	t.Helper()
	data, err := ReadFixture(name)
	require.NoError(t, err)
	return data
}

// RawResponseFixture loads a fixture as a types.RawResponse
func RawResponseFixture(t testing.TB, name string) types.RawResponse {
	t.Helper()
	raw, err := types.DecodeRawResponse(FixtureJSON(t, name))
	require.NoError(t, err)
	return raw
}

// DecodeFixture loads a fixture into a typed value such as *types.FilesListResponse
func DecodeFixture(t testing.TB, name string, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(FixtureJSON(t, name), into))
}

// BlockValuesFixture loads a fixture holding a JSON array and returns its
// elements as generic decoded values
func BlockValuesFixture(t testing.TB, name string) []any {
	t.Helper()
	var values []any
	require.NoError(t, json.Unmarshal(FixtureJSON(t, name), &values))
	return values
}
