package buildevent_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"teamcity-notifier/pkg/jsontree"
)

func loadFixture(t *testing.T, name string) jsontree.Value {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	v, err := jsontree.Parse(data)
	require.NoError(t, err)
	return v
}

func parse(t *testing.T, body string) jsontree.Value {
	t.Helper()
	v, err := jsontree.Parse([]byte(body))
	require.NoError(t, err)
	return v
}
