package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qychen/tictacgo/pkg/common"
	"github.com/qychen/tictacgo/pkg/knn"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	var path = filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	var path = writeFile(t, "tictac_single.txt",
		"1 -1 0 0 0 0 0 0 0 4\n"+
			"\n"+
			"0 0 0 1 -1 0 0 0 0 0\n")
	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, knn.MoveLabeled, ds.Kind)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, common.StateVector{1, -1, 0, 0, 0, 0, 0, 0, 0}, ds.Records[0].State)
	assert.Equal(t, 4, ds.Records[0].Label)
	assert.Equal(t, 0, ds.Records[1].Label)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	var path = writeFile(t, "tictac_final.txt",
		"1 -1 0 0 0 0 0 0 0 1\n"+
			"1 -1 0 0 0 0 0 0 0\n"+ // too few fields
			"1 -1 0 0 0 x 0 0 0 1\n"+ // non-integer token
			"1 -1 0 0 0 0 0 0 0 1 1\n"+ // too many fields
			"0 0 0 0 1 0 0 0 -1 -1\n")
	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, knn.OutcomeLabeled, ds.Kind)
	assert.Len(t, ds.Records, 2)
}

func TestLoadMissingFile(t *testing.T) {
	ds, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.True(t, ds.Empty())
	assert.Equal(t, knn.MoveLabeled, ds.Kind)
}

func TestKindFromPath(t *testing.T) {
	var tests = []struct {
		path string
		kind knn.DatasetKind
	}{
		{"tictac_single.txt", knn.MoveLabeled},
		{"tictac_final.txt", knn.OutcomeLabeled},
		{"data/TICTAC_FINAL.TXT", knn.OutcomeLabeled},
		{"moves.txt", knn.MoveLabeled},
	}
	for _, test := range tests {
		assert.Equal(t, test.kind, KindFromPath(test.path), test.path)
	}
}
