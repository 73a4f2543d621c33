package archive

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tokinfer/internal/testdata"
	"github.com/npillmayer/tokinfer/wordcost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpus(t *testing.T) *wordcost.Corpus {
	r, err := testdata.CorpusReader(testdata.Words)
	require.NoError(t, err)
	c, err := wordcost.ReadCorpus(r)
	require.NoError(t, err)
	return c
}

func TestRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	c := corpus(t)
	model, err := c.Model()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, model, c.Counts()))
	loaded, counts, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, model.Costs(), loaded.Costs())
	assert.Equal(t, model.MaxWordLength(), loaded.MaxWordLength())
	assert.True(t, math.IsInf(loaded.UnknownCost(), 1))
	assert.Equal(t, c.Counts(), counts)
	seg := wordcost.NewSegmenter(loaded)
	assert.Equal(t, "hello world", seg.Segment("helloworld"))
}

func TestRoundTripFiniteUnknownCost(t *testing.T) {
	model, err := wordcost.New(map[string]float64{"the": 1, "cat": 1, "sat": 1},
		wordcost.WithUnknownCost(100))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, model, nil))
	loaded, counts, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, 100.0, loaded.UnknownCost())
	assert.Nil(t, counts)
	assert.Equal(t, "the cat sat", wordcost.NewSegmenter(loaded).Segment("thecatsat"))
}

func TestFileProvider(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	c := corpus(t)
	model, err := c.Model()
	require.NoError(t, err)
	path, err := SaveFile(filepath.Join(t.TempDir(), "words"), model, c.Counts())
	require.NoError(t, err)
	assert.Equal(t, Extension, filepath.Ext(path))
	var provider wordcost.Provider = FileProvider{Path: path[:len(path)-len(Extension)]}
	loaded, err := provider.Load()
	require.NoError(t, err)
	assert.Equal(t, model.Len(), loaded.Len())
	_, err = FileProvider{Path: filepath.Join(t.TempDir(), "missing")}.Load()
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, _, err := Load(bytes.NewReader([]byte("no archive")))
	assert.Error(t, err)
	err = Save(&bytes.Buffer{}, nil, nil)
	assert.True(t, errors.Is(err, ErrNoModel))
}
