/*
Package archive stores cost models in compressed archive files.

An archive holds a cost model together with the word counts it has been
derived from. It is serialized with MessagePack and compressed with
Zstandard. Archive files carry the extension ".wcz".

   path, err := archive.SaveFile("data/words", model, corpus.Counts())
   …
   provider := archive.FileProvider{Path: path}
   model, err := provider.Load()

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Please refer to the license of package tokinfer.
*/
package archive

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tokinfer/wordcost"
	"github.com/vmihailenco/msgpack/v5"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Extension is the file extension for archive files.
const Extension = ".wcz"

// ErrNoModel is returned for archives without a word cost table.
var ErrNoModel = errors.New("archive: no cost model in archive")

type payload struct {
	WordCost      map[string]float64 `msgpack:"word_cost"`
	MaxWordLength int                `msgpack:"max_word_length"`
	UnknownCost   *float64           `msgpack:"unknown_cost,omitempty"` // nil for infinite cost
	WordCounts    map[string]int64   `msgpack:"word_counts,omitempty"`
}

// Save writes a cost model and (optionally) the word counts it has been
// derived from to w.
func Save(w io.Writer, model *wordcost.Model, counts map[string]int64) error {
	if model == nil {
		return ErrNoModel
	}
	p := payload{
		WordCost:      model.Costs(),
		MaxWordLength: model.MaxWordLength(),
		WordCounts:    counts,
	}
	if u := model.UnknownCost(); !math.IsInf(u, 1) {
		p.UnknownCost = &u
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	if err = msgpack.NewEncoder(enc).Encode(&p); err != nil {
		_ = enc.Close()
		return fmt.Errorf("archive: encoding model: %w", err)
	}
	return enc.Close()
}

// Load reads a cost model and the word counts (if any) from r.
// The maximum word length stored in the archive is bound to the model.
func Load(r io.Reader) (*wordcost.Model, map[string]int64, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("archive: %w", err)
	}
	defer dec.Close()
	var p payload
	if err = msgpack.NewDecoder(dec).Decode(&p); err != nil {
		return nil, nil, fmt.Errorf("archive: decoding model: %w", err)
	}
	if p.WordCost == nil {
		return nil, nil, ErrNoModel
	}
	opts := []wordcost.ModelOption{wordcost.WithMaxWordLength(p.MaxWordLength)}
	if p.UnknownCost != nil {
		opts = append(opts, wordcost.WithUnknownCost(*p.UnknownCost))
	}
	model, err := wordcost.New(p.WordCost, opts...)
	if err != nil {
		return nil, nil, err
	}
	CT().Debugf("archive: loaded model of %d words", model.Len())
	return model, p.WordCounts, nil
}

// filePath appends Extension to path, if missing.
func filePath(path string) string {
	if !strings.HasSuffix(strings.ToLower(path), Extension) {
		path += Extension
	}
	return path
}

// SaveFile writes an archive file. Extension is appended to path if
// missing. SaveFile returns the path of the file written.
func SaveFile(path string, model *wordcost.Model, counts map[string]int64) (string, error) {
	path = filePath(path)
	f, err := os.Create(path)
	if err != nil {
		return path, err
	}
	if err = Save(f, model, counts); err != nil {
		_ = f.Close()
		return path, err
	}
	CT().Infof("archive: saved cost model to %s", path)
	return path, f.Close()
}

// LoadFile reads an archive file. Extension is appended to path if missing.
func LoadFile(path string) (*wordcost.Model, map[string]int64, error) {
	f, err := os.Open(filePath(path))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Load(f)
}

// FileProvider loads cost models from archive files.
type FileProvider struct {
	Path string
}

var _ wordcost.Provider = FileProvider{}

// Load loads the cost model from the provider's archive file.
func (p FileProvider) Load() (*wordcost.Model, error) {
	model, _, err := LoadFile(p.Path)
	return model, err
}
