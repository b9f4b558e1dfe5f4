// Package store persists analysis results as a pretty-printed JSON
// document on disk: file key to the list of function records extracted
// from that file. Updates are read-modify-write with no locking, so
// concurrent writers race.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Record maps a single function name to its extracted details. The details
// are kept opaque so the store does not depend on any one analysis shape.
type Record map[string]json.RawMessage

// Document is a full store: file key to function records.
type Document map[string][]Record

var (
	// ErrMalformedStore reports an existing store file that is not valid JSON.
	ErrMalformedStore = errors.New("store file is not valid JSON")

	// ErrBadRecord reports a record that is not a single name-to-details entry.
	ErrBadRecord = errors.New("record must contain exactly one function name")
)

// Load reads the document at path. A missing file yields an empty document.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedStore, path, err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// Save writes the document pretty-printed: four-space indent, UTF-8 with
// non-ASCII characters intact.
func Save(path string, doc Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing store %s: %w", path, err)
	}
	return nil
}

// Merge folds updates into the document at path and writes it back. Within
// a known file key, a record whose function name already exists replaces
// the first matching record in place; new names append. Unknown file keys
// are inserted wholesale. Merging the same record twice is idempotent.
func Merge(path string, updates Document) error {
	for fileKey, records := range updates {
		for _, rec := range records {
			if len(rec) != 1 {
				return fmt.Errorf("%w: file %q has a record with %d entries", ErrBadRecord, fileKey, len(rec))
			}
		}
	}

	doc, err := Load(path)
	if err != nil {
		return err
	}

	for fileKey, records := range updates {
		existing, ok := doc[fileKey]
		if !ok {
			doc[fileKey] = records
			continue
		}
		for _, rec := range records {
			name := recordName(rec)
			replaced := false
			for i := range existing {
				if _, ok := existing[i][name]; ok {
					existing[i] = rec
					replaced = true
					break
				}
			}
			if !replaced {
				existing = append(existing, rec)
			}
		}
		doc[fileKey] = existing
	}

	return Save(path, doc)
}

// DocumentFrom converts any value with the store shape (file key to
// []{name: details}) into a Document, going through JSON.
func DocumentFrom(v any) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding analysis result: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("analysis result does not have the store shape: %w", err)
	}
	return doc, nil
}

func recordName(rec Record) string {
	for name := range rec {
		return name
	}
	return ""
}
