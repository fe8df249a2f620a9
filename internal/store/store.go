// Package store persists the scan state as five JSON documents in a data
// directory: latest, history, sources, user_intel and feedback. Documents
// are indented UTF-8 with HTML escaping off so Hebrew text and marker
// glyphs stay readable on disk.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"sitrep/internal/model"
)

// Document file names inside the data directory.
const (
	latestFile   = "latest.json"
	historyFile  = "history.json"
	sourcesFile  = "sources.json"
	intelFile    = "user_intel.json"
	feedbackFile = "feedback.json"
)

// State bundles the documents one cycle reads and writes.
type State struct {
	Latest   *model.ScanRecord
	History  model.History
	Sources  map[string]model.SourceProfile
	Intel    []model.UserIntelItem
	Feedback []model.FeedbackItem
}

// Store reads and writes the state documents. Not safe for concurrent
// writers; the design assumes one cycle at a time, serialized by the
// caller.
type Store struct {
	dir   string
	log   *zap.Logger
	cache *gocache.Cache // raw document bytes, invalidated on write
	ttl   time.Duration
}

// New creates a store over the given data directory.
func New(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	ttl := 5 * time.Minute
	return &Store{
		dir:   dir,
		log:   log.With(zap.String("component", "store")),
		cache: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

// LoadState loads all five documents. A missing or corrupt document loads
// as its empty default - corruption is logged, never fatal.
func (s *Store) LoadState() *State {
	st := &State{
		Sources: map[string]model.SourceProfile{},
	}
	var latest model.ScanRecord
	if s.loadJSON(latestFile, &latest) && latest.Content != "" {
		st.Latest = &latest
	}
	s.loadJSON(historyFile, &st.History)
	s.loadJSON(sourcesFile, &st.Sources)
	s.loadJSON(intelFile, &st.Intel)
	s.loadJSON(feedbackFile, &st.Feedback)
	if st.Sources == nil {
		st.Sources = map[string]model.SourceProfile{}
	}
	return st
}

// SaveState writes all five documents. Every document is marshaled before
// any file is touched, so a marshal failure leaves the store unchanged.
func (s *Store) SaveState(st *State) error {
	docs := []struct {
		name string
		v    interface{}
	}{
		{latestFile, st.Latest},
		{historyFile, st.History},
		{sourcesFile, st.Sources},
		{intelFile, st.Intel},
		{feedbackFile, st.Feedback},
	}

	encoded := make([][]byte, len(docs))
	for i, d := range docs {
		data, err := marshalIndent(d.v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", d.name, err)
		}
		encoded[i] = data
	}

	for i, d := range docs {
		if err := s.writeDoc(d.name, encoded[i]); err != nil {
			return err
		}
	}
	return nil
}

// AppendIntel persists one user-intel item immediately. Caller-supplied
// input survives even if the rest of the cycle later fails.
func (s *Store) AppendIntel(item model.UserIntelItem) error {
	var items []model.UserIntelItem
	s.loadJSON(intelFile, &items)
	items = append(items, item)
	data, err := marshalIndent(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", intelFile, err)
	}
	return s.writeDoc(intelFile, data)
}

// AppendFeedback persists one feedback item immediately.
func (s *Store) AppendFeedback(item model.FeedbackItem) error {
	var items []model.FeedbackItem
	s.loadJSON(feedbackFile, &items)
	items = append(items, item)
	data, err := marshalIndent(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", feedbackFile, err)
	}
	return s.writeDoc(feedbackFile, data)
}

// loadJSON reads one document into v. Returns false when the document is
// missing or does not parse; v is left at its zero value in that case.
func (s *Store) loadJSON(name string, v interface{}) bool {
	data, err := s.readDoc(name)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read state document failed, using empty default",
				zap.String("document", name), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("state document corrupt, using empty default",
			zap.String("document", name), zap.Error(err))
		return false
	}
	return true
}

// readDoc returns the raw bytes of one document, via the read cache.
func (s *Store) readDoc(name string) ([]byte, error) {
	if val, found := s.cache.Get(name); found {
		return val.([]byte), nil
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	s.cache.Set(name, data, s.ttl)
	return data, nil
}

// writeDoc writes one document via temp file + rename and refreshes the
// read cache.
func (s *Store) writeDoc(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	s.cache.Set(name, data, s.ttl)
	return nil
}

// marshalIndent renders indented JSON without HTML escaping, so non-ASCII
// and glyph characters persist as-is.
func marshalIndent(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
