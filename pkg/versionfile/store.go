package versionfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/MacroPower/appversion/pkg/verrors"
)

// DefaultNamespace is the top-level key the document is stored under.
const DefaultNamespace = "app_version"

// HeaderFunc renders the comment block written above the document.
type HeaderFunc func(modified time.Time) string

// DefaultHeader is the [HeaderFunc] used unless [WithHeader] is given.
func DefaultHeader(modified time.Time) string {
	return "# This file is auto-generated\n# Last modified on " + modified.Format(time.RFC3339) + "\n"
}

// Store reads and writes version files on a filesystem. It is safe for
// concurrent use; accesses to the same path are serialized.
type Store struct {
	fs        afero.Fs
	now       func() time.Time
	header    HeaderFunc
	locks     *pathLocks
	namespace string
}

// Option configures a [Store].
type Option func(*Store)

// WithNamespace sets the top-level key. Empty values are ignored.
func WithNamespace(ns string) Option {
	return func(s *Store) {
		if ns != "" {
			s.namespace = ns
		}
	}
}

// WithClock sets the clock used for the header timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithHeader sets the header renderer. A nil func disables the header.
func WithHeader(h HeaderFunc) Option {
	return func(s *Store) {
		s.header = h
	}
}

// NewStore creates a [Store] backed by fsys.
func NewStore(fsys afero.Fs, opts ...Option) *Store {
	s := &Store{
		fs:        fsys,
		now:       time.Now,
		header:    DefaultHeader,
		locks:     &pathLocks{},
		namespace: DefaultNamespace,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Namespace returns the top-level key used by the store.
func (s *Store) Namespace() string {
	return s.namespace
}

// Read parses the file at path and applies it to target. A missing file, or
// a file without the namespace key, leaves target untouched.
func (s *Store) Read(path string, target Target) error {
	unlock := s.locks.rlock(path)
	data, err := afero.ReadFile(s.fs, path)
	unlock()

	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("version file does not exist", "path", path)

		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: %w", verrors.ErrReadFile, err)
	}

	doc, err := s.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if doc == nil {
		slog.Debug("version file has no namespace key", "path", path, "namespace", s.namespace)

		return nil
	}

	target.ApplyDocument(doc)

	return nil
}

// Decode parses file contents and returns the document under the store's
// namespace, or nil if the key is absent.
func (s *Store) Decode(data []byte) (*Document, error) {
	var root map[string]*Document
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", verrors.ErrInvalidFormat, err)
	}

	return root[s.namespace], nil
}

// Write renders src and atomically replaces the file at path. Parent
// directories are created as needed.
func (s *Store) Write(path string, src Source) error {
	body, err := s.Encode(src)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if s.header != nil {
		buf.WriteString(s.header(s.now()))
	}

	buf.Write(body)

	defer s.locks.lock(path)()

	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory %q: %w", verrors.ErrWriteFile, dir, err)
	}

	name, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("%w: temp file name: %w", verrors.ErrWriteFile, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+name.String()+".tmp")
	if err := afero.WriteFile(s.fs, tmp, buf.Bytes(), 0o644); err != nil {
		_ = s.fs.Remove(tmp)

		return fmt.Errorf("%w: %w", verrors.ErrWriteFile, err)
	}

	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)

		return fmt.Errorf("%w: rename %q: %w", verrors.ErrWriteFile, path, err)
	}

	slog.Debug("wrote version file", "path", path)

	return nil
}

// Encode renders src under the store's namespace, without the header.
func (s *Store) Encode(src Source) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)

	if err := enc.Encode(map[string]*Document{s.namespace: src.Document()}); err != nil {
		return nil, fmt.Errorf("%w: %w", verrors.ErrYAMLMarshal, err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", verrors.ErrYAMLMarshal, err)
	}

	return buf.Bytes(), nil
}

// EncodeJSON renders src under the store's namespace as JSON.
func (s *Store) EncodeJSON(src Source) ([]byte, error) {
	y, err := s.Encode(src)
	if err != nil {
		return nil, err
	}

	j, err := sigsyaml.YAMLToJSON(y)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", verrors.ErrJSONMarshal, err)
	}

	return j, nil
}
