package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Store-related errors.
var (
	ErrInvalidArchive = errors.New("archive: invalid or corrupted container")
	ErrNotFound       = errors.New("archive: entry not found")
)

// Store provides access to the parts of a ZIP container.
type Store struct {
	zr     *zip.ReadCloser // nil when opened from an io.ReaderAt
	files  map[string]*zip.File
	folded map[string]*zip.File // lower-cased names, only with case folding
	log    zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for entry reads.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithCaseFolding makes lookups fall back to a case-insensitive match when
// no entry has exactly the requested name.
func WithCaseFolding() Option {
	return func(s *Store) {
		s.folded = make(map[string]*zip.File)
	}
}

// Open opens a container file from a path.
func Open(filename string, opts ...Option) (*Store, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, openError(err)
	}

	s := newStore(&zr.Reader, opts)
	s.zr = zr
	return s, nil
}

// NewStore opens a container from an io.ReaderAt.
func NewStore(ra io.ReaderAt, size int64, opts ...Option) (*Store, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, openError(err)
	}

	return newStore(zr, opts), nil
}

func newStore(zr *zip.Reader, opts []Option) *Store {
	s := &Store{
		files: make(map[string]*zip.File, len(zr.File)),
		log:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, f := range zr.File {
		s.files[f.Name] = f
		if s.folded != nil {
			key := strings.ToLower(f.Name)
			if _, dup := s.folded[key]; !dup {
				s.folded[key] = f
			}
		}
	}

	s.log.Debug().Int("entries", len(s.files)).Msg("Container opened")
	return s
}

// openError separates corrupt containers from plain I/O failures.
func openError(err error) error {
	if errors.Is(err, zip.ErrFormat) || errors.Is(err, zip.ErrAlgorithm) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrInvalidArchive, err)
	}
	return fmt.Errorf("opening container: %w", err)
}

// Close releases the underlying file, if the Store owns one.
func (s *Store) Close() error {
	if s.zr != nil {
		err := s.zr.Close()
		s.zr = nil
		return err
	}
	return nil
}

// Names returns the sorted names of all entries in the container.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether an entry can be found under name.
func (s *Store) Has(name string) bool {
	return s.lookup(name) != nil
}

// Read returns the raw bytes of the named entry.
func (s *Store) Read(name string) ([]byte, error) {
	s.log.Debug().Str("entry", name).Msg("Reading container entry")

	f := s.lookup(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, entryError(name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, entryError(name, err)
	}
	return data, nil
}

// ReadText returns the named entry decoded with DecodeText.
func (s *Store) ReadText(name string) (string, error) {
	data, err := s.Read(name)
	if err != nil {
		return "", err
	}

	text, err := DecodeText(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", name, err)
	}
	return text, nil
}

func (s *Store) lookup(name string) *zip.File {
	if f, ok := s.files[name]; ok {
		return f
	}
	if s.folded != nil {
		if f, ok := s.folded[strings.ToLower(name)]; ok {
			s.log.Debug().Str("entry", name).Str("match", f.Name).Msg("Case-folded entry lookup")
			return f
		}
	}
	return nil
}

func entryError(name string, err error) error {
	if errors.Is(err, zip.ErrChecksum) || errors.Is(err, zip.ErrAlgorithm) || errors.Is(err, zip.ErrFormat) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidArchive, name, err)
	}
	return fmt.Errorf("reading %s: %w", name, err)
}
