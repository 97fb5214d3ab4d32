package artifact

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/arthur-debert/stash/pkg/codec"
	"github.com/arthur-debert/stash/pkg/errors"
	"github.com/arthur-debert/stash/pkg/filesystem"
	"github.com/arthur-debert/stash/pkg/logging"
	"github.com/arthur-debert/stash/pkg/types"
)

const (
	// FormatName tags every artifact header.
	FormatName = "stash-artifact"

	// FormatVersion is the newest header version this package writes and reads.
	FormatVersion = 1

	DefaultDirPerm  fs.FileMode = 0755
	DefaultFilePerm fs.FileMode = 0644
)

// Detail keys attached to artifact errors
const (
	DetailOperation = "operation"
	DetailPath      = "path"
	DetailCodec     = "codec"
)

// Header is the first document of every artifact file.
type Header struct {
	Format    string    `json:"format" yaml:"format"`
	Version   int       `json:"version" yaml:"version"`
	Codec     string    `json:"codec" yaml:"codec"`
	Kind      string    `json:"kind" yaml:"kind"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Options configures a Store. Zero values select the defaults.
type Options struct {
	FS           types.FS
	Codecs       *codec.Registry
	DefaultCodec string
	DirPerm      fs.FileMode
	FilePerm     fs.FileMode
	Now          func() time.Time
}

// Store saves and loads artifacts through a filesystem.
type Store struct {
	fs           types.FS
	codecs       *codec.Registry
	defaultCodec string
	dirPerm      fs.FileMode
	filePerm     fs.FileMode
	now          func() time.Time
}

// NewStore creates a Store, filling unset options with the OS filesystem,
// the default codec registry and the json codec.
func NewStore(opts Options) *Store {
	s := &Store{
		fs:           opts.FS,
		codecs:       opts.Codecs,
		defaultCodec: opts.DefaultCodec,
		dirPerm:      opts.DirPerm,
		filePerm:     opts.FilePerm,
		now:          opts.Now,
	}
	if s.fs == nil {
		s.fs = filesystem.NewOS()
	}
	if s.codecs == nil {
		s.codecs = codec.Default()
	}
	if s.defaultCodec == "" {
		s.defaultCodec = codec.JSON
	}
	if s.dirPerm == 0 {
		s.dirPerm = DefaultDirPerm
	}
	if s.filePerm == 0 {
		s.filePerm = DefaultFilePerm
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// SaveObject writes obj to path using the default OS-backed store.
func SaveObject(path string, obj any) error {
	return NewStore(Options{}).saveObject(path, obj)
}

// LoadObject reads the artifact at path into target using the default
// OS-backed store.
func LoadObject(path string, target any) (*Header, error) {
	return NewStore(Options{}).loadObject(path, target, true)
}

// SaveObject creates the parent directories of path, truncates or creates
// the file and encodes a header followed by obj into it.
func (s *Store) SaveObject(path string, obj any) error {
	return s.saveObject(path, obj)
}

// LoadObject decodes the artifact at path into target, which must be a
// pointer, and returns its header.
func (s *Store) LoadObject(path string, target any) (*Header, error) {
	return s.loadObject(path, target, true)
}

// ReadHeader decodes only the header of the artifact at path.
func (s *Store) ReadHeader(path string) (*Header, error) {
	return s.loadObject(path, nil, false)
}

// fail builds the error returned by saveObject and loadObject. It must be
// called directly from those functions so the recorded caller is the code
// that invoked the public entry point.
func fail(err error, code errors.ErrorCode, op, path, format string, args ...interface{}) *errors.StashError {
	var e *errors.StashError
	if err != nil {
		e = errors.Wrapf(err, code, format, args...)
	} else {
		e = errors.Newf(code, format, args...)
	}
	return e.
		WithDetail(DetailOperation, op).
		WithDetail(DetailPath, path).
		WithCaller(3)
}

func (s *Store) saveObject(path string, obj any) error {
	logger := logging.GetLogger("artifact")

	c, err := s.codecs.ForPath(path, s.defaultCodec)
	if err != nil {
		return fail(err, errors.ErrCodecUnknown, "save", path, "no codec for %s", path)
	}

	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, s.dirPerm); err != nil {
		return fail(err, errors.ErrDirCreate, "save", path, "failed to create directory %s", dir)
	}

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.filePerm)
	if err != nil {
		return fail(err, errors.ErrFileCreate, "save", path, "failed to open %s for writing", path)
	}

	header := Header{
		Format:    FormatName,
		Version:   FormatVersion,
		Codec:     c.Name(),
		Kind:      fmt.Sprintf("%T", obj),
		CreatedAt: s.now().UTC(),
	}
	encErr := encode(c.NewEncoder(f), &header, obj)
	closeErr := f.Close()
	if encErr != nil {
		return fail(encErr, errors.ErrSerialize, "save", path, "failed to serialize %s as %s", header.Kind, c.Name()).
			WithDetail(DetailCodec, c.Name())
	}
	if closeErr != nil {
		return fail(closeErr, errors.ErrFileWrite, "save", path, "failed to close %s", path)
	}

	logger.Info().Str("path", path).Str("codec", c.Name()).Str("kind", header.Kind).Msg("Object saved")
	return nil
}

func encode(enc codec.Encoder, header *Header, obj any) error {
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	return enc.Encode(obj)
}

// loadResult is the outcome of reading an artifact with one codec.
type loadResult struct {
	header  *Header
	err     error
	code    errors.ErrorCode
	msg     string
	details map[string]interface{}
	// probe is set when the file did not start with a header this codec
	// understands, so another codec may still read it.
	probe bool
}

func (s *Store) loadObject(path string, target any, withPayload bool) (*Header, error) {
	logger := logging.GetLogger("artifact")

	candidates, err := s.codecs.ReadOrder(path, s.defaultCodec)
	if err != nil {
		return nil, fail(err, errors.ErrCodecUnknown, "load", path, "no codec for %s", path)
	}

	var first loadResult
	for i, c := range candidates {
		res := s.read(c, path, target, withPayload)
		if res.err == nil {
			if withPayload {
				logger.Debug().Str("path", path).Str("codec", c.Name()).Str("kind", res.header.Kind).Msg("Object loaded")
			}
			return res.header, nil
		}
		if i == 0 {
			first = res
		}
		if !res.probe {
			first = res
			break
		}
	}

	return nil, fail(first.err, first.code, "load", path, "%s", first.msg).WithDetails(first.details)
}

// read opens path and decodes it with c. The file is reopened for every
// codec tried.
func (s *Store) read(c codec.Codec, path string, target any, withPayload bool) loadResult {
	f, err := s.fs.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return loadResult{err: err, code: errors.ErrFileNotFound, msg: fmt.Sprintf("artifact %s does not exist", path)}
		}
		return loadResult{err: err, code: errors.ErrFileAccess, msg: fmt.Sprintf("failed to open %s", path)}
	}
	defer func() { _ = f.Close() }()

	withCodec := map[string]interface{}{DetailCodec: c.Name()}
	dec := c.NewDecoder(f)

	var header Header
	if err := dec.Decode(&header); err != nil {
		return loadResult{
			err:     err,
			code:    errors.ErrDeserialize,
			msg:     fmt.Sprintf("failed to read artifact header as %s", c.Name()),
			details: withCodec,
			probe:   true,
		}
	}
	if header.Format != FormatName {
		return loadResult{
			err:   stderrors.New("missing artifact header"),
			code:  errors.ErrFormatVersion,
			msg:   fmt.Sprintf("%s is not a stash artifact", path),
			probe: true,
		}
	}
	if header.Version < 1 || header.Version > FormatVersion {
		return loadResult{
			err:     fmt.Errorf("version %d", header.Version),
			code:    errors.ErrFormatVersion,
			msg:     fmt.Sprintf("unsupported artifact version %d (supported: 1..%d)", header.Version, FormatVersion),
			details: map[string]interface{}{"version": header.Version},
		}
	}

	if header.Codec != "" && header.Codec != c.Name() {
		return loadResult{
			err:     fmt.Errorf("written with %s", header.Codec),
			code:    errors.ErrDeserialize,
			msg:     fmt.Sprintf("artifact header does not match codec %s", c.Name()),
			details: withCodec,
			probe:   true,
		}
	}

	if withPayload {
		if err := dec.Decode(target); err != nil {
			if stderrors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return loadResult{
				err:     err,
				code:    errors.ErrDeserialize,
				msg:     fmt.Sprintf("failed to decode %s payload", header.Kind),
				details: withCodec,
			}
		}
	}

	return loadResult{header: &header}
}

// Info returns the header fields and size of the artifact at path.
func (s *Store) Info(path string) (types.ArtifactInfo, error) {
	header, err := s.ReadHeader(path)
	if err != nil {
		return types.ArtifactInfo{}, err
	}
	info := types.ArtifactInfo{
		Path:      path,
		Codec:     header.Codec,
		Kind:      header.Kind,
		Version:   header.Version,
		CreatedAt: header.CreatedAt,
	}
	if st, err := s.fs.Stat(path); err == nil {
		info.Size = st.Size()
	}
	return info, nil
}

// List walks dir and returns every readable artifact under it, sorted by
// path. Files that are not artifacts are skipped. A missing dir yields an
// empty list.
func (s *Store) List(dir string) ([]types.ArtifactInfo, error) {
	logger := logging.GetLogger("artifact")

	var out []types.ArtifactInfo
	var walk func(string) error
	walk = func(d string) error {
		entries, err := s.fs.ReadDir(d)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			p := filepath.Join(d, entry.Name())
			if entry.IsDir() {
				if err := walk(p); err != nil {
					return err
				}
				continue
			}
			info, err := s.Info(p)
			if err != nil {
				logger.Debug().Err(err).Str("path", p).Msg("Skipping non-artifact file")
				continue
			}
			out = append(out, info)
		}
		return nil
	}

	if err := walk(dir); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return []types.ArtifactInfo{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list artifacts in %s", dir).
			WithDetail(DetailPath, dir)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	if out == nil {
		out = []types.ArtifactInfo{}
	}
	return out, nil
}
