// Package codec provides the stream serialization formats artifacts are
// written in. Each codec turns a writer into an Encoder and a reader into a
// Decoder; successive Encode calls produce successive documents that the
// matching Decoder reads back in order.
package codec

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/arthur-debert/stash/pkg/errors"
	"github.com/arthur-debert/stash/pkg/registry"
	"gopkg.in/yaml.v3"
)

// Codec names
const (
	JSON = "json"
	YAML = "yaml"
	Gob  = "gob"
)

// Encoder writes successive values to a stream.
type Encoder interface {
	Encode(v any) error
}

// Decoder reads successive values from a stream.
type Decoder interface {
	Decode(v any) error
}

// Codec is a named stream serialization format.
type Codec interface {
	Name() string
	Extensions() []string
	NewEncoder(w io.Writer) Encoder
	NewDecoder(r io.Reader) Decoder
}

type jsonCodec struct{}

func (jsonCodec) Name() string         { return JSON }
func (jsonCodec) Extensions() []string { return []string{".json"} }

func (jsonCodec) NewEncoder(w io.Writer) Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}

func (jsonCodec) NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

type yamlCodec struct{}

func (yamlCodec) Name() string         { return YAML }
func (yamlCodec) Extensions() []string { return []string{".yaml", ".yml"} }

// yamlEncoder writes each value as a complete document so the stream
// needs no Close.
type yamlEncoder struct {
	w io.Writer
}

func (e *yamlEncoder) Encode(v any) (err error) {
	// yaml.Marshal panics on kinds it cannot represent (chan, func).
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("yaml: %v", r)
		}
	}()

	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(e.w, "---\n"); err != nil {
		return err
	}
	_, err = e.w.Write(out)
	return err
}

func (yamlCodec) NewEncoder(w io.Writer) Encoder {
	return &yamlEncoder{w: w}
}

func (yamlCodec) NewDecoder(r io.Reader) Decoder {
	return yaml.NewDecoder(r)
}

// Generic documents decoded from json or yaml are maps and slices of
// interface values; gob needs their concrete types registered.
func init() {
	gob.Register(map[string]interface{}{})
	gob.Register([]interface{}{})
}

type gobCodec struct{}

func (gobCodec) Name() string         { return Gob }
func (gobCodec) Extensions() []string { return []string{".gob"} }

func (gobCodec) NewEncoder(w io.Writer) Encoder {
	return gob.NewEncoder(w)
}

func (gobCodec) NewDecoder(r io.Reader) Decoder {
	return gob.NewDecoder(r)
}

// Registry resolves codecs by name and by file extension.
type Registry struct {
	byName *registry.Registry[Codec]
	byExt  *registry.Registry[Codec]
}

// NewRegistry returns a registry holding the given codecs.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{
		byName: registry.New[Codec](),
		byExt:  registry.New[Codec](),
	}
	for _, c := range codecs {
		r.Register(c)
	}
	return r
}

// Default returns a registry with the json, yaml and gob codecs.
func Default() *Registry {
	return NewRegistry(jsonCodec{}, yamlCodec{}, gobCodec{})
}

// Register adds c, replacing any codec with the same name or extension.
func (r *Registry) Register(c Codec) {
	r.byName.Set(c.Name(), c)
	for _, ext := range c.Extensions() {
		r.byExt.Set(ext, c)
	}
}

// Get returns the codec registered under name.
func (r *Registry) Get(name string) (Codec, error) {
	c, ok := r.byName.Lookup(name)
	if !ok {
		return nil, errors.Newf(errors.ErrCodecUnknown, "unknown codec %q", name).
			WithDetail("available", r.Names())
	}
	return c, nil
}

// ForPath picks the codec by the file extension of path, falling back to
// the codec named fallback for unknown or missing extensions.
func (r *Registry) ForPath(path, fallback string) (Codec, error) {
	if c, ok := r.byExt.Lookup(filepath.Ext(path)); ok {
		return c, nil
	}
	return r.Get(fallback)
}

// ReadOrder returns the codecs to try when reading path. A known extension
// yields its codec alone; otherwise the fallback comes first, followed by
// the remaining codecs in name order.
func (r *Registry) ReadOrder(path, fallback string) ([]Codec, error) {
	if c, ok := r.byExt.Lookup(filepath.Ext(path)); ok {
		return []Codec{c}, nil
	}
	first, err := r.Get(fallback)
	if err != nil {
		return nil, err
	}
	order := []Codec{first}
	for _, name := range r.byName.Names() {
		if name != first.Name() {
			c, _ := r.byName.Lookup(name)
			order = append(order, c)
		}
	}
	return order, nil
}

// Names returns the registered codec names, sorted.
func (r *Registry) Names() []string {
	return r.byName.Names()
}
