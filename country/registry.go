package country

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/telmask/mask"
)

//go:embed countries.yaml
var builtinYAML []byte

// Registry maps region codes to validated descriptors.
type Registry struct {
	mu        sync.RWMutex
	byCountry map[string]mask.Descriptor

	log   *zap.Logger
	valid *validator.Validate
}

// NewRegistry returns an empty registry. A nil logger discards logs.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		byCountry: make(map[string]mask.Descriptor),
		log:       log.Named("country"),
		valid:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Builtin returns a registry preloaded with the formats shipped in
// countries.yaml.
func Builtin(log *zap.Logger) *Registry {
	r := NewRegistry(log)
	if err := r.Load(bytes.NewReader(builtinYAML)); err != nil {
		panic(fmt.Sprintf("country: builtin formats: %v", err))
	}
	return r
}

// Register validates d and stores it, replacing any descriptor for the same
// country. A zero CallingCode is filled from libphonenumber.
func (r *Registry) Register(d mask.Descriptor) error {
	d, err := r.prepare(d)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.store(d)
	r.mu.Unlock()
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(d mask.Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor for country (case-insensitive).
func (r *Registry) Lookup(country string) (mask.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byCountry[normalizeCountry(country)]
	return d, ok
}

// Countries returns the registered region codes in sorted order.
func (r *Registry) Countries() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.byCountry))
	for c := range r.byCountry {
		out = append(out, c)
	}
	r.mu.RUnlock()
	slices.Sort(out)
	return out
}

// LoadFile loads a YAML country file from path.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("country: open %s: %w", path, err)
	}
	defer f.Close()

	if err := r.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Load reads a YAML country document. Either every entry is registered or,
// on the first invalid entry, none is.
func (r *Registry) Load(src io.Reader) error {
	var file File
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("country: decode: %w", err)
	}
	if err := r.valid.Struct(file); err != nil {
		return fmt.Errorf("country: invalid document: %w", err)
	}

	ready := make([]mask.Descriptor, 0, len(file.Countries))
	for i, e := range file.Countries {
		d, err := e.Descriptor()
		if err == nil {
			d, err = r.prepare(d)
		}
		if err != nil {
			return fmt.Errorf("country: entry %d: %w", i, err)
		}
		ready = append(ready, d)
	}

	r.mu.Lock()
	for _, d := range ready {
		r.store(d)
	}
	r.mu.Unlock()

	r.log.Info("loaded country formats", zap.Int("count", len(ready)))
	return nil
}

func (r *Registry) prepare(d mask.Descriptor) (mask.Descriptor, error) {
	d.Country = normalizeCountry(d.Country)
	if err := mask.Validate(d); err != nil {
		r.log.Warn("rejected country format", zap.String("country", d.Country), zap.Error(err))
		return mask.Descriptor{}, err
	}

	code := phonenumbers.GetCountryCodeForRegion(d.Country)
	if code == 0 {
		err := fmt.Errorf("%s: %w", d.Country, ErrUnknownRegion)
		r.log.Warn("rejected country format", zap.String("country", d.Country), zap.Error(err))
		return mask.Descriptor{}, err
	}
	if d.CallingCode == 0 {
		d.CallingCode = code
	}
	return d, nil
}

// store requires r.mu held for writing.
func (r *Registry) store(d mask.Descriptor) {
	r.byCountry[d.Country] = d
	r.log.Debug("registered country format",
		zap.String("country", d.Country),
		zap.String("template", mask.Resolve(d, 0).String()),
		zap.Int("capacity", mask.Capacity(d)),
		zap.Int("calling_code", d.CallingCode),
		zap.String("trunk_prefix", d.TrunkPrefix),
	)
}
