package bitreg

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/voltlab/bitreg/internal/observability"
)

// Registry is a concurrency-safe collection of schemas addressable by
// register name and, when assigned, register address. Its Encode and
// Decode entry points wrap the pure schema codec with logging and
// metrics.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Schema
	byAddr map[uint64]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Schema),
		byAddr: make(map[uint64]string),
	}
}

// Register adds a schema. Names and addresses must be unique within
// the registry.
func (r *Registry) Register(s *Schema) error {
	if s == nil {
		return SchemaError{Reason: "nil schema"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byName[s.name]; dup {
		return ErrSchemaRegistered
	}
	if addr, ok := s.Addr(); ok {
		if _, dup := r.byAddr[addr]; dup {
			return ErrAddrRegistered
		}
		r.byAddr[addr] = s.name
	}
	r.byName[s.name] = s
	observability.SetRegistrySize(len(r.byName))
	log.Debug().
		Str("register", s.name).
		Stringer("width", s.width).
		Stringer("byte_order", s.order).
		Int("fields", len(s.fields)).
		Msg("schema registered")
	return nil
}

// Get returns the named schema.
func (r *Registry) Get(name string) (*Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byName[name]
	if !ok {
		return nil, ErrSchemaNotFound
	}
	return s, nil
}

// GetByAddr returns the schema registered at a register address.
func (r *Registry) GetByAddr(addr uint64) (*Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.byAddr[addr]
	if !ok {
		return nil, ErrSchemaNotFound
	}
	return r.byName[name], nil
}

// Names returns the registered register names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// Encode encodes values against the named schema.
func (r *Registry) Encode(name string, values Values) (uint64, error) {
	s, err := r.Get(name)
	if err != nil {
		observability.RecordEncode(name, outcomeLabel(err), 0)
		log.Error().Err(err).Str("register", name).Msg("encode failed")
		return 0, err
	}
	start := time.Now()
	raw, err := s.Encode(values)
	observability.RecordEncode(name, outcomeLabel(err), time.Since(start))
	if err != nil {
		log.Error().Err(err).Str("register", name).Msg("encode failed")
		return 0, err
	}
	log.Debug().Str("register", name).Uint64("raw", raw).Msg("encode ok")
	return raw, nil
}

// Decode decodes a raw container word against the named schema.
func (r *Registry) Decode(name string, raw uint64) (Values, error) {
	s, err := r.Get(name)
	if err != nil {
		observability.RecordDecode(name, outcomeLabel(err), 0)
		log.Error().Err(err).Str("register", name).Msg("decode failed")
		return nil, err
	}
	start := time.Now()
	values, err := s.Decode(raw)
	observability.RecordDecode(name, outcomeLabel(err), time.Since(start))
	if err != nil {
		log.Error().Err(err).Str("register", name).Uint64("raw", raw).Msg("decode failed")
		return nil, err
	}
	log.Debug().Str("register", name).Uint64("raw", raw).Int("fields", len(values)).Msg("decode ok")
	return values, nil
}

// outcomeLabel maps codec results onto the metric outcome label set.
func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var (
		overflow  FieldOverflowError
		unknown   UnknownDiscriminantError
		missing   MissingFieldError
		kind      KindMismatchError
		container ContainerOverflowError
	)
	switch {
	case errors.As(err, &overflow):
		return "field_overflow"
	case errors.As(err, &unknown):
		return "unknown_discriminant"
	case errors.As(err, &missing):
		return "missing_field"
	case errors.As(err, &kind):
		return "kind_mismatch"
	case errors.As(err, &container):
		return "container_overflow"
	case errors.Is(err, ErrSchemaNotFound):
		return "not_found"
	}
	return "error"
}
