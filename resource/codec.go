package resource

import (
	"log/slog"

	"resource-mapper/options"
)

// Codec converts between wire envelopes and instances. The zero value is
// not usable; build one with NewCodec.
type Codec struct {
	resolver Resolver
	features options.FeatureEnum
	logger   *slog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithRegistry sets the resolver used for nested resources and
// polymorphic documents.
func WithRegistry(r Resolver) Option {
	return func(c *Codec) {
		c.resolver = r
	}
}

// WithFeatures replaces the feature set (options.FeatureDefault otherwise).
func WithFeatures(f options.FeatureEnum) Option {
	return func(c *Codec) {
		c.features = f
	}
}

// WithLogger sets the logger for drift reports. Nothing is logged by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Codec) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCodec returns a codec. Without WithRegistry nested resources cannot be
// resolved.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		features: options.FeatureDefault,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Features returns the enabled features.
func (c *Codec) Features() options.FeatureEnum {
	return c.features
}

var defaultCodec = NewCodec()

// FromWire decodes payload with a codec that has default features and no
// resolver.
func FromWire(payload map[string]any, expected Definition) (*Instance, error) {
	return defaultCodec.FromWire(payload, expected)
}

// ToWire encodes inst with a codec that has default features.
func ToWire(inst *Instance, def Definition) (map[string]any, error) {
	return defaultCodec.ToWire(inst, def)
}
