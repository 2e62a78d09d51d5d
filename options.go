// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

import (
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"regexp"

	"github.com/tigerwill90/waypoint/internal/slogpretty"
)

const (
	// DefaultMaxParamValueLength is the default maximum length of a parameter value, in bytes.
	DefaultMaxParamValueLength = 20
)

// ParamEncoder encodes a parameter value before it is written into a path.
type ParamEncoder func(value string) string

// ParamDecoder decodes a raw parameter value extracted from a path.
type ParamDecoder func(raw string) (string, error)

// Option configures a [Router].
type Option interface {
	apply(*config) error
}

type config struct {
	placeholder         *regexp.Regexp
	encoder             ParamEncoder
	decoder             ParamDecoder
	logger              *slog.Logger
	maxParamValueLength int
	maxParams           int
}

func defaultConfig() config {
	return config{
		placeholder:         DefaultPlaceholderPattern,
		encoder:             url.PathEscape,
		decoder:             url.PathUnescape,
		logger:              slog.New(slog.DiscardHandler),
		maxParamValueLength: DefaultMaxParamValueLength,
		maxParams:           math.MaxUint8,
	}
}

type optionFunc func(*config) error

func (o optionFunc) apply(c *config) error {
	return o(c)
}

// WithMaxParamValueLength set the expected maximum length, in bytes, of a parameter value. When matching a path,
// the literal text following a parameter is only searched within the next max+len(literal) bytes. This bounds the
// cost of a lookup regardless of the path length, but a longer value can no longer be captured, unless the
// parameter is the last element of its template. The default is [DefaultMaxParamValueLength].
func WithMaxParamValueLength(max int) Option {
	return optionFunc(func(c *config) error {
		if max <= 0 {
			return fmt.Errorf("%w: max param value length must be greater than zero", ErrInvalidConfig)
		}
		c.maxParamValueLength = max
		return nil
	})
}

// WithPlaceholderPattern set the regular expression used to find placeholders in route templates. The first
// capture group of the expression is the parameter name. By default, placeholders are written {name}
// (see [DefaultPlaceholderPattern]).
func WithPlaceholderPattern(re *regexp.Regexp) Option {
	return optionFunc(func(c *config) error {
		if re == nil {
			return fmt.Errorf("%w: placeholder pattern cannot be nil", ErrInvalidConfig)
		}
		if re.NumSubexp() < 1 {
			return fmt.Errorf("%w: placeholder pattern %q must have a capture group for the parameter name", ErrInvalidConfig, re)
		}
		if re.MatchString("") {
			return fmt.Errorf("%w: placeholder pattern %q must not match an empty string", ErrInvalidConfig, re)
		}
		c.placeholder = re
		return nil
	})
}

// WithParamEncoder register the function used to encode parameter values when building a path with [Router.Reverse].
// By default, [url.PathEscape] is used.
func WithParamEncoder(fn ParamEncoder) Option {
	return optionFunc(func(c *config) error {
		if fn == nil {
			return fmt.Errorf("%w: param encoder cannot be nil", ErrInvalidConfig)
		}
		c.encoder = fn
		return nil
	})
}

// WithParamDecoder register the function used to decode parameter values extracted by [Router.Match]. If the
// decoder returns an error, the raw value is kept. By default, [url.PathUnescape] is used.
func WithParamDecoder(fn ParamDecoder) Option {
	return optionFunc(func(c *config) error {
		if fn == nil {
			return fmt.Errorf("%w: param decoder cannot be nil", ErrInvalidConfig)
		}
		c.decoder = fn
		return nil
	})
}

// WithMaxRouteParams set the maximum number of parameters allowed in a route. The default max is math.MaxUint8.
// Routes exceeding this limit will fail with an error that is ErrInvalidRoute and ErrTooManyParams.
func WithMaxRouteParams(max int) Option {
	return optionFunc(func(c *config) error {
		if max < 0 {
			return fmt.Errorf("%w: max route params cannot be negative", ErrInvalidConfig)
		}
		c.maxParams = max
		return nil
	})
}

// WithLogHandler set the handler used to log route registration and parameter decoding failures.
// By default, nothing is logged.
func WithLogHandler(handler slog.Handler) Option {
	return optionFunc(func(c *config) error {
		if handler == nil {
			return fmt.Errorf("%w: log handler cannot be nil", ErrInvalidConfig)
		}
		c.logger = slog.New(handler)
		return nil
	})
}

// WithPrettyLogs configures the router with human-readable logs, colorized when the output is a terminal.
// This option prioritizes readability over performance and is mostly useful while developing.
func WithPrettyLogs() Option {
	return WithLogHandler(slogpretty.DefaultHandler)
}
