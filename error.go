// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAmbiguousRoute     = errors.New("ambiguous route")
	ErrRouteKeyExist      = errors.New("route key already registered")
	ErrRouteNotFound      = errors.New("route not found")
	ErrInvalidRoute       = errors.New("invalid route")
	ErrMissingParamValue  = errors.New("missing parameter value")
	ErrTooManyParamValues = errors.New("too many parameter values")
	ErrTooManyParams      = errors.New("too many params")
	ErrInvalidConfig      = errors.New("invalid config")
	ErrInvalidSnapshot    = errors.New("invalid snapshot")
)

// RouteConflictError is returned when a template reduces to the same fragments as a template already
// registered under another key, so that a path matching one would always match the other.
type RouteConflictError struct {
	// Key is the route key being registered.
	Key any
	// Template is the template being registered.
	Template string
	// Existing is the key of the previously registered route that conflict with Key.
	Existing any
	// ExistingTemplate is the template of the previously registered route.
	ExistingTemplate string
}

func (e *RouteConflictError) Error() string {
	var sb strings.Builder
	sb.WriteString("ambiguous route: new route ")
	writeRoute(&sb, e.Key, e.Template)
	sb.WriteString(" conflicts with ")
	writeRoute(&sb, e.Existing, e.ExistingTemplate)
	return sb.String()
}

// Unwrap returns the sentinel value [ErrAmbiguousRoute].
func (e *RouteConflictError) Unwrap() error {
	return ErrAmbiguousRoute
}

// RouteKeyConflictError is returned when a route key is registered a second time with a different template.
type RouteKeyConflictError struct {
	// Key is the route key being registered.
	Key any
	// Template is the template being registered.
	Template string
	// ExistingTemplate is the template already bound to Key.
	ExistingTemplate string
}

func (e *RouteKeyConflictError) Error() string {
	return fmt.Sprintf("route key already registered: key '%v' is bound to %s, cannot rebind it to %s", e.Key, e.ExistingTemplate, e.Template)
}

// Unwrap returns the sentinel value [ErrRouteKeyExist].
func (e *RouteKeyConflictError) Unwrap() error {
	return ErrRouteKeyExist
}

func writeRoute(sb *strings.Builder, key any, template string) {
	sb.WriteByte('\'')
	sb.WriteString(fmt.Sprint(key))
	sb.WriteByte('\'')
	if template != "" {
		sb.WriteByte(' ')
		sb.WriteString(template)
	}
}

func newRouteNotFoundError(key any) error {
	return fmt.Errorf("%w: route '%v' is not registered", ErrRouteNotFound, key)
}
