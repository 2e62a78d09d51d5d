// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

import (
	"fmt"
	"iter"
	"regexp"
	"slices"

	"github.com/tigerwill90/waypoint/internal/iterutil"
)

// DefaultPlaceholderPattern matches placeholders like {name}. The first capture group is the parameter name.
var DefaultPlaceholderPattern = regexp.MustCompile(`\{(.*?)\}`)

// fragment is a literal anchor, optionally preceded by a parameter.
type fragment struct {
	anchor   string
	param    string
	hasParam bool
}

func (f fragment) isParam() bool {
	return f.hasParam
}

func (f fragment) paramName() string {
	return f.param
}

// parseTemplate lazily splits a template into fragments. The first fragment is the literal text
// before the first placeholder (possibly empty) and has no parameter. Every following fragment
// holds a placeholder name and the literal text after it, up to the next placeholder.
func parseTemplate(template string, re *regexp.Regexp) iter.Seq[fragment] {
	return func(yield func(fragment) bool) {
		var (
			offset   int
			param    string
			hasParam bool
		)
		for offset <= len(template) {
			loc := re.FindStringSubmatchIndex(template[offset:])
			if loc == nil || loc[1] == loc[0] {
				break
			}

			if !yield(fragment{anchor: template[offset : offset+loc[0]], param: param, hasParam: hasParam}) {
				return
			}

			param, hasParam = "", true
			if len(loc) >= 4 && loc[2] >= 0 {
				param = template[offset+loc[2] : offset+loc[3]]
			}
			offset += loc[1]
		}
		yield(fragment{anchor: template[offset:], param: param, hasParam: hasParam})
	}
}

// parseRoute tokenizes a template and validates the parameters names.
func parseRoute(template string, re *regexp.Regexp, maxParams int) ([]fragment, []string, error) {
	frags := slices.Collect(parseTemplate(template, re))
	params := slices.Collect(iterutil.Map(iterutil.Filter(slices.Values(frags), fragment.isParam), fragment.paramName))

	if len(params) > maxParams {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidRoute, ErrTooManyParams)
	}

	for i, name := range params {
		if name == "" {
			return nil, nil, fmt.Errorf("%w: missing parameter name at position %d in %q", ErrInvalidRoute, i, template)
		}
		if slices.Contains(params[:i], name) {
			return nil, nil, fmt.Errorf("%w: duplicate parameter name %q in %q", ErrInvalidRoute, name, template)
		}
	}

	return frags, params, nil
}
