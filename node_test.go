// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareNodes(t *testing.T) {
	cases := []struct {
		name string
		a    *node[string]
		b    *node[string]
		want int
	}{
		{
			name: "longer anchor first",
			a:    newNode[string]("/product/", false),
			b:    newNode[string]("/product", false),
			want: -1,
		},
		{
			name: "shorter anchor last",
			a:    newNode[string]("a", false),
			b:    newNode[string]("ab", false),
			want: 1,
		},
		{
			name: "longer param anchor before shorter literal",
			a:    newNode[string]("/abc", true),
			b:    newNode[string]("/a", false),
			want: -1,
		},
		{
			name: "literal before param with same length",
			a:    newNode[string]("/a", false),
			b:    newNode[string]("/a", true),
			want: -1,
		},
		{
			name: "param after literal with same length",
			a:    newNode[string]("", true),
			b:    newNode[string]("", false),
			want: 1,
		},
		{
			name: "lexicographic order",
			a:    newNode[string]("/b", false),
			b:    newNode[string]("/a", false),
			want: 1,
		},
		{
			name: "equal",
			a:    newNode[string]("/a", true),
			b:    newNode[string]("/a", true),
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, compareNodes(tc.a, tc.b))
			assert.Equal(t, -tc.want, compareNodes(tc.b, tc.a))
		})
	}
}

func TestNode_AddChild(t *testing.T) {
	parent := newNode[string]("/", false)
	for _, child := range []*node[string]{
		newNode[string]("a", false),
		newNode[string]("", true),
		newNode[string]("abc", false),
		newNode[string]("b", false),
		newNode[string]("a", true),
	} {
		parent.addChild(child)
		assert.Same(t, parent, child.parent)
	}

	got := make([]string, 0, len(parent.children))
	for _, child := range parent.children {
		if child.hasParam {
			got = append(got, "{}"+child.anchor)
			continue
		}
		got = append(got, child.anchor)
	}
	assert.Equal(t, []string{"abc", "a", "b", "{}a", "{}"}, got)

	assert.Panics(t, func() {
		parent.addChild(newNode[string]("b", false))
	})
}

func TestNode_RemoveChild(t *testing.T) {
	parent := newNode[string]("/", false)
	a := newNode[string]("a", false)
	b := newNode[string]("b", false)
	parent.addChild(a)
	parent.addChild(b)

	parent.removeChild(a)
	assert.Equal(t, []*node[string]{b}, parent.children)
	assert.Panics(t, func() {
		parent.removeChild(a)
	})
}

func TestNode_String(t *testing.T) {
	tree := newTree[string]()
	mustInsert(t, tree, "A", "/product/all")
	mustInsert(t, tree, "B", "/product/{id}")

	want := "root:\"\"\n" +
		"  path: \"/product/\"\n" +
		"    path: \"all\" (leaf)\n" +
		"    path: {}\"\" (leaf & params: id)\n"
	assert.Equal(t, want, tree.root.String())
}
