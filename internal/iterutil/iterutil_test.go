package iterutil

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterMap(t *testing.T) {
	seq := slices.Values([]int{1, 2, 3, 4, 5, 6})
	even := Filter(seq, func(i int) bool { return i%2 == 0 })
	doubled := Map(even, func(i int) int { return i * 2 })
	assert.Equal(t, []int{4, 8, 12}, slices.Collect(doubled))
	assert.Equal(t, 3, Len(even))
}

func TestFilterEarlyStop(t *testing.T) {
	seq := Filter(slices.Values([]string{"a", "", "b", "c"}), func(s string) bool { return s != "" })
	var got []string
	for s := range seq {
		got = append(got, s)
		if s == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestTake2(t *testing.T) {
	seq := slices.All([]string{"a", "b", "c", "d"})

	cases := []struct {
		name  string
		count int
		want  []int
	}{
		{name: "take none", count: 0, want: nil},
		{name: "take some", count: 2, want: []int{0, 1}},
		{name: "take more than available", count: 10, want: []int{0, 1, 2, 3}},
		{name: "take all with negative count", count: -1, want: []int{0, 1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(Left(Take2(seq, tc.count)))
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.want), Len2(Take2(seq, tc.count)))
		})
	}
}

func TestLen2(t *testing.T) {
	assert.Equal(t, 3, Len2(maps.All(map[string]int{"a": 1, "b": 2, "c": 3})))
	assert.Equal(t, 0, Len2(maps.All(map[string]int{})))
}
