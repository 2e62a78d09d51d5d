// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package stringutil

import "strings"

// CommonPrefixLength returns the number of leading bytes shared by s1 and s2.
// It returns 0 if the first bytes differ or if either string is empty.
func CommonPrefixLength(s1, s2 string) int {
	n := min(len(s1), len(s2))
	for i := 0; i < n; i++ {
		if s1[i] != s2[i] {
			return i
		}
	}
	return n
}

// IndexWithin returns the index of the first instance of substr in s, only looking at the
// first limit bytes of s, or -1 if substr is not present within that window. A limit greater
// than len(s) is capped to len(s) and a negative limit is treated as zero.
func IndexWithin(s, substr string, limit int) int {
	if limit < len(s) {
		s = s[:max(limit, 0)]
	}
	return strings.Index(s, substr)
}
