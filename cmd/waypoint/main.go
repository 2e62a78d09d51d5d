// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

// Command waypoint matches paths and builds paths from a YAML route table.
//
//	waypoint -r routes.yaml match /product/42
//	waypoint -r routes.yaml reverse product-detail id=42
//	waypoint -r routes.yaml routes
//	waypoint -r routes.yaml dump --json
package main

import (
	"fmt"
	"os"

	"github.com/tigerwill90/waypoint/internal/ansi"
)

func main() {
	_ = ansi.EnableVirtualTerminal(os.Stdout)
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "waypoint:", err)
		os.Exit(1)
	}
}
