// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tigerwill90/waypoint"
	"github.com/tigerwill90/waypoint/internal/routefile"
	"github.com/tigerwill90/waypoint/internal/slogpretty"
)

var errNoRouteFile = errors.New("no route file, use --routes")

type cli struct {
	out     io.Writer
	errOut  io.Writer
	routes  string
	verbose bool
	color   bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{
		out:    out,
		errOut: errOut,
	}
	if f, ok := out.(*os.File); ok {
		c.color = slogpretty.IsTerminal(f)
	}

	root := &cobra.Command{
		Use:           "waypoint",
		Short:         "Match and build paths from a route table",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVarP(&c.routes, "routes", "r", os.Getenv("WAYPOINT_ROUTES"), "YAML route table (default $WAYPOINT_ROUTES)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log route registration and decoding failures")

	root.AddCommand(
		c.newMatchCmd(),
		c.newReverseCmd(),
		c.newRoutesCmd(),
		c.newDumpCmd(),
	)
	return root
}

// router builds a router from the route file given on the command line.
func (c *cli) router() (*waypoint.Router[string], error) {
	if c.routes == "" {
		return nil, errNoRouteFile
	}

	f, err := routefile.LoadFile(c.routes)
	if err != nil {
		return nil, err
	}

	var opts []waypoint.Option
	if c.verbose {
		opts = append(opts, waypoint.WithLogHandler(slogpretty.New(c.errOut, c.errOut, slog.LevelDebug, c.color)))
	}
	return f.Build(opts...)
}
