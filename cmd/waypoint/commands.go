// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/tigerwill90/waypoint"
	"github.com/tigerwill90/waypoint/internal/ansi"
	"github.com/tigerwill90/waypoint/internal/iterutil"
)

var errNoMatch = errors.New("one or more paths did not match any route")

func (c *cli) newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match PATH...",
		Short: "Print the route key and parameters matching each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.router()
			if err != nil {
				return err
			}

			var missed bool
			buf := make([]byte, 0, 128)
			for _, path := range args {
				buf = append(buf[:0], path...)
				buf = append(buf, " -> "...)

				key, params, ok := r.Match(path)
				if !ok {
					missed = true
					buf = ansi.Style(buf, c.color, ansi.FgRed, "no match")
					buf = append(buf, '\n')
					_, _ = c.out.Write(buf)
					continue
				}

				buf = ansi.Style(buf, c.color, ansi.FgGreen, key)
				buf = append(buf, '\n')
				for _, p := range params {
					buf = append(buf, "  "...)
					buf = ansi.Style(buf, c.color, ansi.FgCyan, p.Key)
					buf = append(buf, '=')
					buf = append(buf, p.Value...)
					buf = append(buf, '\n')
				}
				_, _ = c.out.Write(buf)
			}

			if missed {
				return errNoMatch
			}
			return nil
		},
	}
}

func (c *cli) newReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse KEY [NAME=VALUE...]",
		Short: "Build the path of a route from its parameters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string, len(args)-1)
			for _, arg := range args[1:] {
				name, value, ok := strings.Cut(arg, "=")
				if !ok || name == "" {
					return fmt.Errorf("invalid parameter %q, expected NAME=VALUE", arg)
				}
				values[name] = value
			}

			r, err := c.router()
			if err != nil {
				return err
			}

			path, err := r.Reverse(args[0], waypoint.ParamsFromMap(values))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.out, path)
			return err
		},
	}
}

func (c *cli) newRoutesCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the routes in matching order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.router()
			if err != nil {
				return err
			}

			width := 0
			for key := range iterutil.Left(iterutil.Take2(r.Routes(), limit)) {
				width = max(width, len(key))
			}

			buf := make([]byte, 0, 128)
			for key, template := range iterutil.Take2(r.Routes(), limit) {
				buf = ansi.Style(buf[:0], c.color, ansi.Bold, key)
				buf = append(buf, strings.Repeat(" ", width-len(key)+2)...)
				buf = append(buf, template...)
				buf = append(buf, '\n')
				if _, err := c.out.Write(buf); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", -1, "Maximum number of routes to list, negative for all")
	return cmd
}

func (c *cli) newDumpCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the routing tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.router()
			if err != nil {
				return err
			}

			if !asJSON {
				_, err = fmt.Fprint(c.out, r.String())
				return err
			}

			data, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.out, string(data))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the tree as a JSON snapshot")
	return cmd
}
