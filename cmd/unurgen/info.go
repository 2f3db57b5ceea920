//go:build !ios && !android && (amd64 || arm64)

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var infoCommand = cli.Command{
	Action: infoAction,
	Name:   "info",
	Usage:  "Describe a generator without sampling from it.",
	Flags: []cli.Flag{
		&distrFlag,
		&seedFlag,
		&nativeFlag,
	},
}

func infoAction(ctx *cli.Context) error {
	g, err := newGenerator(ctx)
	if err != nil {
		return err
	}
	defer g.Close()

	fmt.Printf("class      %s\n", g.Class())
	fmt.Printf("dimension  %d\n", g.Dimension())
	return nil
}
