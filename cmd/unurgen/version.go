//go:build !ios && !android && (amd64 || arm64)

package main

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/obinnaokechukwu/unurgo"
	"github.com/obinnaokechukwu/unurgo/internal/bindings"
)

var versionCommand = cli.Command{
	Action: versionAction,
	Name:   "version",
	Usage:  "Print tool version and native library status.",
}

func versionAction(*cli.Context) error {
	fmt.Printf("unurgen %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)

	path, err := bindings.FindLibrary()
	if err != nil {
		fmt.Println("native library: not found")
		return nil
	}
	if err := unurgo.Init(); err != nil {
		fmt.Printf("native library: %s (load failed: %v)\n", path, err)
		return nil
	}
	fmt.Printf("native library: %s\n", path)
	return nil
}
