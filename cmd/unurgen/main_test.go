//go:build !ios && !android && (amd64 || arm64)

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func runApp(args ...string) error {
	app := cli.App{
		Commands: []*cli.Command{
			&sampleCommand,
			&infoCommand,
			&versionCommand,
		},
	}
	return app.Run(append([]string{"unurgen"}, args...))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "distr=normal(0,1)", describe("normal(0,1)"))
	assert.Equal(t, "distr=normal(0,1)", describe("distr=normal(0,1)"))
	assert.Equal(t, "distr=discr; pv=(1,2)", describe("discr; pv=(1,2)"))
	assert.Equal(t, "DISTR=cemp; data=(1)", describe("DISTR=cemp; data=(1)"))
}

func TestVersionCommand(t *testing.T) {
	assert.NoError(t, runApp("version"))
}
