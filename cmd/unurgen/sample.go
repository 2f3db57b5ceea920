//go:build !ios && !android && (amd64 || arm64)

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/obinnaokechukwu/unurgo"
	"github.com/obinnaokechukwu/unurgo/chrono"
	"github.com/obinnaokechukwu/unurgo/logger"
)

var sampleCommand = cli.Command{
	Action: sampleAction,
	Name:   "sample",
	Usage:  "Draw variates from a distribution.",
	Flags: []cli.Flag{
		&distrFlag,
		&nFlag,
		&seedFlag,
		&nativeFlag,
		&batchFlag,
		&statsFlag,
		&logLevelFlag,
	},
}

func sampleAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String("log-level"), "unurgen")

	n := ctx.Int("n")
	if n < 1 {
		return fmt.Errorf("sample count must be positive, got %d", n)
	}

	g, err := newGenerator(ctx)
	if err != nil {
		return err
	}
	defer g.Close()

	timer := chrono.New()
	switch {
	case g.IsDiscrete():
		out := make([]int, n)
		if ctx.Bool("batch") {
			err = g.FillInts(out)
		} else {
			err = drawInts(g, out)
		}
		if err != nil {
			return err
		}
		log.Debugf("drew %d discrete variates in %s of CPU time", n, timer.Format())
		return printInts(ctx, out)

	case g.Dimension() > 1:
		if ctx.Bool("batch") || ctx.Bool("stats") {
			return errors.New("--batch and --stats apply to univariate distributions only")
		}
		err = printVectors(g, n)
		if err != nil {
			return err
		}
		log.Debugf("drew %d vectors of dimension %d in %s of CPU time",
			n, g.Dimension(), timer.Format())
		return nil

	default:
		out := make([]float64, n)
		if ctx.Bool("batch") {
			err = g.FillFloat64s(out)
		} else {
			err = drawFloats(g, out)
		}
		if err != nil {
			return err
		}
		log.Debugf("drew %d continuous variates in %s of CPU time", n, timer.Format())
		return printFloats(ctx, out)
	}
}

func drawInts(g *unurgo.Generator, out []int) error {
	for i := range out {
		v, err := g.NextInt()
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

func drawFloats(g *unurgo.Generator, out []float64) error {
	for i := range out {
		v, err := g.NextFloat64()
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

func printVectors(g *unurgo.Generator, n int) error {
	dst := make([]float64, g.Dimension())
	for i := 0; i < n; i++ {
		if err := g.NextVector(dst); err != nil {
			return err
		}
		fmt.Println(formatVector(dst))
	}
	return nil
}

func printInts(ctx *cli.Context, out []int) error {
	if ctx.Bool("stats") {
		vals := make([]float64, len(out))
		for i, v := range out {
			vals[i] = float64(v)
		}
		printStats(vals)
		return nil
	}
	for _, v := range out {
		fmt.Println(v)
	}
	return nil
}

func printFloats(ctx *cli.Context, out []float64) error {
	if ctx.Bool("stats") {
		printStats(out)
		return nil
	}
	for _, v := range out {
		fmt.Println(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return nil
}

func printStats(vals []float64) {
	mean, std := stat.MeanStdDev(vals, nil)
	fmt.Printf("n     %d\n", len(vals))
	fmt.Printf("mean  %g\n", mean)
	fmt.Printf("std   %g\n", std)
	fmt.Printf("min   %g\n", floats.Min(vals))
	fmt.Printf("max   %g\n", floats.Max(vals))
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
