// maze generates random perfect mazes and prints them with box-drawing characters.
//
// Example:
//
//	$ go run ./cmd/maze -width=40 -height=15 -seed=7 -style=color,center
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/mazeGo/internal/generator"
	"github.com/janpfeifer/mazeGo/internal/grid"
	"github.com/janpfeifer/mazeGo/internal/profilers"
	"github.com/janpfeifer/mazeGo/internal/ui/cli"
	"github.com/janpfeifer/mazeGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"k8s.io/klog/v2"
	"os"
	"runtime"
	"sync/atomic"
	"time"
)

var (
	defaults = generator.DefaultConfig()

	flagWidth    = flag.Int("width", defaults.Width, "Width of the maze, in cells.")
	flagHeight   = flag.Int("height", defaults.Height, "Height of the maze, in cells.")
	flagStartCol = flag.Int("start_col", defaults.StartCol, "Column of the cell where the generation starts.")
	flagStartRow = flag.Int("start_row", defaults.StartRow, "Row of the cell where the generation starts.")
	flagSeed     = flag.Uint64("seed", defaults.Seed, "Random seed. If 0 a random seed is used. "+
		"With -num_mazes > 1, maze i uses seed+i (skipping 0 on wrap-around).")
	flagConfig = flag.String("config", "", "Maze configuration, e.g. \"width=40,height=20,seed=7\". "+
		"It overrides the values of -width, -height, -start_col, -start_row and -seed.")
	flagStyle = flag.String("style", "", "Print style, a comma-separated list of: "+
		"color, fg=<color>, center, title.")
	flagNumMazes    = flag.Int("num_mazes", 1, "Number of mazes to generate.")
	flagParallelism = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and generate "+
		"these many mazes simultaneously.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagNumMazes <= 0 {
		klog.Exitf("Invalid -num_mazes=%d, it must be > 0", *flagNumMazes)
	}

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 3*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	config := must.M1(generator.NewConfigFromString(generator.Config{
		Width:    *flagWidth,
		Height:   *flagHeight,
		StartCol: *flagStartCol,
		StartRow: *flagStartRow,
		Seed:     *flagSeed,
	}, *flagConfig)).ResolveSeed()
	klog.V(1).Infof("Maze configuration: %+v", config)
	ui := must.M1(cli.New(os.Stdout, *flagStyle))

	mazes, err := generateMazes(globalCtx, config, *flagNumMazes)
	if err != nil {
		klog.Exitf("Failed to generate mazes: %+v", err)
	}
	for idx, g := range mazes {
		if g == nil {
			// Interrupted before this maze was generated.
			break
		}
		if idx > 0 {
			fmt.Println()
		}
		if err := ui.PrintMaze(g, cli.Title(idx, g, config.ForIndex(idx).Seed)); err != nil {
			klog.Exitf("Failed to print maze #%d: %+v", idx, err)
		}
	}
}

// generateMazes generates numMazes with config, maze i using config.ForIndex(i).
// Mazes are generated in parallel, but each generation is sequential.
//
// If ctx is cancelled, the mazes not yet started are left nil.
func generateMazes(ctx context.Context, config generator.Config, numMazes int) ([]*grid.Grid, error) {
	mazes := make([]*grid.Grid, numMazes)
	var wg errgroup.Group
	wg.SetLimit(getParallelism())
	var done atomic.Int32
	if numMazes > 1 && term.IsTerminal(int(os.Stderr.Fd())) {
		s := spinning.New(ctx, os.Stderr, func() string {
			return fmt.Sprintf("Generating mazes: %d of %d", done.Load(), numMazes)
		})
		defer s.Done()
	}

	for mazeIdx := range numMazes {
		wg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			g, stats, err := config.ForIndex(mazeIdx).Generate()
			if err != nil {
				return err
			}
			klog.V(1).Infof("Maze #%d: %+v", mazeIdx, stats)
			mazes[mazeIdx] = g
			done.Add(1)
			return nil
		})
	}
	return mazes, wg.Wait()
}

func getParallelism() int {
	if *flagParallelism > 0 {
		return *flagParallelism
	}
	return runtime.GOMAXPROCS(0)
}
