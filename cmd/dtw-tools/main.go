// Command dtw-tools aligns two textual execution traces with dynamic
// time warping. Each subcommand tokenises both inputs, interns them
// into trace binaries, runs one DTW variant, prints the distance to
// stdout, and optionally renders the alignment to a file.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/katalvlaran/tracedtw/align"
	"github.com/katalvlaran/tracedtw/dtw"
	"github.com/katalvlaran/tracedtw/trace"
)

// VERSION is injected by buildflags
var VERSION = "SELFBUILD"

// verbosity gates debug logging; set once from the -v flag.
var verbosity int

func main() {
	app := cli.NewApp()
	app.Name = "dtw-tools"
	app.Usage = "align execution traces with dynamic time warping"
	app.Version = VERSION
	app.Commands = []cli.Command{
		{
			Name:      "dtw",
			Usage:     "exact full-matrix DTW with alignment path",
			ArgsUsage: "trace1 trace2",
			Flags:     commonFlags(),
			Action: func(c *cli.Context) error {
				return run(c, func(dist dtw.Distance) (dtw.Aligner, error) {
					return dtw.NewStandard(dist), nil
				})
			},
		},
		{
			Name:      "memodtw",
			Usage:     "exact linear-memory DTW, distance only",
			ArgsUsage: "trace1 trace2",
			Flags:     commonFlags(),
			Action: func(c *cli.Context) error {
				return run(c, func(dist dtw.Distance) (dtw.Aligner, error) {
					return dtw.NewLinear(dist), nil
				})
			},
		},
		{
			Name:      "fastdtw",
			Usage:     "approximate multi-resolution DTW with alignment path",
			ArgsUsage: "trace1 trace2",
			Flags: append(commonFlags(),
				cli.IntFlag{
					Name:  "window-size",
					Value: 2,
					Usage: "radius the refined band grows around the projected path",
				},
				cli.IntFlag{
					Name:  "min-dtw-size",
					Value: 100,
					Usage: "sequence length at which recursion falls back to exact DTW",
				},
			),
			Action: func(c *cli.Context) error {
				return run(c, func(dist dtw.Distance) (dtw.Aligner, error) {
					return dtw.NewFast(dist, c.Int("window-size"), c.Int("min-dtw-size"), dtw.NewStandard(dist))
				})
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

// commonFlags are shared by every subcommand.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		cli.Float64Flag{
			Name:  "gap-cost",
			Value: dtw.DefaultGapCost,
			Usage: "cost of inserting or deleting a single token",
		},
		cli.Float64Flag{
			Name:  "missmatch-cost",
			Value: dtw.DefaultMismatchCost,
			Usage: "cost of aligning two tokens that differ",
		},
		cli.StringFlag{
			Name:  "separator",
			Value: `\n`,
			Usage: "regex separating tokens in the input files",
		},
		cli.StringFlag{
			Name:  "cleaner-regex",
			Usage: "regex reducing each token to its interesting fragment",
		},
		cli.IntFlag{
			Name:  "cleaner-extract",
			Value: 0,
			Usage: "capture group the cleaner keeps (0 = whole match)",
		},
		cli.StringFlag{
			Name:  "output-alignment",
			Usage: "file receiving the rendered alignment",
		},
		cli.StringFlag{
			Name:  "gap-symbol",
			Value: "-",
			Usage: "symbol printed for a gap in the alignment",
		},
		cli.IntFlag{
			Name:  "verbose, v",
			Usage: "verbosity level (1 debug, 2 debug with call sites)",
		},
	}
}

// run drives the shared pipeline: read, tokenise, encode, align, print.
func run(c *cli.Context, build func(dtw.Distance) (dtw.Aligner, error)) error {
	if c.NArg() != 2 {
		return errors.New("expected exactly two trace files")
	}
	setupLog(c.Int("verbose"))

	cleaner, err := newCleaner(c.String("cleaner-regex"), c.Int("cleaner-extract"))
	if err != nil {
		return err
	}

	// Tokenise both inputs with the same separator and cleaner.
	debugf("separating by %q", c.String("separator"))
	tokens1, name1, err := tokenise(c.Args().Get(0), c.String("separator"), cleaner)
	if err != nil {
		return err
	}
	tokens2, name2, err := tokenise(c.Args().Get(1), c.String("separator"), cleaner)
	if err != nil {
		return err
	}
	if name1 == name2 {
		name2 += "_2"
	}

	// Keep the shorter trace first; every variant is symmetric in cost
	// and the banded fill allocates per row of the first sequence.
	if len(tokens2) < len(tokens1) {
		debugf("swapping traces")
		tokens1, tokens2 = tokens2, tokens1
		name1, name2 = name2, name1
	}

	// One codec interns both traces so ids are comparable across them.
	debugf("generating bin traces")
	codec := trace.NewCodec()
	bin1, bin2 := name1+".trace.bin", name2+".trace.bin"
	if _, err = codec.EncodeBin(tokens1, bin1); err != nil {
		return err
	}
	if _, err = codec.EncodeBin(tokens2, bin2); err != nil {
		return err
	}

	dist, err := dtw.NewTokenDistance(c.Float64("gap-cost"), c.Float64("missmatch-cost"), dtw.DefaultMatchCost)
	if err != nil {
		return err
	}
	aligner, err := build(dist)
	if err != nil {
		return err
	}

	// Load the binaries back through the accessor layer (mmap-backed
	// where the platform allows).
	acc1, err := codec.Deserialize(bin1)
	if err != nil {
		return err
	}
	defer closeAccessor(acc1)
	acc2, err := codec.Deserialize(bin2)
	if err != nil {
		return err
	}
	defer closeAccessor(acc2)

	debugf("running %s", c.Command.Name)
	cost, path, err := aligner.Calculate(acc1, acc2)
	if err != nil {
		return err
	}

	if out := c.String("output-alignment"); out != "" && path != nil {
		debugf("generating alignment file %s", out)
		if err = writeAlignment(out, path, acc1, acc2, codec, c.String("gap-symbol")); err != nil {
			return err
		}
	}

	fmt.Println(cost)

	return nil
}

// tokenise reads one input file and splits it into tokens; the second
// return is the base name used for the sibling trace binary.
func tokenise(path, separator string, cleaner *trace.Cleaner) ([]string, string, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read %s", path)
	}
	tokens, err := trace.Split(string(text), separator, cleaner)
	if err != nil {
		return nil, "", err
	}
	// Splitting empty text yields a single empty token.
	if len(tokens) == 0 || (len(tokens) == 1 && tokens[0] == "") {
		return nil, "", errors.Wrapf(dtw.ErrEmptyInput, "%s", path)
	}

	return tokens, filepath.Base(path), nil
}

// newCleaner compiles the cleaner flags; an empty pattern disables it.
func newCleaner(pattern string, group int) (*trace.Cleaner, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "cleaner regex %q", pattern)
	}

	return &trace.Cleaner{Pattern: re, Group: group}, nil
}

// writeAlignment renders the warp path into the requested file.
func writeAlignment(path string, p dtw.Path, a, b dtw.Accessor, codec *trace.Codec, gapSymbol string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	err = align.Write(f, p, a, b, codec, gapSymbol)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

// closeAccessor releases accessors that hold OS resources.
func closeAccessor(a dtw.Accessor) {
	if c, ok := a.(io.Closer); ok {
		_ = c.Close()
	}
}

// setupLog configures stdlib log for the requested verbosity.
func setupLog(v int) {
	verbosity = v
	if v >= 2 {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

// debugf logs only when verbose output was requested.
func debugf(format string, args ...interface{}) {
	if verbosity >= 1 {
		log.Printf(format, args...)
	}
}
