package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/strycore/dojo-20130708/morse"
	"github.com/strycore/dojo-20130708/recompose"
)

// decodeResult is the output record for one input stream.
type decodeResult struct {
	Input         string                   `json:"input"         yaml:"input"`
	Count         int                      `json:"count"         yaml:"count"`
	Segmentations []recompose.Segmentation `json:"segmentations" yaml:"segmentations"`
}

const decodeDescription = `Streams are read from stdin, one per line, when none are given.
Put -- before streams that start with '-'.`

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:        "decode",
		Usage:       "print every decoding of each stream",
		ArgsUsage:   "[--] [STREAM...]",
		Description: decodeDescription,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Usage: "text, json or yaml"},
			&cli.StringFlag{Name: "order", Usage: "lexical or length"},
			&cli.IntFlag{Name: "limit", Usage: "fail when a stream has more than `N` decodings (0: no limit)"},
			&cli.BoolFlag{Name: "normalize", Usage: "map dot and dash glyphs to '.' and '-'"},
			&cli.IntFlag{Name: "workers", Usage: "decode up to `N` streams concurrently"},
		},
		Action: action(decode),
	}
}

func decode(c *cli.Context, env *runEnv) error {
	opts := env.cfg.Decode
	if c.IsSet("format") {
		opts.Format = c.String("format")
	}
	if c.IsSet("order") {
		opts.OrderRaw = c.String("order")
	}
	if c.IsSet("limit") {
		opts.Limit = c.Int("limit")
	}
	if c.IsSet("normalize") {
		opts.Normalize = c.Bool("normalize")
	}
	if c.IsSet("workers") {
		opts.Workers = c.Int("workers")
	}
	// Re-validate the flag overrides through the config rules.
	cfg := *env.cfg
	cfg.Decode = opts
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts = cfg.Decode

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		var err error
		if inputs, err = readLines(c.App.Reader); err != nil {
			return fmt.Errorf("decode: read input: %w", err)
		}
	}

	dec := morse.New(
		morse.WithLogger(env.log.Named("decoder")),
		morse.WithLimit(opts.Limit),
		morse.WithOrder(opts.Order),
		morse.WithNormalize(opts.Normalize),
	)

	start := time.Now()
	results, err := decodeAll(c.Context, dec, inputs, opts.Workers)
	if err != nil {
		return err
	}
	env.log.Info("decode finished",
		zap.Int("inputs", len(inputs)),
		zap.Int("workers", opts.Workers),
		zap.Duration("took", time.Since(start)),
	)

	return writeResults(c.App.Writer, opts.Format, results)
}

// decodeAll decodes inputs on up to workers goroutines. Results keep the
// order of inputs. The first failure cancels the remaining work.
func decodeAll(ctx context.Context, dec *morse.Decoder, inputs []string, workers int) ([]decodeResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]decodeResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			segs, err := dec.Decode(in)
			if err != nil {
				return fmt.Errorf("decode: input %d: %w", i+1, err)
			}
			results[i] = decodeResult{Input: in, Count: len(segs), Segmentations: segs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// readLines returns the lines of r with line endings removed. Blank lines
// are skipped.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
