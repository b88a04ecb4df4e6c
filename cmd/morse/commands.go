package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/strycore/dojo-20130708/alphabet"
	"github.com/strycore/dojo-20130708/morse"
)

func encode(c *cli.Context, _ *runEnv) error {
	for _, word := range c.Args().Slice() {
		code, err := morse.Encode(word)
		if err != nil {
			return fmt.Errorf("encode %q: %w", word, err)
		}
		fmt.Fprintln(c.App.Writer, code)
	}
	return nil
}

func count(c *cli.Context, env *runEnv) error {
	dec := morse.New(
		morse.WithLogger(env.log.Named("decoder")),
		morse.WithNormalize(c.Bool("normalize") || env.cfg.Decode.Normalize),
	)
	for _, stream := range c.Args().Slice() {
		n, err := dec.Count(stream)
		if err != nil {
			return fmt.Errorf("count %q: %w", stream, err)
		}
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", stream, n)
	}
	return nil
}

func table(c *cli.Context, _ *runEnv) error {
	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	for _, letter := range alphabet.Letters() {
		code, _ := alphabet.Encode(letter)
		fmt.Fprintf(tw, "%c\t%s\n", letter, code)
	}
	return tw.Flush()
}
