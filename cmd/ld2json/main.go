// Command ld2json converts LD text back to JSON.
//
// It reads LD text from a named file or standard input and writes one
// compact JSON value per top-level LD structure, each on its own line.
// Parse failures report the offending input line number on standard error.
//
//	ld2json [-o FILE] [-z TYPE] [file]
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/arloliu/ldtext/codec"
	"github.com/arloliu/ldtext/compress"
	"github.com/arloliu/ldtext/format"
	"github.com/arloliu/ldtext/value"
)

func main() {
	app := &cli.App{
		Name:      "ld2json",
		Usage:     "convert LD text to JSON",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write JSON to `FILE` instead of standard output",
			},
			&cli.StringFlag{
				Name:    "compress",
				Aliases: []string{"z"},
				Value:   "none",
				Usage:   "decompress the input stream (none|zstd|s2|lz4)",
			},
			&cli.BoolFlag{
				Name:  "no-intern",
				Usage: "disable member key interning while decoding",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	var in io.Reader = os.Stdin
	if c.Args().Len() > 0 {
		f, err := os.Open(c.Args().First())
		if err != nil {
			return fmt.Errorf("unable to open file %q: %w", c.Args().First(), err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("unable to create file %q: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	compression, err := format.ParseCompression(c.String("compress"))
	if err != nil {
		return err
	}
	comp, err := compress.NewCodec(compression)
	if err != nil {
		return err
	}
	cr, err := comp.NewReader(in)
	if err != nil {
		return err
	}
	defer cr.Close()

	dec, err := codec.NewDecoder(cr, codec.WithKeyInterning(!c.Bool("no-intern")))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for {
		v, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		data, err := value.CompactJSON(v)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return w.Flush()
}
