// Command json2ld converts JSON values to LD text.
//
// It reads one or more JSON values from a named file or standard input,
// feeding the input to a streaming tokenizer so values may span multiple
// physical lines, and emits the LD encoding of each fully parsed value.
//
//	json2ld [-o FILE] [-z TYPE] [-w WIDTH] [file]
package main

import (
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
		Name:      "json2ld",
		Usage:     "convert JSON values to LD text",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write LD text to `FILE` instead of standard output",
			},
			&cli.StringFlag{
				Name:    "compress",
				Aliases: []string{"z"},
				Value:   "none",
				Usage:   "compress the output stream (none|zstd|s2|lz4)",
			},
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Value:   format.DefaultWrapWidth,
				Usage:   "maximum output column for wrapped string data",
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
	cw, err := comp.NewWriter(out)
	if err != nil {
		return err
	}

	enc, err := codec.NewEncoder(cw, codec.WithWrapWidth(c.Int("width")))
	if err != nil {
		return err
	}

	dec := value.NewJSONDecoder(in)
	for {
		v, err := value.DecodeJSON(dec)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}

	return cw.Close()
}
