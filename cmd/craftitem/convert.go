package main

import (
	"io"
	"os"

	"github.com/ProjectUnified/CraftItem/encode"
	"github.com/ProjectUnified/CraftItem/normalize"
	"github.com/ProjectUnified/CraftItem/translate"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	tr := cfg.translator()
	if len(args) == 0 {
		return convertReader(cfg, cc.Out, os.Stdin, tr)
	}
	for _, fn := range args {
		f, err := os.Open(fn)
		if err != nil {
			return err
		}
		err = convertReader(cfg, cc.Out, f, tr)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func convertReader(cfg *ConvertConfig, w io.Writer, r io.Reader, tr translate.Func) error {
	d, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	raw, err := cfg.decode(d)
	if err != nil {
		return err
	}
	node, err := normalize.Normalize(raw, normalize.Translator(tr))
	if err != nil {
		return err
	}
	if err := encode.Encode(node, w, cfg.encOpts(w, cfg.Components)...); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
