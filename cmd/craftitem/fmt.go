package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ProjectUnified/CraftItem/encode"
	"github.com/ProjectUnified/CraftItem/parse"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func fmtSNBT(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmtReader(cfg, cc.Out, os.Stdin)
	}
	for _, fn := range args {
		f, err := os.Open(fn)
		if err != nil {
			return err
		}
		err = fmtReader(cfg, cc.Out, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func fmtReader(cfg *FmtConfig, w io.Writer, r io.Reader) error {
	d, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	in := string(bytes.TrimSpace(d))
	node, err := parse.Parse([]byte(in))
	if err != nil {
		return err
	}
	out, err := encode.String(node)
	if err != nil {
		return err
	}
	if cfg.Diff {
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(in, out, false)
		_, err = fmt.Fprintln(w, dmp.DiffPrettyText(diffs))
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
