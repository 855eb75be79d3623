package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ProjectUnified/CraftItem/encode"
	"github.com/ProjectUnified/CraftItem/normalize"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch wants a patch file argument", cli.ErrUsage)
	}
	pd, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return patchReader(cfg, cc.Out, os.Stdin, ops)
	}
	for _, fn := range args[1:] {
		f, err := os.Open(fn)
		if err != nil {
			return err
		}
		err = patchReader(cfg, cc.Out, f, ops)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// patchReader applies an RFC 6902 patch to a JSON document and then
// converts the result to SNBT.
func patchReader(cfg *PatchConfig, w io.Writer, r io.Reader, ops jsonpatch.Patch) error {
	doc, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	patched, err := ops.Apply(doc)
	if err != nil {
		return err
	}
	var raw any
	if err := json.Unmarshal(patched, &raw); err != nil {
		return err
	}
	node, err := normalize.Normalize(raw)
	if err != nil {
		return err
	}
	if err := encode.Encode(node, w, cfg.encOpts(w, false)...); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
