package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/ProjectUnified/CraftItem/encode"
	"github.com/ProjectUnified/CraftItem/translate"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	J     bool `cli:"name=j aliases=json desc='read input documents as json'"`
	Y     bool `cli:"name=y aliases=yaml desc='read input documents as yaml (default)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// decode reads one raw configuration document. YAML decoding keeps
// mapping order; JSON maps come back unordered and are normalized with
// sorted keys.
func (cfg *MainConfig) decode(d []byte) (any, error) {
	var raw any
	if cfg.J {
		if err := json.Unmarshal(d, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}
	if err := yaml.UnmarshalWithOptions(d, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return raw, nil
}

func (cfg *MainConfig) encOpts(w io.Writer, components bool) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeComponents(components),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ConvertConfig struct {
	*MainConfig
	Components bool `cli:"name=c aliases=components desc='emit data component [k=v] form'"`
	X          bool `cli:"name=x aliases=expr desc='evaluate ${...} as expressions'"`
	Env        map[string]string

	Convert *cli.Command
}

func (cfg *ConvertConfig) translator() translate.Func {
	if cfg.X {
		env := make(map[string]any, len(cfg.Env))
		for k, v := range cfg.Env {
			env[k] = v
		}
		return translate.Expr(env)
	}
	if len(cfg.Env) > 0 {
		return translate.Vars(cfg.Env)
	}
	return translate.Identity()
}

type FmtConfig struct {
	*MainConfig
	Diff bool `cli:"name=diff desc='show a character diff against the input'"`

	Fmt *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
