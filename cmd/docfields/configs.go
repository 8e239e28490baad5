package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/docfields/docfields/encode"
	"github.com/docfields/docfields/format"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='spaces per indent level (0 compact)'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	X bool `cli:"name=x aliases=xml desc='do i/o in xml'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
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

// inFormat resolves the payload format for a file, letting flags override
// the file extension.
func (cfg *MainConfig) inFormat(file string) (format.Format, error) {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat, nil
	case cfg.J:
		return format.JSONFormat, nil
	case cfg.X:
		return format.XMLFormat, nil
	case cfg.Y:
		return format.YAMLFormat, nil
	}
	if file == "" || file == "-" {
		return format.JSONFormat, nil
	}
	return format.ForFile(file)
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.X:
		return format.XMLFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeIndent(cfg.Indent),
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

type CheckConfig struct {
	*MainConfig
	Relaxed bool   `cli:"name=relaxed desc='allow undocumented fields'"`
	Scope   string `cli:"name=scope desc='error wording: fields, params, parts'"`

	Check *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Patch bool `cli:"name=patch desc='emit a JSON merge patch instead of a text diff'"`

	Diff *cli.Command
}

type AssertConfig struct {
	*MainConfig

	Assert *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}
