package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/docfields/docfields/format"
	"github.com/docfields/docfields/ir"
	"github.com/docfields/docfields/parse"
)

// readPayload reads a payload from a file or, for "-" or "", from cc.In,
// and resolves its format.
func readPayload(cfg *MainConfig, cc *cli.Context, file string) ([]byte, format.Format, error) {
	var r io.Reader
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, 0, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading %q: %w", file, err)
	}
	fmat, err := cfg.inFormat(file)
	if err != nil {
		return nil, 0, err
	}
	return d, fmat, nil
}

func getPayloadFile(cfg *MainConfig, cc *cli.Context, file string) (*ir.Node, error) {
	d, fmat, err := readPayload(cfg, cc, file)
	if err != nil {
		return nil, err
	}
	return parse.ParseFormat(d, fmat)
}

// payloadArgs interprets an empty argument list as reading stdin.
func payloadArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
