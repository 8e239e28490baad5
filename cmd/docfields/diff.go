package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/docfields/docfields/docdiff"
	"github.com/docfields/docfields/spec"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: diff requires a spec file and at most one payload, got %v", cli.ErrUsage, args)
	}
	set, err := spec.LoadFile(args[0])
	if err != nil {
		return err
	}
	descs, err := set.Descriptors()
	if err != nil {
		return err
	}
	payload := "-"
	if len(args) == 2 {
		payload = args[1]
	}
	d, fmat, err := readPayload(cfg.MainConfig, cc, payload)
	if err != nil {
		return err
	}
	cov, err := docdiff.Split(d, fmat.MediaType(), descs)
	if err != nil {
		return err
	}
	if cfg.Patch {
		patch, err := docdiff.MergePatch(cov)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(append(patch, '\n')); err != nil {
			return err
		}
	} else {
		text, err := docdiff.Text(cov, cfg.encOpts(cc.Out)...)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cc.Out, text); err != nil {
			return err
		}
	}
	if cov.Undocumented != nil {
		return cli.ExitCodeErr(1)
	}
	return nil
}
