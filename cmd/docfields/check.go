package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/docfields/docfields"
	"github.com/docfields/docfields/spec"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires a spec file argument", cli.ErrUsage)
	}
	set, err := spec.LoadFile(args[0])
	if err != nil {
		return err
	}
	descs, err := set.Descriptors()
	if err != nil {
		return err
	}
	vOpts := []docfields.VerifyOption{}
	if cfg.Relaxed {
		vOpts = append(vOpts, docfields.Relaxed())
	}
	scope, err := parseScope(cfg.Scope)
	if err != nil {
		return err
	}
	vOpts = append(vOpts, docfields.WithScope(scope))

	failed := false
	for _, arg := range payloadArgs(args[1:]) {
		d, fmat, err := readPayload(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		_, err = docfields.Verify(d, fmat.MediaType(), descs, vOpts...)
		if err == nil {
			fmt.Fprintf(cc.Out, "%s: ok\n", arg)
			continue
		}
		var snipErr *docfields.SnippetError
		if !errors.As(err, &snipErr) && !isTypeErr(err) {
			return fmt.Errorf("error checking %s: %w", arg, err)
		}
		failed = true
		fmt.Fprintf(cc.Out, "%s: %s\n", arg, err)
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func isTypeErr(err error) bool {
	var tdm *docfields.TypesDoNotMatchError
	var fde *docfields.FieldDoesNotExistError
	return errors.As(err, &tdm) || errors.As(err, &fde)
}

func parseScope(s string) (docfields.Scope, error) {
	switch s {
	case "", "fields":
		return docfields.FieldsScope, nil
	case "params", "parameters":
		return docfields.RequestParametersScope, nil
	case "parts":
		return docfields.RequestPartsScope, nil
	}
	return docfields.Scope{}, fmt.Errorf("%w: unknown scope %q", cli.ErrUsage, s)
}
