package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formdoc/pkg/definition"
	"github.com/goliatone/go-formdoc/pkg/model"
)

type encodeParams struct {
	outputParams
	sanitize bool
	form     string
}

func newEncodeCmd() *cobra.Command {
	params := &encodeParams{}
	cmd := &cobra.Command{
		Use:   "encode <definition|directory>",
		Short: "Encode a JSON or YAML form definition as a canonical form document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := params.load(args[0])
			if err != nil {
				return err
			}
			return params.write(cmd, form)
		},
	}
	params.register(cmd)
	cmd.Flags().BoolVar(&params.sanitize, "sanitize", false, "strip markup from labels, descriptions and titles, keeping plain text")
	cmd.Flags().StringVar(&params.form, "form", "", "form id to encode when the argument is a directory")
	return cmd
}

func (p *encodeParams) load(path string) (*model.Form, error) {
	options := []definition.Option{
		definition.WithSanitizer(p.sanitize),
		definition.WithLogger(zap.S()),
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return definition.LoadFile(path, options...)
	}

	store, err := definition.LoadFS(os.DirFS(path), options...)
	if err != nil {
		return nil, err
	}
	ids := store.IDs()
	if p.form == "" {
		if len(ids) == 1 {
			form, _ := store.Form(ids[0])
			return form, nil
		}
		return nil, fmt.Errorf("directory %s holds %d forms, select one with --form (%s)", path, len(ids), strings.Join(ids, ", "))
	}
	form, ok := store.Form(p.form)
	if !ok {
		return nil, fmt.Errorf("form %q not found (available: %s)", p.form, strings.Join(ids, ", "))
	}
	zap.S().Debugw("form selected", "id", p.form, "source", store.Source(p.form))
	return form, nil
}
