package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formdoc/pkg/model"
)

type outputParams struct {
	indent bool
	output string
}

func (p *outputParams) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&p.indent, "indent", false, "pretty print the JSON document")
	cmd.Flags().StringVarP(&p.output, "output", "o", "", "output file (stdout if empty)")
}

// write encodes form canonically and sends it to the configured destination.
func (p *outputParams) write(cmd *cobra.Command, form *model.Form) error {
	var (
		data []byte
		err  error
	)
	if p.indent {
		data, err = model.MarshalIndent(form, "", "  ")
	} else {
		data, err = model.Marshal(form)
	}
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}
	data = append(data, '\n')

	if p.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(p.output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	zap.S().Infow("form written", "path", p.output, "fields", form.Len())
	return nil
}
