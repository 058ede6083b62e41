package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formdoc"
	"github.com/goliatone/go-formdoc/pkg/builder"
	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
	"github.com/goliatone/go-formdoc/pkg/orchestrator"
)

type importParams struct {
	outputParams
	source      string
	operation   string
	submitLabel string
	preset      string
	list        bool
	timeout     time.Duration
}

func newImportCmd() *cobra.Command {
	params := &importParams{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Derive a form document from an OpenAPI operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return params.run(cmd)
		},
	}
	params.register(cmd)
	cmd.Flags().StringVarP(&params.source, "source", "s", "", "OpenAPI document path or URL")
	cmd.Flags().StringVar(&params.operation, "operation", "", "operation id to convert")
	cmd.Flags().StringVar(&params.submitLabel, "submit-label", "", "append a submit button with this label")
	cmd.Flags().StringVar(&params.preset, "preset", "", "JSON or YAML preset applied to the derived form")
	cmd.Flags().BoolVar(&params.list, "list", false, "list the operation ids instead of converting one")
	cmd.Flags().DurationVar(&params.timeout, "timeout", 10*time.Second, "timeout for URL sources")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}

func (p *importParams) run(cmd *cobra.Command) error {
	source, err := pkgopenapi.ResolveSource(p.source)
	if err != nil {
		return err
	}
	orch, err := p.orchestrator()
	if err != nil {
		return err
	}

	if p.list {
		ids, err := orch.Operations(cmd.Context(), orchestrator.Request{Source: source})
		if err != nil {
			return err
		}
		for _, id := range ids {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
				return err
			}
		}
		return nil
	}

	if p.operation == "" {
		return errors.New("--operation is required unless --list is set")
	}
	form, err := orch.Build(cmd.Context(), orchestrator.Request{
		Source:      source,
		OperationID: p.operation,
	})
	if err != nil {
		return err
	}
	return p.write(cmd, form)
}

func (p *importParams) orchestrator() (*orchestrator.Orchestrator, error) {
	logger := zap.S()
	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithLoader(formdoc.NewLoader(
			pkgopenapi.WithHTTPFallback(p.timeout),
			pkgopenapi.WithLoaderLogger(logger),
		)),
		orchestrator.WithBuilder(builder.NewBuilder(
			builder.WithSubmitLabel(p.submitLabel),
			builder.WithLogger(logger),
		)),
	}

	if p.preset != "" {
		data, err := os.ReadFile(p.preset)
		if err != nil {
			return nil, fmt.Errorf("read preset: %w", err)
		}
		preset, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithTransformers(preset))
	}
	return orchestrator.New(options...), nil
}
