package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formdoc"
	"github.com/goliatone/go-formdoc/pkg/builder"
	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
)

type lintViolation struct {
	file string
	builder.Violation
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <openapi>...",
		Short: "Report unsupported x-formdoc extensions in OpenAPI documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := formdoc.NewParser(
				pkgopenapi.WithPartialDocuments(true),
				pkgopenapi.WithReferenceResolution(false),
				pkgopenapi.WithParserLogger(zap.S()),
			)

			var violations []lintViolation
			for _, path := range args {
				linted, err := lintFile(cmd, parser, path)
				if err != nil {
					return fmt.Errorf("lint %s: %w", path, err)
				}
				violations = append(violations, linted...)
			}
			if len(violations) == 0 {
				return nil
			}

			sort.SliceStable(violations, func(i, j int) bool {
				return violations[i].file < violations[j].file
			})
			for _, v := range violations {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", v.file, v.Location, v.Message); err != nil {
					return err
				}
			}
			return fmt.Errorf("%d extension problem(s) found", len(violations))
		},
	}
}

func lintFile(cmd *cobra.Command, parser pkgopenapi.Parser, path string) ([]lintViolation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), raw)
	if err != nil {
		return nil, fmt.Errorf("construct document: %w", err)
	}
	operations, err := parser.Operations(cmd.Context(), doc)
	if err != nil {
		return nil, fmt.Errorf("parse operations: %w", err)
	}

	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var result []lintViolation
	for _, id := range ids {
		for _, v := range builder.Lint(operations[id]) {
			result = append(result, lintViolation{file: path, Violation: v})
		}
	}
	return result, nil
}
