package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formdoc/pkg/prompt"
)

// newDriver is replaced in tests with a scripted driver.
var newDriver = prompt.NewSurveyDriver

func newAuthorCmd() *cobra.Command {
	params := &outputParams{}
	var types []string
	cmd := &cobra.Command{
		Use:   "author",
		Short: "Build a form document interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := []prompt.Option{prompt.WithLogger(zap.S())}
			if len(types) > 0 {
				options = append(options, prompt.WithFieldTypes(types...))
			}
			form, err := prompt.Author(cmd.Context(), newDriver(), options...)
			if err != nil {
				return err
			}
			return params.write(cmd, form)
		},
	}
	params.register(cmd)
	cmd.Flags().StringSliceVar(&types, "types", nil, "restrict the field types offered (comma separated)")
	return cmd
}
