package main

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/bibtypes/internal/adapters/http/dto"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
)

func newEditorsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editors NAME",
		Short: "Show the editor chosen for each field of an entry type",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			reg, err := opts.registry()
			if err != nil {
				return err
			}
			schema, ok := reg.Lookup(args[0])
			if !ok {
				return &entrytype.NotFoundError{Name: args[0]}
			}
			factory, err := opts.editors()
			if err != nil {
				return err
			}
			return opts.print(dto.ToEditorLayoutResponse(schema.Name(), factory.Layout(schema)))
		},
	}

	cmd.Flags().StringVar(&opts.timestampField, "timestamp-field", "",
		"field that always gets a date editor (default: timestamp)")
	cmd.Flags().StringVar(&opts.timestampFormat, "timestamp-format", "",
		"Go time layout for date editors (default: 2006-01-02)")
	return cmd
}
