package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/bibtypes/internal/adapters/http/dto"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
)

func newTypesCmd(opts *options) *cobra.Command {
	var names bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List entry types as JSON",
		Long: `List entry types as JSON, the "<new>" row first and the rest in
registration order. Custom types are labelled with a trailing " *".

Use --names to print one label per line instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := opts.registry()
			if err != nil {
				return err
			}
			listings := reg.List()
			if !names {
				return opts.print(dto.ToEntryTypeListResponse(listings))
			}
			for _, l := range listings {
				if l.Sentinel {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), l.Label)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&names, "names", false, "print labels only, one per line")
	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show one entry type's fields as JSON",
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
			return opts.print(dto.ToEntryTypeResponse(schema))
		},
	}
}
