package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
	"github.com/jsamuelsen11/bibtypes/internal/domain/fieldeditor"
)

var version = "dev"

type options struct {
	catalogFile     string
	customFile      string
	timestampField  string
	timestampFormat string
	out             io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{out: out}

	cmd := &cobra.Command{
		Use:   "bibtypes",
		Short: "Inspect BibTeX entry types and their field editors",
		Long: `Inspect BibTeX entry types and the editors their fields get.

Standard types come from the built-in catalog unless --catalog names a
replacement. Types listed in --custom are defined on top as custom types,
replacing standard types of the same name.

Examples:
  # List every type
  bibtypes types

  # Show one type with custom definitions applied
  bibtypes show patent --custom ./custom.yaml

  # Editors for an article's fields, stamping edits with "modified"
  bibtypes editors article --timestamp-field modified`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&opts.catalogFile, "catalog", "",
		"standard-type catalog file (default: built-in catalog)")
	cmd.PersistentFlags().StringVar(&opts.customFile, "custom", "",
		"catalog file whose types are defined as custom types")

	cmd.AddCommand(
		newTypesCmd(opts),
		newShowCmd(opts),
		newEditorsCmd(opts),
	)

	return cmd
}

// registry builds a registry from the standard catalog and then defines
// every type of the custom catalog.
func (o *options) registry() (*entrytype.Registry, error) {
	standard, err := entrytype.LoadStandard(o.catalogFile)
	if err != nil {
		return nil, err
	}
	reg, err := entrytype.NewRegistry(standard...)
	if err != nil {
		return nil, err
	}
	if o.customFile == "" {
		return reg, nil
	}

	custom, err := entrytype.LoadCatalogFile(o.customFile)
	if err != nil {
		return nil, err
	}
	for _, s := range custom {
		if _, err := reg.Define(s.Name(), s.RequiredFields(), s.OptionalFields()); err != nil {
			return nil, fmt.Errorf("defining %s: %w", s.Name(), err)
		}
	}
	return reg, nil
}

func (o *options) editors() (*fieldeditor.Factory, error) {
	catalog, err := fieldeditor.DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return fieldeditor.NewFactory(catalog, fieldeditor.Config{
		TimestampField:  o.timestampField,
		TimestampLayout: o.timestampFormat,
	}), nil
}

func (o *options) print(v any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
