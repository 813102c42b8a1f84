// Package fieldeditor decides which editor a bibliographic field gets.
//
// Selection is a table of rules over the capability tags a field carries in
// the field catalog. Rules are evaluated in order and the first match wins;
// fields that match nothing get a simple text editor.
package fieldeditor

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
)

// ISODateLayout is the layout of date editors for fields tagged iso_date.
const ISODateLayout = "2006-01-02"

// Defaults used when Config leaves a value empty.
const (
	DefaultTimestampField  = "timestamp"
	DefaultTimestampLayout = "2006-01-02"
)

// PatentEntryType is the entry type whose type field offers patent types.
const PatentEntryType = "patent"

// KeywordsField always gets the keywords editor.
const KeywordsField = "keywords"

var singleLineFields = []string{"title", "author", "year", "institution"}

// Descriptor says which editor to build for a field.
type Descriptor struct {
	Field      string
	Kind       Kind
	Options    OptionSet
	Values     []string
	DateLayout string
	SingleLine bool
	Required   bool
}

// Config holds the user preferences that influence editor choice.
type Config struct {
	// TimestampField is the field the application stamps on edits. It always
	// gets a date editor.
	TimestampField string

	// TimestampLayout is the Go time layout used by that date editor and by
	// date fields not tagged iso_date.
	TimestampLayout string
}

// Factory picks editors for fields.
type Factory struct {
	catalog *Catalog
	cfg     Config
	rules   []rule
}

type request struct {
	field     string
	entryType string
}

type rule struct {
	matches func(f *Factory, r request) bool
	apply   func(f *Factory, r request, d *Descriptor)
}

// NewFactory creates a Factory over catalog. Empty config values fall back
// to DefaultTimestampField and DefaultTimestampLayout.
func NewFactory(catalog *Catalog, cfg Config) *Factory {
	if cfg.TimestampField == "" {
		cfg.TimestampField = DefaultTimestampField
	}
	if cfg.TimestampLayout == "" {
		cfg.TimestampLayout = DefaultTimestampLayout
	}
	return &Factory{catalog: catalog, cfg: cfg, rules: defaultRules()}
}

func defaultRules() []rule {
	return []rule{
		{
			matches: func(f *Factory, r request) bool {
				return strings.EqualFold(r.field, f.cfg.TimestampField) || f.catalog.Has(r.field, PropertyDate)
			},
			apply: func(f *Factory, r request, d *Descriptor) {
				d.Kind = KindDate
				d.DateLayout = f.cfg.TimestampLayout
				if f.catalog.Has(r.field, PropertyISODate) {
					d.DateLayout = ISODateLayout
				}
			},
		},
		tagged(KindURL, PropertyExternal),
		tagged(KindJournal, PropertyJournalName),
		tagged(KindIdentifier, PropertyDOI, PropertyEprint, PropertyISBN),
		tagged(KindOwner, PropertyOwner),
		tagged(KindLinkedFiles, PropertyFileEditor),
		option(PropertyYesNo, OptionsYesNo),
		option(PropertyMonth, OptionsMonth),
		option(PropertyGender, OptionsGender),
		option(PropertyEditorType, OptionsEditorType),
		option(PropertyPagination, OptionsPagination),
		{
			matches: hasAny(PropertyType),
			apply: func(f *Factory, r request, d *Descriptor) {
				set := OptionsType
				if strings.EqualFold(strings.TrimSpace(r.entryType), PatentEntryType) {
					set = OptionsPatentType
				}
				d.Kind = KindOption
				d.Options = set
				d.Values = f.catalog.Options(set)
			},
		},
		tagged(KindLinkedEntries, PropertySingleEntryLink, PropertyMultipleEntryLink),
		{
			matches: hasAny(PropertyPersonNames),
			apply: func(_ *Factory, r request, d *Descriptor) {
				d.Kind = KindPersons
				d.SingleLine = isSingleLine(r.field)
			},
		},
		{
			matches: func(_ *Factory, r request) bool { return strings.EqualFold(r.field, KeywordsField) },
			apply:   func(_ *Factory, _ request, d *Descriptor) { d.Kind = KindKeywords },
		},
		tagged(KindMultiline, PropertyMultilineText),
		tagged(KindCitationKey, PropertyKey),
	}
}

func hasAny(props ...Property) func(f *Factory, r request) bool {
	return func(f *Factory, r request) bool {
		return slices.ContainsFunc(props, func(p Property) bool { return f.catalog.Has(r.field, p) })
	}
}

func tagged(kind Kind, props ...Property) rule {
	return rule{
		matches: hasAny(props...),
		apply:   func(_ *Factory, _ request, d *Descriptor) { d.Kind = kind },
	}
}

func option(p Property, set OptionSet) rule {
	return rule{
		matches: hasAny(p),
		apply: func(f *Factory, _ request, d *Descriptor) {
			d.Kind = KindOption
			d.Options = set
			d.Values = f.catalog.Options(set)
		},
	}
}

// ForField returns the editor descriptor for field within an entry of
// entryType.
func (f *Factory) ForField(field, entryType string) Descriptor {
	r := request{field: field, entryType: entryType}
	d := Descriptor{Field: field}

	for _, rl := range f.rules {
		if rl.matches(f, r) {
			rl.apply(f, r, &d)
			return d
		}
	}

	d.Kind = KindSimple
	d.SingleLine = isSingleLine(field)
	return d
}

// Layout returns descriptors for every field of schema, required fields
// first, each in definition order.
func (f *Factory) Layout(schema entrytype.FieldSchema) []Descriptor {
	required := schema.RequiredFields()
	optional := schema.OptionalFields()

	out := make([]Descriptor, 0, len(required)+len(optional))
	for _, field := range required {
		d := f.ForField(field, schema.Name())
		d.Required = true
		out = append(out, d)
	}
	for _, field := range optional {
		out = append(out, f.ForField(field, schema.Name()))
	}
	return out
}

func isSingleLine(field string) bool {
	return slices.Contains(singleLineFields, strings.ToLower(field))
}
