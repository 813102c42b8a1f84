package fieldeditor

// Property is a capability tag attached to a field name in the field catalog.
type Property string

const (
	PropertyDate              Property = "date"
	PropertyISODate           Property = "iso_date"
	PropertyExternal          Property = "external"
	PropertyJournalName       Property = "journal_name"
	PropertyDOI               Property = "doi"
	PropertyEprint            Property = "eprint"
	PropertyISBN              Property = "isbn"
	PropertyOwner             Property = "owner"
	PropertyFileEditor        Property = "file_editor"
	PropertyYesNo             Property = "yes_no"
	PropertyMonth             Property = "month"
	PropertyGender            Property = "gender"
	PropertyEditorType        Property = "editor_type"
	PropertyPagination        Property = "pagination"
	PropertyType              Property = "type"
	PropertySingleEntryLink   Property = "single_entry_link"
	PropertyMultipleEntryLink Property = "multiple_entry_link"
	PropertyPersonNames       Property = "person_names"
	PropertyMultilineText     Property = "multiline_text"
	PropertyKey               Property = "key"
)

// IsValid returns true if the property is one of the defined constants.
func (p Property) IsValid() bool {
	switch p {
	case PropertyDate, PropertyISODate, PropertyExternal, PropertyJournalName,
		PropertyDOI, PropertyEprint, PropertyISBN, PropertyOwner, PropertyFileEditor,
		PropertyYesNo, PropertyMonth, PropertyGender, PropertyEditorType,
		PropertyPagination, PropertyType, PropertySingleEntryLink,
		PropertyMultipleEntryLink, PropertyPersonNames, PropertyMultilineText,
		PropertyKey:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Property) String() string {
	return string(p)
}

// Kind names the editor a field is given.
type Kind string

const (
	KindDate          Kind = "date"
	KindURL           Kind = "url"
	KindJournal       Kind = "journal"
	KindIdentifier    Kind = "identifier"
	KindOwner         Kind = "owner"
	KindLinkedFiles   Kind = "linked_files"
	KindOption        Kind = "option"
	KindLinkedEntries Kind = "linked_entries"
	KindPersons       Kind = "persons"
	KindKeywords      Kind = "keywords"
	KindMultiline     Kind = "multiline"
	KindCitationKey   Kind = "citation_key"
	KindSimple        Kind = "simple"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// OptionSet names a closed list of values offered by an option editor.
type OptionSet string

const (
	OptionsYesNo      OptionSet = "yes_no"
	OptionsMonth      OptionSet = "month"
	OptionsGender     OptionSet = "gender"
	OptionsEditorType OptionSet = "editor_type"
	OptionsPagination OptionSet = "pagination"
	OptionsType       OptionSet = "type"
	OptionsPatentType OptionSet = "patent_type"
)

// String implements fmt.Stringer.
func (o OptionSet) String() string {
	return string(o)
}
