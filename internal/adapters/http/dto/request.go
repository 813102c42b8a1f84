package dto

import (
	"strings"

	"github.com/jsamuelsen11/bibtypes/internal/domain"
	"github.com/jsamuelsen11/bibtypes/internal/domain/document"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
)

const msgTextAndList = "give either delimited text or a field list, not both"

// DefineEntryTypeRequest represents the JSON body for defining an entry type.
// Each side may be given as delimited text ("author;\ntitle") or as a list.
type DefineEntryTypeRequest struct {
	Required       string   `json:"required,omitempty"`
	Optional       string   `json:"optional,omitempty"`
	RequiredFields []string `json:"required_fields,omitempty"`
	OptionalFields []string `json:"optional_fields,omitempty"`
}

// Validate rejects a side that carries both text and a list.
// Returns a *domain.ValidationError if any checks fail.
func (r *DefineEntryTypeRequest) Validate() error {
	fields := make(map[string]string)

	if r.Required != "" && len(r.RequiredFields) > 0 {
		fields["required"] = msgTextAndList
	}
	if r.Optional != "" && len(r.OptionalFields) > 0 {
		fields["optional"] = msgTextAndList
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Fields returns the required and optional field lists, splitting text
// when a side was given as text.
func (r *DefineEntryTypeRequest) Fields() (required, optional []string) {
	required = r.RequiredFields
	if r.Required != "" {
		required = entrytype.SplitFields(r.Required)
	}
	optional = r.OptionalFields
	if r.Optional != "" {
		optional = entrytype.SplitFields(r.Optional)
	}
	return required, optional
}

// CreateDocumentRequest represents the JSON body for opening a new document.
type CreateDocumentRequest struct {
	Name string `json:"name"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateDocumentRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	return nil
}

// AddEntryRequest represents the JSON body for adding an entry to a document.
type AddEntryRequest struct {
	ID     string            `json:"id,omitempty"`
	Type   string            `json:"type"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *AddEntryRequest) Validate() error {
	e := r.ToEntry()
	return e.Validate()
}

// ToEntry converts the request to a domain Entry.
func (r *AddEntryRequest) ToEntry() document.Entry {
	return document.Entry{
		ID:       strings.TrimSpace(r.ID),
		TypeName: r.Type,
		Fields:   r.Fields,
	}
}
