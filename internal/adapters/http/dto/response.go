// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"fmt"

	"github.com/jsamuelsen11/bibtypes/internal/domain/document"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
	"github.com/jsamuelsen11/bibtypes/internal/domain/fieldeditor"
	"github.com/jsamuelsen11/bibtypes/internal/ports"
)

// MsgRemoved is the message of a successful removal.
const MsgRemoved = "Removed entry type."

// EntryTypeResponse represents a single entry type in HTTP responses.
type EntryTypeResponse struct {
	Name           string   `json:"name"`
	Key            string   `json:"key"`
	Custom         bool     `json:"custom"`
	RequiredFields []string `json:"required_fields"`
	OptionalFields []string `json:"optional_fields"`
	Required       string   `json:"required"`
	Optional       string   `json:"optional"`
}

// ToEntryTypeResponse converts a schema to an HTTP response DTO. The text
// forms are what a definition editor would show.
func ToEntryTypeResponse(s entrytype.FieldSchema) EntryTypeResponse {
	return EntryTypeResponse{
		Name:           s.Name(),
		Key:            s.Key(),
		Custom:         s.IsCustom(),
		RequiredFields: s.RequiredFields(),
		OptionalFields: s.OptionalFields(),
		Required:       entrytype.FormatFields(s.RequiredFields()),
		Optional:       entrytype.FormatFields(s.OptionalFields()),
	}
}

// ListingResponse represents one selectable row of the type listing.
type ListingResponse struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Custom   bool   `json:"custom"`
	Sentinel bool   `json:"sentinel,omitempty"`
}

// EntryTypeListResponse represents the type listing in HTTP responses.
type EntryTypeListResponse struct {
	EntryTypes []ListingResponse `json:"entry_types"`
	Count      int               `json:"count"`
}

// ToEntryTypeListResponse converts registry listings to an HTTP response
// DTO. Count excludes the sentinel row.
func ToEntryTypeListResponse(listings []entrytype.Listing) EntryTypeListResponse {
	items := make([]ListingResponse, len(listings))
	count := 0
	for i, l := range listings {
		items[i] = ListingResponse{
			Name:     l.Name,
			Label:    l.Label,
			Custom:   l.Custom,
			Sentinel: l.Sentinel,
		}
		if !l.Sentinel {
			count++
		}
	}
	return EntryTypeListResponse{EntryTypes: items, Count: count}
}

// DocumentChangeResponse records whether one document changed.
type DocumentChangeResponse struct {
	DocumentID string `json:"document_id"`
	Changed    bool   `json:"changed"`
}

// PropagationResponse represents a propagation report in HTTP responses.
type PropagationResponse struct {
	TypeName   string                   `json:"type_name"`
	AnyChanged bool                     `json:"any_changed"`
	Documents  []DocumentChangeResponse `json:"documents"`
}

// ToPropagationResponse converts a propagation report to an HTTP response DTO.
func ToPropagationResponse(r ports.PropagationReport) PropagationResponse {
	docs := make([]DocumentChangeResponse, len(r.Documents))
	for i, d := range r.Documents {
		docs[i] = DocumentChangeResponse{DocumentID: d.DocumentID, Changed: d.Changed}
	}
	return PropagationResponse{
		TypeName:   r.TypeName,
		AnyChanged: r.AnyChanged(),
		Documents:  docs,
	}
}

// DefineEntryTypeResponse represents the result of defining an entry type.
type DefineEntryTypeResponse struct {
	Message     string              `json:"message"`
	EntryType   EntryTypeResponse   `json:"entry_type"`
	Propagation PropagationResponse `json:"propagation"`
}

// ToDefineEntryTypeResponse converts a define result to an HTTP response DTO.
func ToDefineEntryTypeResponse(s entrytype.FieldSchema, r ports.PropagationReport) DefineEntryTypeResponse {
	return DefineEntryTypeResponse{
		Message:     fmt.Sprintf("Stored definition for type '%s'.", s.Name()),
		EntryType:   ToEntryTypeResponse(s),
		Propagation: ToPropagationResponse(r),
	}
}

// RemoveEntryTypeResponse represents the result of removing an entry type.
type RemoveEntryTypeResponse struct {
	Message     string              `json:"message"`
	Propagation PropagationResponse `json:"propagation"`
}

// ToRemoveEntryTypeResponse converts a remove result to an HTTP response DTO.
func ToRemoveEntryTypeResponse(r ports.PropagationReport) RemoveEntryTypeResponse {
	return RemoveEntryTypeResponse{
		Message:     MsgRemoved,
		Propagation: ToPropagationResponse(r),
	}
}

// EditorResponse describes the editor chosen for one field.
type EditorResponse struct {
	Field      string   `json:"field"`
	Kind       string   `json:"kind"`
	Options    string   `json:"options,omitempty"`
	Values     []string `json:"values,omitempty"`
	DateLayout string   `json:"date_layout,omitempty"`
	SingleLine bool     `json:"single_line"`
	Required   bool     `json:"required"`
}

// EditorLayoutResponse represents an editor layout in HTTP responses.
type EditorLayoutResponse struct {
	EntryType string           `json:"entry_type,omitempty"`
	EntryID   string           `json:"entry_id,omitempty"`
	Editors   []EditorResponse `json:"editors"`
}

// ToEditorLayoutResponse converts a type's editor descriptors to an HTTP
// response DTO.
func ToEditorLayoutResponse(entryType string, layout []fieldeditor.Descriptor) EditorLayoutResponse {
	return EditorLayoutResponse{EntryType: entryType, Editors: toEditorResponses(layout)}
}

// ToEntryEditorLayoutResponse converts one entry's editor descriptors to an
// HTTP response DTO.
func ToEntryEditorLayoutResponse(entryID string, layout []fieldeditor.Descriptor) EditorLayoutResponse {
	return EditorLayoutResponse{EntryID: entryID, Editors: toEditorResponses(layout)}
}

func toEditorResponses(layout []fieldeditor.Descriptor) []EditorResponse {
	editors := make([]EditorResponse, len(layout))
	for i, d := range layout {
		editors[i] = EditorResponse{
			Field:      d.Field,
			Kind:       d.Kind.String(),
			Options:    d.Options.String(),
			Values:     d.Values,
			DateLayout: d.DateLayout,
			SingleLine: d.SingleLine,
			Required:   d.Required,
		}
	}
	return editors
}

// EntryResponse represents a resolved entry in HTTP responses.
type EntryResponse struct {
	ID              string            `json:"id"`
	Type            string            `json:"type"`
	ResolvedType    string            `json:"resolved_type,omitempty"`
	Custom          bool              `json:"custom"`
	Typeless        bool              `json:"typeless"`
	Fields          map[string]string `json:"fields"`
	MissingRequired []string          `json:"missing_required,omitempty"`
}

// ToEntryResponse converts a resolved entry to an HTTP response DTO.
func ToEntryResponse(r document.Resolved) EntryResponse {
	resp := EntryResponse{
		ID:              r.ID,
		Type:            r.TypeName,
		Typeless:        r.Typeless,
		Fields:          r.Fields,
		MissingRequired: r.MissingRequired,
	}
	if resp.Fields == nil {
		resp.Fields = map[string]string{}
	}
	if !r.Typeless {
		resp.ResolvedType = r.Schema.Name()
		resp.Custom = r.Schema.IsCustom()
	}
	return resp
}

// DocumentResponse represents an open document in HTTP responses.
type DocumentResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Dirty   bool            `json:"dirty"`
	Entries []EntryResponse `json:"entries"`
}

// ToDocumentResponse converts a document snapshot to an HTTP response DTO.
func ToDocumentResponse(s document.Snapshot) DocumentResponse {
	entries := make([]EntryResponse, len(s.Entries))
	for i := range s.Entries {
		entries[i] = ToEntryResponse(s.Entries[i])
	}
	return DocumentResponse{
		ID:      s.ID,
		Name:    s.Name,
		Dirty:   s.Dirty,
		Entries: entries,
	}
}

// DocumentListResponse represents the open documents in HTTP responses.
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Count     int                `json:"count"`
}

// ToDocumentListResponse converts document snapshots to an HTTP response DTO.
func ToDocumentListResponse(snaps []document.Snapshot) DocumentListResponse {
	items := make([]DocumentResponse, len(snaps))
	for i := range snaps {
		items[i] = ToDocumentResponse(snaps[i])
	}
	return DocumentListResponse{Documents: items, Count: len(items)}
}

// Health statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse represents a liveness or readiness report.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse converts check results keyed by checker name to an
// HTTP response DTO. The service is ready only when every check passed.
func ToReadinessResponse(results map[string]error) HealthResponse {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = HealthNotReady
			continue
		}
		resp.Checks[name] = HealthOK
	}
	return resp
}
