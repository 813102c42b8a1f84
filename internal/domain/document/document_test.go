package document

import (
	"errors"
	"slices"
	"testing"

	"github.com/jsamuelsen11/bibtypes/internal/domain"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
)

func TestEntry_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		entry      Entry
		wantFields []string
	}{
		{
			name:  "valid",
			entry: Entry{TypeName: "article", Fields: map[string]string{"title": "x"}},
		},
		{
			name:       "blank type",
			entry:      Entry{TypeName: "  "},
			wantFields: []string{"type"},
		},
		{
			name:       "blank field name",
			entry:      Entry{TypeName: "article", Fields: map[string]string{" ": "x"}},
			wantFields: []string{"fields"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.entry.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("ValidationError.Fields missing %q, got %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	article, err := entrytype.NewFieldSchema("article", []string{"author", "title"}, []string{"note"}, false)
	if err != nil {
		t.Fatalf("NewFieldSchema() error = %v", err)
	}
	lookup := func(name string) (entrytype.FieldSchema, bool) {
		if entrytype.Key(name) == "article" {
			return article, true
		}
		return entrytype.FieldSchema{}, false
	}

	got := Resolve(Entry{TypeName: "Article", Fields: map[string]string{"Title": "Go"}}, lookup)
	if got.Typeless {
		t.Fatal("Resolve() Typeless = true, want false")
	}
	if !slices.Equal(got.MissingRequired, []string{"author"}) {
		t.Errorf("MissingRequired = %v, want [author]", got.MissingRequired)
	}

	gone := Resolve(Entry{TypeName: "patent"}, lookup)
	if !gone.Typeless {
		t.Error("Resolve() of unknown type Typeless = false, want true")
	}
}

func TestSameResolution(t *testing.T) {
	t.Parallel()

	a, _ := entrytype.NewFieldSchema("review", []string{"title"}, nil, true)
	b, _ := entrytype.NewFieldSchema("Review", []string{"title"}, nil, true)
	c, _ := entrytype.NewFieldSchema("review", []string{"title", "year"}, nil, true)

	tests := []struct {
		name string
		x, y Resolved
		want bool
	}{
		{"same fields", Resolved{Schema: a}, Resolved{Schema: b}, true},
		{"different fields", Resolved{Schema: a}, Resolved{Schema: c}, false},
		{"became typeless", Resolved{Schema: a}, Resolved{Typeless: true}, false},
		{"both typeless", Resolved{Typeless: true}, Resolved{Typeless: true}, true},
	}

	for _, tt := range tests {
		if got := SameResolution(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: SameResolution() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
