package activity

import (
	"reflect"
	"testing"

	"gestor/internal/agenda"
)

func TestExtractTags(t *testing.T) {
	got := ExtractTags("llamar a #Cliente sobre #renovacion y #cliente otra vez")
	want := []string{"cliente", "renovacion"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractTagsNone(t *testing.T) {
	if got := ExtractTags("sin etiquetas"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestSplitByEffectiveType(t *testing.T) {
	rows := []Activity{
		{ID: 1, Type: "note"},
		{ID: 2, Type: "meeting"},
		{ID: 3, IsTask: true}, // legacy row, no type
		{ID: 4, Type: "todo"},
		{ID: 5, Type: "call"}, // no calendar presence
	}

	raw := make([]agenda.RawActivity, 0, len(rows))
	for _, r := range rows {
		raw = append(raw, toRaw(r))
	}

	c := Split(raw)
	if len(c.Notes) != 1 || c.Notes[0].ID != 1 {
		t.Fatalf("notes: %v", c.Notes)
	}
	if len(c.Meetings) != 1 || c.Meetings[0].ID != 2 {
		t.Fatalf("meetings: %v", c.Meetings)
	}
	if len(c.Tasks) != 2 {
		t.Fatalf("tasks: %v", c.Tasks)
	}
}
