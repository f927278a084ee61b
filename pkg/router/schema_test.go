package router

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type simpleStruct struct {
	String  string  `json:"string"`
	Int     int     `json:"int"`
	Bool    bool    `json:"bool"`
	Float   float64 `json:"float"`
	Pointer *string `json:"pointer,omitempty"`
	Hidden  string  `json:"-"`
	private string
}

type taggedStruct struct {
	Status string    `json:"status" doc:"current status" example:"open" enum:"open,closed"`
	At     time.Time `json:"at"`
	Data   json.RawMessage
}

type circularStruct struct {
	Name     string           `json:"name"`
	Self     *circularStruct  `json:"self,omitempty"`
	Children []circularStruct `json:"children"`
}

type containerStruct struct {
	Items  []simpleStruct           `json:"items"`
	ByName map[string]simpleStruct `json:"byName,omitempty"`
	Inline struct {
		Count int `json:"count"`
	} `json:"inline"`
}

func TestParseJSONTag(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		tag          string
		wantName     string
		wantRequired bool
	}{
		"empty tag":         {tag: "", wantName: "Field", wantRequired: true},
		"plain name":        {tag: "name", wantName: "name", wantRequired: true},
		"omitempty":         {tag: "name,omitempty", wantName: "name", wantRequired: false},
		"omitempty no name": {tag: ",omitempty", wantName: "Field", wantRequired: false},
		"string option":     {tag: "name,string", wantName: "name", wantRequired: true},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			gotName, gotRequired := parseJSONTag(tc.tag, "Field")
			assert.Equal(t, tc.wantName, gotName)
			assert.Equal(t, tc.wantRequired, gotRequired)
		})
	}
}

func TestSchemaOfBasicTypes(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		value any
		want  map[string]any
	}{
		"string":  {value: "", want: map[string]any{"type": "string"}},
		"int":     {value: 0, want: map[string]any{"type": "integer"}},
		"uint64":  {value: uint64(0), want: map[string]any{"type": "integer"}},
		"float":   {value: 0.0, want: map[string]any{"type": "number"}},
		"bool":    {value: false, want: map[string]any{"type": "boolean"}},
		"time":    {value: time.Time{}, want: map[string]any{"type": "string", "format": "date-time"}},
		"pointer": {value: new(string), want: map[string]any{"type": "string"}},
		"slice": {
			value: []string{},
			want:  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"map": {
			value: map[string]int{},
			want:  map[string]any{"type": "object", "additionalProperties": map[string]any{"type": "integer"}},
		},
		"nil": {value: nil, want: nil},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := newSchemaRegistry().schemaOf(tc.value)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("schema mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSchemaOfStructRegistersComponent(t *testing.T) {
	t.Parallel()

	registry := newSchemaRegistry()
	got := registry.schemaOf(simpleStruct{})

	assert.Equal(t, map[string]any{"$ref": "#/components/schemas/simpleStruct"}, got)

	want := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"string":  map[string]any{"type": "string"},
			"int":     map[string]any{"type": "integer"},
			"bool":    map[string]any{"type": "boolean"},
			"float":   map[string]any{"type": "number"},
			"pointer": map[string]any{"type": "string"},
		},
		"required": []string{"string", "int", "bool", "float"},
	}
	if diff := cmp.Diff(want, registry.schemas["simpleStruct"]); diff != "" {
		t.Errorf("component mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaFieldMetadata(t *testing.T) {
	t.Parallel()

	registry := newSchemaRegistry()
	registry.schemaOf(&taggedStruct{})

	component := registry.schemas["taggedStruct"]
	require.NotNil(t, component)

	properties := component["properties"].(map[string]any)

	want := map[string]any{
		"type":        "string",
		"description": "current status",
		"example":     "open",
		"enum":        []string{"open", "closed"},
	}
	if diff := cmp.Diff(want, properties["status"]); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, map[string]any{"type": "string", "format": "date-time"}, properties["at"])
	assert.Equal(t, map[string]any{"type": "object"}, properties["Data"])
}

func TestSchemaCircularReference(t *testing.T) {
	t.Parallel()

	registry := newSchemaRegistry()
	registry.schemaOf(circularStruct{})

	properties := registry.schemas["circularStruct"]["properties"].(map[string]any)
	ref := map[string]any{"$ref": "#/components/schemas/circularStruct"}

	assert.Equal(t, ref, properties["self"])
	assert.Equal(t, map[string]any{"type": "array", "items": ref}, properties["children"])
	assert.Equal(t, []string{"name", "children"}, registry.schemas["circularStruct"]["required"])
}

func TestSchemaContainers(t *testing.T) {
	t.Parallel()

	registry := newSchemaRegistry()
	registry.schemaOf(containerStruct{})

	ref := map[string]any{"$ref": "#/components/schemas/simpleStruct"}
	want := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items":  map[string]any{"type": "array", "items": ref},
			"byName": map[string]any{"type": "object", "additionalProperties": ref},
			"inline": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"count": map[string]any{"type": "integer"},
				},
				"required": []string{"count"},
			},
		},
		"required": []string{"items", "inline"},
	}
	if diff := cmp.Diff(want, registry.schemas["containerStruct"]); diff != "" {
		t.Errorf("component mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, registry.components(), 2)
}
