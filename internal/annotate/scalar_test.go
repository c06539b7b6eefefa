package annotate_test

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"holocron/internal/annotate"
)

func TestCoerce(t *testing.T) {
	cases := []struct {
		raw  string
		kind string
		want string
	}{
		{"5", "int", "5"},
		{"007", "int", "7"},
		{"1.5", "float", "1.5"},
		{"3.0", "float", "3.0"},
		{"3.", "float", "3.0"},
		{".5", "float", "0.5"},
		{"", "string", ""},
		{".", "string", "."},
		{"1.2.3", "string", "1.2.3"},
		{"-4", "string", "-4"},
		{"1e5", "string", "1e5"},
		{" 5", "string", " 5"},
		{"99999999999999999999", "string", "99999999999999999999"},
		{"Ambush", "string", "Ambush"},
	}
	for _, tc := range cases {
		got := annotate.Coerce(tc.raw)
		var kind string
		switch {
		case got.IsInt():
			kind = "int"
		case got.IsFloat():
			kind = "float"
		default:
			kind = "string"
		}
		if kind != tc.kind || got.String() != tc.want {
			t.Errorf("Coerce(%q) = %s %q, want %s %q", tc.raw, kind, got.String(), tc.kind, tc.want)
		}
	}
}

func TestScalarJSONKeepsIntAndFloatApart(t *testing.T) {
	values := []annotate.Scalar{annotate.Coerce("5"), annotate.Coerce("5.0"), annotate.Coerce("<Ambush & Co>")}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(values); err != nil {
		t.Fatalf("encode: %v", err)
	}
	data := bytes.TrimSpace(buf.Bytes())
	if got := string(data); got != `[5,5.0,"<Ambush & Co>"]` {
		t.Fatalf("unexpected encoding %s", got)
	}

	var decoded []annotate.Scalar
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded[0].IsInt() || !decoded[1].IsFloat() || !decoded[2].IsString() {
		t.Fatalf("kinds drifted after round trip: %#v", decoded)
	}
	if !reflect.DeepEqual(decoded, values) {
		t.Fatalf("round trip mismatch: %#v vs %#v", decoded, values)
	}
}

func TestEpisodeJSONRoundTrip(t *testing.T) {
	a := newAnnotator(t)
	ep, err := a.Annotate(annotate.Row{
		"id":            "C01",
		"importance":    "2",
		"chronological": "1",
		"number":        "1",
		"title":         "Ambush",
		"arc":           "Ryloth",
		"phase":         "1.5",
		"tags":          "Battle,Space",
		"characters":    "Ahsoka,Rex,Cody",
		"recommended":   "",
		"relevance":     "C02",
	})
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}

	data, err := json.Marshal(ep)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back annotate.Episode
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back, ep) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", back, ep)
	}

	var generic map[string]any
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.UseNumber()
	if err := decoder.Decode(&generic); err != nil {
		t.Fatalf("decode generic: %v", err)
	}
	if n := generic["number"].(json.Number); n.String() != "1" {
		t.Fatalf("number encoded as %q, want integer 1", n)
	}
	if n := generic["phase"].(json.Number); n.String() != "1.5" {
		t.Fatalf("phase encoded as %q", n)
	}
}

func TestEpisodeJSONKeyOrder(t *testing.T) {
	data, err := json.Marshal(annotate.NewEpisode())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"","importance":"","chronological":0,"release":"","number":"","title":"","arc":"","phase":0,` +
		`"tags":{"primary":"","secondary":[]},"characters":{"main":[],"side":[],"extra":[]},"recommended":[],"relevance":[]}`
	if string(data) != want {
		t.Fatalf("unexpected template encoding:\n got %s\nwant %s", data, want)
	}
}
