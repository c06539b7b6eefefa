package catalog_test

import (
	"errors"
	"testing"

	"holocron/internal/catalog"
	"holocron/internal/config"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cfg := config.Default()
	cat, err := catalog.FromConfig(&cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	return cat
}

func TestLookupKnownAndUnknownCodes(t *testing.T) {
	cat := defaultCatalog(t)

	got, err := cat.Lookup("B")
	if err != nil {
		t.Fatalf("Lookup(B): %v", err)
	}
	if got.Name != "The Bad Batch" || got.Offset != 3000 {
		t.Fatalf("unexpected series: %+v", got)
	}

	if _, err := cat.Lookup("X"); !errors.Is(err, catalog.ErrUnknownSeriesCode) {
		t.Fatalf("expected ErrUnknownSeriesCode, got %v", err)
	}
}

func TestLookupID(t *testing.T) {
	cat := defaultCatalog(t)

	got, err := cat.LookupID("R12")
	if err != nil {
		t.Fatalf("LookupID: %v", err)
	}
	if got.Code != "R" || got.Offset != 4000 {
		t.Fatalf("unexpected series: %+v", got)
	}
	for _, id := range []string{"", "Z01", "c01"} {
		if _, err := cat.LookupID(id); !errors.Is(err, catalog.ErrUnknownSeriesCode) {
			t.Errorf("LookupID(%q): expected ErrUnknownSeriesCode, got %v", id, err)
		}
	}
}

func TestDefaultIsFirstSeries(t *testing.T) {
	cat := defaultCatalog(t)
	if got := cat.Default(); got.Code != "C" {
		t.Fatalf("expected C as default, got %+v", got)
	}
	if got := cat.Series(); len(got) != 4 || got[3].Code != "R" {
		t.Fatalf("unexpected series order: %+v", got)
	}
}

func TestExpandReturnsCopy(t *testing.T) {
	cat := defaultCatalog(t)

	members, ok := cat.Expand("Batch")
	if !ok || len(members) != 5 {
		t.Fatalf("unexpected Batch expansion: %v %v", members, ok)
	}
	members[0] = "Mutated"
	again, _ := cat.Expand("Batch")
	if again[0] != "Hunter" {
		t.Fatalf("catalog was mutated through Expand: %v", again)
	}
	if _, ok := cat.Expand("Rex"); ok {
		t.Fatal("Rex is not a macro")
	}
}

func TestClassificationSetsUseNFC(t *testing.T) {
	cat, err := catalog.New(
		[]catalog.Series{{Code: "C", Name: "The Clone Wars", Offset: 2000}},
		nil,
		[]string{"Padm\u00e9"},
		[]string{"Dooku"},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !cat.IsMain("Padme\u0301") {
		t.Fatal("expected decomposed spelling to match composed main entry")
	}
	if !cat.IsSide("Dooku") || cat.IsSide("Padmé") {
		t.Fatal("unexpected side classification")
	}
}

func TestNewRejectsInvalidTables(t *testing.T) {
	cases := map[string][]catalog.Series{
		"empty":     nil,
		"long code": {{Code: "CW", Name: "x"}},
		"no name":   {{Code: "C"}},
		"duplicate": {{Code: "C", Name: "a"}, {Code: "C", Name: "b"}},
	}
	for name, series := range cases {
		if _, err := catalog.New(series, nil, nil, nil); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
