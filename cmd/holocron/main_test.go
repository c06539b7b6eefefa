package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"holocron/internal/testsupport"
)

var episodeHeader = []string{"id", "chronological", "title", "tags", "characters"}

func TestConvertDirectoryWritesDataJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := filepath.Join(env.baseDir, "csv")
	testsupport.WriteCSV(t, dir, "clone-wars.csv", episodeHeader,
		[]string{"C01", "1", "Ambush", "Battle,Space", "Yoda,Rex"},
	)
	testsupport.WriteCSV(t, dir, "rebels.csv", episodeHeader,
		[]string{"R01", "1", "Spark of Rebellion", "Heist", "Crew,Kallus"},
	)

	out, _, err := runCLI(t, []string{"convert", dir}, "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Converted 2 episode(s) from 2 file(s)")
	requireContains(t, out, "The Clone Wars")
	requireContains(t, out, "Star Wars Rebels")
	requireContains(t, out, "data.json")

	var doc struct {
		Titles []map[string]any `json:"titles"`
	}
	content := testsupport.ReadFile(t, filepath.Join(dir, "data.json"))
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		t.Fatalf("decode data.json: %v", err)
	}
	if len(doc.Titles) != 2 || doc.Titles[0]["id"] != "C01" || doc.Titles[1]["chronological"].(float64) != 4001 {
		t.Fatalf("unexpected document %v", doc.Titles)
	}
}

func TestConvertToStdoutKeepsDocumentClean(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteCSV(t, env.baseDir, "batch.csv", episodeHeader,
		[]string{"B01", "2", "Aftermath", "Escape", "Batch,Crosshair"},
	)

	out, stderr, err := runCLI(t, []string{"convert", input, "--output", "-", "--log-level", "error"}, "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("stdout is not a JSON document: %v\n%s", err, out)
	}
	requireContains(t, stderr, "Converted 1 episode(s)")
	requireContains(t, stderr, "stdout")
	if _, err := os.Stat(filepath.Join(env.baseDir, "batch.json")); !os.IsNotExist(err) {
		t.Fatalf("stdout run should not write a file, stat err=%v", err)
	}
}

func TestConvertEpisodesLayoutWithSeries(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteCSV(t, env.baseDir, "tales.csv", episodeHeader,
		[]string{"T01", "1", "Life and Death", "Origin", "Ahsoka"},
	)

	out, _, err := runCLI(t, []string{"convert", input, "--layout", "episodes", "--series", "T", "-o", "-", "-q"}, "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, `"name": "Tales of the Jedi"`)
	requireContains(t, out, `"chronological": 2001`)
	requireNotContains(t, out, `"series"`)
}

func TestConvertQuietPrintsNothing(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteCSV(t, env.baseDir, "quiet.csv", episodeHeader, []string{"C02", "2", "Rising Malevolence", "", ""})

	out, _, err := runCLI(t, []string{"convert", "--quiet", input}, "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
	requireContains(t, testsupport.ReadFile(t, filepath.Join(env.baseDir, "quiet.json")), `"title": "Rising Malevolence"`)
}

func TestConvertUnknownSeriesFails(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteCSV(t, env.baseDir, "mixed.csv", episodeHeader,
		[]string{"C01", "1", "Ambush", "", ""},
		[]string{"X01", "2", "Mystery", "", ""},
	)

	_, stderr, err := runCLI(t, []string{"convert", input}, "")
	if err == nil {
		t.Fatal("expected error for unknown series code")
	}
	requireContains(t, err.Error(), "mixed.csv:3")
	requireContains(t, err.Error(), "unknown series code")
	requireContains(t, stderr, "conversion failed")
	if _, statErr := os.Stat(filepath.Join(env.baseDir, "mixed.json")); !os.IsNotExist(statErr) {
		t.Fatalf("failed conversion wrote output, stat err=%v", statErr)
	}
}

func TestConvertRejectsBadPolicy(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteCSV(t, env.baseDir, "x.csv", episodeHeader, []string{"C01", "1", "Ambush", "", ""})

	if _, _, err := runCLI(t, []string{"convert", input, "--policy", "everyone"}, ""); err == nil {
		t.Fatal("expected policy error")
	}
}

func TestSeriesCommand(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"series", "--macros"}, "")
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	for _, want := range []string{"The Clone Wars", "Tales of the Jedi", "The Bad Batch", "Star Wars Rebels", "4000", "Crew", "Omega"} {
		requireContains(t, out, want)
	}
}

func TestClassifyCommand(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"classify", "Crew,Kallus", "Stormtrooper"}, "")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	lines := strings.Split(out, "\n")
	requireLine := func(prefix, want string) {
		t.Helper()
		for _, line := range lines {
			if strings.Contains(line, prefix) {
				requireContains(t, line, want)
				return
			}
		}
		t.Fatalf("no %s row in output:\n%s", prefix, out)
	}
	requireLine("Main", "Ezra, Kanan, Hera, Sabine, Zeb, Chopper")
	requireLine("Side", "Kallus")
	requireLine("Extra", "Stormtrooper")
	requireContains(t, out, "Policy: leading-pair")
}

func TestCustomConfigReplacesSeriesTable(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeConfig(t, "[characters]\npolicy = \"first-only\"\n\n[[series]]\ncode = \"m\"\nname = \"Maul\"\nchronological_offset = 100\n")

	out, _, err := runCLI(t, []string{"series"}, env.configPath)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	requireContains(t, out, "Maul")
	requireNotContains(t, out, "The Clone Wars")

	input := testsupport.WriteCSV(t, env.baseDir, "maul.csv", episodeHeader, []string{"M01", "1", "Shadow", "", "Savage,Maul"})
	out, _, err = runCLI(t, []string{"convert", input, "-o", "-", "-q"}, env.configPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, `"chronological": 101`)
	requireContains(t, out, `"series": "Maul"`)
}

func TestInvalidLogFormatFlag(t *testing.T) {
	setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"series", "--log-format", "xml"}, ""); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}
