//go:build !lowerlay_ascii

package dict

import (
	"os"
	"path/filepath"
	"testing"
)

func setupRegistry(t *testing.T) (*Registry, string) {
	t.Helper()
	dir := t.TempDir()

	// Dict 1: French surnames
	d1 := filepath.Join(dir, "noms-fr")
	os.MkdirAll(d1, 0o755)
	os.WriteFile(filepath.Join(d1, "manifest.yaml"), []byte(`id: noms-fr
version: "1.0"
language: fr
source: test
data_file: data.csv
format:
  delimiter: ";"
  has_header: true
  key_column: "term"
  normalize: lower_lay
metadata_columns:
  - name: freq
    column: "frequency"
`), 0o644)
	os.WriteFile(filepath.Join(d1, "data.csv"), []byte("term;frequency\nDUPONT;1200\nMartin;3500\nÉlodie;800\n"), 0o644)

	// Dict 2: Portuguese first names
	d2 := filepath.Join(dir, "nomes-pt")
	os.MkdirAll(d2, 0o755)
	os.WriteFile(filepath.Join(d2, "manifest.yaml"), []byte(`id: nomes-pt
version: "1.0"
language: pt
source: test
data_file: data.csv
format:
  delimiter: ";"
  has_header: true
  key_column: "term"
  normalize: lower_lay
`), 0o644)
	os.WriteFile(filepath.Join(d2, "data.csv"), []byte("term\nJoão\nInês\nMartín\n"), 0o644)

	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return reg, dir
}

func TestRegistryLoad(t *testing.T) {
	reg, dir := setupRegistry(t)

	if reg.DictCount() != 2 {
		t.Errorf("DictCount = %d, want 2", reg.DictCount())
	}
	if reg.TotalEntries() != 6 {
		t.Errorf("TotalEntries = %d, want 6", reg.TotalEntries())
	}
	if reg.Dir() != dir {
		t.Errorf("Dir = %q, want %q", reg.Dir(), dir)
	}
}

func TestMatch(t *testing.T) {
	reg, _ := setupRegistry(t)

	result := reg.Match("ÉLODIE", nil)
	if result.Term != "ÉLODIE" {
		t.Errorf("Term = %q, want ÉLODIE", result.Term)
	}
	if result.Folded != "elodie" {
		t.Errorf("Folded = %q, want elodie", result.Folded)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(result.Matches))
	}
	m := result.Matches[0]
	if m.DictID != "noms-fr" || m.Language != "fr" || m.Metadata["freq"] != "800" {
		t.Errorf("match = %+v, want noms-fr/fr/freq=800", m)
	}
}

func TestMatch_MultiDict(t *testing.T) {
	reg, _ := setupRegistry(t)

	// Martin and Martín fold to the same key.
	result := reg.Match("MARTIN", nil)
	if len(result.Matches) != 2 {
		t.Errorf("matches = %d, want 2 (noms-fr + nomes-pt)", len(result.Matches))
	}
}

func TestMatch_NoMatch(t *testing.T) {
	reg, _ := setupRegistry(t)

	result := reg.Match("Xylocopá", nil)
	if len(result.Matches) != 0 {
		t.Errorf("matches = %d, want 0", len(result.Matches))
	}
	// Folded is still set from the default mode.
	if result.Folded != "xylocopa" {
		t.Errorf("Folded = %q, want xylocopa", result.Folded)
	}
}

func TestMatch_FilterLanguage(t *testing.T) {
	reg, _ := setupRegistry(t)

	result := reg.Match("Martin", &MatchOptions{Languages: []string{"pt"}})
	if len(result.Matches) != 1 {
		t.Fatalf("matches = %d, want 1 (pt only)", len(result.Matches))
	}
	if result.Matches[0].Language != "pt" {
		t.Errorf("Language = %q, want pt", result.Matches[0].Language)
	}
}

func TestMatch_FilterDict(t *testing.T) {
	reg, _ := setupRegistry(t)

	result := reg.Match("Martin", &MatchOptions{Dicts: []string{"noms-fr"}})
	if len(result.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(result.Matches))
	}
	if result.Matches[0].DictID != "noms-fr" {
		t.Errorf("DictID = %q, want noms-fr", result.Matches[0].DictID)
	}
}

func TestMatch_FilterNoResult(t *testing.T) {
	reg, _ := setupRegistry(t)

	result := reg.Match("Martin", &MatchOptions{Languages: []string{"de"}})
	if len(result.Matches) != 0 {
		t.Errorf("matches = %d, want 0 (no de dictionary)", len(result.Matches))
	}
}

func TestMatch_Deterministic(t *testing.T) {
	reg, _ := setupRegistry(t)

	for i := 0; i < 20; i++ {
		result := reg.Match("Martin", nil)
		if len(result.Matches) != 2 {
			t.Fatalf("iteration %d: matches = %d, want 2", i, len(result.Matches))
		}
		// Sorted by dict ID: nomes-pt < noms-fr
		if result.Matches[0].DictID != "nomes-pt" {
			t.Errorf("iteration %d: first match = %q, want nomes-pt (sorted order)", i, result.Matches[0].DictID)
		}
		if result.Matches[1].DictID != "noms-fr" {
			t.Errorf("iteration %d: second match = %q, want noms-fr (sorted order)", i, result.Matches[1].DictID)
		}
	}
}

func TestListDicts(t *testing.T) {
	reg, _ := setupRegistry(t)

	infos := reg.ListDicts()
	if len(infos) != 2 {
		t.Fatalf("ListDicts = %d, want 2", len(infos))
	}
	if infos[0].ID != "nomes-pt" || infos[1].ID != "noms-fr" {
		t.Errorf("ListDicts order = %q, %q; want nomes-pt, noms-fr", infos[0].ID, infos[1].ID)
	}
	if infos[0].Normalize != ModeLowerLay {
		t.Errorf("Normalize = %q, want %q", infos[0].Normalize, ModeLowerLay)
	}
	if infos[1].Entries != 3 {
		t.Errorf("noms-fr entries = %d, want 3", infos[1].Entries)
	}
}

func TestReload(t *testing.T) {
	reg, dir := setupRegistry(t)

	d3 := filepath.Join(dir, "cidades-pt")
	os.MkdirAll(d3, 0o755)
	os.WriteFile(filepath.Join(d3, "manifest.yaml"), []byte(`id: cidades-pt
language: pt
`), 0o644)
	os.WriteFile(filepath.Join(d3, "data.csv"), []byte("Évora\nGuimarães\n"), 0o644)

	if err := reg.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if reg.DictCount() != 3 {
		t.Errorf("after reload: %d dicts, want 3", reg.DictCount())
	}
	if r := reg.Match("guimaraes", nil); len(r.Matches) != 1 {
		t.Errorf("Match(guimaraes) = %d matches after reload, want 1", len(r.Matches))
	}
}

func TestLoad_DuplicateID(t *testing.T) {
	reg, dir := setupRegistry(t)

	dup := filepath.Join(dir, "zz-copy")
	os.MkdirAll(dup, 0o755)
	os.WriteFile(filepath.Join(dup, "manifest.yaml"), []byte("id: noms-fr\n"), 0o644)
	os.WriteFile(filepath.Join(dup, "data.csv"), []byte("x\n"), 0o644)

	if err := reg.Reload(); err == nil {
		t.Fatal("expected error for duplicate dictionary id")
	}
	// The previous set stays in place.
	if reg.DictCount() != 2 {
		t.Errorf("DictCount = %d after failed reload, want 2", reg.DictCount())
	}
}

func TestEmptyRegistry(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if reg.DictCount() != 0 {
		t.Errorf("DictCount = %d, want 0", reg.DictCount())
	}
	if reg.TotalEntries() != 0 {
		t.Errorf("TotalEntries = %d, want 0", reg.TotalEntries())
	}

	result := reg.Match("anything", nil)
	if len(result.Matches) != 0 {
		t.Errorf("matches = %d, want 0", len(result.Matches))
	}
}
