package scout

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExcludeList_CSV(t *testing.T) {
	path := writeFile(t, "exclude.csv",
		"channel_name,url\nCooking with Min,https://youtube.com/channel/C1\nDaily Tech KR,\n  Seoul Vlogs  ,x\n")

	set := LoadExcludeList(path)
	if len(set) != 3 {
		t.Fatalf("expected 3 entries, got %d: %v", len(set), set)
	}
	for _, want := range []string{"Cooking with Min", "Daily Tech KR", "Seoul Vlogs"} {
		if _, ok := set[want]; !ok {
			t.Errorf("missing %q", want)
		}
	}
	if _, ok := set["channel_name"]; ok {
		t.Error("header row must be skipped")
	}
}

func TestLoadExcludeList_RaggedCSV(t *testing.T) {
	path := writeFile(t, "ragged.csv", "name\na,b,c\nd\ne,f\n")
	set := LoadExcludeList(path)
	if len(set) != 3 {
		t.Errorf("ragged rows should still load, got %d entries", len(set))
	}
}

func TestLoadExcludeList_Degrades(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		set := LoadExcludeList(filepath.Join(t.TempDir(), "nope.csv"))
		if len(set) != 0 {
			t.Errorf("expected empty set, got %v", set)
		}
	})

	t.Run("garbage xlsx", func(t *testing.T) {
		path := writeFile(t, "broken.xlsx", "this is not a zip archive")
		set := LoadExcludeList(path)
		if len(set) != 0 {
			t.Errorf("expected empty set, got %v", set)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if set := LoadExcludeList(""); len(set) != 0 {
			t.Errorf("expected empty set, got %v", set)
		}
	})
}
