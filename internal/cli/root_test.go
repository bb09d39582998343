package cli

import (
	"path/filepath"
	"testing"
)

func TestSplitList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Elder", []string{"Elder"}},
		{"Elder,Sargent", []string{"Elder", "Sargent"}},
		{" Elder , Sargent ,", []string{"Elder", "Sargent"}},
		{",,", nil},
	}
	for _, tc := range cases {
		got := splitList(tc.in)
		if len(got) != len(tc.want) {
			t.Fatalf("splitList(%q) = %v, want %v", tc.in, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("splitList(%q) = %v, want %v", tc.in, got, tc.want)
			}
		}
	}
}

func TestGetCacheDirPrecedence(t *testing.T) {
	defer func() { cacheDir = "" }()

	cacheDir = "/explicit"
	if got := getCacheDir(); got != "/explicit" {
		t.Fatalf("expected flag to win, got %q", got)
	}

	cacheDir = ""
	dir := t.TempDir()
	t.Setenv("MENUCACHE_DIR", dir)
	if got := getCacheDir(); got != dir {
		t.Fatalf("expected env to win, got %q", got)
	}
}

func TestGetCacheDirDefault(t *testing.T) {
	defer func() { cacheDir = "" }()
	cacheDir = ""
	t.Setenv("MENUCACHE_DIR", "")

	got := getCacheDir()
	if filepath.Base(got) != ".menucache" {
		t.Fatalf("expected home default, got %q", got)
	}
}

func TestRootCmdRegistersCommands(t *testing.T) {
	want := map[string]bool{"menu": false, "search": false, "favorite": false, "clear": false}
	for _, cmd := range RootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected %q command registered", name)
		}
	}
}
