//go:build !release

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/izhairtrend/hairtrend/internal/locale"
)

func TestRootCommand(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	if root.RunE == nil {
		t.Fatal("root command should run the terminal UI")
	}
	for _, name := range []string{flagRoute, flagLang} {
		if root.Flags().Lookup(name) == nil {
			t.Errorf("missing --%s flag", name)
		}
	}

	want := map[string]bool{"serve": false, "locales": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing %s subcommand", name)
		}
	}
}

func TestLocalesCommand(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"locales"})

	if err := root.Execute(); err != nil {
		t.Fatalf("locales: %v", err)
	}

	catalog := locale.MustLoad()
	for _, l := range locale.All() {
		if !strings.Contains(out.String(), catalog.Dictionary(l).Nav[0]) {
			t.Errorf("output missing %s labels:\n%s", l, out.String())
		}
	}
}
