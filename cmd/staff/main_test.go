package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/practicum/employee-model/pkg/logger"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	saved := log.Logger
	logger.Reset()
	t.Cleanup(func() {
		log.Logger = saved
		logger.Reset()
	})

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestConvertCmd(t *testing.T) {
	out, _, err := execute(t, "convert", "90", "RUB", "usd")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out != "90 rub = 1 usd\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestConvertCmd_Errors(t *testing.T) {
	if _, _, err := execute(t, "convert", "ninety", "rub", "usd"); err == nil {
		t.Error("expected error for non-numeric value")
	}
	if _, _, err := execute(t, "convert", "1", "rub", "gbp"); err == nil {
		t.Error("expected error for unknown currency")
	}
	if _, _, err := execute(t, "convert", "1", "rub"); err == nil {
		t.Error("expected error for missing argument")
	}
}

func TestRosterPremiumsCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	doc := `
employees:
  - {key: anna, name: Anna, surname: Ivanova, position: recruiter, age: 30}
engineers:
  - {key: ivan, name: Ivan, surname: Petrov, position: backend, age: 28, salary: 120000}
  - {key: old, name: Oleg, surname: Old, position: backend, age: 130}
managers:
  - {key: olga, name: Olga, surname: Smirnova, position: lead, age: 45, engineers: [ivan]}
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	out, errOut, err := execute(t, "--log-level", "warn", "roster", "premiums", path)
	if err != nil {
		t.Fatalf("roster premiums: %v", err)
	}

	want := "ivan\tengineer\tgranted 12000\trub\n" +
		"olga\tmanager\treported 9600\tgranted 18000\trub\n"
	if out != want {
		t.Errorf("unexpected output:\n%q\nwant:\n%q", out, want)
	}
	if !strings.Contains(errOut, "skipped old: hire: employee: invalid age") {
		t.Errorf("expected skip report on stderr, got %q", errOut)
	}
}

func TestRosterPremiumsCmd_MissingFile(t *testing.T) {
	if _, _, err := execute(t, "roster", "premiums", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing roster")
	}
}
