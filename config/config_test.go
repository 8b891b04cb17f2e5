package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if got != Default() {
		t.Fatalf("expected defaults for a missing file")
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	body := "walk_speed: 250\ndash_cooldown: 1000\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.WalkSpeed != 250 {
		t.Fatalf("expected walk_speed 250, got %v", got.WalkSpeed)
	}
	if got.DashCooldown != 1000 {
		t.Fatalf("expected dash_cooldown 1000, got %v", got.DashCooldown)
	}
	// untouched fields keep their defaults
	if got.RunSpeed != Default().RunSpeed {
		t.Fatalf("expected default run_speed, got %v", got.RunSpeed)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err == nil {
		t.Fatalf("expected an error for malformed yaml")
	}
	if got != Default() {
		t.Fatalf("malformed file must fall back to defaults")
	}
}

func TestSanitizeRejectsBrokenValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	body := "walk_speed: -50\nrun_speed: 10\nmax_jumps: 0\ndiagonal_scale: 3\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d := Default()
	if got.WalkSpeed != d.WalkSpeed || got.RunSpeed != d.RunSpeed {
		t.Fatalf("broken speeds must revert to defaults, got %+v", got)
	}
	if got.MaxJumps != d.MaxJumps {
		t.Fatalf("max_jumps 0 must revert, got %d", got.MaxJumps)
	}
	if got.DiagonalScale != d.DiagonalScale {
		t.Fatalf("diagonal_scale out of range must revert, got %v", got.DiagonalScale)
	}
}

func TestRunThreshold(t *testing.T) {
	tn := Default()
	if tn.RunThreshold() != tn.WalkSpeed*1.5 {
		t.Fatalf("run threshold must be 1.5x walk speed")
	}
}
