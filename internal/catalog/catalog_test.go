// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/sakefinder/internal/pairing"
	"github.com/tomtom215/sakefinder/internal/taste"
)

func TestLoad_Embedded(t *testing.T) {
	t.Parallel()

	c, err := Load(Source{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 12 {
		t.Errorf("Len() = %d, want 12", c.Len())
	}
	if c.Version() != "2025.07" {
		t.Errorf("Version() = %q", c.Version())
	}

	for _, e := range c.All() {
		if e.ECURL == "" {
			t.Errorf("%s: missing ec_url", e.ID)
		}
		for _, a := range taste.Axes {
			v := e.Taste.Get(a)
			if v < taste.Min || v > taste.Max {
				t.Errorf("%s: %s = %v outside [1,10]", e.ID, a, v)
			}
		}
	}
}

func TestLoad_IncludeMatrix(t *testing.T) {
	t.Parallel()

	c, err := Load(Source{IncludeMatrix: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 18 {
		t.Fatalf("Len() = %d, want 18", c.Len())
	}

	e, err := c.Get("matrix_masamune")
	if err != nil {
		t.Fatalf("Get(matrix_masamune) error = %v", err)
	}
	if e.Name != "〇〇正宗 純米酒 720ml" {
		t.Errorf("Name = %q", e.Name)
	}
	if e.Brewery != "〇〇正宗酒造" {
		t.Errorf("Brewery = %q", e.Brewery)
	}
	if e.Style != pairing.StyleAromatic {
		t.Errorf("Style = %q, want %q", e.Style, pairing.StyleAromatic)
	}
	if e.RiceMilling != 65 {
		t.Errorf("RiceMilling = %v, want 65", e.RiceMilling)
	}
	if e.Taste.Aroma != 8.5 || e.Taste.Richness != 4.5 {
		t.Errorf("Taste = %+v, want class A presets", e.Taste)
	}
	if got, want := e.Taste.Sweetness, 4+2.0/3; math.Abs(got-want) > 1e-9 {
		t.Errorf("Sweetness = %v, want %v", got, want)
	}
	if e.EffectiveSakeDegree() != -2 {
		t.Errorf("EffectiveSakeDegree() = %v, want -2", e.EffectiveSakeDegree())
	}
	if e.Description != "日本酒度-2、酸度1の薫酒タイプの純米酒。" {
		t.Errorf("Description = %q", e.Description)
	}
	if !e.HasTag("お手頃") || !e.HasTag("薫酒") {
		t.Errorf("Tags = %v", e.Tags)
	}

	cheap, _ := c.Get("matrix_otokoyama")
	if !cheap.HasTag("コスパ良") {
		t.Errorf("price range L should tag コスパ良, got %v", cheap.Tags)
	}
	if cheap.RiceMilling != 70 {
		t.Errorf("普通酒 RiceMilling = %v, want 70", cheap.RiceMilling)
	}
}

func TestCatalog_GetNotFound(t *testing.T) {
	t.Parallel()

	c, err := Load(Source{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Get("nope")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("Get(nope) error = %v, want ErrEntryNotFound", err)
	}
}

func TestNew_RejectsBadIDs(t *testing.T) {
	t.Parallel()

	if _, err := New("v", []Entry{{ID: "a"}, {ID: "a"}}); err == nil {
		t.Error("duplicate ids should be rejected")
	}
	if _, err := New("v", []Entry{{Name: "x"}}); err == nil {
		t.Error("empty id should be rejected")
	}
}

func TestCatalog_AllReturnsCopies(t *testing.T) {
	t.Parallel()

	c, err := New("v", []Entry{{ID: "a", Tags: []string{"人気"}}})
	if err != nil {
		t.Fatal(err)
	}
	all := c.All()
	all[0].Tags[0] = "changed"
	all[0].ID = "b"

	e, _ := c.Get("a")
	if e.Tags[0] != "人気" {
		t.Error("mutating All() result leaked into the catalog")
	}
}

func TestEntry_EffectiveValues(t *testing.T) {
	t.Parallel()

	degree, acidity := 7.0, 1.8
	precise := Entry{Taste: taste.New(5, 5, 5, 5), SakeDegree: &degree, RealAcidity: &acidity}
	if precise.EffectiveSakeDegree() != 7 || precise.EffectiveAcidity() != 1.8 {
		t.Errorf("precise fields should win: %v %v", precise.EffectiveSakeDegree(), precise.EffectiveAcidity())
	}

	derived := Entry{Taste: taste.New(5, 5, 1.3, 5)}
	if derived.EffectiveSakeDegree() != -3 {
		t.Errorf("derived degree = %v, want -3", derived.EffectiveSakeDegree())
	}
	if derived.EffectiveAcidity() != 1.3 {
		t.Errorf("derived acidity = %v, want 1.3", derived.EffectiveAcidity())
	}
}

func TestParseSakeClass(t *testing.T) {
	t.Parallel()

	for _, c := range SakeClasses {
		got, err := ParseSakeClass(string(c))
		if err != nil || got != c {
			t.Errorf("ParseSakeClass(%q) = %q, %v", c, got, err)
		}
		if c.Description() == "" {
			t.Errorf("%q has no description", c)
		}
	}
	if _, err := ParseSakeClass("焼酎"); err == nil {
		t.Error("焼酎 should be rejected")
	}
	if ClassJunmaiShu.Description() != ClassJunmai.Description() {
		t.Error("純米酒 should share 純米's description")
	}
}

const diskCatalog = `version: "test-1"
sakes:
  - id: one
    name: 一番
    price: 1000
    alcohol: 15
    rice_milling: 60
    sweetness: 5
    richness: 5
    acidity: 5
    aroma: 5
    class: 純米
    ec_url: https://issendo.jp/
`

func writeCatalog(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FromDisk(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, t.TempDir(), diskCatalog)
	c, err := Load(Source{Path: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 1 || c.Version() != "test-1" {
		t.Errorf("got %d entries, version %q", c.Len(), c.Version())
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"unknown class", strings.Replace(diskCatalog, "class: 純米", "class: 焼酎", 1)},
		{"missing ec_url", strings.Replace(diskCatalog, "    ec_url: https://issendo.jp/\n", "", 1)},
		{"unknown style", diskCatalog + "    style: 甘酒\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeCatalog(t, t.TempDir(), tt.body)
			if _, err := Load(Source{Path: path}); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestStore_ReloadKeepsSnapshotOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeCatalog(t, dir, diskCatalog)

	s, err := NewStore(Source{Path: path})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	var notified int
	s.OnReload(func(*Catalog) { notified++ })

	writeCatalog(t, dir, strings.Replace(diskCatalog, "test-1", "test-2", 1))
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if s.Current().Version() != "test-2" {
		t.Errorf("Version() = %q, want test-2", s.Current().Version())
	}
	if notified != 1 {
		t.Errorf("listener called %d times, want 1", notified)
	}

	writeCatalog(t, dir, "sakes: [")
	if err := s.Reload(); err == nil {
		t.Error("Reload() of broken file should fail")
	}
	if s.Current().Version() != "test-2" {
		t.Error("failed reload replaced the snapshot")
	}
	if notified != 1 {
		t.Error("listener should not run on failed reload")
	}
}

func TestStore_EmbeddedNotWatchable(t *testing.T) {
	t.Parallel()

	s, err := NewStore(Source{})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Serve(t.Context()); !errors.Is(err, ErrNotWatchable) {
		t.Errorf("Serve() error = %v, want ErrNotWatchable", err)
	}
}
