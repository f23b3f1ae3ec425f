// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "testing"

// TestRegistryLookup tests descriptor lookup by name
func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	d := r.Lookup("getScript")
	if d == nil {
		t.Fatal("Lookup(getScript) returned nil")
	}
	if d.Category != "Scripts" {
		t.Errorf("getScript category = %q, want %q", d.Category, "Scripts")
	}
	if d.Description == "" {
		t.Error("getScript has no description")
	}

	if r.Lookup("noSuchCommand") != nil {
		t.Error("Lookup of unknown command should return nil")
	}
}

// TestRegistryBeautifyAugmentation tests that every descriptor gets exactly
// one trailing optional "beautify" bool parameter
func TestRegistryBeautifyAugmentation(t *testing.T) {
	r := NewRegistry()

	for _, name := range r.AllNames() {
		d := r.Lookup(name)

		count := 0
		for _, p := range d.Params {
			if p.Name == "beautify" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("%s has %d beautify params, want 1", name, count)
		}

		last := d.Params[len(d.Params)-1]
		if last.Name != "beautify" {
			t.Errorf("%s: beautify is not the last parameter (got %q)", name, last.Name)
		}
		if last.Required || last.Type != TypeBool || last.Post {
			t.Errorf("%s: beautify param = %+v, want optional non-post bool", name, last)
		}
	}
}

// TestRegistryAugmentationIsIdempotent tests that building a second registry
// does not stack a second beautify parameter onto the shared catalog
func TestRegistryAugmentationIsIdempotent(t *testing.T) {
	NewRegistry()
	r := NewRegistry()

	d := r.Lookup("authorizeHandshake")
	if len(d.Params) != 1 {
		t.Fatalf("authorizeHandshake has %d params after two registry builds, want 1", len(d.Params))
	}
}

// TestRegistryCategories tests category ordering and membership
func TestRegistryCategories(t *testing.T) {
	r := NewRegistry()

	cats := r.Categories()
	if len(cats) == 0 || cats[0] != "Handshake" {
		t.Fatalf("Categories() = %v, want Handshake first", cats)
	}

	scripts := r.CommandsInCategory("Scripts")
	want := []string{"setMemberScripts", "toggleScriptStatus", "getScript", "getAllScripts", "updateScript"}
	if len(scripts) != len(want) {
		t.Fatalf("Scripts category has %d commands, want %d: %v", len(scripts), len(want), scripts)
	}
	for i, name := range want {
		if scripts[i] != name {
			t.Errorf("Scripts[%d] = %q, want %q (catalog insertion order)", i, scripts[i], name)
		}
	}

	if got := r.CommandsInCategory("NoSuchCategory"); len(got) != 0 {
		t.Errorf("unknown category should list no commands, got %v", got)
	}
}

// TestRegistryCategoryOf tests the reverse category lookup
func TestRegistryCategoryOf(t *testing.T) {
	r := NewRegistry()

	cat, ok := r.CategoryOf("rollLoot")
	if !ok || cat != "Perks" {
		t.Errorf("CategoryOf(rollLoot) = %q, %v; want Perks, true", cat, ok)
	}

	if _, ok := r.CategoryOf("nope"); ok {
		t.Error("CategoryOf(unknown) should report false")
	}
}

// TestRegistryEveryCommandHasCategory tests the catalog is internally
// consistent: every command's category appears in the category order
func TestRegistryEveryCommandHasCategory(t *testing.T) {
	r := NewRegistry()

	known := make(map[string]bool)
	for _, cat := range r.Categories() {
		known[cat] = true
	}
	for _, name := range r.AllNames() {
		cat, _ := r.CategoryOf(name)
		if !known[cat] {
			t.Errorf("%s has unlisted category %q", name, cat)
		}
	}
}

// TestRegistrySearch tests the keyword search used by the search builtin
func TestRegistrySearch(t *testing.T) {
	r := NewRegistry()

	cmds, cats := r.Search("script")
	if len(cmds) == 0 {
		t.Fatal("Search(script) found no commands")
	}
	found := false
	for _, c := range cmds {
		if c == "getScript" {
			found = true
		}
	}
	if !found {
		t.Errorf("Search(script) = %v, want getScript included", cmds)
	}
	if len(cats) != 1 || cats[0] != "Scripts" {
		t.Errorf("Search(script) categories = %v, want [Scripts]", cats)
	}

	// Case-insensitive, matches descriptions too.
	cmds, _ = r.Search("MINECRAFT")
	if len(cmds) < 3 {
		t.Errorf("Search(MINECRAFT) = %v, want the whitelist commands", cmds)
	}
}
