package main

import (
	"testing"

	"github.com/signadot/tony-format/go-oapi/ir"
	"github.com/signadot/tony-format/go-oapi/serial"

	"github.com/google/go-cmp/cmp"
)

func TestPetStore(t *testing.T) {
	api, err := petStore(false)
	if err != nil {
		t.Fatal(err)
	}
	node, diags, err := serial.Document(api)
	if err != nil {
		t.Fatal(err)
	}
	if diags.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", diags)
	}
	comps := ir.Get(node, "components")
	if comps == nil {
		t.Fatal("no components")
	}
	if diff := cmp.Diff([]string{"schemas", "responses", "parameters"}, comps.Keys()); diff != "" {
		t.Errorf("components (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Limit", "PetID"}, ir.Get(comps, "parameters").Keys()); diff != "" {
		t.Errorf("parameters (-want +got):\n%s", diff)
	}
}

func TestPetStoreConflict(t *testing.T) {
	api, err := petStore(true)
	if err != nil {
		t.Fatal(err)
	}
	_, diags, err := serial.Document(api)
	if err != nil {
		t.Fatal(err)
	}
	if diags.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1: %s", diags.Len(), diags)
	}
	if d := diags.List[0]; d.Code != serial.CodeRedefinition || d.RefName != "Pet" {
		t.Errorf("unexpected diagnostic %s", d)
	}
}
