package core

import (
	"reflect"
	"testing"
)

func TestCatalog_AllProvidersPresent(t *testing.T) {
	catalog := Catalog()

	if len(catalog) != 4 {
		t.Fatalf("len(catalog) = %d, want 4", len(catalog))
	}
	for _, p := range Providers() {
		models, ok := catalog[p]
		if !ok {
			t.Errorf("catalog missing provider %q", p)
			continue
		}
		if len(models) == 0 {
			t.Errorf("catalog[%q] is empty", p)
		}
	}
}

func TestCatalog_StableAcrossCalls(t *testing.T) {
	first := Catalog()
	// Mutating a returned copy must not affect later calls.
	first[ProviderOpenAI][0] = "tampered"
	first[ProviderClaude] = nil

	second := Catalog()
	if second[ProviderOpenAI][0] != "gpt-4o" {
		t.Errorf("catalog[openai][0] = %q after mutation, want %q", second[ProviderOpenAI][0], "gpt-4o")
	}
	if !reflect.DeepEqual(second, Catalog()) {
		t.Error("repeated Catalog() calls should be identical")
	}
}
