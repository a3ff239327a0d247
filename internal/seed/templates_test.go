package seed

import (
	"testing"

	"portfolio-builder-backend/internal/components"
)

func TestBuildKnownTemplates(t *testing.T) {
	reg := components.DefaultRegistry()

	for _, info := range ListTemplates() {
		list, ok := Build(info.ID, reg)
		if !ok {
			t.Fatalf("template %q did not build", info.ID)
		}
		seen := map[string]bool{}
		for _, comp := range list {
			if comp.ID == "" {
				t.Fatalf("template %q produced a component without an id", info.ID)
			}
			if seen[comp.ID] {
				t.Fatalf("template %q produced duplicate component id %q", info.ID, comp.ID)
			}
			seen[comp.ID] = true
			if _, registered := reg.Get(comp.Type); !registered {
				t.Fatalf("template %q references unregistered type %q", info.ID, comp.Type)
			}
		}
	}
}

func TestBuildUnknownTemplate(t *testing.T) {
	list, ok := Build("nonexistent", components.DefaultRegistry())
	if ok {
		t.Fatal("expected ok=false for unknown template")
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d components", len(list))
	}
}

func TestBuildOverlaysTemplateData(t *testing.T) {
	list, ok := Build("minimal", components.DefaultRegistry())
	if !ok {
		t.Fatal("minimal template missing")
	}
	if len(list) == 0 {
		t.Fatal("minimal template is empty")
	}
	if list[0].Type != components.TypeHeader {
		t.Fatalf("expected header first, got %q", list[0].Type)
	}
	if list[0].Data["subtitle"] != "What you do" {
		t.Fatalf("expected template data overlay, got %v", list[0].Data["subtitle"])
	}
}
