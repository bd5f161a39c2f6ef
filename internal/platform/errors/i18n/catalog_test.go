package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	if GetCatalog("") != base {
		t.Fatal("expected empty locale to resolve to en-US catalog")
	}
	if GetCatalog("missing-locale") != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	// BCP 47 matching resolves regional variants to the base language.
	if GetCatalog("en-GB") != base {
		t.Fatal("expected en-GB to match en-US catalog")
	}
}

func TestFormatInterpolatesMetadata(t *testing.T) {
	cat := GetCatalog("en-US")
	got := cat.Format(CodeParticipantNotFound, map[string]string{"Name": "Shadow"})
	if got != "No participant named Shadow exists" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "target was {{.Target}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "target was <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Target }}",
	})
	if cat.Format("code", map[string]string{"Target": "X"}) != "{{ if .Target }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("custom", map[Code]string{"code": "ok"})
	RegisterCatalog("custom", custom)
	if got := GetCatalog("custom"); got != custom {
		t.Fatal("expected registered catalog")
	}
}
