package confusable

import (
	"strings"
	"testing"
)

func TestCheckName_Clean(t *testing.T) {
	for _, name := range []string{"ls", "rm", "git-st", "kubectl_ctx", ""} {
		if warnings := CheckName(name); len(warnings) != 0 {
			t.Errorf("CheckName(%q) = %v, expected clean", name, warnings)
		}
	}
}

func TestCheckName_Lookalikes(t *testing.T) {
	tests := []struct {
		name       string
		alias      string
		wantReason string
	}{
		{"cyrillic a in cat", "cаt", "looks like Latin 'a'"},
		{"cyrillic er in rp", "рm", "looks like Latin 'p'"},
		{"greek omicron in sudo", "sudο", "looks like Latin 'o'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := CheckName(tt.alias)
			if len(warnings) == 0 {
				t.Fatalf("expected a warning for %q", tt.alias)
			}
			if !strings.Contains(warnings[0].Reason, tt.wantReason) {
				t.Errorf("reason %q does not mention %q", warnings[0].Reason, tt.wantReason)
			}
		})
	}
}

func TestCheckName_Invisible(t *testing.T) {
	warnings := CheckName("ls​")
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Codepoint != "U+200B" {
		t.Errorf("expected codepoint U+200B, got %s", warnings[0].Codepoint)
	}
	if !strings.Contains(warnings[0].Reason, "invisible") {
		t.Errorf("unexpected reason: %s", warnings[0].Reason)
	}
}

func TestCheckName_BidiControl(t *testing.T) {
	warnings := CheckName("rm‮")
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if !strings.Contains(warnings[0].Reason, "bidirectional") {
		t.Errorf("unexpected reason: %s", warnings[0].Reason)
	}
}

func TestCheckNames(t *testing.T) {
	warnings := CheckNames([]string{"ls", "cаt", "rm​"})
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	if warnings[0].Name != "cаt" || warnings[1].Name != "rm​" {
		t.Errorf("warnings carry the wrong names: %v", warnings)
	}
}
