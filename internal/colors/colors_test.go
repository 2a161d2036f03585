package colors

import "testing"

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := IsColorEnabled()
	SetColorEnabled(enabled)
	t.Cleanup(func() { SetColorEnabled(prev) })
}

func TestDisabledReturnsPlainText(t *testing.T) {
	withColor(t, false)

	for _, fn := range []func(string) string{Root, Member, Branch, Red, Yellow, Bold, InfoText, ErrorText, WarningText} {
		if got := fn("Dad"); got != "Dad" {
			t.Errorf("Expected plain text, got %q", got)
		}
	}
}

func TestEnabledWrapsText(t *testing.T) {
	withColor(t, true)

	if got, want := Member("Dad"), BrightCyan+"Dad"+ColorReset; got != want {
		t.Errorf("Member = %q, want %q", got, want)
	}
	if got, want := Root("Grandpa"), ColorBold+BrightBlue+"Grandpa"+ColorReset; got != want {
		t.Errorf("Root = %q, want %q", got, want)
	}
	if got, want := WarningText("Warning:"), BrightYellow+"Warning:"+ColorReset; got != want {
		t.Errorf("WarningText = %q, want %q", got, want)
	}
	if got, want := ErrorText("Error:"), BrightRed+"Error:"+ColorReset; got != want {
		t.Errorf("ErrorText = %q, want %q", got, want)
	}
	if got := Branch(""); got != "" {
		t.Errorf("Empty text should stay empty, got %q", got)
	}
}

func TestShouldUseColorEnv(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("NO_COLOR", "1")
	if shouldUseColor() {
		t.Error("NO_COLOR should disable colors")
	}

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	if !shouldUseColor() {
		t.Error("FORCE_COLOR should enable colors")
	}

	t.Setenv("FORCE_COLOR", "")
	t.Setenv("TERM", "dumb")
	if shouldUseColor() {
		t.Error("TERM=dumb should disable colors")
	}
}
