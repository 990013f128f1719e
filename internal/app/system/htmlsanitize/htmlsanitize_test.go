package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/taskhub/internal/app/system/htmlsanitize"
)

func TestStrip_Empty(t *testing.T) {
	if got := htmlsanitize.Strip(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestStrip_PlainText(t *testing.T) {
	if got := htmlsanitize.Strip("Ship the release"); got != "Ship the release" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestStrip_RemovesTags(t *testing.T) {
	if got := htmlsanitize.Strip("<b>urgent</b> fix"); got != "urgent fix" {
		t.Errorf("expected tags removed, got %q", got)
	}
}

func TestStrip_RemovesScript(t *testing.T) {
	if got := htmlsanitize.Strip("title<script>alert('xss')</script>"); got != "title" {
		t.Errorf("expected script removed, got %q", got)
	}
}
