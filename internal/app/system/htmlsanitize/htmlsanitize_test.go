package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/paperhub/internal/app/system/htmlsanitize"
)

func TestSanitize_Preserves(t *testing.T) {
	for _, in := range []string{
		"",
		"Chapter 3 notes",
		"<p><strong>Bold</strong> and <em>italic</em></p>",
		"<ul><li>Kinematics</li><li>Dynamics</li></ul>",
		"<pre><code>x = v*t</code></pre>",
		"<u>underline</u> <s>struck</s> <mark>key</mark>",
	} {
		if got := htmlsanitize.Sanitize(in); got != in {
			t.Errorf("Sanitize(%q) = %q", in, got)
		}
	}
}

func TestSanitize_Removes(t *testing.T) {
	tests := []struct {
		in      string
		bad     string
		keeping string
	}{
		{"<p>Hi</p><script>alert(1)</script>", "script", "<p>Hi</p>"},
		{`<button onclick="alert(1)">Go</button>`, "onclick", "Go"},
		{`<a href="javascript:alert(1)">x</a>`, "javascript:", "x"},
		{`<p>Body</p><iframe src="https://evil.example"></iframe>`, "iframe", "Body"},
		{`<style>p{}</style><p>Text</p>`, "<style>", "Text"},
	}
	for _, tt := range tests {
		got := htmlsanitize.Sanitize(tt.in)
		if strings.Contains(got, tt.bad) {
			t.Errorf("Sanitize(%q) = %q still contains %q", tt.in, got, tt.bad)
		}
		if !strings.Contains(got, tt.keeping) {
			t.Errorf("Sanitize(%q) = %q lost %q", tt.in, got, tt.keeping)
		}
	}
}

func TestSanitize_TableClass(t *testing.T) {
	got := htmlsanitize.Sanitize(`<table class="marks"><tr><td class="c">1</td></tr></table>`)
	if !strings.Contains(got, `class="marks"`) {
		t.Errorf("table class dropped: %q", got)
	}
}

func TestStripTags(t *testing.T) {
	if got := htmlsanitize.StripTags("<b>Lahore</b> Grammar School"); got != "Lahore Grammar School" {
		t.Errorf("StripTags = %q", got)
	}
}

func TestIsPlainText(t *testing.T) {
	if !htmlsanitize.IsPlainText("Hello") || !htmlsanitize.IsPlainText("") {
		t.Error("plain strings should be plain text")
	}
	if htmlsanitize.IsPlainText("<p>x</p>") {
		t.Error("markup is not plain text")
	}
}
