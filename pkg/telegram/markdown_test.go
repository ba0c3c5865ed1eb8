package telegram

import (
	"strings"
	"testing"
)

func TestToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		excluded []string
	}{
		{
			name:     "bold and italic",
			input:    "**Trigger used!** _by someone_",
			expected: []string{"<strong>Trigger used!</strong>", "<em>by someone</em>"},
			excluded: []string{"<p>", "</p>"},
		},
		{
			name:     "inline code",
			input:    "set `ai_model` first",
			expected: []string{"<code>ai_model</code>"},
		},
		{
			name:     "link",
			input:    "[Message](https://t.me/c/123/45)",
			expected: []string{`<a href="https://t.me/c/123/45">Message</a>`},
		},
		{
			name:     "list flattened to bullets",
			input:    "- one\n- two",
			expected: []string{"• one", "• two"},
			excluded: []string{"<li>", "<ul>"},
		},
		{
			name:     "heading becomes bold",
			input:    "# Chat Info",
			expected: []string{"<b>Chat Info</b>"},
			excluded: []string{"<h1>"},
		},
		{
			name:     "plain text passes through",
			input:    "hi!",
			expected: []string{"hi!"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ToTelegramHTML(test.input)

			for _, want := range test.expected {
				if !strings.Contains(got, want) {
					t.Errorf("expected %q in output, got: %s", want, got)
				}
			}
			for _, unwanted := range test.excluded {
				if strings.Contains(got, unwanted) {
					t.Errorf("did not expect %q in output, got: %s", unwanted, got)
				}
			}
		})
	}
}
