package url

import "testing"

var testShortcuts = map[string]string{
	"g":  "https://google.com/search?q=%s",
	"gh": "https://github.com/search?q=%s",
}

const testEngine = "https://www.google.com/search?q=%s"

func TestParseBangShortcut(t *testing.T) {
	tests := []struct {
		input        string
		wantShortcut string
		wantQuery    string
		wantFound    bool
	}{
		{"!g golang", "g", "golang", true},
		{"!gh repo name", "gh", "repo name", true},
		{"!g", "", "", false},
		{"!g   ", "", "", false},
		{"! query", "", "", false},
		{"plain text", "", "", false},
		{"test !g", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			shortcut, query, found := ParseBangShortcut(tt.input)
			if shortcut != tt.wantShortcut || query != tt.wantQuery || found != tt.wantFound {
				t.Errorf("ParseBangShortcut(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.input, shortcut, query, found, tt.wantShortcut, tt.wantQuery, tt.wantFound)
			}
		})
	}
}

func TestEscapeComponent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"rust book", "rust%20book"},
		{"a+b", "a%2Bb"},
		{"c&d=e", "c%26d%3De"},
		{"it's (fine)!*", "it's%20(fine)!*"},
		{"~user_name-1.0", "~user_name-1.0"},
		{"café", "caf%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EscapeComponent(tt.input); got != tt.want {
				t.Errorf("EscapeComponent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSearchURL(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shortcuts map[string]string
		engine    string
		want      string
	}{
		{
			name:   "plain query is encoded",
			input:  "rust book",
			engine: testEngine,
			want:   "https://www.google.com/search?q=rust%20book",
		},
		{
			name:   "url-like text is still searched",
			input:  "example.com",
			engine: testEngine,
			want:   "https://www.google.com/search?q=example.com",
		},
		{
			name:      "bang shortcut selects template",
			input:     "!gh bubble tea",
			shortcuts: testShortcuts,
			engine:    testEngine,
			want:      "https://github.com/search?q=bubble%20tea",
		},
		{
			name:      "unknown bang searches original input",
			input:     "!zz test",
			shortcuts: testShortcuts,
			engine:    testEngine,
			want:      "https://www.google.com/search?q=!zz%20test",
		},
		{
			name:   "empty input",
			input:  "   ",
			engine: testEngine,
			want:   "",
		},
		{
			name:  "no engine",
			input: "query",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchURL(tt.input, tt.shortcuts, tt.engine)
			if got != tt.want {
				t.Errorf("SearchURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
