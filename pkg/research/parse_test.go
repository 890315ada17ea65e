package research

import "testing"

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `[{"title":"test"}]`,
			want:  `[{"title":"test"}]`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n[{\"title\":\"test\"}]\n```",
			want:  `[{"title":"test"}]`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n[{\"title\":\"test\"}]\n```",
			want:  `[{"title":"test"}]`,
		},
		{
			name:  "trims surrounding whitespace",
			input: "  [{\"title\":\"test\"}]  ",
			want:  `[{"title":"test"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripFences(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseUpdates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:  "plain array",
			input: `[{"title":"A","summary":"B","url":"https://example.com/a"}]`,
			want:  1,
		},
		{
			name:  "fenced array",
			input: "```json\n[{\"title\":\"A\",\"summary\":\"B\",\"url\":\"https://example.com/a\"}]\n```",
			want:  1,
		},
		{
			name:  "array wrapped in prose",
			input: "Here is what I found:\n[{\"title\":\"A\",\"summary\":\"B\",\"url\":\"https://example.com/a\"}]\nLet me know if you need more.",
			want:  1,
		},
		{
			name:  "array wrapped in object",
			input: `{"results":[{"title":"A","summary":"B","url":"https://example.com/a"},{"title":"C","summary":"D","url":"https://example.com/c"}]}`,
			want:  2,
		},
		{
			name:  "empty array",
			input: `[]`,
			want:  0,
		},
		{
			name:    "no JSON at all",
			input:   "I could not find any recent updates.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUpdates(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d updates, want %d", len(got), tt.want)
			}
		})
	}
}

func TestParseUpdatesFields(t *testing.T) {
	input := `[{"title":"New mixed-use project","summary":"A developer filed plans downtown.","url":"https://example.com/mixed-use"}]`

	updates, err := parseUpdates(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(updates))
	}

	u := updates[0]
	if u.Title != "New mixed-use project" {
		t.Errorf("title: got %q", u.Title)
	}
	if u.Summary != "A developer filed plans downtown." {
		t.Errorf("summary: got %q", u.Summary)
	}
	if u.URL != "https://example.com/mixed-use" {
		t.Errorf("url: got %q", u.URL)
	}
}
