package startpage

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "opensearch payload",
			body: `["pyth", ["python", "python tutorial", "python download"]]`,
			want: []string{"python", "python tutorial", "python download"},
		},
		{
			name: "duplicates and blanks are dropped",
			body: `["go", ["golang", "", "golang", "go maps"]]`,
			want: []string{"golang", "go maps"},
		},
		{
			name: "empty opensearch list",
			body: `["zzzz", []]`,
			want: []string{},
		},
		{
			name: "markup fallback",
			body: `<ul><li class="suggestion-item">rust lang</li><li class="suggestion-item">rust book</li></ul>`,
			want: []string{"rust lang", "rust book"},
		},
		{
			name: "option values",
			body: `<select><option value="java spring"></option><option>java streams</option></select>`,
			want: []string{"java spring", "java streams"},
		},
		{
			name: "class heuristic",
			body: `<div class="sp-suggest-row"><span>elixir</span></div>`,
			want: []string{"elixir"},
		},
		{
			name: "garbage",
			body: `{"unexpected": true}`,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSuggestions(tt.body))
		})
	}
}

func TestParseSuggestions_CapsAtTen(t *testing.T) {
	items := make([]string, 15)
	for i := range items {
		items[i] = fmt.Sprintf("%q", fmt.Sprintf("term %d", i))
	}
	body := `["term", [` + strings.Join(items, ",") + `]]`

	got := ParseSuggestions(body)
	assert.Len(t, got, 10)
	assert.Equal(t, "term 0", got[0])
	assert.Equal(t, "term 9", got[9])
}
