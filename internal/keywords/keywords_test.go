package keywords

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty",
			text: "   ",
			want: []string{},
		},
		{
			name: "ranked words then pattern hits",
			text: "We are looking for a Python developer. Python and Django experience required. AWS, CI-CD, node.js.",
			want: []string{"python", "developer", "django", "aws", "ci-cd", "node.js", "ci", "cd"},
		},
		{
			name: "frequency beats first occurrence",
			text: "kafka redis redis redis kafka go",
			want: []string{"redis", "kafka", "go"},
		},
		{
			name: "stop words and single letters dropped",
			text: "The candidate must have excellent skills in a team",
			want: []string{"team"},
		},
		{
			name: "trailing punctuation is not part of a token",
			text: "terraform. terraform, terraform!",
			want: []string{"terraform"},
		},
		{
			name: "acronyms from original case",
			text: "Build REST APIs over gRPC",
			want: []string{"build", "rest", "apis", "over", "grpc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}

func TestExtract_KeepsTopRankedOnly(t *testing.T) {
	words := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		words = append(words, fmt.Sprintf("term%02d", i))
	}
	// term29 repeated so it ranks first
	text := strings.Join(words, " ") + " term29 term29"

	got := Extract(text)
	assert.Len(t, got, MaxRanked)
	assert.Equal(t, "term29", got[0])
	assert.Equal(t, "term00", got[1])
	assert.Equal(t, "term23", got[MaxRanked-1])
	assert.NotContains(t, got, "term24")
}

func TestExtract_NoDuplicates(t *testing.T) {
	got := Extract("SQL sql SQL-Server sql-server Vue.js vue.js")
	seen := map[string]bool{}
	for _, kw := range got {
		assert.False(t, seen[kw], "duplicate keyword %q", kw)
		seen[kw] = true
	}
	assert.Contains(t, got, "sql")
	assert.Contains(t, got, "sql-server")
	assert.Contains(t, got, "vue.js")
}

func TestExtract_Deterministic(t *testing.T) {
	text := "alpha beta gamma delta alpha beta epsilon zeta"
	first := Extract(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Extract(text))
	}
}

func TestMatchIn(t *testing.T) {
	kws := []string{"python", "django", "aws", "rust"}
	got := MatchIn(kws, "Senior PYTHON engineer; worked with Django on AWS")
	assert.Equal(t, []string{"python", "django", "aws"}, got)

	// substring semantics: "go" matches inside "django"
	assert.Equal(t, []string{"go"}, MatchIn([]string{"go"}, "django"))
	assert.Empty(t, MatchIn(kws, ""))
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("The"))
	assert.True(t, IsStopWord("experience"))
	assert.False(t, IsStopWord("kubernetes"))
}
