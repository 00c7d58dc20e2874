package taxonomy

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains_WholeWord(t *testing.T) {
	tax := Default()

	tests := []struct {
		name  string
		text  string
		skill string
		want  bool
	}{
		{"java inside javascript", "I know javascript well", "java", false},
		{"java standalone", "I use Java daily", "java", true},
		{"case insensitive", "PYTHON and sql", "python", true},
		{"multi word phrase", "Led Project Management for two teams", "project management", true},
		{"phrase split across words", "project and management", "project management", false},
		{"symbol suffix", "Wrote C++ and C# services", "c++", true},
		{"c# with punctuation", "Stack: C#, .NET", "c#", true},
		{"dotted name", "Built APIs in Node.js.", "node.js", true},
		{"prefix of longer token", "Used reactive streams", "react", false},
		{"suffix of longer token", "pyspark jobs", "spark", false},
		{"underscore is a word char", "go_routines", "go", false},
		{"start and end of text", "go", "go", true},
		{"empty skill", "anything", "", false},
		{"ad-hoc term", "Knows Erlang", "erlang", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tax.Contains(tt.text, tt.skill))
		})
	}
}

func TestPackageContains_UsesDefault(t *testing.T) {
	assert.False(t, Contains("I know javascript well", "java"))
	assert.True(t, Contains("I use Java daily", "java"))
}

func TestIndex(t *testing.T) {
	tax := Default()

	start, end, ok := tax.Index("Skills: javascript, java", "java")
	require.True(t, ok)
	assert.Equal(t, "java", "Skills: javascript, java"[start:end])
	assert.Equal(t, 20, start)

	_, _, ok = tax.Index("nothing here", "java")
	assert.False(t, ok)
}

func TestDefault_Lists(t *testing.T) {
	tax := Default()

	tech := tax.TechnicalSkills()
	soft := tax.SoftSkills()

	assert.Equal(t, "python", tech[0])
	assert.Contains(t, tech, "kubernetes")
	assert.Contains(t, tech, "financial analysis")
	assert.Contains(t, tech, "patient care")
	assert.Contains(t, soft, "leadership")
	assert.Contains(t, soft, "attention to detail")

	// flattened list is deduplicated even though swift/kotlin/excel appear in two categories
	counts := map[string]int{}
	for _, s := range tech {
		counts[s]++
	}
	for s, n := range counts {
		assert.Equal(t, 1, n, "duplicate technical skill %q", s)
	}

	softCounts := map[string]int{}
	for _, s := range soft {
		softCounts[s]++
	}
	assert.Equal(t, 1, softCounts["networking"])
	assert.Equal(t, 1, softCounts["empathy"])

	assert.Len(t, tax.Categories(), len(defaultCategories))
	assert.Equal(t, DefaultVersion, tax.Version())
}

func TestTaxonomy_ReturnedSlicesAreCopies(t *testing.T) {
	tax := New("t", []Category{{Name: "a", Skills: []string{"Go"}}}, []string{"Teamwork"})

	tech := tax.TechnicalSkills()
	tech[0] = "mutated"
	cats := tax.Categories()
	cats[0].Skills[0] = "mutated"

	assert.Equal(t, []string{"go"}, tax.TechnicalSkills())
	assert.Equal(t, "go", tax.Categories()[0].Skills[0])
	assert.Equal(t, []string{"teamwork"}, tax.SoftSkills())
}

func TestFindTechnicalAndSoft(t *testing.T) {
	tax := Default()
	text := "Senior engineer: Python, React, Docker. Strong leadership and teamwork."

	assert.Equal(t, []string{"python", "react", "docker"}, tax.FindTechnical(text))
	assert.ElementsMatch(t, []string{"leadership", "teamwork"}, tax.FindSoft(text))
	assert.Empty(t, tax.FindTechnical("no skills mentioned here"))
}

func TestDefault_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, Default().Contains("docker and kubernetes", "kubernetes"))
		}()
	}
	wg.Wait()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantErr   string
		wantTech  []string
		wantSoft  []string
		extension bool
	}{
		{
			name: "standalone",
			yaml: `
version: acme-1
categories:
  - name: robotics
    skills: [ROS, "Gazebo", ros]
soft_skills: [grit]
`,
			wantTech: []string{"ros", "gazebo"},
			wantSoft: []string{"grit"},
		},
		{
			name: "extends default",
			yaml: `
extends_default: true
categories:
  - name: robotics
    skills: [ros]
`,
			extension: true,
		},
		{
			name:    "empty",
			yaml:    `version: x`,
			wantErr: "defines no skills",
		},
		{
			name:    "invalid yaml",
			yaml:    "categories: [",
			wantErr: "failed to parse taxonomy YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.extension {
				assert.Contains(t, tax.TechnicalSkills(), "python")
				assert.Contains(t, tax.TechnicalSkills(), "ros")
				assert.Equal(t, "custom", tax.Version())
				return
			}
			assert.Equal(t, tt.wantTech, tax.TechnicalSkills())
			assert.Equal(t, tt.wantSoft, tax.SoftSkills())
			assert.Equal(t, "acme-1", tax.Version())
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - name: x\n    skills: [zig]\n"), 0644))

	tax, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, tax.Contains("Writes Zig", "zig"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read taxonomy file")
}

func TestMatcher_ReusesPrecompiledPatterns(t *testing.T) {
	tax := Default()

	known := tax.Matcher("Python")
	require.NotNil(t, known)
	assert.Same(t, known, tax.Matcher(" python "))
	assert.True(t, known.MatchString("Python, Go"))

	adHoc := tax.Matcher("cobol")
	require.NotNil(t, adHoc)
	assert.True(t, adHoc.MatchString("Maintained COBOL batch jobs"))
	assert.NotSame(t, adHoc, tax.Matcher("cobol"))

	assert.Nil(t, tax.Matcher("  "))
}
