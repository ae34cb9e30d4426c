package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleBody = `# My Skill

Intro paragraph with some words.

## When to Use This Skill

Use it for linting.

## Usage

### Example: basic run

` + "```bash\n## not a heading\nrun.sh\n```" + `

### Example: advanced run

More text.

## Limitations

None known.
`

func TestAnalyzeBody_Sections(t *testing.T) {
	m := AnalyzeBody(sampleBody)

	assert.Equal(t, []string{"When to Use This Skill", "Usage", "Limitations"}, m.Sections)
	assert.True(t, m.HasWhenSection)
	assert.Equal(t, 2, m.ExampleCount)
}

func TestAnalyzeBody_HeadingsInCodeBlocksIgnored(t *testing.T) {
	m := AnalyzeBody(sampleBody)

	for _, s := range m.Sections {
		assert.NotEqual(t, "not a heading", s)
	}
}

func TestAnalyzeBody_Counts(t *testing.T) {
	m := AnalyzeBody("one two three\nfour five\n")

	assert.Equal(t, 5, m.WordCount)
	assert.Equal(t, 3, m.LineCount)
}

func TestAnalyzeBody_Empty(t *testing.T) {
	m := AnalyzeBody("")

	assert.Equal(t, 0, m.WordCount)
	assert.Equal(t, 1, m.LineCount)
	assert.Empty(t, m.Sections)
	assert.False(t, m.HasWhenSection)
	assert.Equal(t, 0, m.ExampleCount)
}

func TestAnalyzeBody_WhenSectionCaseInsensitive(t *testing.T) {
	m := AnalyzeBody("## WHEN TO USE\n\ntext\n")
	assert.True(t, m.HasWhenSection)
}
