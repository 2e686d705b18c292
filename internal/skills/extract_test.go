package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_SplitsOnWordBoundaries(t *testing.T) {
	set := Extract("Python, SQL; and some Go experience (5 years)")

	assert.True(t, set.Contains("python"))
	assert.True(t, set.Contains("sql"))
	assert.True(t, set.Contains("go"))
	assert.True(t, set.Contains("5"))
	assert.False(t, set.Contains(""))
}

func TestExtract_EmptyTextYieldsEmptySet(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("   \t\n  "))
	assert.Empty(t, Extract(",,,;;;"))
}

func TestExtract_Deduplicates(t *testing.T) {
	set := Extract("go go GO Go")
	assert.Len(t, set, 1)
	assert.True(t, set.Contains("go"))
}

func TestExtract_KeepsSymbolicLanguageNames(t *testing.T) {
	set := Extract("C++ and C# developer")
	assert.True(t, set.Contains("c++"))
	assert.True(t, set.Contains("c#"))
}

func TestExtractAll_MergesFields(t *testing.T) {
	set := ExtractAll("python", "", "kubernetes docker")
	assert.Len(t, set, 3)
	assert.True(t, set.Contains("kubernetes"))
}
