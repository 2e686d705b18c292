package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setOf(tokens ...string) Set {
	s := make(Set, len(tokens))
	for _, token := range tokens {
		s.Add(token)
	}
	return s
}

func TestMatchScore_PartialExactMatch(t *testing.T) {
	// 1 of 2 required skills present, no synonym hits:
	// min(1, 0.5*1.2 + 0*0.8) = 0.6
	have := setOf("python", "sql")
	required := setOf("python", "django")

	assert.InDelta(t, 0.6, MatchScore(have, required), 1e-9)
}

func TestMatchScore_FullExactMatchCapsAtOne(t *testing.T) {
	have := setOf("go", "postgres", "docker")
	required := setOf("go", "docker")

	// 2/2 exact -> 1.2, capped at 1.0
	assert.Equal(t, 1.0, MatchScore(have, required))
}

func TestMatchScore_SynonymMatch(t *testing.T) {
	// "golang" covers required "go" via the synonym table only:
	// min(1, 0*1.2 + 1.0*0.8) = 0.8
	have := setOf("golang")
	required := setOf("go")

	assert.InDelta(t, 0.8, MatchScore(have, required), 1e-9)
}

func TestMatchScore_EmptySetsScoreZero(t *testing.T) {
	assert.Equal(t, 0.0, MatchScore(setOf(), setOf("go")))
	assert.Equal(t, 0.0, MatchScore(setOf("go"), setOf()))
	assert.Equal(t, 0.0, MatchScore(setOf(), setOf()))
}

func TestRelated(t *testing.T) {
	assert.True(t, Related("golang", "go"))
	assert.True(t, Related("k8s", "kubernetes"))
	assert.False(t, Related("go", "go"), "identical tokens are exact, not related")
	assert.False(t, Related("go", "python"))
	assert.False(t, Related("go", "unknown-token"))
}
