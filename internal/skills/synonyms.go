package skills

// synonymGroups lists clusters of skill tokens that stand in for the same
// underlying skill. This static table approximates semantic matching without
// real language understanding; it is intentionally small and curated.
var synonymGroups = [][]string{
	{"go", "golang"},
	{"javascript", "js", "ecmascript"},
	{"typescript", "ts"},
	{"python", "py"},
	{"postgresql", "postgres", "psql"},
	{"mysql", "mariadb"},
	{"kubernetes", "k8s"},
	{"docker", "containers", "containerization"},
	{"aws", "amazon"},
	{"gcp", "google-cloud"},
	{"react", "reactjs"},
	{"vue", "vuejs"},
	{"angular", "angularjs"},
	{"node", "nodejs"},
	{"ml", "machine-learning"},
	{"ai", "artificial-intelligence"},
	{"ci", "cd", "cicd", "devops"},
	{"rest", "restful", "api", "apis"},
	{"sql", "database", "databases"},
	{"nosql", "mongodb", "mongo"},
	{"html", "html5"},
	{"css", "css3", "sass", "scss"},
	{"java", "jvm"},
	{"c#", "csharp", "dotnet"},
	{"testing", "tdd", "qa"},
	{"agile", "scrum", "kanban"},
	{"leadership", "management", "mentoring"},
	{"communication", "collaboration", "teamwork"},
}

// synonymCanonical maps each known token to the canonical token of its group.
var synonymCanonical = buildCanonical()

func buildCanonical() map[string]string {
	canonical := make(map[string]string)
	for _, group := range synonymGroups {
		for _, token := range group {
			canonical[token] = group[0]
		}
	}
	return canonical
}

// Related reports whether two distinct skill tokens stand in for the same
// skill according to the synonym table. Identical tokens are not "related";
// those are exact matches and counted separately.
func Related(a, b string) bool {
	if a == b {
		return false
	}
	ca, ok := synonymCanonical[a]
	if !ok {
		return false
	}
	cb, ok := synonymCanonical[b]
	if !ok {
		return false
	}
	return ca == cb
}
