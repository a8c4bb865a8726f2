package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortWindows_DedupesByHandle(t *testing.T) {
	ws := []Window{
		{Handle: 1, Title: "Stale title", PID: 10},
		{Handle: 2, Title: "Beta", PID: 11},
		{Handle: 1, Title: "Alpha", PID: 10},
	}

	got := SortWindows(ws)

	assert.Len(t, got, 2)
	// Last entry for a handle wins, mirroring a re-enumeration.
	assert.Equal(t, "Alpha", got[0].Title)
	assert.Equal(t, "Beta", got[1].Title)
}

func TestSortWindows_CaseInsensitiveTitleThenHandle(t *testing.T) {
	ws := []Window{
		{Handle: 3, Title: "zulu"},
		{Handle: 2, Title: "App"},
		{Handle: 5, Title: "app"},
		{Handle: 1, Title: "Zulu"},
	}

	got := SortWindows(ws)

	titles := make([]string, len(got))
	for i, w := range got {
		titles[i] = w.Title
	}
	assert.Equal(t, []string{"App", "app", "Zulu", "zulu"}, titles)
}

func TestProbeDLL_OverrideWins(t *testing.T) {
	exists := func(p string) bool { return p == `C:\custom\wab.dll` }

	got := ProbeDLL(`C:\custom\wab.dll`, exists)

	assert.Equal(t, `C:\custom\wab.dll`, got)
}

func TestProbeDLL_MissingOverrideFallsBackToCandidates(t *testing.T) {
	jdk17 := `C:\Program Files\Java\jdk-17\bin\WindowsAccessBridge-64.dll`
	exists := func(p string) bool { return p == jdk17 }

	got := ProbeDLL(`C:\gone\wab.dll`, exists)

	assert.Equal(t, jdk17, got)
}

func TestProbeDLL_NothingFound(t *testing.T) {
	exists := func(string) bool { return false }

	assert.Empty(t, ProbeDLL("", exists))
	assert.Empty(t, ProbeDLL(`C:\gone\wab.dll`, exists))
}
