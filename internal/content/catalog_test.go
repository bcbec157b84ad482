package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wannabe/internal/nav"
)

const minimal = `version: v1.2.0
brand:
  name: Test
lessons:
  - key: A1
    title: Alpha
    steps:
      - title: one
        body: first
      - title: two
        body: second
`

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, "Be Who You Wanna Be", c.Brand.Name)
	require.Len(t, c.Lessons, 3)
	assert.Len(t, c.Mentors, 2)
	assert.Len(t, c.Projects, 2)
	assert.Equal(t, 42, c.Dashboard.Quest.Progress)

	l, ok := c.Lesson("E101")
	require.True(t, ok)
	assert.Equal(t, "Entrepreneurship 101", l.Title)
	assert.Equal(t, 70, l.Progress)
	require.Len(t, l.Steps, 3)
	assert.Equal(t, "Refine & Launch", l.Steps[2].Title)
}

func TestDashboardCards(t *testing.T) {
	cards := Default().Dashboard.Cards
	require.Len(t, cards, 4)

	var got []nav.Screen
	for _, c := range cards {
		s, err := c.Target()
		require.NoError(t, err)
		got = append(got, s)
	}
	assert.Equal(t, []nav.Screen{nav.LearningHub, nav.SpeakersCorner, nav.Mentorship, nav.Projects}, got)
}

func TestLessonSelection(t *testing.T) {
	l, ok := Default().Lesson("MBAS")
	require.True(t, ok)

	sel := l.Selection()
	assert.Equal(t, "MBAS", sel.Key)
	assert.Equal(t, "Money Basics", sel.Title)
	require.Equal(t, 3, sel.Len())
	assert.Equal(t, "Earn", sel.Steps[0].Title)
}

func TestLessonLookupMiss(t *testing.T) {
	c := Default()
	_, ok := c.Lesson("NOPE")
	assert.False(t, ok)
	assert.Equal(t, "NOPE", c.LessonTitle("NOPE"))
	assert.Equal(t, "Creativity Sprint", c.LessonTitle("CRTV"))
}

func TestParseMinimal(t *testing.T) {
	c, err := Parse([]byte(minimal))
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", c.Version)
	assert.Empty(t, c.Mentors)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "not yaml",
			doc:     "version: [",
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "missing brand",
			doc:     "version: v1.0.0\nlessons: []\n",
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "empty steps",
			doc:     strings.Replace(minimal, "    steps:\n      - title: one\n        body: first\n      - title: two\n        body: second\n", "    steps: []\n", 1),
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "progress out of range",
			doc:     strings.Replace(minimal, "    title: Alpha\n", "    title: Alpha\n    progress: 120\n", 1),
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "future major version",
			doc:     strings.Replace(minimal, "v1.2.0", "v2.0.0", 1),
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "duplicate key",
			doc:     minimal + "  - key: A1\n    title: Again\n    steps:\n      - title: x\n        body: y\n",
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "dashboard card to unknown screen",
			doc:     minimal + "dashboard:\n  cards:\n    - title: Nowhere\n      screen: attic\n",
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "dashboard card to lesson",
			doc:     minimal + "dashboard:\n  cards:\n    - title: Straight in\n      screen: lesson\n",
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "portal references unknown lesson",
			doc:     minimal + "portal:\n  progress:\n    - lesson: ZZ\n      percent: 10\n",
			wantErr: ErrInvalidCatalog,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Len(t, c.Lessons, 3)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", c.Lessons[0].Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
