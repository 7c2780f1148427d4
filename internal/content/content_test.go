package content

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ellen-studio/folio/internal/theme"
)

func TestProjects(t *testing.T) {
	projects := Projects()
	titles := make([]string, 0, len(projects))
	for _, p := range projects {
		titles = append(titles, p.Title)
		require.NotEmpty(t, p.Tags, p.Title)
		require.NotEmpty(t, p.Description, p.Title)
	}
	require.Equal(t, []string{"NEURAL", "QUBIT", "SHARD", "KINETIC"}, titles)
	require.Equal(t, []string{"Go", "React"}, projects[1].Tags)

	projects[0].Title = "changed"
	require.Equal(t, "NEURAL", Projects()[0].Title, "callers get a fresh copy")
}

func TestLabels(t *testing.T) {
	require.Equal(t, "001_NODE", NodeLabel(0))
	require.Equal(t, "004_NODE", NodeLabel(3))
	require.Equal(t, "Sequence_01", SequenceLabel(0))
	require.Equal(t, "Sequence_05", SequenceLabel(4))
}

func TestInspirationColorsResolveInEveryTheme(t *testing.T) {
	figures := Inspirations()
	require.Len(t, figures, 5)
	require.Equal(t, "Isaac Newton", figures[0].Name)
	require.Equal(t, "Mark Zuckerberg", figures[4].Name)

	for _, def := range theme.Builtin().Definitions() {
		for _, f := range figures {
			require.Regexp(t, `^#[0-9a-fA-F]{6}$`, def.Tokens.Resolve(f.Color), "%s/%s", def.ID, f.Name)
		}
	}
}

func TestAboutCards(t *testing.T) {
	cards := AboutCards()
	kinds := make([]CardKind, 0, len(cards))
	for _, c := range cards {
		kinds = append(kinds, c.Kind)
	}
	require.Equal(t, []CardKind{CardPhoto, CardManifesto, CardLocation, CardBuild, CardStack, CardPhilosophy, CardStatus}, kinds)
	require.Contains(t, cards[1].Body, "Tamil Nadu")
	require.Len(t, Stack(), 10)
}

func TestNavigation(t *testing.T) {
	items := NavItems()
	require.Len(t, items, 5)
	require.Equal(t, SectionWork, items[0].Section)
	require.Equal(t, ActionOpenInspirations, items[3].Action)
	require.Equal(t, ActionOpenAbout, items[4].Action)

	cols := FooterColumns()
	require.Len(t, cols, 2)
	require.Equal(t, "Directories", cols[0].Title)
	require.Equal(t, ActionNone, cols[1].Links[0].Action)
}
