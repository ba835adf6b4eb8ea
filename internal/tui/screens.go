package tui

import (
	"fmt"
	"strings"

	"github.com/keepsake-app/keepsake/internal/i18n"
	"github.com/keepsake-app/keepsake/internal/route"
)

// screenView renders one leaf screen. Params arrive pre-validated by the
// route registry; a screen never checks them again. Screens read router
// state but navigate only by issuing requests through the model's dispatch
// helpers.
type screenView func(m *Model, params map[string]any) string

// gameRoutes in display order for the Games tab.
var gameRoutes = []string{
	route.MemoryGrid,
	route.WordChain,
	route.EchoChronicles,
	route.Riddles,
	route.MemoryQuiz,
	route.FamilyQuiz,
}

var gameTitles = map[string]string{
	route.MemoryGrid:     "Memory Grid",
	route.WordChain:      "Word Chain",
	route.EchoChronicles: "Echo Chronicles",
	route.Riddles:        "Riddles",
	route.MemoryQuiz:     "Memory Quiz",
	route.FamilyQuiz:     "Family Quiz",
}

// screenViews maps route names to renderers. MemoryQuiz and FamilyQuiz
// share the MemoryGrid renderer on purpose; the route names stay distinct.
var screenViews = map[string]screenView{
	route.Home:    viewHome,
	route.Games:   viewGames,
	route.Moments: viewMoments,
	route.Family:  viewFamily,
	route.Profile: viewProfile,

	route.MomentDetail:       viewMomentDetail,
	route.FamilyMemberDetail: viewFamilyMemberDetail,

	route.VoiceCompanion: viewVoiceCompanion,
	route.Leaderboard:    viewLeaderboard,
	route.PlayMoment:     viewPlayMoment,

	route.AddMoment:       viewAddForm,
	route.AddFamilyMember: viewAddForm,
	route.AddReminder:     viewAddForm,

	route.MemoryGrid:     viewGamePlaceholder,
	route.WordChain:      viewGamePlaceholder,
	route.EchoChronicles: viewGamePlaceholder,
	route.Riddles:        viewGamePlaceholder,
	route.MemoryQuiz:     viewGamePlaceholder,
	route.FamilyQuiz:     viewGamePlaceholder,
}

func (m *Model) rows(items []string) string {
	var sb strings.Builder
	for i, it := range items {
		if i == m.cursor {
			sb.WriteString(m.styles.RowCursor.Render("▸ " + it))
		} else {
			sb.WriteString(m.styles.Row.Render("  " + it))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func viewHome(m *Model, _ map[string]any) string {
	var sb strings.Builder
	name := "there"
	if snap := m.resolver.Current(); snap.User != nil {
		name = snap.User.Name
	}
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Good to see you, %s.", name)) + "\n\n")

	sb.WriteString(m.styles.Dim.Render("Today") + "\n")
	for _, r := range reminders {
		sb.WriteString(fmt.Sprintf("  %s — %s\n", r.When, r.Title))
	}
	sb.WriteString("\n" + m.styles.Dim.Render("Recent moments") + "\n")
	items := make([]string, len(moments))
	for i, mo := range moments {
		items[i] = fmt.Sprintf("%s  (%s)", mo.Title, mo.Date)
	}
	sb.WriteString(m.rows(items))
	return sb.String()
}

func viewGames(m *Model, _ map[string]any) string {
	items := make([]string, len(gameRoutes))
	for i, g := range gameRoutes {
		items[i] = gameTitles[g]
	}
	return m.styles.Dim.Render("Pick a game") + "\n" + m.rows(items)
}

func viewMoments(m *Model, _ map[string]any) string {
	items := make([]string, len(moments))
	for i, mo := range moments {
		items[i] = fmt.Sprintf("%s  (%s)", mo.Title, mo.Date)
	}
	return m.styles.Dim.Render("Your moments") + "\n" + m.rows(items)
}

func viewFamily(m *Model, _ map[string]any) string {
	items := make([]string, len(familyMembers))
	for i, f := range familyMembers {
		items[i] = fmt.Sprintf("%s — %s", f.Name, f.Relation)
	}
	return m.styles.Dim.Render("Your family") + "\n" + m.rows(items)
}

func viewProfile(m *Model, _ map[string]any) string {
	snap := m.resolver.Current()
	var sb strings.Builder
	if snap.User != nil {
		sb.WriteString(m.styles.Title.Render(snap.User.Name) + "\n")
		sb.WriteString(m.styles.Dim.Render("id "+snap.User.ID.String()) + "\n\n")
	}
	sb.WriteString("ctrl+d signs you out.\n")
	return sb.String()
}

func viewMomentDetail(m *Model, params map[string]any) string {
	id := params["momentId"].(string)
	mo, ok := momentByID(id)
	if !ok {
		return m.styles.Dim.Render("This moment is no longer here.")
	}
	body := mo.Body
	if m.markdown != nil {
		if rendered, err := m.markdown.Render(mo.Body); err == nil {
			body = rendered
		}
	}
	return body + "\n" + m.styles.Dim.Render(mo.Date)
}

func viewFamilyMemberDetail(m *Model, params map[string]any) string {
	id := params["memberId"].(string)
	f, ok := familyMemberByID(id)
	if !ok {
		return m.styles.Dim.Render("No record for this family member.")
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(f.Name) + "\n")
	sb.WriteString(m.styles.Dim.Render(f.Relation) + "\n\n")
	sb.WriteString(f.Notes + "\n")
	return sb.String()
}

func viewVoiceCompanion(m *Model, _ map[string]any) string {
	return m.styles.Title.Render(i18n.T("screen.voice_companion")) + "\n\n" +
		"Press and hold space to talk. (Voice capture is handled by the\n" +
		"companion service; this screen only hosts it.)"
}

func viewLeaderboard(m *Model, params map[string]any) string {
	filter, _ := params["gameType"].(string)
	var sb strings.Builder
	title := i18n.T("action.leaderboard")
	if filter != "" {
		title += " — " + filter
	}
	sb.WriteString(m.styles.Title.Render(title) + "\n\n")
	for _, row := range leaderboard {
		if filter != "" && row.Game != filter {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-8s %-12s %5d\n", row.Player, row.Game, row.Score))
	}
	return sb.String()
}

func viewPlayMoment(m *Model, params map[string]any) string {
	id := params["momentId"].(string)
	mo, ok := momentByID(id)
	if !ok {
		return m.styles.Dim.Render("This moment is no longer here.")
	}
	return m.styles.Title.Render("Playing: "+mo.Title) + "\n\n" +
		m.styles.Dim.Render("Photos and narration play here.")
}

func viewAddForm(m *Model, _ map[string]any) string {
	return m.styles.Dim.Render("A caregiver can fill this in from the family portal.\n") +
		"\nPress esc to close."
}

func viewGamePlaceholder(m *Model, _ map[string]any) string {
	return m.styles.Dim.Render("Game board goes here. Press esc to leave the game.")
}
