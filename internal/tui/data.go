package tui

// In-memory fixtures backing the leaf screens. Real moment/family
// persistence lives outside the navigation core; screens only need
// something addressable by id so routed params resolve to content.

type Moment struct {
	ID    string
	Title string
	Date  string
	Body  string
}

type FamilyMember struct {
	ID       string
	Name     string
	Relation string
	Notes    string
}

type Reminder struct {
	Title string
	When  string
}

type ScoreRow struct {
	Player string
	Game   string
	Score  int
}

var moments = []Moment{
	{
		ID:    "m-1947-summer",
		Title: "Summer at the lake house",
		Date:  "July 1984",
		Body: "# Summer at the lake house\n\nThe whole family drove up in the old " +
			"station wagon. You taught Daniel to fish off the dock, and Grandma " +
			"June burned the pancakes *twice*.\n",
	},
	{
		ID:    "m-wedding-day",
		Title: "Your wedding day",
		Date:  "June 1962",
		Body: "# Your wedding day\n\nSt. Agnes church, and it rained all morning. " +
			"Everyone said the rain was good luck, and it was.\n",
	},
	{
		ID:    "m-first-garden",
		Title: "The first garden",
		Date:  "Spring 1971",
		Body: "# The first garden\n\nTomatoes, sweet peas, and the rosebush that " +
			"still grows by the back fence.\n",
	},
}

var familyMembers = []FamilyMember{
	{ID: "f-daniel", Name: "Daniel", Relation: "Son", Notes: "Calls every Sunday. Lives in Portland with Mia and the twins."},
	{ID: "f-mia", Name: "Mia", Relation: "Daughter-in-law", Notes: "Teaches third grade. Brings lemon cake when she visits."},
	{ID: "f-sophie", Name: "Sophie", Relation: "Granddaughter", Notes: "Eight years old. Loves the memory grid game."},
}

var reminders = []Reminder{
	{Title: "Morning medication", When: "8:00 am"},
	{Title: "Walk with Daniel", When: "Sunday 10:00 am"},
	{Title: "Water the rosebush", When: "Every evening"},
}

var leaderboard = []ScoreRow{
	{Player: "Sophie", Game: "memorygrid", Score: 940},
	{Player: "You", Game: "memorygrid", Score: 860},
	{Player: "Daniel", Game: "riddles", Score: 720},
	{Player: "You", Game: "wordchain", Score: 610},
}

func momentByID(id string) (Moment, bool) {
	for _, m := range moments {
		if m.ID == id {
			return m, true
		}
	}
	return Moment{}, false
}

func familyMemberByID(id string) (FamilyMember, bool) {
	for _, f := range familyMembers {
		if f.ID == id {
			return f, true
		}
	}
	return FamilyMember{}, false
}
