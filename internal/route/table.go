package route

// Route names addressable in the authenticated tree. Constants exist so call
// sites never dispatch on a bare string literal.
const (
	MainTabs       = "MainTabs"
	VoiceCompanion = "VoiceCompanion"

	// Tab root screens. Each feature stack starts with exactly one of these.
	Home    = "Home"
	Games   = "Games"
	Moments = "Moments"
	Family  = "Family"
	Profile = "Profile"

	// Cognitive games. MemoryQuiz and FamilyQuiz intentionally resolve to the
	// same grid screen as MemoryGrid; the aliases are kept as distinct route
	// names because call sites address them by name.
	MemoryGrid     = "MemoryGrid"
	WordChain      = "WordChain"
	EchoChronicles = "EchoChronicles"
	Riddles        = "Riddles"
	MemoryQuiz     = "MemoryQuiz"
	FamilyQuiz     = "FamilyQuiz"

	AddMoment          = "AddMoment"
	MomentDetail       = "MomentDetail"
	PlayMoment         = "PlayMoment"
	AddFamilyMember    = "AddFamilyMember"
	FamilyMemberDetail = "FamilyMemberDetail"
	AddReminder        = "AddReminder"
	Leaderboard        = "Leaderboard"
)

func objectSchema(required []string, props map[string]any) map[string]any {
	schema := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

var idProp = map[string]any{"type": "string", "minLength": 1}

// Table returns the application's route definitions. Registered once at
// startup; Registry.Register rejects any duplicate, so a table mistake is
// caught before the first screen mounts.
func Table() []Definition {
	return []Definition{
		{Name: MainTabs},
		{Name: Home},
		{Name: Games},
		{Name: Moments},
		{Name: Family},
		{Name: Profile},

		{Name: VoiceCompanion, Presentation: FullScreenModal},

		{Name: MemoryGrid, Presentation: FullScreenModal},
		{Name: WordChain, Presentation: FullScreenModal},
		{Name: EchoChronicles, Presentation: FullScreenModal},
		{Name: Riddles, Presentation: FullScreenModal},
		{Name: MemoryQuiz, Presentation: FullScreenModal},
		{Name: FamilyQuiz, Presentation: FullScreenModal},

		{Name: AddMoment, Presentation: Modal},
		{
			Name:        MomentDetail,
			ParamSchema: objectSchema([]string{"momentId"}, map[string]any{"momentId": idProp}),
		},
		{
			Name:         PlayMoment,
			ParamSchema:  objectSchema([]string{"momentId"}, map[string]any{"momentId": idProp}),
			Presentation: FullScreenModal,
		},
		{Name: AddFamilyMember, Presentation: Modal},
		{
			Name:        FamilyMemberDetail,
			ParamSchema: objectSchema([]string{"memberId"}, map[string]any{"memberId": idProp}),
		},
		{Name: AddReminder, Presentation: Modal},
		{
			Name:         Leaderboard,
			ParamSchema:  objectSchema(nil, map[string]any{"gameType": map[string]any{"type": "string"}}),
			Presentation: Modal,
		},
	}
}

// NewTableRegistry builds a registry pre-loaded with the application table.
func NewTableRegistry() (*Registry, error) {
	reg := NewRegistry()
	for _, def := range Table() {
		if err := reg.Register(def); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
