package content

import "manisera/affirmation-app/internal/domain"

// Context messages shown above a session: a short grounding line selected by
// program day. Generic per session, with a category-specific set where one
// exists.

var sessionContextMessages = map[domain.SessionType][]string{
	domain.SessionMorning: {
		"Respir adânc și simt energia zilei curgând prin mine.",
		"Îmi deschid inima la toate oportunitățile de azi.",
		"Sunt pregătit să primesc toate binecuvântările zilei.",
		"Energia mea este puternică și focalizată.",
		"Sunt deschis la toate posibilitățile care vin spre mine.",
		"Îmi permit să fiu vulnerabil și autentic.",
		"Sunt în pace cu toate aspectele vieții mele.",
		"Îmi iubesc și îmi accept toate părțile.",
		"Îmi permit să fiu fericit și împlinit.",
		"Sunt deschis la toate formele de abundență.",
	},
	domain.SessionAfternoon: {
		"Sunt recunoscător pentru toate realizările de azi.",
		"Energia mea este echilibrată și puternică.",
		"Sunt deschis la toate oportunitățile care se prezintă.",
		"Îmi permit să fiu vulnerabil și autentic.",
		"Sunt în pace cu toate aspectele vieții mele.",
		"Îmi iubesc și îmi accept toate părțile.",
		"Sunt demn de toate binecuvântările.",
		"Îmi permit să fiu fericit și împlinit.",
		"Sunt deschis la toate formele de iubire.",
		"Îmi permit să fiu vulnerabil și autentic.",
	},
	domain.SessionEvening: {
		"Mulțumesc pentru toate experiențele din ziua de azi.",
		"Sunt recunoscător pentru toate lecțiile învățate.",
		"Îmi permit să fiu vulnerabil și autentic.",
		"Sunt în pace cu toate aspectele vieții mele.",
		"Îmi iubesc și îmi accept toate părțile.",
		"Sunt demn de toate binecuvântările.",
		"Îmi permit să fiu fericit și împlinit.",
		"Sunt deschis la toate formele de iubire.",
		"Îmi permit să fiu vulnerabil și autentic.",
		"Sunt în pace cu toate aspectele vieții mele.",
	},
}

var categoryContextMessages = map[domain.FocusCategory]map[domain.SessionType][]string{
	domain.FocusBani: {
		domain.SessionMorning: {
			"Respir adânc și simt abundența curgând prin mine.",
			"Îmi deschid inima la toate oportunitățile financiare de azi.",
			"Sunt pregătit să primesc toate binecuvântările financiare.",
			"Energia prosperității este puternică în mine.",
			"Sunt deschis la toate sursele de abundență.",
			"Îmi permit să fiu vulnerabil și autentic cu banii.",
			"Sunt în pace cu toate aspectele financiare.",
			"Îmi iubesc și îmi accept abundența în toate formele.",
			"Îmi permit să fiu fericit și împlinit financiar.",
			"Sunt deschis la toate formele de prosperitate.",
		},
		domain.SessionAfternoon: {
			"Sunt recunoscător pentru toate oportunitățile financiare de azi.",
			"Energia prosperității este echilibrată și puternică.",
			"Sunt deschis la toate oportunitățile care se prezintă.",
			"Îmi permit să fiu vulnerabil și autentic cu abundența.",
			"Sunt în pace cu toate aspectele financiare.",
			"Îmi iubesc și îmi accept toate formele de prosperitate.",
			"Sunt demn de toate binecuvântările financiare.",
			"Îmi permit să fiu fericit și împlinit cu banii.",
			"Sunt deschis la toate formele de abundență.",
			"Îmi permit să fiu vulnerabil și autentic cu prosperitatea.",
		},
		domain.SessionEvening: {
			"Mulțumesc pentru toate oportunitățile financiare din ziua de azi.",
			"Sunt recunoscător pentru toate lecțiile despre abundență.",
			"Îmi permit să fiu vulnerabil și autentic cu prosperitatea.",
			"Sunt în pace cu toate aspectele financiare.",
			"Îmi iubesc și îmi accept abundența în toate formele.",
			"Sunt demn de toate binecuvântările financiare.",
			"Îmi permit să fiu fericit și împlinit cu banii.",
			"Sunt deschis la toate formele de prosperitate.",
			"Îmi permit să fiu vulnerabil și autentic cu abundența.",
			"Sunt în pace cu toate aspectele prosperității.",
		},
	},
}

// ContextMessage returns the grounding line for a session of a program day.
// Category-specific messages win when they exist; selection rotates by day.
func ContextMessage(session domain.SessionType, day int, category domain.FocusCategory) string {
	if byCat, ok := categoryContextMessages[category]; ok {
		if msgs := byCat[session]; len(msgs) > 0 {
			return msgs[(day-1)%len(msgs)]
		}
	}
	msgs := sessionContextMessages[session]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[(day-1)%len(msgs)]
}
