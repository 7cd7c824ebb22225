package risk

import (
	"fmt"
	"strings"
)

// QuestionKind distinguishes how a safety-screen question is answered.
type QuestionKind int

const (
	KindYesNo QuestionKind = iota
	KindOpenEnded
)

func (k QuestionKind) String() string {
	if k == KindOpenEnded {
		return "open_ended"
	}
	return "yes_no"
}

// Question is one item of the safety screen.
type Question struct {
	ID        string
	Text      string
	Kind      QuestionKind
	Options   []string
	Required  bool
	FollowUps map[string]string
}

// Canonical question IDs in full-assessment order.
const (
	QSafetyScreen      = "safety_screen"
	QSuicideIdeation   = "suicide_ideation"
	QSuicidePlan       = "suicide_plan"
	QSuicideIntent     = "suicide_intent"
	QPastAttempts      = "past_attempts"
	QSelfHarmCurrent   = "self_harm_current"
	QHomicidalThoughts = "homicidal_thoughts"
	QProtectiveFactors = "protective_factors"
	QAccessMeans       = "access_means"
)

var fullFlow = []string{
	QSafetyScreen, QSuicideIdeation, QSuicidePlan, QSuicideIntent,
	QPastAttempts, QSelfHarmCurrent, QHomicidalThoughts,
	QProtectiveFactors, QAccessMeans,
}

// shortFlow applies when the safety screen is answered "no": the detailed
// suicide questions are skipped.
var shortFlow = []string{QSafetyScreen, QHomicidalThoughts, QProtectiveFactors, QAccessMeans}

// Questions returns the safety-screen question bank keyed by ID.
func Questions() map[string]*Question {
	return map[string]*Question{
		QSafetyScreen: {
			ID:       QSafetyScreen,
			Text:     "I need to ask some important questions about your safety and wellbeing. Have you had any thoughts about wanting to hurt yourself or end your life?",
			Kind:     KindYesNo,
			Options:  []string{"yes", "no"},
			Required: true,
		},
		QSuicideIdeation: {
			ID:       QSuicideIdeation,
			Text:     "Can you tell me more about these thoughts? When did they start?",
			Kind:     KindOpenEnded,
			Required: true,
		},
		QSuicidePlan: {
			ID:      QSuicidePlan,
			Text:    "Have you thought about how you might hurt yourself or made any specific plans?",
			Kind:    KindYesNo,
			Options: []string{"yes", "no"},
			FollowUps: map[string]string{
				"yes": "Can you tell me about these plans? This helps me understand how to best support you.",
			},
		},
		QSuicideIntent: {
			ID:       QSuicideIntent,
			Text:     "Do you intend to act on these thoughts in the near future?",
			Kind:     KindYesNo,
			Options:  []string{"yes", "no", "unsure"},
			Required: true,
		},
		QPastAttempts: {
			ID:      QPastAttempts,
			Text:    "Have you ever tried to hurt yourself or attempt suicide in the past?",
			Kind:    KindYesNo,
			Options: []string{"yes", "no"},
			FollowUps: map[string]string{
				"yes": "When was this, and what happened? This information helps me provide better support.",
			},
		},
		QSelfHarmCurrent: {
			ID:      QSelfHarmCurrent,
			Text:    "Are you currently hurting yourself in other ways, such as cutting, burning, or hitting yourself?",
			Kind:    KindYesNo,
			Options: []string{"yes", "no"},
			FollowUps: map[string]string{
				"yes": "Can you tell me about this? How often does this happen?",
			},
		},
		QHomicidalThoughts: {
			ID:      QHomicidalThoughts,
			Text:    "Have you had thoughts about wanting to hurt someone else?",
			Kind:    KindYesNo,
			Options: []string{"yes", "no"},
			FollowUps: map[string]string{
				"yes": "Can you tell me more about these thoughts? Do you have someone specific in mind?",
			},
		},
		QProtectiveFactors: {
			ID:       QProtectiveFactors,
			Text:     "What are some things in your life that give you hope or reasons to keep going? This could be family, friends, pets, goals, or beliefs.",
			Kind:     KindOpenEnded,
			Required: true,
		},
		QAccessMeans: {
			ID:      QAccessMeans,
			Text:    "Do you have access to things that could be used to hurt yourself or others, such as medications, weapons, or other means?",
			Kind:    KindYesNo,
			Options: []string{"yes", "no"},
			FollowUps: map[string]string{
				"yes": "What do you have access to? Is there someone who could help secure these items?",
			},
		},
	}
}

// NextQuestion picks the next unanswered question given which IDs are
// already answered. safetyDenied selects the short flow. Returns "" when
// the flow is exhausted.
func NextQuestion(answered map[string]bool, safetyDenied bool) string {
	flow := fullFlow
	if safetyDenied {
		flow = shortFlow
	}
	for _, id := range flow {
		if !answered[id] {
			return id
		}
	}
	return ""
}

// DefaultMaxQuestions bounds the length of one safety screen.
const DefaultMaxQuestions = 8

// Interview runs the safety screen question by question, folding answers
// into an Answers set and finishing with a risk assessment.
type Interview struct {
	questions      map[string]*Question
	answered       map[string]bool
	answers        Answers
	presentingText string
	asked          int
	maxQuestions   int
}

// NewInterview starts a safety screen. The presenting text is scanned as
// part of the final assessment.
func NewInterview(presentingText string) *Interview {
	return &Interview{
		questions:      Questions(),
		answered:       make(map[string]bool),
		presentingText: presentingText,
		maxQuestions:   DefaultMaxQuestions,
	}
}

// Next returns the next question to ask, or nil when the screen is done.
func (iv *Interview) Next() *Question {
	if iv.asked >= iv.maxQuestions {
		return nil
	}
	id := NextQuestion(iv.answered, iv.safetyDenied())
	if id == "" {
		return nil
	}
	return iv.questions[id]
}

// Record stores one answer. For yes/no questions the selected option is
// recorded; free text supplements it and is preferred where the answer
// field carries detail. Returns the follow-up prompt, if the selected
// option triggers one.
func (iv *Interview) Record(questionID, selected, freeText string) (followUp string, err error) {
	q, ok := iv.questions[questionID]
	if !ok {
		return "", fmt.Errorf("record answer: unknown question %q", questionID)
	}
	if selected == "" && strings.TrimSpace(freeText) == "" {
		return "", fmt.Errorf("record answer: empty response for %s", questionID)
	}

	value := freeText
	if value == "" {
		value = selected
	}

	switch questionID {
	case QSafetyScreen:
		iv.answers.SuicideIdeation = selected == "yes"
	case QSuicideIdeation:
		iv.answers.SuicideIdeation = true
	case QSuicidePlan:
		iv.answers.SuicidePlan = value
	case QSuicideIntent:
		iv.answers.SuicideIntent = selected == "yes"
	case QPastAttempts:
		iv.answers.PastAttempts = value
	case QSelfHarmCurrent:
		iv.answers.SelfHarm = value
	case QHomicidalThoughts:
		iv.answers.HomicidalThoughts = selected == "yes"
	case QProtectiveFactors:
		iv.answers.ProtectiveFactors = value
	case QAccessMeans:
		iv.answers.AccessMeans = value
	}

	iv.answered[questionID] = true
	iv.asked++

	if q.FollowUps != nil {
		if prompt, ok := q.FollowUps[selected]; ok {
			return prompt, nil
		}
	}
	return "", nil
}

// Answers returns the structured answer set collected so far.
func (iv *Interview) Answers() Answers { return iv.answers }

// Done reports whether the flow is exhausted or the question cap reached.
func (iv *Interview) Done() bool { return iv.Next() == nil }

// Assess finishes the screen with a risk assessment over the collected
// answers and the presenting text.
func (iv *Interview) Assess() *Assessment {
	return Assess(iv.answers, iv.presentingText)
}

func (iv *Interview) safetyDenied() bool {
	return iv.answered[QSafetyScreen] && !iv.answers.SuicideIdeation
}
