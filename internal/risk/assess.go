package risk

import (
	"fmt"
	"strings"
	"time"
)

// Structured answer increments, in fixed evaluation order. Presenting
// text contributes at textWeight on top of these.
const (
	textWeight         = 0.20
	ideationIncrement  = 0.25
	planIncrement      = 0.20
	intentIncrement    = 0.15
	attemptsIncrement  = 0.10
	selfHarmAnswerIncr = 0.08
	homicidalIncrement = 0.07
	accessIncrement    = 0.05

	protectivePerMatch = 0.02
	protectiveCap      = 0.10
)

// Tier breakpoints over the clamped risk value.
const (
	criticalThreshold = 0.8
	highThreshold     = 0.5
	moderateThreshold = 0.2
)

// Assess combines the safety-screen answers with a text scan of the
// presenting concern into a single clamped risk value and tier. The
// rationale names at most three contributing factors in evaluation order.
func Assess(answers Answers, presentingText string) *Assessment {
	score := 0.0
	var factors []string

	textRisk := AnalyzeText(presentingText)
	score += textRisk * textWeight
	if textRisk > 0.3 {
		factors = append(factors, "concerning language in presenting concern")
	}

	if answers.SuicideIdeation {
		score += ideationIncrement
		factors = append(factors, "current suicidal thoughts")
	}
	if answerContains(answers.SuicidePlan, "yes", "plan", "method", "how") {
		score += planIncrement
		factors = append(factors, "specific suicide plan")
	}
	if answers.SuicideIntent {
		score += intentIncrement
		factors = append(factors, "intent to act on thoughts")
	}
	if answerContains(answers.PastAttempts, "yes", "tried", "attempted") {
		score += attemptsIncrement
		factors = append(factors, "history of suicide attempts")
	}
	if answerContains(answers.SelfHarm, "yes", "cutting", "burning", "hurt") {
		score += selfHarmAnswerIncr
		factors = append(factors, "current self-harm behavior")
	}
	if answers.HomicidalThoughts {
		score += homicidalIncrement
		factors = append(factors, "thoughts of harming others")
	}
	if answerContains(answers.AccessMeans, "yes", "have", "access", "weapon", "medication") {
		score += accessIncrement
		factors = append(factors, "access to lethal means")
	}

	if answers.ProtectiveFactors != "" {
		reduction := float64(countProtective(answers.ProtectiveFactors)) * protectivePerMatch
		if reduction > protectiveCap {
			reduction = protectiveCap
		}
		score -= reduction
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	level := classify(score)
	return &Assessment{
		Level:      level,
		Value:      score,
		Factors:    factors,
		Rationale:  rationale(level, score, factors, answers.ProtectiveFactors != ""),
		AssessedAt: time.Now(),
	}
}

func classify(score float64) Level {
	switch {
	case score >= criticalThreshold:
		return LevelCritical
	case score >= highThreshold:
		return LevelHigh
	case score >= moderateThreshold:
		return LevelModerate
	default:
		return LevelLow
	}
}

func rationale(level Level, score float64, factors []string, hasProtective bool) string {
	if len(factors) == 0 {
		return fmt.Sprintf("Risk assessment shows %s risk based on responses indicating minimal safety concerns. No significant risk factors identified in current presentation.", level)
	}

	shown := factors
	if len(shown) > 3 {
		shown = shown[:3]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Risk level %s (score: %.2f) based on: %s. ", level, score, strings.Join(shown, ", "))
	if len(factors) > 3 {
		b.WriteString("Additional factors considered. ")
	}
	if hasProtective {
		b.WriteString("Protective factors noted which help mitigate risk.")
	} else {
		b.WriteString("Limited protective factors identified.")
	}
	return b.String()
}

func answerContains(answer string, words ...string) bool {
	if answer == "" {
		return false
	}
	lower := strings.ToLower(answer)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
