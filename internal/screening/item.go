// Package screening implements the quick first-pass screen: a bank of
// short screening items matched against the patient's presenting concern
// with TF-IDF similarity plus rule-based keyword boosts, aggregated into
// per-module relevance scores. It runs before the full six-signal scorer
// and needs no patient profile, only free text.
package screening

// ItemSeverity grades how strongly a positive screening item indicates
// pathology. It scales the item's combined score.
type ItemSeverity string

const (
	SeverityLow    ItemSeverity = "low"
	SeverityMedium ItemSeverity = "medium"
	SeverityHigh   ItemSeverity = "high"
)

// Weight returns the score multiplier for the severity grade.
func (s ItemSeverity) Weight() float64 {
	switch s {
	case SeverityLow:
		return 0.8
	case SeverityHigh:
		return 1.2
	default:
		return 1.0
	}
}

// Item is a single screening question. Keywords are matched by substring
// against the lowercased concern text, independent of the TF-IDF pass.
type Item struct {
	ID            string
	Text          string
	LinkedModules []string
	Severity      ItemSeverity
	Category      string
	Keywords      []string
}

func defaultItems() []Item {
	return []Item{
		{
			ID:            "MDD_01",
			Text:          "Have you felt sad, down, or depressed most of the day nearly every day for two weeks or more?",
			LinkedModules: []string{"MDD"},
			Severity:      SeverityMedium,
			Category:      "mood",
			Keywords:      []string{"sad", "down", "depressed", "depression", "mood", "blue", "hopeless"},
		},
		{
			ID:            "MDD_02",
			Text:          "Have you lost interest or pleasure in activities you used to enjoy for two weeks or more?",
			LinkedModules: []string{"MDD"},
			Severity:      SeverityMedium,
			Category:      "mood",
			Keywords:      []string{"lost interest", "no pleasure", "anhedonia", "enjoyment", "activities", "motivation"},
		},
		{
			ID:            "MAN_01",
			Text:          "Have you had a period when you felt so good or high that others thought you were not your normal self?",
			LinkedModules: []string{"BIPOLAR"},
			Severity:      SeverityHigh,
			Category:      "mood",
			Keywords:      []string{"manic", "high", "euphoric", "elevated", "good mood", "hyper"},
		},
		{
			ID:            "MAN_02",
			Text:          "Have you had a period when you needed much less sleep than usual and didn't feel tired?",
			LinkedModules: []string{"BIPOLAR"},
			Severity:      SeverityHigh,
			Category:      "mood",
			Keywords:      []string{"less sleep", "no sleep", "energetic", "restless", "insomnia", "hyper"},
		},
		{
			ID:            "PAN_01",
			Text:          "Have you had sudden episodes of intense fear or panic in which your heart races?",
			LinkedModules: []string{"PANIC"},
			Severity:      SeverityHigh,
			Category:      "anxiety",
			Keywords:      []string{"panic", "panic attack", "heart racing", "intense fear", "sudden fear", "palpitations"},
		},
		{
			ID:            "PAN_02",
			Text:          "During panic episodes, do you experience shortness of breath or feel like you're choking?",
			LinkedModules: []string{"PANIC"},
			Severity:      SeverityHigh,
			Category:      "anxiety",
			Keywords:      []string{"shortness of breath", "choking", "breathing", "suffocating", "chest tight"},
		},
		{
			ID:            "AGO_01",
			Text:          "Do you avoid or feel anxious about places where escape might be difficult?",
			LinkedModules: []string{"AGORAPHOBIA"},
			Severity:      SeverityMedium,
			Category:      "anxiety",
			Keywords:      []string{"avoid places", "escape", "trapped", "agoraphobia", "crowded", "public"},
		},
		{
			ID:            "SOC_01",
			Text:          "Are you very afraid of social situations where you might be judged by others?",
			LinkedModules: []string{"SOCIAL_ANXIETY"},
			Severity:      SeverityMedium,
			Category:      "anxiety",
			Keywords:      []string{"social anxiety", "judged", "embarrassed", "social situations", "performance", "shy"},
		},
		{
			ID:            "GAD_01",
			Text:          "Do you worry excessively about many different things most days?",
			LinkedModules: []string{"GAD"},
			Severity:      SeverityMedium,
			Category:      "anxiety",
			Keywords:      []string{"worry", "excessive worry", "anxious", "restless", "tension", "nervous"},
		},
		{
			ID:            "SPE_01",
			Text:          "Do you have persistent, unreasonable fears of specific objects or situations?",
			LinkedModules: []string{"SPECIFIC_PHOBIA"},
			Severity:      SeverityLow,
			Category:      "anxiety",
			Keywords:      []string{"phobia", "specific fear", "afraid of", "irrational fear", "avoid", "scared"},
		},
		{
			ID:            "PTS_01",
			Text:          "Have you experienced or witnessed a traumatic event that continues to bother you?",
			LinkedModules: []string{"PTSD"},
			Severity:      SeverityHigh,
			Category:      "trauma",
			Keywords:      []string{"trauma", "traumatic", "ptsd", "flashbacks", "nightmares", "witnessed"},
		},
		{
			ID:            "PTS_02",
			Text:          "Do you have recurring nightmares or flashbacks about traumatic experiences?",
			LinkedModules: []string{"PTSD"},
			Severity:      SeverityHigh,
			Category:      "trauma",
			Keywords:      []string{"nightmares", "flashbacks", "intrusive", "memories", "reliving", "dreams"},
		},
		{
			ID:            "ADJ_01",
			Text:          "Have you had severe stress reactions after a recent major life change or stressful event?",
			LinkedModules: []string{"ADJUSTMENT"},
			Severity:      SeverityMedium,
			Category:      "trauma",
			Keywords:      []string{"stress", "stressful", "life change", "overwhelmed", "coping", "adjustment"},
		},
		{
			ID:            "OCD_01",
			Text:          "Do you have recurring, unwanted thoughts that cause you distress?",
			LinkedModules: []string{"OCD"},
			Severity:      SeverityMedium,
			Category:      "obsessive_compulsive",
			Keywords:      []string{"obsessions", "unwanted thoughts", "intrusive", "compulsions", "rituals", "ocd"},
		},
		{
			ID:            "OCD_02",
			Text:          "Do you feel compelled to repeat behaviors or mental acts over and over?",
			LinkedModules: []string{"OCD"},
			Severity:      SeverityMedium,
			Category:      "obsessive_compulsive",
			Keywords:      []string{"compulsions", "repeat", "rituals", "checking", "counting", "washing"},
		},
		{
			ID:            "ALC_01",
			Text:          "Have you used more alcohol than intended or had trouble cutting down?",
			LinkedModules: []string{"ALCOHOL_USE"},
			Severity:      SeverityHigh,
			Category:      "substance",
			Keywords:      []string{"alcohol", "drinking", "cut down", "control", "more than intended"},
		},
		{
			ID:            "ALC_02",
			Text:          "Has alcohol use interfered with work, school, or family responsibilities?",
			LinkedModules: []string{"ALCOHOL_USE"},
			Severity:      SeverityHigh,
			Category:      "substance",
			Keywords:      []string{"interference", "work problems", "family problems", "responsibilities"},
		},
		{
			ID:            "DRU_01",
			Text:          "Have you used drugs more than intended or been unable to cut down?",
			LinkedModules: []string{"SUBSTANCE_USE"},
			Severity:      SeverityHigh,
			Category:      "substance",
			Keywords:      []string{"drugs", "substance", "cut down", "control", "more than intended"},
		},
		{
			ID:            "DRU_02",
			Text:          "Have you experienced withdrawal symptoms when stopping drug use?",
			LinkedModules: []string{"SUBSTANCE_USE"},
			Severity:      SeverityHigh,
			Category:      "substance",
			Keywords:      []string{"withdrawal", "symptoms", "stopping", "physical", "sick"},
		},
		{
			ID:            "EAT_01",
			Text:          "Have you significantly restricted food intake leading to low body weight?",
			LinkedModules: []string{"EATING_DISORDERS"},
			Severity:      SeverityHigh,
			Category:      "eating",
			Keywords:      []string{"restrict food", "low weight", "diet", "calories", "thin", "weight loss"},
		},
		{
			ID:            "EAT_02",
			Text:          "Do you have episodes of eating unusually large amounts of food in short periods?",
			LinkedModules: []string{"EATING_DISORDERS"},
			Severity:      SeverityMedium,
			Category:      "eating",
			Keywords:      []string{"binge eating", "large amounts", "overeating", "episodes", "food"},
		},
		{
			ID:            "EAT_03",
			Text:          "Do you compensate for overeating by vomiting, using laxatives, or excessive exercise?",
			LinkedModules: []string{"EATING_DISORDERS"},
			Severity:      SeverityHigh,
			Category:      "eating",
			Keywords:      []string{"vomiting", "laxatives", "purging", "compensate", "excessive exercise"},
		},
		{
			ID:            "ATT_01",
			Text:          "Do you often have trouble paying attention or staying focused on tasks?",
			LinkedModules: []string{"ADHD"},
			Severity:      SeverityLow,
			Category:      "neurodevelopmental",
			Keywords:      []string{"attention", "focus", "concentration", "adhd", "distracted"},
		},
		{
			ID:            "ATT_02",
			Text:          "Are you often hyperactive, restless, or unable to sit still?",
			LinkedModules: []string{"ADHD"},
			Severity:      SeverityLow,
			Category:      "neurodevelopmental",
			Keywords:      []string{"hyperactive", "restless", "impulsive", "fidgety", "can't sit still"},
		},
	}
}
