package registry

// Default returns the standard module bank covering the clinical-version
// interview modules. Thresholds and weights follow the published screening
// conventions; a module without explicit severity thresholds falls back to
// the default breakpoints in the scoring package.
func Default() (*Registry, error) {
	return New(defaultModules())
}

// MustDefault is Default for callers wired at startup, where a seed failure
// is a programming error.
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

func defaultModules() []Module {
	return []Module{
		{
			ID:                  "MDD",
			Name:                "Major Depressive Disorder",
			Description:         "Persistent depressed mood, loss of interest or pleasure, and related cognitive and somatic symptoms",
			Category:            "mood",
			DiagnosticThreshold: 0.6,
			SeverityThresholds: map[Severity]float64{
				SeverityMild:     0.6,
				SeverityModerate: 0.7,
				SeveritySevere:   0.85,
			},
			EstimatedTimeMins: 25,
			PriorityWeight:    0.9,
			Criteria: []string{
				"Depressed mood most of the day, nearly every day, for at least two weeks",
				"Markedly diminished interest or pleasure in all or almost all activities",
				"Significant weight loss or gain, or decrease or increase in appetite",
				"Insomnia or hypersomnia nearly every day",
				"Fatigue or loss of energy nearly every day",
				"Feelings of worthlessness or excessive inappropriate guilt",
				"Diminished ability to think or concentrate, or indecisiveness",
				"Recurrent thoughts of death or suicidal ideation",
			},
			Questions: []Question{
				{
					ID:              "mdd_mood",
					Text:            "During the past two weeks, have you felt depressed or down most of the day, nearly every day?",
					SimpleText:      "Have you been feeling sad, down, or depressed most days for the past two weeks?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "depressed_mood",
					HelpText:        "This means a mood change that is present for most of the day, not brief periods of sadness.",
					Examples:        []string{"Feeling sad or empty for most of the day", "Crying without a clear reason", "Feeling hopeless about the future"},
				},
				{
					ID:              "mdd_anhedonia",
					Text:            "Have you lost interest or pleasure in things you usually enjoy?",
					SimpleText:      "Have things you used to enjoy stopped being enjoyable?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "loss_of_interest",
					Examples:        []string{"Hobbies feel pointless", "Avoiding friends or social plans you used to like"},
				},
				{
					ID:              "mdd_sleep",
					Text:            "How much has your sleep changed, on a scale from no change to severe disruption?",
					SimpleText:      "How badly has your sleep been affected?",
					ResponseType:    ResponseScale,
					ScaleMin:        0,
					ScaleMax:        3,
					Required:        true,
					CriteriaWeight:  1.0,
					SymptomCategory: "sleep_disturbance",
					Examples:        []string{"Trouble falling asleep", "Waking up too early", "Sleeping much more than usual"},
				},
				{
					ID:              "mdd_appetite",
					Text:            "Which best describes your appetite recently?",
					SimpleText:      "Has your appetite changed?",
					ResponseType:    ResponseMultipleChoice,
					Options:         []string{"No change", "Eating less than usual", "Eating more than usual", "Significant weight change"},
					CriteriaWeight:  1.0,
					SymptomCategory: "appetite_change",
				},
				{
					ID:              "mdd_worthless",
					Text:            "Have you been feeling worthless or excessively guilty?",
					SimpleText:      "Do you feel worthless, or blame yourself for things that are not your fault?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  1.5,
					SymptomCategory: "guilt_worthlessness",
					Examples:        []string{"Feeling like a burden to others", "Believing everything is your fault"},
				},
				{
					ID:              "mdd_concentration",
					Text:            "Have you had trouble thinking, concentrating, or making decisions?",
					SimpleText:      "Is it hard to concentrate or make decisions?",
					ResponseType:    ResponseYesNo,
					CriteriaWeight:  1.0,
					SymptomCategory: "concentration_problems",
				},
			},
		},
		{
			ID:                  "BIPOLAR",
			Name:                "Bipolar Disorder",
			Description:         "Episodes of abnormally elevated, expansive, or irritable mood with increased energy, alternating with depressive periods",
			Category:            "mood",
			DiagnosticThreshold: 0.65,
			EstimatedTimeMins:   30,
			PriorityWeight:      0.9,
			Criteria: []string{
				"A distinct period of abnormally elevated, expansive, or irritable mood lasting at least one week",
				"Inflated self-esteem or grandiosity",
				"Decreased need for sleep, feeling rested after only a few hours",
				"More talkative than usual or pressure to keep talking",
				"Flight of ideas or racing thoughts",
				"Excessive involvement in activities with high potential for painful consequences",
			},
			Questions: []Question{
				{
					ID:              "bip_elevated",
					Text:            "Have you had a period of at least several days when you felt so good, high, or hyper that other people thought you were not your normal self?",
					SimpleText:      "Have you had times of feeling unusually high, hyper, or on top of the world?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "elevated_mood",
					Examples:        []string{"Feeling euphoric without reason", "Friends saying you seemed wired or manic"},
				},
				{
					ID:              "bip_sleep",
					Text:            "During such a period, did you need much less sleep than usual without feeling tired?",
					SimpleText:      "Did you get by on very little sleep and still feel full of energy?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  1.5,
					SymptomCategory: "decreased_sleep_need",
				},
				{
					ID:              "bip_racing",
					Text:            "Did your thoughts race, or did you talk much faster than usual?",
					SimpleText:      "Were your thoughts racing, or were you talking a mile a minute?",
					ResponseType:    ResponseYesNo,
					CriteriaWeight:  1.0,
					SymptomCategory: "racing_thoughts",
				},
				{
					ID:              "bip_risky",
					Text:            "During such a period, did you do things that were unusual for you, such as spending sprees, risky driving, or impulsive decisions?",
					SimpleText:      "Did you do impulsive or risky things you would not normally do?",
					ResponseType:    ResponseMultipleChoice,
					Options:         []string{"None", "Spending sprees", "Risky sexual behavior", "Reckless driving", "Impulsive business decisions"},
					CriteriaWeight:  1.5,
					SymptomCategory: "risky_behavior",
					Examples:        []string{"Maxing out credit cards overnight", "Quitting a job on impulse"},
				},
			},
		},
		{
			ID:                  "GAD",
			Name:                "Generalized Anxiety Disorder",
			Description:         "Excessive anxiety and worry about multiple events or activities, difficult to control, with physical tension symptoms",
			Category:            "anxiety",
			DiagnosticThreshold: 0.6,
			EstimatedTimeMins:   20,
			PriorityWeight:      0.7,
			Criteria: []string{
				"Excessive anxiety and worry occurring more days than not for at least six months",
				"The person finds it difficult to control the worry",
				"Restlessness or feeling keyed up or on edge",
				"Being easily fatigued",
				"Difficulty concentrating or mind going blank",
				"Irritability",
				"Muscle tension",
				"Sleep disturbance",
			},
			Questions: []Question{
				{
					ID:              "gad_worry",
					Text:            "Over the past six months, have you been worrying excessively about a number of different things, more days than not?",
					SimpleText:      "Do you worry a lot about many different things, most days?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "excessive_worry",
					Examples:        []string{"Worrying about work, health, money, and family all at once", "Worry that feels impossible to switch off"},
				},
				{
					ID:              "gad_control",
					Text:            "Do you find it difficult to control or stop the worrying?",
					SimpleText:      "Is the worrying hard to control?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  1.5,
					SymptomCategory: "uncontrollable_worry",
				},
				{
					ID:              "gad_tension",
					Text:            "How much muscle tension, restlessness, or feeling on edge have you experienced?",
					SimpleText:      "How tense, restless, or on edge have you felt?",
					ResponseType:    ResponseScale,
					ScaleMin:        0,
					ScaleMax:        3,
					CriteriaWeight:  1.0,
					SymptomCategory: "physical_tension",
					Examples:        []string{"Tight shoulders and jaw", "Unable to sit still"},
				},
				{
					ID:              "gad_fatigue",
					Text:            "Do you tire easily or have trouble concentrating because of the worry?",
					SimpleText:      "Does worrying leave you exhausted or unable to focus?",
					ResponseType:    ResponseYesNo,
					CriteriaWeight:  1.0,
					SymptomCategory: "fatigue",
				},
			},
		},
		{
			ID:                  "PANIC",
			Name:                "Panic Disorder",
			Description:         "Recurrent unexpected panic attacks with persistent concern about additional attacks or their consequences",
			Category:            "anxiety",
			DiagnosticThreshold: 0.6,
			EstimatedTimeMins:   20,
			PriorityWeight:      0.8,
			Criteria: []string{
				"Recurrent unexpected panic attacks",
				"Palpitations, pounding heart, or accelerated heart rate",
				"Sweating, trembling, or shaking",
				"Sensations of shortness of breath or smothering",
				"Fear of losing control or going crazy",
				"Persistent concern about having additional attacks",
			},
			Questions: []Question{
				{
					ID:              "pan_attacks",
					Text:            "Have you had sudden episodes of intense fear or discomfort that peaked within minutes?",
					SimpleText:      "Have you had sudden rushes of intense fear or panic that came out of nowhere?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "panic_attacks",
					Examples:        []string{"Heart racing and pounding", "Feeling like you were having a heart attack"},
				},
				{
					ID:              "pan_physical",
					Text:            "During these episodes, which physical symptoms did you experience?",
					SimpleText:      "What did your body do during these episodes?",
					ResponseType:    ResponseMultipleChoice,
					Options:         []string{"None", "Racing heart", "Sweating or trembling", "Shortness of breath", "Chest pain", "Dizziness"},
					CriteriaWeight:  1.5,
					SymptomCategory: "panic_physical_symptoms",
				},
				{
					ID:              "pan_worry",
					Text:            "Have you worried persistently about having another attack or changed your behavior to avoid them?",
					SimpleText:      "Do you worry about the next attack, or avoid places because of them?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  1.5,
					SymptomCategory: "anticipatory_anxiety",
				},
			},
		},
		{
			ID:                  "AGORAPHOBIA",
			Name:                "Agoraphobia",
			Description:         "Marked fear or avoidance of situations where escape might be difficult or help unavailable if panic-like symptoms occur",
			Category:            "anxiety",
			DiagnosticThreshold: 0.6,
			EstimatedTimeMins:   15,
			PriorityWeight:      0.6,
			Criteria: []string{
				"Marked fear or anxiety about using public transportation, open spaces, or enclosed places",
				"Fear of being in a crowd or standing in line",
				"Fear of being outside of the home alone",
				"The situations are actively avoided or endured with intense fear",
			},
			Questions: []Question{
				{
					ID:              "ago_avoid",
					Text:            "Do you avoid or feel intense anxiety about places where escape might be difficult, such as crowds, public transport, or open spaces?",
					SimpleText:      "Do you avoid crowded or open places because you might feel trapped?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "situational_avoidance",
					Examples:        []string{"Avoiding buses or trains", "Staying away from supermarkets or cinemas"},
				},
				{
					ID:              "ago_alone",
					Text:            "Are you afraid of being outside your home alone?",
					SimpleText:      "Does leaving home alone make you anxious?",
					ResponseType:    ResponseYesNo,
					CriteriaWeight:  1.0,
					SymptomCategory: "fear_leaving_home",
				},
				{
					ID:              "ago_impact",
					Text:            "How much does this avoidance interfere with your daily life?",
					SimpleText:      "How much does this get in the way of daily life?",
					ResponseType:    ResponseScale,
					ScaleMin:        0,
					ScaleMax:        3,
					CriteriaWeight:  1.0,
					SymptomCategory: "functional_impairment",
				},
			},
		},
		{
			ID:                  "SOCIAL_ANXIETY",
			Name:                "Social Anxiety Disorder",
			Description:         "Marked fear of social situations involving possible scrutiny or negative evaluation by others",
			Category:            "anxiety",
			DiagnosticThreshold: 0.6,
			EstimatedTimeMins:   15,
			PriorityWeight:      0.6,
			Criteria: []string{
				"Marked fear or anxiety about social situations in which the person may be scrutinized",
				"Fear of acting in a way that will be negatively evaluated",
				"Social situations are avoided or endured with intense fear",
				"The fear is out of proportion to the actual threat",
			},
			Questions: []Question{
				{
					ID:              "soc_fear",
					Text:            "Are you very afraid of social situations where you might be judged, embarrassed, or humiliated?",
					SimpleText:      "Do social situations scare you because people might judge you?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "social_fear",
					Examples:        []string{"Dreading speaking in meetings", "Fear of eating in front of others"},
				},
				{
					ID:              "soc_avoid",
					Text:            "Do you avoid social situations, or endure them with intense anxiety?",
					SimpleText:      "Do you avoid social events, or suffer through them?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  1.5,
					SymptomCategory: "social_avoidance",
				},
				{
					ID:              "soc_impact",
					Text:            "How much does this fear interfere with work, school, or relationships?",
					SimpleText:      "How much does this fear affect your daily life?",
					ResponseType:    ResponseScale,
					ScaleMin:        0,
					ScaleMax:        3,
					CriteriaWeight:  1.0,
					SymptomCategory: "functional_impairment",
				},
			},
		},
		{
			ID:                  "SPECIFIC_PHOBIA",
			Name:                "Specific Phobia",
			Description:         "Marked fear or anxiety about a specific object or situation, such as flying, heights, animals, or injections",
			Category:            "anxiety",
			DiagnosticThreshold: 0.65,
			EstimatedTimeMins:   10,
			PriorityWeight:      0.4,
			Criteria: []string{
				"Marked fear or anxiety about a specific object or situation",
				"The phobic object or situation almost always provokes immediate fear",
				"The object or situation is actively avoided",
				"The fear is out of proportion to the actual danger",
			},
			Questions: []Question{
				{
					ID:              "pho_fear",
					Text:            "Is there a specific thing or situation, such as heights, flying, animals, or blood, that you fear intensely?",
					SimpleText:      "Is there one specific thing, like heights or spiders, that terrifies you?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "specific_fear",
					Examples:        []string{"Fear of flying", "Fear of needles or blood", "Fear of dogs or spiders"},
				},
				{
					ID:              "pho_avoid",
					Text:            "Do you go out of your way to avoid it?",
					SimpleText:      "Do you avoid it whenever possible?",
					ResponseType:    ResponseYesNo,
					CriteriaWeight:  1.0,
					SymptomCategory: "phobic_avoidance",
				},
			},
		},
		{
			ID:                  "OCD",
			Name:                "Obsessive-Compulsive Disorder",
			Description:         "Presence of obsessions (intrusive unwanted thoughts) and/or compulsions (repetitive behaviors performed to reduce distress)",
			Category:            "anxiety",
			DiagnosticThreshold: 0.6,
			EstimatedTimeMins:   20,
			PriorityWeight:      0.7,
			Criteria: []string{
				"Recurrent and persistent thoughts, urges, or images experienced as intrusive and unwanted",
				"The person attempts to ignore or suppress such thoughts or neutralize them with another thought or action",
				"Repetitive behaviors or mental acts the person feels driven to perform",
				"The behaviors are aimed at preventing or reducing anxiety or distress",
				"The obsessions or compulsions are time-consuming, taking more than one hour per day",
			},
			Questions: []Question{
				{
					ID:              "ocd_obsessions",
					Text:            "Do you have unwanted thoughts, images, or urges that keep coming back even though you try to ignore them?",
					SimpleText:      "Do upsetting thoughts keep intruding no matter how hard you push them away?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "obsessions",
					Examples:        []string{"Fear of contamination from touching things", "Intrusive thoughts about harm coming to loved ones"},
				},
				{
					ID:              "ocd_compulsions",
					Text:            "Do you feel driven to repeat certain behaviors or mental rituals, such as checking, washing, or counting?",
					SimpleText:      "Do you have to repeat rituals like checking, washing, or counting?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "compulsions",
					Examples:        []string{"Washing hands until they are raw", "Checking the stove or locks many times"},
				},
				{
					ID:              "ocd_time",
					Text:            "How much time per day do these thoughts or rituals consume?",
					SimpleText:      "How much of your day do these take up?",
					ResponseType:    ResponseMultipleChoice,
					Options:         []string{"Less than an hour", "One to three hours", "Three to eight hours", "Most of the day"},
					CriteriaWeight:  1.0,
					SymptomCategory: "time_consumed",
					HelpText:        "More than an hour a day is clinically significant.",
				},
			},
		},
		{
			ID:                  "PTSD",
			Name:                "Post-Traumatic Stress Disorder",
			Description:         "Intrusion symptoms, avoidance, negative mood and cognition changes, and hyperarousal following exposure to a traumatic event",
			Category:            "trauma",
			DiagnosticThreshold: 0.6,
			SeverityThresholds: map[Severity]float64{
				SeverityMild:     0.6,
				SeverityModerate: 0.72,
				SeveritySevere:   0.85,
				SeverityExtreme:  0.93,
			},
			EstimatedTimeMins: 30,
			PriorityWeight:    0.9,
			Criteria: []string{
				"Exposure to actual or threatened death, serious injury, or sexual violence",
				"Recurrent, involuntary, and intrusive distressing memories of the traumatic event",
				"Recurrent distressing dreams related to the event",
				"Dissociative reactions such as flashbacks",
				"Persistent avoidance of stimuli associated with the traumatic event",
				"Hypervigilance and exaggerated startle response",
			},
			Questions: []Question{
				{
					ID:              "ptsd_trauma",
					Text:            "Have you experienced or witnessed an event involving actual or threatened death, serious injury, or violence?",
					SimpleText:      "Have you been through something terrifying, like an accident, assault, or disaster?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "trauma_exposure",
				},
				{
					ID:              "ptsd_intrusion",
					Text:            "Do memories, nightmares, or flashbacks of the event intrude on you against your will?",
					SimpleText:      "Do memories or nightmares of it keep coming back?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "intrusive_memories",
					Examples:        []string{"Nightmares that replay the event", "Flashbacks triggered by sounds or smells"},
				},
				{
					ID:              "ptsd_avoid",
					Text:            "Do you avoid people, places, or thoughts that remind you of the event?",
					SimpleText:      "Do you stay away from reminders of what happened?",
					ResponseType:    ResponseYesNo,
					CriteriaWeight:  1.5,
					SymptomCategory: "trauma_avoidance",
				},
				{
					ID:              "ptsd_arousal",
					Text:            "How jumpy, on guard, or easily startled have you been since the event?",
					SimpleText:      "How on edge or easily startled are you?",
					ResponseType:    ResponseScale,
					ScaleMin:        0,
					ScaleMax:        3,
					CriteriaWeight:  1.5,
					SymptomCategory: "hyperarousal",
				},
			},
		},
		{
			ID:                  "ADHD",
			Name:                "Attention-Deficit/Hyperactivity Disorder",
			Description:         "A persistent pattern of inattention and/or hyperactivity-impulsivity that interferes with functioning or development",
			Category:            "neurodevelopmental",
			DiagnosticThreshold: 0.65,
			EstimatedTimeMins:   25,
			PriorityWeight:      0.5,
			Criteria: []string{
				"Often fails to give close attention to details or makes careless mistakes",
				"Often has difficulty sustaining attention in tasks",
				"Often easily distracted by extraneous stimuli",
				"Often fidgets or squirms in seat",
				"Often interrupts or intrudes on others",
				"Several symptoms were present before age twelve",
			},
			Questions: []Question{
				{
					ID:              "adhd_attention",
					Text:            "Do you often have trouble sustaining attention on tasks, or make careless mistakes because of inattention to detail?",
					SimpleText:      "Is it hard to stay focused on tasks, or do you make careless mistakes a lot?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "inattention",
					Examples:        []string{"Losing track in the middle of reading", "Missing details in work or forms"},
				},
				{
					ID:              "adhd_hyper",
					Text:            "Do you often feel restless, fidget, or find it hard to stay seated?",
					SimpleText:      "Are you restless or fidgety, struggling to sit still?",
					ResponseType:    ResponseYesNo,
					CriteriaWeight:  1.5,
					SymptomCategory: "hyperactivity",
				},
				{
					ID:              "adhd_childhood",
					Text:            "Were several of these difficulties present before you were twelve years old?",
					SimpleText:      "Did these problems start in childhood, before age twelve?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  1.5,
					SymptomCategory: "childhood_onset",
				},
			},
		},
		{
			ID:                  "EATING_DISORDERS",
			Name:                "Eating Disorders",
			Description:         "Disturbances of eating behavior including restriction, binge eating, and compensatory behaviors, with distorted body image",
			Category:            "eating",
			DiagnosticThreshold: 0.6,
			EstimatedTimeMins:   20,
			PriorityWeight:      0.7,
			Criteria: []string{
				"Restriction of energy intake leading to significantly low body weight",
				"Intense fear of gaining weight or becoming fat",
				"Disturbance in the way body weight or shape is experienced",
				"Recurrent episodes of binge eating with a sense of lack of control",
				"Recurrent inappropriate compensatory behaviors to prevent weight gain",
			},
			Questions: []Question{
				{
					ID:              "eat_restrict",
					Text:            "Do you severely restrict what you eat because of concerns about your weight or shape?",
					SimpleText:      "Do you strictly limit food because of worries about weight or body shape?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "food_restriction",
				},
				{
					ID:              "eat_binge",
					Text:            "Do you have episodes of eating a very large amount of food with a sense of losing control?",
					SimpleText:      "Do you binge eat and feel unable to stop?",
					ResponseType:    ResponseYesNo,
					CriteriaWeight:  1.5,
					SymptomCategory: "binge_eating",
					Examples:        []string{"Eating in secret until uncomfortably full"},
				},
				{
					ID:              "eat_body",
					Text:            "How much do concerns about your body weight or shape affect how you feel about yourself?",
					SimpleText:      "How much does body image affect how you see yourself?",
					ResponseType:    ResponseScale,
					ScaleMin:        0,
					ScaleMax:        3,
					Required:        true,
					CriteriaWeight:  1.5,
					SymptomCategory: "body_image",
				},
			},
		},
		{
			ID:                  "ALCOHOL_USE",
			Name:                "Alcohol Use Disorder",
			Description:         "A problematic pattern of alcohol use leading to clinically significant impairment or distress",
			Category:            "substance",
			DiagnosticThreshold: 0.55,
			EstimatedTimeMins:   15,
			PriorityWeight:      0.7,
			Criteria: []string{
				"Alcohol is often taken in larger amounts or over a longer period than intended",
				"Persistent desire or unsuccessful efforts to cut down alcohol use",
				"Craving, or a strong desire to use alcohol",
				"Continued use despite recurrent social or interpersonal problems",
				"Tolerance, needing markedly increased amounts for the desired effect",
				"Withdrawal symptoms when alcohol use is stopped",
			},
			Questions: []Question{
				{
					ID:              "alc_control",
					Text:            "Do you often drink more, or for longer, than you intended?",
					SimpleText:      "Do you end up drinking more than you planned?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "loss_of_control",
				},
				{
					ID:              "alc_cut",
					Text:            "Have you tried to cut down on drinking without success?",
					SimpleText:      "Have attempts to cut back on drinking failed?",
					ResponseType:    ResponseYesNo,
					CriteriaWeight:  1.5,
					SymptomCategory: "failed_cutback",
				},
				{
					ID:              "alc_impact",
					Text:            "Has drinking caused problems with work, relationships, or your health?",
					SimpleText:      "Has drinking caused problems in your life?",
					ResponseType:    ResponseMultipleChoice,
					Options:         []string{"No problems", "Work or school problems", "Relationship problems", "Health problems", "Legal problems"},
					CriteriaWeight:  1.5,
					SymptomCategory: "use_consequences",
				},
			},
		},
		{
			ID:                  "SUBSTANCE_USE",
			Name:                "Substance Use Disorder",
			Description:         "A problematic pattern of drug use leading to clinically significant impairment or distress",
			Category:            "substance",
			DiagnosticThreshold: 0.55,
			EstimatedTimeMins:   15,
			PriorityWeight:      0.7,
			Criteria: []string{
				"The substance is often taken in larger amounts or over a longer period than intended",
				"Persistent desire or unsuccessful efforts to cut down use",
				"A great deal of time is spent obtaining, using, or recovering from the substance",
				"Craving, or a strong desire to use the substance",
				"Recurrent use resulting in failure to fulfill major role obligations",
			},
			Questions: []Question{
				{
					ID:              "sub_use",
					Text:            "In the past year, have you used drugs, or used prescription medication in ways other than prescribed?",
					SimpleText:      "Have you used drugs, or misused prescription medication, in the past year?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "substance_use",
				},
				{
					ID:              "sub_control",
					Text:            "Do you use more, or more often, than you intend to?",
					SimpleText:      "Is it hard to keep use within the limits you set?",
					ResponseType:    ResponseYesNo,
					CriteriaWeight:  1.5,
					SymptomCategory: "loss_of_control",
				},
				{
					ID:              "sub_craving",
					Text:            "Do you experience cravings or strong urges to use?",
					SimpleText:      "Do you get strong cravings to use?",
					ResponseType:    ResponseYesNo,
					CriteriaWeight:  1.0,
					SymptomCategory: "craving",
				},
			},
		},
		{
			ID:                  "ADJUSTMENT",
			Name:                "Adjustment Disorder",
			Description:         "Emotional or behavioral symptoms developing within three months of an identifiable stressor, out of proportion to it",
			Category:            "stress",
			DiagnosticThreshold: 0.55,
			EstimatedTimeMins:   15,
			PriorityWeight:      0.5,
			Criteria: []string{
				"Emotional or behavioral symptoms in response to an identifiable stressor within three months of onset",
				"Marked distress out of proportion to the severity of the stressor",
				"Significant impairment in social or occupational functioning",
				"The disturbance does not meet criteria for another mental disorder",
			},
			Questions: []Question{
				{
					ID:              "adj_stressor",
					Text:            "Did your difficulties begin within three months of a specific stressful event, such as a job loss, breakup, or move?",
					SimpleText:      "Did these problems start soon after a major life change or stressful event?",
					ResponseType:    ResponseYesNo,
					Required:        true,
					CriteriaWeight:  2.0,
					SymptomCategory: "identifiable_stressor",
					Examples:        []string{"Symptoms starting after a divorce", "Distress following a sudden job loss"},
				},
				{
					ID:              "adj_distress",
					Text:            "How distressed do you feel relative to what the situation would normally cause?",
					SimpleText:      "How overwhelming does it feel, compared to what you would expect?",
					ResponseType:    ResponseScale,
					ScaleMin:        0,
					ScaleMax:        3,
					Required:        true,
					CriteriaWeight:  1.5,
					SymptomCategory: "disproportionate_distress",
				},
				{
					ID:              "adj_function",
					Text:            "Is the distress interfering with work, school, or relationships?",
					SimpleText:      "Is it getting in the way of daily life?",
					ResponseType:    ResponseYesNo,
					CriteriaWeight:  1.0,
					SymptomCategory: "functional_impairment",
				},
			},
		},
	}
}
