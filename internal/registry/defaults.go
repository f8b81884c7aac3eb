package registry

import "mindtriage/internal/model"

// DefaultBank builds the registry from the built-in screening questionnaire,
// used when no BANK_PATH is configured
func DefaultBank() (*Registry, error) {
	return New(defaultQuestions(), defaultRules())
}

func defaultQuestions() []model.Question {
	return []model.Question{
		{
			ID:               "feeling_depressed",
			Text:             "Over the last two weeks, have you been feeling down, depressed, or hopeless most days?",
			TextAr:           "خلال الأسبوعين الماضيين، هل شعرت بالحزن أو الاكتئاب أو اليأس في معظم الأيام؟",
			TriggerCondition: model.ConditionDepression,
		},
		{
			ID:               "loss_of_interest",
			Text:             "Have you lost interest or pleasure in things you usually enjoy?",
			TextAr:           "هل فقدت الاهتمام أو المتعة بالأشياء التي تستمتع بها عادة؟",
			TriggerCondition: model.ConditionDepression,
		},
		{
			ID:               "anxiety_attacks",
			Text:             "Do you experience sudden episodes of intense fear or panic?",
			TextAr:           "هل تعاني من نوبات مفاجئة من الخوف الشديد أو الهلع؟",
			TriggerCondition: model.ConditionAnxiety,
		},
		{
			ID:               "sleep_problems",
			Text:             "Do you have serious trouble falling or staying asleep most nights?",
			TextAr:           "هل تواجه صعوبة كبيرة في النوم أو الاستمرار فيه معظم الليالي؟",
			TriggerCondition: model.ConditionInsomnia,
		},
		{
			ID:               "hopelessness",
			Text:             "Do you feel that things will never get better for you?",
			TextAr:           "هل تشعر أن الأمور لن تتحسن أبداً بالنسبة لك؟",
			TriageRisk:       model.RiskModerate,
			TriageReason:     "Persistent hopelessness reported",
			TriggerCondition: model.ConditionDepression,
		},
		{
			ID:               "self_harm",
			Text:             "Have you deliberately hurt yourself in the past month?",
			TextAr:           "هل آذيت نفسك عمداً خلال الشهر الماضي؟",
			TriageRisk:       model.RiskHigh,
			TriageReason:     "Recent self-harm reported",
			TriggerCondition: model.ConditionSelfHarm,
		},
		{
			ID:               "ending_life",
			Text:             "Have you had thoughts of ending your life?",
			TextAr:           "هل راودتك أفكار بإنهاء حياتك؟",
			TriageRisk:       model.RiskImminent,
			TriageReason:     "Thoughts of ending life reported",
			TriggerCondition: model.ConditionSuicidalIdeation,
		},
		{
			ID:               "suicide_plan",
			Text:             "Do you currently have a plan to harm yourself or end your life?",
			TextAr:           "هل لديك حالياً خطة لإيذاء نفسك أو إنهاء حياتك؟",
			TriageRisk:       model.RiskHigh,
			TriageReason:     "Self-harm planning reported",
			TriggerCondition: model.ConditionSuicidalIdeation,
		},
		{
			ID:               "hearing_voices",
			Text:             "Do you hear voices that other people cannot hear?",
			TextAr:           "هل تسمع أصواتاً لا يستطيع الآخرون سماعها؟",
			TriageRisk:       model.RiskHigh,
			TriageReason:     "Auditory hallucinations reported",
			TriggerCondition: model.ConditionPsychosis,
		},
		{
			ID:               "seeing_things",
			Text:             "Do you see things that other people cannot see?",
			TextAr:           "هل ترى أشياء لا يستطيع الآخرون رؤيتها؟",
			TriageRisk:       model.RiskHigh,
			TriageReason:     "Visual hallucinations reported",
			TriggerCondition: model.ConditionPsychosis,
		},
		{
			ID:               "substance_use",
			Text:             "Has drinking or drug use caused problems in your daily life?",
			TextAr:           "هل تسبب شرب الكحول أو تعاطي المخدرات في مشاكل في حياتك اليومية؟",
			TriageRisk:       model.RiskModerate,
			TriageReason:     "Problematic substance use reported",
			TriggerCondition: model.ConditionSubstanceUse,
		},
	}
}

// defaultRules is the curated explicit rule list. It overrides the question
// metadata for the questions it covers: ending_life keeps its imminent level
// with a curated reason, and suicide_plan is escalated from the high level in
// its metadata to imminent.
func defaultRules() []model.Rule {
	return []model.Rule{
		{
			QuestionID:   "ending_life",
			TriggerValue: true,
			Risk:         model.RiskImminent,
			Reason:       "Active suicidal ideation reported",
			Actions:      model.EscalationActions(),
		},
		{
			QuestionID:   "suicide_plan",
			TriggerValue: true,
			Risk:         model.RiskImminent,
			Reason:       "Concrete plan for self-harm reported",
			Actions:      model.EscalationActions(),
		},
	}
}
