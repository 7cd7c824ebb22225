package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdministrationEvent records one completed module administration with
// its score, criteria outcome, and severity.
type AdministrationEvent struct {
	ent.Schema
}

func (AdministrationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AdministrationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			Comment("UUID grouping selection, administration, and risk events"),
		field.String("module_id").
			Comment("Administered module, e.g. MDD, GAD"),
		field.String("module_name"),
		field.Float("total_score"),
		field.Float("max_score"),
		field.Float("percentage").
			Comment("total_score / max_score in [0,1]"),
		field.Bool("criteria_met"),
		field.String("severity").
			Default("").
			Comment("mild, moderate, severe, extreme, or empty when criteria unmet"),
		field.Int("symptom_count").
			Default(0).
			Comment("Symptoms extracted from positive responses"),
		field.Int("admin_time_mins").
			Default(0),
		field.JSON("question_scores", map[string]float64{}).
			Optional().
			Comment("Per-question normalized scores"),
	}
}

func (AdministrationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("module_id"),
		index.Fields("criteria_met"),
	}
}
