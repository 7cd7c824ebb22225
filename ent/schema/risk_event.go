package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RiskEvent records the outcome of one safety-risk assessment.
type RiskEvent struct {
	ent.Schema
}

func (RiskEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RiskEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			Comment("UUID grouping selection, administration, and risk events"),
		field.String("risk_level").
			Comment("low, moderate, high, critical"),
		field.Float("risk_value").
			Comment("Clamped aggregate in [0,1]"),
		field.JSON("factors", []string{}).
			Optional().
			Comment("Contributing factor names in evaluation order"),
		field.String("rationale").
			Default(""),
	}
}

func (RiskEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("risk_level"),
	}
}
