package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SelectionEvent records one module-selection run: the patient's
// presenting concern, the selection parameters, and the ranked modules.
type SelectionEvent struct {
	ent.Schema
}

func (SelectionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// SelectedModule is one ranked entry stored inside a selection event.
type SelectedModule struct {
	ModuleID   string  `json:"module_id"`
	ModuleName string  `json:"module_name"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	Priority   string  `json:"priority"`
}

func (SelectionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			Comment("UUID grouping selection, administration, and risk events"),
		field.String("concern").
			Comment("Presenting concern text at selection time"),
		field.Int("max_modules").
			Comment("Requested result cap"),
		field.Float("min_threshold").
			Comment("Relevancy cutoff applied"),
		field.JSON("selected", []SelectedModule{}).
			Optional().
			Comment("Ranked modules with scores, highest first"),
	}
}

func (SelectionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
	}
}
