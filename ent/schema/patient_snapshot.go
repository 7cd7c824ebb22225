package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PatientSnapshot captures the structured patient input used for a
// selection run so past selections can be re-examined or re-scored.
type PatientSnapshot struct {
	ent.Schema
}

func (PatientSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Event sequence number at the time of capture"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.String("assessment_id").
			Comment("UUID linking to the selection run"),
		field.JSON("data", map[string]any{}).
			Comment("Full patient snapshot as JSON"),
	}
}

func (PatientSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
		index.Fields("assessment_id"),
	}
}
