// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdministrationEventsColumns holds the columns for the "administration_events" table.
	AdministrationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "module_name", Type: field.TypeString},
		{Name: "total_score", Type: field.TypeFloat64},
		{Name: "max_score", Type: field.TypeFloat64},
		{Name: "percentage", Type: field.TypeFloat64},
		{Name: "criteria_met", Type: field.TypeBool},
		{Name: "severity", Type: field.TypeString, Default: ""},
		{Name: "symptom_count", Type: field.TypeInt, Default: 0},
		{Name: "admin_time_mins", Type: field.TypeInt, Default: 0},
		{Name: "question_scores", Type: field.TypeJSON, Nullable: true},
	}
	// AdministrationEventsTable holds the schema information for the "administration_events" table.
	AdministrationEventsTable = &schema.Table{
		Name:       "administration_events",
		Columns:    AdministrationEventsColumns,
		PrimaryKey: []*schema.Column{AdministrationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "administrationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AdministrationEventsColumns[1]},
			},
			{
				Name:    "administrationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AdministrationEventsColumns[2]},
			},
			{
				Name:    "administrationevent_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{AdministrationEventsColumns[3]},
			},
			{
				Name:    "administrationevent_module_id",
				Unique:  false,
				Columns: []*schema.Column{AdministrationEventsColumns[4]},
			},
			{
				Name:    "administrationevent_criteria_met",
				Unique:  false,
				Columns: []*schema.Column{AdministrationEventsColumns[9]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PatientSnapshotsColumns holds the columns for the "patient_snapshots" table.
	PatientSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
	}
	// PatientSnapshotsTable holds the schema information for the "patient_snapshots" table.
	PatientSnapshotsTable = &schema.Table{
		Name:       "patient_snapshots",
		Columns:    PatientSnapshotsColumns,
		PrimaryKey: []*schema.Column{PatientSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patientsnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PatientSnapshotsColumns[2]},
			},
			{
				Name:    "patientsnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{PatientSnapshotsColumns[1]},
			},
			{
				Name:    "patientsnapshot_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{PatientSnapshotsColumns[3]},
			},
		},
	}
	// RiskEventsColumns holds the columns for the "risk_events" table.
	RiskEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "risk_level", Type: field.TypeString},
		{Name: "risk_value", Type: field.TypeFloat64},
		{Name: "factors", Type: field.TypeJSON, Nullable: true},
		{Name: "rationale", Type: field.TypeString, Default: ""},
	}
	// RiskEventsTable holds the schema information for the "risk_events" table.
	RiskEventsTable = &schema.Table{
		Name:       "risk_events",
		Columns:    RiskEventsColumns,
		PrimaryKey: []*schema.Column{RiskEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "riskevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RiskEventsColumns[1]},
			},
			{
				Name:    "riskevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RiskEventsColumns[2]},
			},
			{
				Name:    "riskevent_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{RiskEventsColumns[3]},
			},
			{
				Name:    "riskevent_risk_level",
				Unique:  false,
				Columns: []*schema.Column{RiskEventsColumns[4]},
			},
		},
	}
	// SelectionEventsColumns holds the columns for the "selection_events" table.
	SelectionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "concern", Type: field.TypeString},
		{Name: "max_modules", Type: field.TypeInt},
		{Name: "min_threshold", Type: field.TypeFloat64},
		{Name: "selected", Type: field.TypeJSON, Nullable: true},
	}
	// SelectionEventsTable holds the schema information for the "selection_events" table.
	SelectionEventsTable = &schema.Table{
		Name:       "selection_events",
		Columns:    SelectionEventsColumns,
		PrimaryKey: []*schema.Column{SelectionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "selectionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SelectionEventsColumns[1]},
			},
			{
				Name:    "selectionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SelectionEventsColumns[2]},
			},
			{
				Name:    "selectionevent_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{SelectionEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdministrationEventsTable,
		LlmRequestEventsTable,
		PatientSnapshotsTable,
		RiskEventsTable,
		SelectionEventsTable,
	}
)

func init() {
}
