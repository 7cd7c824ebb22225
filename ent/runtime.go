// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ksuri/mindtriage/ent/administrationevent"
	"github.com/ksuri/mindtriage/ent/llmrequestevent"
	"github.com/ksuri/mindtriage/ent/patientsnapshot"
	"github.com/ksuri/mindtriage/ent/riskevent"
	"github.com/ksuri/mindtriage/ent/schema"
	"github.com/ksuri/mindtriage/ent/selectionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	administrationeventMixin := schema.AdministrationEvent{}.Mixin()
	administrationeventMixinFields0 := administrationeventMixin[0].Fields()
	_ = administrationeventMixinFields0
	administrationeventFields := schema.AdministrationEvent{}.Fields()
	_ = administrationeventFields
	// administrationeventDescTimestamp is the schema descriptor for timestamp field.
	administrationeventDescTimestamp := administrationeventMixinFields0[1].Descriptor()
	// administrationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	administrationevent.DefaultTimestamp = administrationeventDescTimestamp.Default.(func() time.Time)
	// administrationeventDescSeverity is the schema descriptor for severity field.
	administrationeventDescSeverity := administrationeventFields[7].Descriptor()
	// administrationevent.DefaultSeverity holds the default value on creation for the severity field.
	administrationevent.DefaultSeverity = administrationeventDescSeverity.Default.(string)
	// administrationeventDescSymptomCount is the schema descriptor for symptom_count field.
	administrationeventDescSymptomCount := administrationeventFields[8].Descriptor()
	// administrationevent.DefaultSymptomCount holds the default value on creation for the symptom_count field.
	administrationevent.DefaultSymptomCount = administrationeventDescSymptomCount.Default.(int)
	// administrationeventDescAdminTimeMins is the schema descriptor for admin_time_mins field.
	administrationeventDescAdminTimeMins := administrationeventFields[9].Descriptor()
	// administrationevent.DefaultAdminTimeMins holds the default value on creation for the admin_time_mins field.
	administrationevent.DefaultAdminTimeMins = administrationeventDescAdminTimeMins.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	patientsnapshotFields := schema.PatientSnapshot{}.Fields()
	_ = patientsnapshotFields
	// patientsnapshotDescTimestamp is the schema descriptor for timestamp field.
	patientsnapshotDescTimestamp := patientsnapshotFields[1].Descriptor()
	// patientsnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	patientsnapshot.DefaultTimestamp = patientsnapshotDescTimestamp.Default.(func() time.Time)
	riskeventMixin := schema.RiskEvent{}.Mixin()
	riskeventMixinFields0 := riskeventMixin[0].Fields()
	_ = riskeventMixinFields0
	riskeventFields := schema.RiskEvent{}.Fields()
	_ = riskeventFields
	// riskeventDescTimestamp is the schema descriptor for timestamp field.
	riskeventDescTimestamp := riskeventMixinFields0[1].Descriptor()
	// riskevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	riskevent.DefaultTimestamp = riskeventDescTimestamp.Default.(func() time.Time)
	// riskeventDescRationale is the schema descriptor for rationale field.
	riskeventDescRationale := riskeventFields[4].Descriptor()
	// riskevent.DefaultRationale holds the default value on creation for the rationale field.
	riskevent.DefaultRationale = riskeventDescRationale.Default.(string)
	selectioneventMixin := schema.SelectionEvent{}.Mixin()
	selectioneventMixinFields0 := selectioneventMixin[0].Fields()
	_ = selectioneventMixinFields0
	selectioneventFields := schema.SelectionEvent{}.Fields()
	_ = selectioneventFields
	// selectioneventDescTimestamp is the schema descriptor for timestamp field.
	selectioneventDescTimestamp := selectioneventMixinFields0[1].Descriptor()
	// selectionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	selectionevent.DefaultTimestamp = selectioneventDescTimestamp.Default.(func() time.Time)
}
