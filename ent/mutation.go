// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ksuri/mindtriage/ent/administrationevent"
	"github.com/ksuri/mindtriage/ent/llmrequestevent"
	"github.com/ksuri/mindtriage/ent/patientsnapshot"
	"github.com/ksuri/mindtriage/ent/predicate"
	"github.com/ksuri/mindtriage/ent/riskevent"
	"github.com/ksuri/mindtriage/ent/schema"
	"github.com/ksuri/mindtriage/ent/selectionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdministrationEvent = "AdministrationEvent"
	TypeLLMRequestEvent     = "LLMRequestEvent"
	TypePatientSnapshot     = "PatientSnapshot"
	TypeRiskEvent           = "RiskEvent"
	TypeSelectionEvent      = "SelectionEvent"
)

// AdministrationEventMutation represents an operation that mutates the AdministrationEvent nodes in the graph.
type AdministrationEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	assessment_id      *string
	module_id          *string
	module_name        *string
	total_score        *float64
	addtotal_score     *float64
	max_score          *float64
	addmax_score       *float64
	percentage         *float64
	addpercentage      *float64
	criteria_met       *bool
	severity           *string
	symptom_count      *int
	addsymptom_count   *int
	admin_time_mins    *int
	addadmin_time_mins *int
	question_scores    *map[string]float64
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AdministrationEvent, error)
	predicates         []predicate.AdministrationEvent
}

var _ ent.Mutation = (*AdministrationEventMutation)(nil)

// administrationeventOption allows management of the mutation configuration using functional options.
type administrationeventOption func(*AdministrationEventMutation)

// newAdministrationEventMutation creates new mutation for the AdministrationEvent entity.
func newAdministrationEventMutation(c config, op Op, opts ...administrationeventOption) *AdministrationEventMutation {
	m := &AdministrationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAdministrationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdministrationEventID sets the ID field of the mutation.
func withAdministrationEventID(id int) administrationeventOption {
	return func(m *AdministrationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AdministrationEvent
		)
		m.oldValue = func(ctx context.Context) (*AdministrationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdministrationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdministrationEvent sets the old AdministrationEvent of the mutation.
func withAdministrationEvent(node *AdministrationEvent) administrationeventOption {
	return func(m *AdministrationEventMutation) {
		m.oldValue = func(context.Context) (*AdministrationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdministrationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdministrationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdministrationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdministrationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdministrationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AdministrationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AdministrationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AdministrationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AdministrationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AdministrationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AdministrationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AdministrationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AdministrationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAssessmentID sets the "assessment_id" field.
func (m *AdministrationEventMutation) SetAssessmentID(s string) {
	m.assessment_id = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *AdministrationEventMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *AdministrationEventMutation) ResetAssessmentID() {
	m.assessment_id = nil
}

// SetModuleID sets the "module_id" field.
func (m *AdministrationEventMutation) SetModuleID(s string) {
	m.module_id = &s
}

// ModuleID returns the value of the "module_id" field in the mutation.
func (m *AdministrationEventMutation) ModuleID() (r string, exists bool) {
	v := m.module_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleID returns the old "module_id" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldModuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleID: %w", err)
	}
	return oldValue.ModuleID, nil
}

// ResetModuleID resets all changes to the "module_id" field.
func (m *AdministrationEventMutation) ResetModuleID() {
	m.module_id = nil
}

// SetModuleName sets the "module_name" field.
func (m *AdministrationEventMutation) SetModuleName(s string) {
	m.module_name = &s
}

// ModuleName returns the value of the "module_name" field in the mutation.
func (m *AdministrationEventMutation) ModuleName() (r string, exists bool) {
	v := m.module_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleName returns the old "module_name" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldModuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleName: %w", err)
	}
	return oldValue.ModuleName, nil
}

// ResetModuleName resets all changes to the "module_name" field.
func (m *AdministrationEventMutation) ResetModuleName() {
	m.module_name = nil
}

// SetTotalScore sets the "total_score" field.
func (m *AdministrationEventMutation) SetTotalScore(f float64) {
	m.total_score = &f
	m.addtotal_score = nil
}

// TotalScore returns the value of the "total_score" field in the mutation.
func (m *AdministrationEventMutation) TotalScore() (r float64, exists bool) {
	v := m.total_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScore returns the old "total_score" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldTotalScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScore: %w", err)
	}
	return oldValue.TotalScore, nil
}

// AddTotalScore adds f to the "total_score" field.
func (m *AdministrationEventMutation) AddTotalScore(f float64) {
	if m.addtotal_score != nil {
		*m.addtotal_score += f
	} else {
		m.addtotal_score = &f
	}
}

// AddedTotalScore returns the value that was added to the "total_score" field in this mutation.
func (m *AdministrationEventMutation) AddedTotalScore() (r float64, exists bool) {
	v := m.addtotal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalScore resets all changes to the "total_score" field.
func (m *AdministrationEventMutation) ResetTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
}

// SetMaxScore sets the "max_score" field.
func (m *AdministrationEventMutation) SetMaxScore(f float64) {
	m.max_score = &f
	m.addmax_score = nil
}

// MaxScore returns the value of the "max_score" field in the mutation.
func (m *AdministrationEventMutation) MaxScore() (r float64, exists bool) {
	v := m.max_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxScore returns the old "max_score" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldMaxScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxScore: %w", err)
	}
	return oldValue.MaxScore, nil
}

// AddMaxScore adds f to the "max_score" field.
func (m *AdministrationEventMutation) AddMaxScore(f float64) {
	if m.addmax_score != nil {
		*m.addmax_score += f
	} else {
		m.addmax_score = &f
	}
}

// AddedMaxScore returns the value that was added to the "max_score" field in this mutation.
func (m *AdministrationEventMutation) AddedMaxScore() (r float64, exists bool) {
	v := m.addmax_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxScore resets all changes to the "max_score" field.
func (m *AdministrationEventMutation) ResetMaxScore() {
	m.max_score = nil
	m.addmax_score = nil
}

// SetPercentage sets the "percentage" field.
func (m *AdministrationEventMutation) SetPercentage(f float64) {
	m.percentage = &f
	m.addpercentage = nil
}

// Percentage returns the value of the "percentage" field in the mutation.
func (m *AdministrationEventMutation) Percentage() (r float64, exists bool) {
	v := m.percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldPercentage returns the old "percentage" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercentage: %w", err)
	}
	return oldValue.Percentage, nil
}

// AddPercentage adds f to the "percentage" field.
func (m *AdministrationEventMutation) AddPercentage(f float64) {
	if m.addpercentage != nil {
		*m.addpercentage += f
	} else {
		m.addpercentage = &f
	}
}

// AddedPercentage returns the value that was added to the "percentage" field in this mutation.
func (m *AdministrationEventMutation) AddedPercentage() (r float64, exists bool) {
	v := m.addpercentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercentage resets all changes to the "percentage" field.
func (m *AdministrationEventMutation) ResetPercentage() {
	m.percentage = nil
	m.addpercentage = nil
}

// SetCriteriaMet sets the "criteria_met" field.
func (m *AdministrationEventMutation) SetCriteriaMet(b bool) {
	m.criteria_met = &b
}

// CriteriaMet returns the value of the "criteria_met" field in the mutation.
func (m *AdministrationEventMutation) CriteriaMet() (r bool, exists bool) {
	v := m.criteria_met
	if v == nil {
		return
	}
	return *v, true
}

// OldCriteriaMet returns the old "criteria_met" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldCriteriaMet(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriteriaMet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriteriaMet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriteriaMet: %w", err)
	}
	return oldValue.CriteriaMet, nil
}

// ResetCriteriaMet resets all changes to the "criteria_met" field.
func (m *AdministrationEventMutation) ResetCriteriaMet() {
	m.criteria_met = nil
}

// SetSeverity sets the "severity" field.
func (m *AdministrationEventMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AdministrationEventMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AdministrationEventMutation) ResetSeverity() {
	m.severity = nil
}

// SetSymptomCount sets the "symptom_count" field.
func (m *AdministrationEventMutation) SetSymptomCount(i int) {
	m.symptom_count = &i
	m.addsymptom_count = nil
}

// SymptomCount returns the value of the "symptom_count" field in the mutation.
func (m *AdministrationEventMutation) SymptomCount() (r int, exists bool) {
	v := m.symptom_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSymptomCount returns the old "symptom_count" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldSymptomCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymptomCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymptomCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymptomCount: %w", err)
	}
	return oldValue.SymptomCount, nil
}

// AddSymptomCount adds i to the "symptom_count" field.
func (m *AdministrationEventMutation) AddSymptomCount(i int) {
	if m.addsymptom_count != nil {
		*m.addsymptom_count += i
	} else {
		m.addsymptom_count = &i
	}
}

// AddedSymptomCount returns the value that was added to the "symptom_count" field in this mutation.
func (m *AdministrationEventMutation) AddedSymptomCount() (r int, exists bool) {
	v := m.addsymptom_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSymptomCount resets all changes to the "symptom_count" field.
func (m *AdministrationEventMutation) ResetSymptomCount() {
	m.symptom_count = nil
	m.addsymptom_count = nil
}

// SetAdminTimeMins sets the "admin_time_mins" field.
func (m *AdministrationEventMutation) SetAdminTimeMins(i int) {
	m.admin_time_mins = &i
	m.addadmin_time_mins = nil
}

// AdminTimeMins returns the value of the "admin_time_mins" field in the mutation.
func (m *AdministrationEventMutation) AdminTimeMins() (r int, exists bool) {
	v := m.admin_time_mins
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminTimeMins returns the old "admin_time_mins" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldAdminTimeMins(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminTimeMins is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminTimeMins requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminTimeMins: %w", err)
	}
	return oldValue.AdminTimeMins, nil
}

// AddAdminTimeMins adds i to the "admin_time_mins" field.
func (m *AdministrationEventMutation) AddAdminTimeMins(i int) {
	if m.addadmin_time_mins != nil {
		*m.addadmin_time_mins += i
	} else {
		m.addadmin_time_mins = &i
	}
}

// AddedAdminTimeMins returns the value that was added to the "admin_time_mins" field in this mutation.
func (m *AdministrationEventMutation) AddedAdminTimeMins() (r int, exists bool) {
	v := m.addadmin_time_mins
	if v == nil {
		return
	}
	return *v, true
}

// ResetAdminTimeMins resets all changes to the "admin_time_mins" field.
func (m *AdministrationEventMutation) ResetAdminTimeMins() {
	m.admin_time_mins = nil
	m.addadmin_time_mins = nil
}

// SetQuestionScores sets the "question_scores" field.
func (m *AdministrationEventMutation) SetQuestionScores(value map[string]float64) {
	m.question_scores = &value
}

// QuestionScores returns the value of the "question_scores" field in the mutation.
func (m *AdministrationEventMutation) QuestionScores() (r map[string]float64, exists bool) {
	v := m.question_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionScores returns the old "question_scores" field's value of the AdministrationEvent entity.
// If the AdministrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdministrationEventMutation) OldQuestionScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionScores: %w", err)
	}
	return oldValue.QuestionScores, nil
}

// ClearQuestionScores clears the value of the "question_scores" field.
func (m *AdministrationEventMutation) ClearQuestionScores() {
	m.question_scores = nil
	m.clearedFields[administrationevent.FieldQuestionScores] = struct{}{}
}

// QuestionScoresCleared returns if the "question_scores" field was cleared in this mutation.
func (m *AdministrationEventMutation) QuestionScoresCleared() bool {
	_, ok := m.clearedFields[administrationevent.FieldQuestionScores]
	return ok
}

// ResetQuestionScores resets all changes to the "question_scores" field.
func (m *AdministrationEventMutation) ResetQuestionScores() {
	m.question_scores = nil
	delete(m.clearedFields, administrationevent.FieldQuestionScores)
}

// Where appends a list predicates to the AdministrationEventMutation builder.
func (m *AdministrationEventMutation) Where(ps ...predicate.AdministrationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdministrationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdministrationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdministrationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdministrationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdministrationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdministrationEvent).
func (m *AdministrationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdministrationEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, administrationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, administrationevent.FieldTimestamp)
	}
	if m.assessment_id != nil {
		fields = append(fields, administrationevent.FieldAssessmentID)
	}
	if m.module_id != nil {
		fields = append(fields, administrationevent.FieldModuleID)
	}
	if m.module_name != nil {
		fields = append(fields, administrationevent.FieldModuleName)
	}
	if m.total_score != nil {
		fields = append(fields, administrationevent.FieldTotalScore)
	}
	if m.max_score != nil {
		fields = append(fields, administrationevent.FieldMaxScore)
	}
	if m.percentage != nil {
		fields = append(fields, administrationevent.FieldPercentage)
	}
	if m.criteria_met != nil {
		fields = append(fields, administrationevent.FieldCriteriaMet)
	}
	if m.severity != nil {
		fields = append(fields, administrationevent.FieldSeverity)
	}
	if m.symptom_count != nil {
		fields = append(fields, administrationevent.FieldSymptomCount)
	}
	if m.admin_time_mins != nil {
		fields = append(fields, administrationevent.FieldAdminTimeMins)
	}
	if m.question_scores != nil {
		fields = append(fields, administrationevent.FieldQuestionScores)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdministrationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case administrationevent.FieldSequence:
		return m.Sequence()
	case administrationevent.FieldTimestamp:
		return m.Timestamp()
	case administrationevent.FieldAssessmentID:
		return m.AssessmentID()
	case administrationevent.FieldModuleID:
		return m.ModuleID()
	case administrationevent.FieldModuleName:
		return m.ModuleName()
	case administrationevent.FieldTotalScore:
		return m.TotalScore()
	case administrationevent.FieldMaxScore:
		return m.MaxScore()
	case administrationevent.FieldPercentage:
		return m.Percentage()
	case administrationevent.FieldCriteriaMet:
		return m.CriteriaMet()
	case administrationevent.FieldSeverity:
		return m.Severity()
	case administrationevent.FieldSymptomCount:
		return m.SymptomCount()
	case administrationevent.FieldAdminTimeMins:
		return m.AdminTimeMins()
	case administrationevent.FieldQuestionScores:
		return m.QuestionScores()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdministrationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case administrationevent.FieldSequence:
		return m.OldSequence(ctx)
	case administrationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case administrationevent.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case administrationevent.FieldModuleID:
		return m.OldModuleID(ctx)
	case administrationevent.FieldModuleName:
		return m.OldModuleName(ctx)
	case administrationevent.FieldTotalScore:
		return m.OldTotalScore(ctx)
	case administrationevent.FieldMaxScore:
		return m.OldMaxScore(ctx)
	case administrationevent.FieldPercentage:
		return m.OldPercentage(ctx)
	case administrationevent.FieldCriteriaMet:
		return m.OldCriteriaMet(ctx)
	case administrationevent.FieldSeverity:
		return m.OldSeverity(ctx)
	case administrationevent.FieldSymptomCount:
		return m.OldSymptomCount(ctx)
	case administrationevent.FieldAdminTimeMins:
		return m.OldAdminTimeMins(ctx)
	case administrationevent.FieldQuestionScores:
		return m.OldQuestionScores(ctx)
	}
	return nil, fmt.Errorf("unknown AdministrationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdministrationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case administrationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case administrationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case administrationevent.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case administrationevent.FieldModuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleID(v)
		return nil
	case administrationevent.FieldModuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleName(v)
		return nil
	case administrationevent.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScore(v)
		return nil
	case administrationevent.FieldMaxScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxScore(v)
		return nil
	case administrationevent.FieldPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercentage(v)
		return nil
	case administrationevent.FieldCriteriaMet:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriteriaMet(v)
		return nil
	case administrationevent.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case administrationevent.FieldSymptomCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymptomCount(v)
		return nil
	case administrationevent.FieldAdminTimeMins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminTimeMins(v)
		return nil
	case administrationevent.FieldQuestionScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionScores(v)
		return nil
	}
	return fmt.Errorf("unknown AdministrationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdministrationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, administrationevent.FieldSequence)
	}
	if m.addtotal_score != nil {
		fields = append(fields, administrationevent.FieldTotalScore)
	}
	if m.addmax_score != nil {
		fields = append(fields, administrationevent.FieldMaxScore)
	}
	if m.addpercentage != nil {
		fields = append(fields, administrationevent.FieldPercentage)
	}
	if m.addsymptom_count != nil {
		fields = append(fields, administrationevent.FieldSymptomCount)
	}
	if m.addadmin_time_mins != nil {
		fields = append(fields, administrationevent.FieldAdminTimeMins)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdministrationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case administrationevent.FieldSequence:
		return m.AddedSequence()
	case administrationevent.FieldTotalScore:
		return m.AddedTotalScore()
	case administrationevent.FieldMaxScore:
		return m.AddedMaxScore()
	case administrationevent.FieldPercentage:
		return m.AddedPercentage()
	case administrationevent.FieldSymptomCount:
		return m.AddedSymptomCount()
	case administrationevent.FieldAdminTimeMins:
		return m.AddedAdminTimeMins()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdministrationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case administrationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case administrationevent.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScore(v)
		return nil
	case administrationevent.FieldMaxScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxScore(v)
		return nil
	case administrationevent.FieldPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercentage(v)
		return nil
	case administrationevent.FieldSymptomCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSymptomCount(v)
		return nil
	case administrationevent.FieldAdminTimeMins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdminTimeMins(v)
		return nil
	}
	return fmt.Errorf("unknown AdministrationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdministrationEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(administrationevent.FieldQuestionScores) {
		fields = append(fields, administrationevent.FieldQuestionScores)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdministrationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdministrationEventMutation) ClearField(name string) error {
	switch name {
	case administrationevent.FieldQuestionScores:
		m.ClearQuestionScores()
		return nil
	}
	return fmt.Errorf("unknown AdministrationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdministrationEventMutation) ResetField(name string) error {
	switch name {
	case administrationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case administrationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case administrationevent.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case administrationevent.FieldModuleID:
		m.ResetModuleID()
		return nil
	case administrationevent.FieldModuleName:
		m.ResetModuleName()
		return nil
	case administrationevent.FieldTotalScore:
		m.ResetTotalScore()
		return nil
	case administrationevent.FieldMaxScore:
		m.ResetMaxScore()
		return nil
	case administrationevent.FieldPercentage:
		m.ResetPercentage()
		return nil
	case administrationevent.FieldCriteriaMet:
		m.ResetCriteriaMet()
		return nil
	case administrationevent.FieldSeverity:
		m.ResetSeverity()
		return nil
	case administrationevent.FieldSymptomCount:
		m.ResetSymptomCount()
		return nil
	case administrationevent.FieldAdminTimeMins:
		m.ResetAdminTimeMins()
		return nil
	case administrationevent.FieldQuestionScores:
		m.ResetQuestionScores()
		return nil
	}
	return fmt.Errorf("unknown AdministrationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdministrationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdministrationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdministrationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdministrationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdministrationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdministrationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdministrationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdministrationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdministrationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdministrationEvent edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// PatientSnapshotMutation represents an operation that mutates the PatientSnapshot nodes in the graph.
type PatientSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	assessment_id *string
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PatientSnapshot, error)
	predicates    []predicate.PatientSnapshot
}

var _ ent.Mutation = (*PatientSnapshotMutation)(nil)

// patientsnapshotOption allows management of the mutation configuration using functional options.
type patientsnapshotOption func(*PatientSnapshotMutation)

// newPatientSnapshotMutation creates new mutation for the PatientSnapshot entity.
func newPatientSnapshotMutation(c config, op Op, opts ...patientsnapshotOption) *PatientSnapshotMutation {
	m := &PatientSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypePatientSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientSnapshotID sets the ID field of the mutation.
func withPatientSnapshotID(id int) patientsnapshotOption {
	return func(m *PatientSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *PatientSnapshot
		)
		m.oldValue = func(ctx context.Context) (*PatientSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatientSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatientSnapshot sets the old PatientSnapshot of the mutation.
func withPatientSnapshot(node *PatientSnapshot) patientsnapshotOption {
	return func(m *PatientSnapshotMutation) {
		m.oldValue = func(context.Context) (*PatientSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatientSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PatientSnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PatientSnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PatientSnapshot entity.
// If the PatientSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientSnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PatientSnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PatientSnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PatientSnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PatientSnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PatientSnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PatientSnapshot entity.
// If the PatientSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientSnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PatientSnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAssessmentID sets the "assessment_id" field.
func (m *PatientSnapshotMutation) SetAssessmentID(s string) {
	m.assessment_id = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *PatientSnapshotMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the PatientSnapshot entity.
// If the PatientSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientSnapshotMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *PatientSnapshotMutation) ResetAssessmentID() {
	m.assessment_id = nil
}

// SetData sets the "data" field.
func (m *PatientSnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *PatientSnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the PatientSnapshot entity.
// If the PatientSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientSnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *PatientSnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the PatientSnapshotMutation builder.
func (m *PatientSnapshotMutation) Where(ps ...predicate.PatientSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatientSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatientSnapshot).
func (m *PatientSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.sequence != nil {
		fields = append(fields, patientsnapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, patientsnapshot.FieldTimestamp)
	}
	if m.assessment_id != nil {
		fields = append(fields, patientsnapshot.FieldAssessmentID)
	}
	if m.data != nil {
		fields = append(fields, patientsnapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patientsnapshot.FieldSequence:
		return m.Sequence()
	case patientsnapshot.FieldTimestamp:
		return m.Timestamp()
	case patientsnapshot.FieldAssessmentID:
		return m.AssessmentID()
	case patientsnapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patientsnapshot.FieldSequence:
		return m.OldSequence(ctx)
	case patientsnapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case patientsnapshot.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case patientsnapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown PatientSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patientsnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case patientsnapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case patientsnapshot.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case patientsnapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown PatientSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, patientsnapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patientsnapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patientsnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown PatientSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PatientSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientSnapshotMutation) ResetField(name string) error {
	switch name {
	case patientsnapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case patientsnapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case patientsnapshot.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case patientsnapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown PatientSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PatientSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PatientSnapshot edge %s", name)
}

// RiskEventMutation represents an operation that mutates the RiskEvent nodes in the graph.
type RiskEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	assessment_id *string
	risk_level    *string
	risk_value    *float64
	addrisk_value *float64
	factors       *[]string
	appendfactors []string
	rationale     *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RiskEvent, error)
	predicates    []predicate.RiskEvent
}

var _ ent.Mutation = (*RiskEventMutation)(nil)

// riskeventOption allows management of the mutation configuration using functional options.
type riskeventOption func(*RiskEventMutation)

// newRiskEventMutation creates new mutation for the RiskEvent entity.
func newRiskEventMutation(c config, op Op, opts ...riskeventOption) *RiskEventMutation {
	m := &RiskEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRiskEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRiskEventID sets the ID field of the mutation.
func withRiskEventID(id int) riskeventOption {
	return func(m *RiskEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RiskEvent
		)
		m.oldValue = func(ctx context.Context) (*RiskEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RiskEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRiskEvent sets the old RiskEvent of the mutation.
func withRiskEvent(node *RiskEvent) riskeventOption {
	return func(m *RiskEventMutation) {
		m.oldValue = func(context.Context) (*RiskEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RiskEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RiskEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RiskEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RiskEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RiskEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *RiskEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *RiskEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the RiskEvent entity.
// If the RiskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *RiskEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *RiskEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *RiskEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *RiskEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *RiskEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the RiskEvent entity.
// If the RiskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *RiskEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAssessmentID sets the "assessment_id" field.
func (m *RiskEventMutation) SetAssessmentID(s string) {
	m.assessment_id = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *RiskEventMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the RiskEvent entity.
// If the RiskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskEventMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *RiskEventMutation) ResetAssessmentID() {
	m.assessment_id = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *RiskEventMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *RiskEventMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the RiskEvent entity.
// If the RiskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskEventMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *RiskEventMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetRiskValue sets the "risk_value" field.
func (m *RiskEventMutation) SetRiskValue(f float64) {
	m.risk_value = &f
	m.addrisk_value = nil
}

// RiskValue returns the value of the "risk_value" field in the mutation.
func (m *RiskEventMutation) RiskValue() (r float64, exists bool) {
	v := m.risk_value
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskValue returns the old "risk_value" field's value of the RiskEvent entity.
// If the RiskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskEventMutation) OldRiskValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskValue: %w", err)
	}
	return oldValue.RiskValue, nil
}

// AddRiskValue adds f to the "risk_value" field.
func (m *RiskEventMutation) AddRiskValue(f float64) {
	if m.addrisk_value != nil {
		*m.addrisk_value += f
	} else {
		m.addrisk_value = &f
	}
}

// AddedRiskValue returns the value that was added to the "risk_value" field in this mutation.
func (m *RiskEventMutation) AddedRiskValue() (r float64, exists bool) {
	v := m.addrisk_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskValue resets all changes to the "risk_value" field.
func (m *RiskEventMutation) ResetRiskValue() {
	m.risk_value = nil
	m.addrisk_value = nil
}

// SetFactors sets the "factors" field.
func (m *RiskEventMutation) SetFactors(s []string) {
	m.factors = &s
	m.appendfactors = nil
}

// Factors returns the value of the "factors" field in the mutation.
func (m *RiskEventMutation) Factors() (r []string, exists bool) {
	v := m.factors
	if v == nil {
		return
	}
	return *v, true
}

// OldFactors returns the old "factors" field's value of the RiskEvent entity.
// If the RiskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskEventMutation) OldFactors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactors: %w", err)
	}
	return oldValue.Factors, nil
}

// AppendFactors adds s to the "factors" field.
func (m *RiskEventMutation) AppendFactors(s []string) {
	m.appendfactors = append(m.appendfactors, s...)
}

// AppendedFactors returns the list of values that were appended to the "factors" field in this mutation.
func (m *RiskEventMutation) AppendedFactors() ([]string, bool) {
	if len(m.appendfactors) == 0 {
		return nil, false
	}
	return m.appendfactors, true
}

// ClearFactors clears the value of the "factors" field.
func (m *RiskEventMutation) ClearFactors() {
	m.factors = nil
	m.appendfactors = nil
	m.clearedFields[riskevent.FieldFactors] = struct{}{}
}

// FactorsCleared returns if the "factors" field was cleared in this mutation.
func (m *RiskEventMutation) FactorsCleared() bool {
	_, ok := m.clearedFields[riskevent.FieldFactors]
	return ok
}

// ResetFactors resets all changes to the "factors" field.
func (m *RiskEventMutation) ResetFactors() {
	m.factors = nil
	m.appendfactors = nil
	delete(m.clearedFields, riskevent.FieldFactors)
}

// SetRationale sets the "rationale" field.
func (m *RiskEventMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *RiskEventMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the RiskEvent entity.
// If the RiskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskEventMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ResetRationale resets all changes to the "rationale" field.
func (m *RiskEventMutation) ResetRationale() {
	m.rationale = nil
}

// Where appends a list predicates to the RiskEventMutation builder.
func (m *RiskEventMutation) Where(ps ...predicate.RiskEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RiskEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RiskEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RiskEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RiskEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RiskEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RiskEvent).
func (m *RiskEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RiskEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, riskevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, riskevent.FieldTimestamp)
	}
	if m.assessment_id != nil {
		fields = append(fields, riskevent.FieldAssessmentID)
	}
	if m.risk_level != nil {
		fields = append(fields, riskevent.FieldRiskLevel)
	}
	if m.risk_value != nil {
		fields = append(fields, riskevent.FieldRiskValue)
	}
	if m.factors != nil {
		fields = append(fields, riskevent.FieldFactors)
	}
	if m.rationale != nil {
		fields = append(fields, riskevent.FieldRationale)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RiskEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case riskevent.FieldSequence:
		return m.Sequence()
	case riskevent.FieldTimestamp:
		return m.Timestamp()
	case riskevent.FieldAssessmentID:
		return m.AssessmentID()
	case riskevent.FieldRiskLevel:
		return m.RiskLevel()
	case riskevent.FieldRiskValue:
		return m.RiskValue()
	case riskevent.FieldFactors:
		return m.Factors()
	case riskevent.FieldRationale:
		return m.Rationale()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RiskEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case riskevent.FieldSequence:
		return m.OldSequence(ctx)
	case riskevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case riskevent.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case riskevent.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case riskevent.FieldRiskValue:
		return m.OldRiskValue(ctx)
	case riskevent.FieldFactors:
		return m.OldFactors(ctx)
	case riskevent.FieldRationale:
		return m.OldRationale(ctx)
	}
	return nil, fmt.Errorf("unknown RiskEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RiskEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case riskevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case riskevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case riskevent.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case riskevent.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case riskevent.FieldRiskValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskValue(v)
		return nil
	case riskevent.FieldFactors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactors(v)
		return nil
	case riskevent.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	}
	return fmt.Errorf("unknown RiskEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RiskEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, riskevent.FieldSequence)
	}
	if m.addrisk_value != nil {
		fields = append(fields, riskevent.FieldRiskValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RiskEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case riskevent.FieldSequence:
		return m.AddedSequence()
	case riskevent.FieldRiskValue:
		return m.AddedRiskValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RiskEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case riskevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case riskevent.FieldRiskValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskValue(v)
		return nil
	}
	return fmt.Errorf("unknown RiskEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RiskEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(riskevent.FieldFactors) {
		fields = append(fields, riskevent.FieldFactors)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RiskEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RiskEventMutation) ClearField(name string) error {
	switch name {
	case riskevent.FieldFactors:
		m.ClearFactors()
		return nil
	}
	return fmt.Errorf("unknown RiskEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RiskEventMutation) ResetField(name string) error {
	switch name {
	case riskevent.FieldSequence:
		m.ResetSequence()
		return nil
	case riskevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case riskevent.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case riskevent.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case riskevent.FieldRiskValue:
		m.ResetRiskValue()
		return nil
	case riskevent.FieldFactors:
		m.ResetFactors()
		return nil
	case riskevent.FieldRationale:
		m.ResetRationale()
		return nil
	}
	return fmt.Errorf("unknown RiskEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RiskEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RiskEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RiskEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RiskEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RiskEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RiskEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RiskEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RiskEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RiskEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RiskEvent edge %s", name)
}

// SelectionEventMutation represents an operation that mutates the SelectionEvent nodes in the graph.
type SelectionEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	assessment_id    *string
	concern          *string
	max_modules      *int
	addmax_modules   *int
	min_threshold    *float64
	addmin_threshold *float64
	selected         *[]schema.SelectedModule
	appendselected   []schema.SelectedModule
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SelectionEvent, error)
	predicates       []predicate.SelectionEvent
}

var _ ent.Mutation = (*SelectionEventMutation)(nil)

// selectioneventOption allows management of the mutation configuration using functional options.
type selectioneventOption func(*SelectionEventMutation)

// newSelectionEventMutation creates new mutation for the SelectionEvent entity.
func newSelectionEventMutation(c config, op Op, opts ...selectioneventOption) *SelectionEventMutation {
	m := &SelectionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSelectionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSelectionEventID sets the ID field of the mutation.
func withSelectionEventID(id int) selectioneventOption {
	return func(m *SelectionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SelectionEvent
		)
		m.oldValue = func(ctx context.Context) (*SelectionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SelectionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSelectionEvent sets the old SelectionEvent of the mutation.
func withSelectionEvent(node *SelectionEvent) selectioneventOption {
	return func(m *SelectionEventMutation) {
		m.oldValue = func(context.Context) (*SelectionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SelectionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SelectionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SelectionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SelectionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SelectionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SelectionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SelectionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SelectionEvent entity.
// If the SelectionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelectionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SelectionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SelectionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SelectionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SelectionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SelectionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SelectionEvent entity.
// If the SelectionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelectionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SelectionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAssessmentID sets the "assessment_id" field.
func (m *SelectionEventMutation) SetAssessmentID(s string) {
	m.assessment_id = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *SelectionEventMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the SelectionEvent entity.
// If the SelectionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelectionEventMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *SelectionEventMutation) ResetAssessmentID() {
	m.assessment_id = nil
}

// SetConcern sets the "concern" field.
func (m *SelectionEventMutation) SetConcern(s string) {
	m.concern = &s
}

// Concern returns the value of the "concern" field in the mutation.
func (m *SelectionEventMutation) Concern() (r string, exists bool) {
	v := m.concern
	if v == nil {
		return
	}
	return *v, true
}

// OldConcern returns the old "concern" field's value of the SelectionEvent entity.
// If the SelectionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelectionEventMutation) OldConcern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcern: %w", err)
	}
	return oldValue.Concern, nil
}

// ResetConcern resets all changes to the "concern" field.
func (m *SelectionEventMutation) ResetConcern() {
	m.concern = nil
}

// SetMaxModules sets the "max_modules" field.
func (m *SelectionEventMutation) SetMaxModules(i int) {
	m.max_modules = &i
	m.addmax_modules = nil
}

// MaxModules returns the value of the "max_modules" field in the mutation.
func (m *SelectionEventMutation) MaxModules() (r int, exists bool) {
	v := m.max_modules
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxModules returns the old "max_modules" field's value of the SelectionEvent entity.
// If the SelectionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelectionEventMutation) OldMaxModules(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxModules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxModules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxModules: %w", err)
	}
	return oldValue.MaxModules, nil
}

// AddMaxModules adds i to the "max_modules" field.
func (m *SelectionEventMutation) AddMaxModules(i int) {
	if m.addmax_modules != nil {
		*m.addmax_modules += i
	} else {
		m.addmax_modules = &i
	}
}

// AddedMaxModules returns the value that was added to the "max_modules" field in this mutation.
func (m *SelectionEventMutation) AddedMaxModules() (r int, exists bool) {
	v := m.addmax_modules
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxModules resets all changes to the "max_modules" field.
func (m *SelectionEventMutation) ResetMaxModules() {
	m.max_modules = nil
	m.addmax_modules = nil
}

// SetMinThreshold sets the "min_threshold" field.
func (m *SelectionEventMutation) SetMinThreshold(f float64) {
	m.min_threshold = &f
	m.addmin_threshold = nil
}

// MinThreshold returns the value of the "min_threshold" field in the mutation.
func (m *SelectionEventMutation) MinThreshold() (r float64, exists bool) {
	v := m.min_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldMinThreshold returns the old "min_threshold" field's value of the SelectionEvent entity.
// If the SelectionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelectionEventMutation) OldMinThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinThreshold: %w", err)
	}
	return oldValue.MinThreshold, nil
}

// AddMinThreshold adds f to the "min_threshold" field.
func (m *SelectionEventMutation) AddMinThreshold(f float64) {
	if m.addmin_threshold != nil {
		*m.addmin_threshold += f
	} else {
		m.addmin_threshold = &f
	}
}

// AddedMinThreshold returns the value that was added to the "min_threshold" field in this mutation.
func (m *SelectionEventMutation) AddedMinThreshold() (r float64, exists bool) {
	v := m.addmin_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinThreshold resets all changes to the "min_threshold" field.
func (m *SelectionEventMutation) ResetMinThreshold() {
	m.min_threshold = nil
	m.addmin_threshold = nil
}

// SetSelected sets the "selected" field.
func (m *SelectionEventMutation) SetSelected(sm []schema.SelectedModule) {
	m.selected = &sm
	m.appendselected = nil
}

// Selected returns the value of the "selected" field in the mutation.
func (m *SelectionEventMutation) Selected() (r []schema.SelectedModule, exists bool) {
	v := m.selected
	if v == nil {
		return
	}
	return *v, true
}

// OldSelected returns the old "selected" field's value of the SelectionEvent entity.
// If the SelectionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelectionEventMutation) OldSelected(ctx context.Context) (v []schema.SelectedModule, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelected: %w", err)
	}
	return oldValue.Selected, nil
}

// AppendSelected adds sm to the "selected" field.
func (m *SelectionEventMutation) AppendSelected(sm []schema.SelectedModule) {
	m.appendselected = append(m.appendselected, sm...)
}

// AppendedSelected returns the list of values that were appended to the "selected" field in this mutation.
func (m *SelectionEventMutation) AppendedSelected() ([]schema.SelectedModule, bool) {
	if len(m.appendselected) == 0 {
		return nil, false
	}
	return m.appendselected, true
}

// ClearSelected clears the value of the "selected" field.
func (m *SelectionEventMutation) ClearSelected() {
	m.selected = nil
	m.appendselected = nil
	m.clearedFields[selectionevent.FieldSelected] = struct{}{}
}

// SelectedCleared returns if the "selected" field was cleared in this mutation.
func (m *SelectionEventMutation) SelectedCleared() bool {
	_, ok := m.clearedFields[selectionevent.FieldSelected]
	return ok
}

// ResetSelected resets all changes to the "selected" field.
func (m *SelectionEventMutation) ResetSelected() {
	m.selected = nil
	m.appendselected = nil
	delete(m.clearedFields, selectionevent.FieldSelected)
}

// Where appends a list predicates to the SelectionEventMutation builder.
func (m *SelectionEventMutation) Where(ps ...predicate.SelectionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SelectionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SelectionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SelectionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SelectionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SelectionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SelectionEvent).
func (m *SelectionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SelectionEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, selectionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, selectionevent.FieldTimestamp)
	}
	if m.assessment_id != nil {
		fields = append(fields, selectionevent.FieldAssessmentID)
	}
	if m.concern != nil {
		fields = append(fields, selectionevent.FieldConcern)
	}
	if m.max_modules != nil {
		fields = append(fields, selectionevent.FieldMaxModules)
	}
	if m.min_threshold != nil {
		fields = append(fields, selectionevent.FieldMinThreshold)
	}
	if m.selected != nil {
		fields = append(fields, selectionevent.FieldSelected)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SelectionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case selectionevent.FieldSequence:
		return m.Sequence()
	case selectionevent.FieldTimestamp:
		return m.Timestamp()
	case selectionevent.FieldAssessmentID:
		return m.AssessmentID()
	case selectionevent.FieldConcern:
		return m.Concern()
	case selectionevent.FieldMaxModules:
		return m.MaxModules()
	case selectionevent.FieldMinThreshold:
		return m.MinThreshold()
	case selectionevent.FieldSelected:
		return m.Selected()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SelectionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case selectionevent.FieldSequence:
		return m.OldSequence(ctx)
	case selectionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case selectionevent.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case selectionevent.FieldConcern:
		return m.OldConcern(ctx)
	case selectionevent.FieldMaxModules:
		return m.OldMaxModules(ctx)
	case selectionevent.FieldMinThreshold:
		return m.OldMinThreshold(ctx)
	case selectionevent.FieldSelected:
		return m.OldSelected(ctx)
	}
	return nil, fmt.Errorf("unknown SelectionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SelectionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case selectionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case selectionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case selectionevent.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case selectionevent.FieldConcern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcern(v)
		return nil
	case selectionevent.FieldMaxModules:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxModules(v)
		return nil
	case selectionevent.FieldMinThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinThreshold(v)
		return nil
	case selectionevent.FieldSelected:
		v, ok := value.([]schema.SelectedModule)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelected(v)
		return nil
	}
	return fmt.Errorf("unknown SelectionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SelectionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, selectionevent.FieldSequence)
	}
	if m.addmax_modules != nil {
		fields = append(fields, selectionevent.FieldMaxModules)
	}
	if m.addmin_threshold != nil {
		fields = append(fields, selectionevent.FieldMinThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SelectionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case selectionevent.FieldSequence:
		return m.AddedSequence()
	case selectionevent.FieldMaxModules:
		return m.AddedMaxModules()
	case selectionevent.FieldMinThreshold:
		return m.AddedMinThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SelectionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case selectionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case selectionevent.FieldMaxModules:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxModules(v)
		return nil
	case selectionevent.FieldMinThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown SelectionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SelectionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(selectionevent.FieldSelected) {
		fields = append(fields, selectionevent.FieldSelected)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SelectionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SelectionEventMutation) ClearField(name string) error {
	switch name {
	case selectionevent.FieldSelected:
		m.ClearSelected()
		return nil
	}
	return fmt.Errorf("unknown SelectionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SelectionEventMutation) ResetField(name string) error {
	switch name {
	case selectionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case selectionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case selectionevent.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case selectionevent.FieldConcern:
		m.ResetConcern()
		return nil
	case selectionevent.FieldMaxModules:
		m.ResetMaxModules()
		return nil
	case selectionevent.FieldMinThreshold:
		m.ResetMinThreshold()
		return nil
	case selectionevent.FieldSelected:
		m.ResetSelected()
		return nil
	}
	return fmt.Errorf("unknown SelectionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SelectionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SelectionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SelectionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SelectionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SelectionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SelectionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SelectionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SelectionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SelectionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SelectionEvent edge %s", name)
}
