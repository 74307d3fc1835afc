// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bazs0328/graduation/ent/attemptevent"
	"github.com/bazs0328/graduation/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *AttemptEventUpdate) SetQuizID(v int) *AttemptEventUpdate {
	_u.mutation.ResetQuizID()
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuizID(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// AddQuizID adds value to the "quiz_id" field.
func (_u *AttemptEventUpdate) AddQuizID(v int) *AttemptEventUpdate {
	_u.mutation.AddQuizID(v)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *AttemptEventUpdate) SetDocumentID(v int) *AttemptEventUpdate {
	_u.mutation.ResetDocumentID()
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDocumentID(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// AddDocumentID adds value to the "document_id" field.
func (_u *AttemptEventUpdate) AddDocumentID(v int) *AttemptEventUpdate {
	_u.mutation.AddDocumentID(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AttemptEventUpdate) SetQuestionCount(v int) *AttemptEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionCount(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AttemptEventUpdate) AddQuestionCount(v int) *AttemptEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetAnsweredCount sets the "answered_count" field.
func (_u *AttemptEventUpdate) SetAnsweredCount(v int) *AttemptEventUpdate {
	_u.mutation.ResetAnsweredCount()
	_u.mutation.SetAnsweredCount(v)
	return _u
}

// SetNillableAnsweredCount sets the "answered_count" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAnsweredCount(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetAnsweredCount(*v)
	}
	return _u
}

// AddAnsweredCount adds value to the "answered_count" field.
func (_u *AttemptEventUpdate) AddAnsweredCount(v int) *AttemptEventUpdate {
	_u.mutation.AddAnsweredCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdate) SetScore(v float64) *AttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScore(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdate) AddScore(v float64) *AttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *AttemptEventUpdate) SetAccuracy(v float64) *AttemptEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAccuracy(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *AttemptEventUpdate) AddAccuracy(v float64) *AttemptEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AttemptEventUpdate) SetFeedback(v string) *AttemptEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableFeedback(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(attemptevent.FieldQuizID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizID(); ok {
		_spec.AddField(attemptevent.FieldQuizID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(attemptevent.FieldDocumentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocumentID(); ok {
		_spec.AddField(attemptevent.FieldDocumentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(attemptevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(attemptevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnsweredCount(); ok {
		_spec.SetField(attemptevent.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnsweredCount(); ok {
		_spec.AddField(attemptevent.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(attemptevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(attemptevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(attemptevent.FieldFeedback, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *AttemptEventUpdateOne) SetQuizID(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetQuizID()
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuizID(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// AddQuizID adds value to the "quiz_id" field.
func (_u *AttemptEventUpdateOne) AddQuizID(v int) *AttemptEventUpdateOne {
	_u.mutation.AddQuizID(v)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *AttemptEventUpdateOne) SetDocumentID(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetDocumentID()
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDocumentID(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// AddDocumentID adds value to the "document_id" field.
func (_u *AttemptEventUpdateOne) AddDocumentID(v int) *AttemptEventUpdateOne {
	_u.mutation.AddDocumentID(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AttemptEventUpdateOne) SetQuestionCount(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionCount(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AttemptEventUpdateOne) AddQuestionCount(v int) *AttemptEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetAnsweredCount sets the "answered_count" field.
func (_u *AttemptEventUpdateOne) SetAnsweredCount(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetAnsweredCount()
	_u.mutation.SetAnsweredCount(v)
	return _u
}

// SetNillableAnsweredCount sets the "answered_count" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAnsweredCount(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAnsweredCount(*v)
	}
	return _u
}

// AddAnsweredCount adds value to the "answered_count" field.
func (_u *AttemptEventUpdateOne) AddAnsweredCount(v int) *AttemptEventUpdateOne {
	_u.mutation.AddAnsweredCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdateOne) SetScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScore(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdateOne) AddScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *AttemptEventUpdateOne) SetAccuracy(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAccuracy(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *AttemptEventUpdateOne) AddAccuracy(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AttemptEventUpdateOne) SetFeedback(v string) *AttemptEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableFeedback(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(attemptevent.FieldQuizID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizID(); ok {
		_spec.AddField(attemptevent.FieldQuizID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(attemptevent.FieldDocumentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocumentID(); ok {
		_spec.AddField(attemptevent.FieldDocumentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(attemptevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(attemptevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnsweredCount(); ok {
		_spec.SetField(attemptevent.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnsweredCount(); ok {
		_spec.AddField(attemptevent.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(attemptevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(attemptevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(attemptevent.FieldFeedback, field.TypeString, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
