// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bazs0328/graduation/ent/answerevent"
	"github.com/bazs0328/graduation/ent/apirequestevent"
	"github.com/bazs0328/graduation/ent/attemptevent"
	"github.com/bazs0328/graduation/ent/schema"
	"github.com/bazs0328/graduation/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apirequesteventMixin := schema.APIRequestEvent{}.Mixin()
	apirequesteventMixinFields0 := apirequesteventMixin[0].Fields()
	_ = apirequesteventMixinFields0
	apirequesteventFields := schema.APIRequestEvent{}.Fields()
	_ = apirequesteventFields
	// apirequesteventDescTimestamp is the schema descriptor for timestamp field.
	apirequesteventDescTimestamp := apirequesteventMixinFields0[1].Descriptor()
	// apirequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	apirequestevent.DefaultTimestamp = apirequesteventDescTimestamp.Default.(func() time.Time)
	// apirequesteventDescEndpoint is the schema descriptor for endpoint field.
	apirequesteventDescEndpoint := apirequesteventFields[0].Descriptor()
	// apirequestevent.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	apirequestevent.EndpointValidator = apirequesteventDescEndpoint.Validators[0].(func(string) error)
	// apirequesteventDescStatus is the schema descriptor for status field.
	apirequesteventDescStatus := apirequesteventFields[1].Descriptor()
	// apirequestevent.DefaultStatus holds the default value on creation for the status field.
	apirequestevent.DefaultStatus = apirequesteventDescStatus.Default.(int)
	// apirequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	apirequesteventDescLatencyMs := apirequesteventFields[2].Descriptor()
	// apirequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	apirequestevent.DefaultLatencyMs = apirequesteventDescLatencyMs.Default.(int64)
	// apirequesteventDescErrorMessage is the schema descriptor for error_message field.
	apirequesteventDescErrorMessage := apirequesteventFields[4].Descriptor()
	// apirequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	apirequestevent.DefaultErrorMessage = apirequesteventDescErrorMessage.Default.(string)
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[3].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[4].Descriptor()
	// answerevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	answerevent.DefaultDifficulty = answereventDescDifficulty.Default.(string)
	// answereventDescUserAnswer is the schema descriptor for user_answer field.
	answereventDescUserAnswer := answereventFields[5].Descriptor()
	// answerevent.DefaultUserAnswer holds the default value on creation for the user_answer field.
	answerevent.DefaultUserAnswer = answereventDescUserAnswer.Default.(string)
	// answereventDescExpectedAnswer is the schema descriptor for expected_answer field.
	answereventDescExpectedAnswer := answereventFields[6].Descriptor()
	// answerevent.DefaultExpectedAnswer holds the default value on creation for the expected_answer field.
	answerevent.DefaultExpectedAnswer = answereventDescExpectedAnswer.Default.(string)
	// answereventDescVerdict is the schema descriptor for verdict field.
	answereventDescVerdict := answereventFields[7].Descriptor()
	// answerevent.VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	answerevent.VerdictValidator = answereventDescVerdict.Validators[0].(func(string) error)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescDocumentID is the schema descriptor for document_id field.
	attempteventDescDocumentID := attempteventFields[2].Descriptor()
	// attemptevent.DefaultDocumentID holds the default value on creation for the document_id field.
	attemptevent.DefaultDocumentID = attempteventDescDocumentID.Default.(int)
	// attempteventDescFeedback is the schema descriptor for feedback field.
	attempteventDescFeedback := attempteventFields[7].Descriptor()
	// attemptevent.DefaultFeedback holds the default value on creation for the feedback field.
	attemptevent.DefaultFeedback = attempteventDescFeedback.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
