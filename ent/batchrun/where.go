// Code generated by ent, DO NOT EDIT.

package batchrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reporadar/reporadar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldContainsFold(FieldID, id))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldTotal, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldCompleted, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldFailed, v))
}

// Skipped applies equality check predicate on the "skipped" field. It's identical to SkippedEQ.
func Skipped(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldSkipped, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldEndedAt, v))
}

// CurrentRepo applies equality check predicate on the "current_repo" field. It's identical to CurrentRepoEQ.
func CurrentRepo(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldCurrentRepo, v))
}

// EstimatedCompletion applies equality check predicate on the "estimated_completion" field. It's identical to EstimatedCompletionEQ.
func EstimatedCompletion(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldEstimatedCompletion, v))
}

// RecoveryAttempts applies equality check predicate on the "recovery_attempts" field. It's identical to RecoveryAttemptsEQ.
func RecoveryAttempts(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldRecoveryAttempts, v))
}

// CreditsEstimated applies equality check predicate on the "credits_estimated" field. It's identical to CreditsEstimatedEQ.
func CreditsEstimated(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldCreditsEstimated, v))
}

// CreditsActual applies equality check predicate on the "credits_actual" field. It's identical to CreditsActualEQ.
func CreditsActual(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldCreditsActual, v))
}

// CreditsLimit applies equality check predicate on the "credits_limit" field. It's identical to CreditsLimitEQ.
func CreditsLimit(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldCreditsLimit, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldTotal, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldCompleted, v))
}

// CompletedIn applies the In predicate on the "completed" field.
func CompletedIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldCompleted, vs...))
}

// CompletedNotIn applies the NotIn predicate on the "completed" field.
func CompletedNotIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldCompleted, vs...))
}

// CompletedGT applies the GT predicate on the "completed" field.
func CompletedGT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldCompleted, v))
}

// CompletedGTE applies the GTE predicate on the "completed" field.
func CompletedGTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldCompleted, v))
}

// CompletedLT applies the LT predicate on the "completed" field.
func CompletedLT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldCompleted, v))
}

// CompletedLTE applies the LTE predicate on the "completed" field.
func CompletedLTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldCompleted, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldFailed, v))
}

// SkippedEQ applies the EQ predicate on the "skipped" field.
func SkippedEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldSkipped, v))
}

// SkippedNEQ applies the NEQ predicate on the "skipped" field.
func SkippedNEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldSkipped, v))
}

// SkippedIn applies the In predicate on the "skipped" field.
func SkippedIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldSkipped, vs...))
}

// SkippedNotIn applies the NotIn predicate on the "skipped" field.
func SkippedNotIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldSkipped, vs...))
}

// SkippedGT applies the GT predicate on the "skipped" field.
func SkippedGT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldSkipped, v))
}

// SkippedGTE applies the GTE predicate on the "skipped" field.
func SkippedGTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldSkipped, v))
}

// SkippedLT applies the LT predicate on the "skipped" field.
func SkippedLT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldSkipped, v))
}

// SkippedLTE applies the LTE predicate on the "skipped" field.
func SkippedLTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldSkipped, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotNull(FieldEndedAt))
}

// CurrentRepoEQ applies the EQ predicate on the "current_repo" field.
func CurrentRepoEQ(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldCurrentRepo, v))
}

// CurrentRepoNEQ applies the NEQ predicate on the "current_repo" field.
func CurrentRepoNEQ(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldCurrentRepo, v))
}

// CurrentRepoIn applies the In predicate on the "current_repo" field.
func CurrentRepoIn(vs ...string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldCurrentRepo, vs...))
}

// CurrentRepoNotIn applies the NotIn predicate on the "current_repo" field.
func CurrentRepoNotIn(vs ...string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldCurrentRepo, vs...))
}

// CurrentRepoGT applies the GT predicate on the "current_repo" field.
func CurrentRepoGT(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldCurrentRepo, v))
}

// CurrentRepoGTE applies the GTE predicate on the "current_repo" field.
func CurrentRepoGTE(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldCurrentRepo, v))
}

// CurrentRepoLT applies the LT predicate on the "current_repo" field.
func CurrentRepoLT(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldCurrentRepo, v))
}

// CurrentRepoLTE applies the LTE predicate on the "current_repo" field.
func CurrentRepoLTE(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldCurrentRepo, v))
}

// CurrentRepoContains applies the Contains predicate on the "current_repo" field.
func CurrentRepoContains(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldContains(FieldCurrentRepo, v))
}

// CurrentRepoHasPrefix applies the HasPrefix predicate on the "current_repo" field.
func CurrentRepoHasPrefix(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldHasPrefix(FieldCurrentRepo, v))
}

// CurrentRepoHasSuffix applies the HasSuffix predicate on the "current_repo" field.
func CurrentRepoHasSuffix(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldHasSuffix(FieldCurrentRepo, v))
}

// CurrentRepoIsNil applies the IsNil predicate on the "current_repo" field.
func CurrentRepoIsNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIsNull(FieldCurrentRepo))
}

// CurrentRepoNotNil applies the NotNil predicate on the "current_repo" field.
func CurrentRepoNotNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotNull(FieldCurrentRepo))
}

// CurrentRepoEqualFold applies the EqualFold predicate on the "current_repo" field.
func CurrentRepoEqualFold(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEqualFold(FieldCurrentRepo, v))
}

// CurrentRepoContainsFold applies the ContainsFold predicate on the "current_repo" field.
func CurrentRepoContainsFold(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldContainsFold(FieldCurrentRepo, v))
}

// EstimatedCompletionEQ applies the EQ predicate on the "estimated_completion" field.
func EstimatedCompletionEQ(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldEstimatedCompletion, v))
}

// EstimatedCompletionNEQ applies the NEQ predicate on the "estimated_completion" field.
func EstimatedCompletionNEQ(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldEstimatedCompletion, v))
}

// EstimatedCompletionIn applies the In predicate on the "estimated_completion" field.
func EstimatedCompletionIn(vs ...time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldEstimatedCompletion, vs...))
}

// EstimatedCompletionNotIn applies the NotIn predicate on the "estimated_completion" field.
func EstimatedCompletionNotIn(vs ...time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldEstimatedCompletion, vs...))
}

// EstimatedCompletionGT applies the GT predicate on the "estimated_completion" field.
func EstimatedCompletionGT(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldEstimatedCompletion, v))
}

// EstimatedCompletionGTE applies the GTE predicate on the "estimated_completion" field.
func EstimatedCompletionGTE(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldEstimatedCompletion, v))
}

// EstimatedCompletionLT applies the LT predicate on the "estimated_completion" field.
func EstimatedCompletionLT(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldEstimatedCompletion, v))
}

// EstimatedCompletionLTE applies the LTE predicate on the "estimated_completion" field.
func EstimatedCompletionLTE(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldEstimatedCompletion, v))
}

// EstimatedCompletionIsNil applies the IsNil predicate on the "estimated_completion" field.
func EstimatedCompletionIsNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIsNull(FieldEstimatedCompletion))
}

// EstimatedCompletionNotNil applies the NotNil predicate on the "estimated_completion" field.
func EstimatedCompletionNotNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotNull(FieldEstimatedCompletion))
}

// ResultsIsNil applies the IsNil predicate on the "results" field.
func ResultsIsNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIsNull(FieldResults))
}

// ResultsNotNil applies the NotNil predicate on the "results" field.
func ResultsNotNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotNull(FieldResults))
}

// HealthIsNil applies the IsNil predicate on the "health" field.
func HealthIsNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIsNull(FieldHealth))
}

// HealthNotNil applies the NotNil predicate on the "health" field.
func HealthNotNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotNull(FieldHealth))
}

// RecoveryAttemptsEQ applies the EQ predicate on the "recovery_attempts" field.
func RecoveryAttemptsEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsNEQ applies the NEQ predicate on the "recovery_attempts" field.
func RecoveryAttemptsNEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsIn applies the In predicate on the "recovery_attempts" field.
func RecoveryAttemptsIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldRecoveryAttempts, vs...))
}

// RecoveryAttemptsNotIn applies the NotIn predicate on the "recovery_attempts" field.
func RecoveryAttemptsNotIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldRecoveryAttempts, vs...))
}

// RecoveryAttemptsGT applies the GT predicate on the "recovery_attempts" field.
func RecoveryAttemptsGT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsGTE applies the GTE predicate on the "recovery_attempts" field.
func RecoveryAttemptsGTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsLT applies the LT predicate on the "recovery_attempts" field.
func RecoveryAttemptsLT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsLTE applies the LTE predicate on the "recovery_attempts" field.
func RecoveryAttemptsLTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldRecoveryAttempts, v))
}

// CreditsEstimatedEQ applies the EQ predicate on the "credits_estimated" field.
func CreditsEstimatedEQ(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldCreditsEstimated, v))
}

// CreditsEstimatedNEQ applies the NEQ predicate on the "credits_estimated" field.
func CreditsEstimatedNEQ(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldCreditsEstimated, v))
}

// CreditsEstimatedIn applies the In predicate on the "credits_estimated" field.
func CreditsEstimatedIn(vs ...float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldCreditsEstimated, vs...))
}

// CreditsEstimatedNotIn applies the NotIn predicate on the "credits_estimated" field.
func CreditsEstimatedNotIn(vs ...float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldCreditsEstimated, vs...))
}

// CreditsEstimatedGT applies the GT predicate on the "credits_estimated" field.
func CreditsEstimatedGT(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldCreditsEstimated, v))
}

// CreditsEstimatedGTE applies the GTE predicate on the "credits_estimated" field.
func CreditsEstimatedGTE(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldCreditsEstimated, v))
}

// CreditsEstimatedLT applies the LT predicate on the "credits_estimated" field.
func CreditsEstimatedLT(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldCreditsEstimated, v))
}

// CreditsEstimatedLTE applies the LTE predicate on the "credits_estimated" field.
func CreditsEstimatedLTE(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldCreditsEstimated, v))
}

// CreditsActualEQ applies the EQ predicate on the "credits_actual" field.
func CreditsActualEQ(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldCreditsActual, v))
}

// CreditsActualNEQ applies the NEQ predicate on the "credits_actual" field.
func CreditsActualNEQ(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldCreditsActual, v))
}

// CreditsActualIn applies the In predicate on the "credits_actual" field.
func CreditsActualIn(vs ...float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldCreditsActual, vs...))
}

// CreditsActualNotIn applies the NotIn predicate on the "credits_actual" field.
func CreditsActualNotIn(vs ...float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldCreditsActual, vs...))
}

// CreditsActualGT applies the GT predicate on the "credits_actual" field.
func CreditsActualGT(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldCreditsActual, v))
}

// CreditsActualGTE applies the GTE predicate on the "credits_actual" field.
func CreditsActualGTE(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldCreditsActual, v))
}

// CreditsActualLT applies the LT predicate on the "credits_actual" field.
func CreditsActualLT(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldCreditsActual, v))
}

// CreditsActualLTE applies the LTE predicate on the "credits_actual" field.
func CreditsActualLTE(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldCreditsActual, v))
}

// CreditsLimitEQ applies the EQ predicate on the "credits_limit" field.
func CreditsLimitEQ(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldCreditsLimit, v))
}

// CreditsLimitNEQ applies the NEQ predicate on the "credits_limit" field.
func CreditsLimitNEQ(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldCreditsLimit, v))
}

// CreditsLimitIn applies the In predicate on the "credits_limit" field.
func CreditsLimitIn(vs ...float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldCreditsLimit, vs...))
}

// CreditsLimitNotIn applies the NotIn predicate on the "credits_limit" field.
func CreditsLimitNotIn(vs ...float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldCreditsLimit, vs...))
}

// CreditsLimitGT applies the GT predicate on the "credits_limit" field.
func CreditsLimitGT(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldCreditsLimit, v))
}

// CreditsLimitGTE applies the GTE predicate on the "credits_limit" field.
func CreditsLimitGTE(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldCreditsLimit, v))
}

// CreditsLimitLT applies the LT predicate on the "credits_limit" field.
func CreditsLimitLT(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldCreditsLimit, v))
}

// CreditsLimitLTE applies the LTE predicate on the "credits_limit" field.
func CreditsLimitLTE(v float64) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldCreditsLimit, v))
}

// CheckpointIsNil applies the IsNil predicate on the "checkpoint" field.
func CheckpointIsNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIsNull(FieldCheckpoint))
}

// CheckpointNotNil applies the NotNil predicate on the "checkpoint" field.
func CheckpointNotNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotNull(FieldCheckpoint))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BatchRun) predicate.BatchRun {
	return predicate.BatchRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BatchRun) predicate.BatchRun {
	return predicate.BatchRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BatchRun) predicate.BatchRun {
	return predicate.BatchRun(sql.NotPredicates(p))
}
