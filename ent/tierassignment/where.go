// Code generated by ent, DO NOT EDIT.

package tierassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reporadar/reporadar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldContainsFold(FieldID, id))
}

// RepoID applies equality check predicate on the "repo_id" field. It's identical to RepoIDEQ.
func RepoID(v string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldRepoID, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldTier, v))
}

// Stars applies equality check predicate on the "stars" field. It's identical to StarsEQ.
func Stars(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldStars, v))
}

// GrowthVelocity applies equality check predicate on the "growth_velocity" field. It's identical to GrowthVelocityEQ.
func GrowthVelocity(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldGrowthVelocity, v))
}

// EngagementScore applies equality check predicate on the "engagement_score" field. It's identical to EngagementScoreEQ.
func EngagementScore(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldEngagementScore, v))
}

// ScanPriority applies equality check predicate on the "scan_priority" field. It's identical to ScanPriorityEQ.
func ScanPriority(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldScanPriority, v))
}

// LastDeepScan applies equality check predicate on the "last_deep_scan" field. It's identical to LastDeepScanEQ.
func LastDeepScan(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldLastDeepScan, v))
}

// LastBasicScan applies equality check predicate on the "last_basic_scan" field. It's identical to LastBasicScanEQ.
func LastBasicScan(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldLastBasicScan, v))
}

// NextScanDue applies equality check predicate on the "next_scan_due" field. It's identical to NextScanDueEQ.
func NextScanDue(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldNextScanDue, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// RepoIDEQ applies the EQ predicate on the "repo_id" field.
func RepoIDEQ(v string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldRepoID, v))
}

// RepoIDNEQ applies the NEQ predicate on the "repo_id" field.
func RepoIDNEQ(v string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNEQ(FieldRepoID, v))
}

// RepoIDIn applies the In predicate on the "repo_id" field.
func RepoIDIn(vs ...string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIn(FieldRepoID, vs...))
}

// RepoIDNotIn applies the NotIn predicate on the "repo_id" field.
func RepoIDNotIn(vs ...string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotIn(FieldRepoID, vs...))
}

// RepoIDGT applies the GT predicate on the "repo_id" field.
func RepoIDGT(v string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGT(FieldRepoID, v))
}

// RepoIDGTE applies the GTE predicate on the "repo_id" field.
func RepoIDGTE(v string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGTE(FieldRepoID, v))
}

// RepoIDLT applies the LT predicate on the "repo_id" field.
func RepoIDLT(v string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLT(FieldRepoID, v))
}

// RepoIDLTE applies the LTE predicate on the "repo_id" field.
func RepoIDLTE(v string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLTE(FieldRepoID, v))
}

// RepoIDContains applies the Contains predicate on the "repo_id" field.
func RepoIDContains(v string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldContains(FieldRepoID, v))
}

// RepoIDHasPrefix applies the HasPrefix predicate on the "repo_id" field.
func RepoIDHasPrefix(v string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldHasPrefix(FieldRepoID, v))
}

// RepoIDHasSuffix applies the HasSuffix predicate on the "repo_id" field.
func RepoIDHasSuffix(v string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldHasSuffix(FieldRepoID, v))
}

// RepoIDEqualFold applies the EqualFold predicate on the "repo_id" field.
func RepoIDEqualFold(v string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEqualFold(FieldRepoID, v))
}

// RepoIDContainsFold applies the ContainsFold predicate on the "repo_id" field.
func RepoIDContainsFold(v string) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldContainsFold(FieldRepoID, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLTE(FieldTier, v))
}

// StarsEQ applies the EQ predicate on the "stars" field.
func StarsEQ(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldStars, v))
}

// StarsNEQ applies the NEQ predicate on the "stars" field.
func StarsNEQ(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNEQ(FieldStars, v))
}

// StarsIn applies the In predicate on the "stars" field.
func StarsIn(vs ...int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIn(FieldStars, vs...))
}

// StarsNotIn applies the NotIn predicate on the "stars" field.
func StarsNotIn(vs ...int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotIn(FieldStars, vs...))
}

// StarsGT applies the GT predicate on the "stars" field.
func StarsGT(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGT(FieldStars, v))
}

// StarsGTE applies the GTE predicate on the "stars" field.
func StarsGTE(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGTE(FieldStars, v))
}

// StarsLT applies the LT predicate on the "stars" field.
func StarsLT(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLT(FieldStars, v))
}

// StarsLTE applies the LTE predicate on the "stars" field.
func StarsLTE(v int) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLTE(FieldStars, v))
}

// GrowthVelocityEQ applies the EQ predicate on the "growth_velocity" field.
func GrowthVelocityEQ(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldGrowthVelocity, v))
}

// GrowthVelocityNEQ applies the NEQ predicate on the "growth_velocity" field.
func GrowthVelocityNEQ(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNEQ(FieldGrowthVelocity, v))
}

// GrowthVelocityIn applies the In predicate on the "growth_velocity" field.
func GrowthVelocityIn(vs ...float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIn(FieldGrowthVelocity, vs...))
}

// GrowthVelocityNotIn applies the NotIn predicate on the "growth_velocity" field.
func GrowthVelocityNotIn(vs ...float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotIn(FieldGrowthVelocity, vs...))
}

// GrowthVelocityGT applies the GT predicate on the "growth_velocity" field.
func GrowthVelocityGT(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGT(FieldGrowthVelocity, v))
}

// GrowthVelocityGTE applies the GTE predicate on the "growth_velocity" field.
func GrowthVelocityGTE(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGTE(FieldGrowthVelocity, v))
}

// GrowthVelocityLT applies the LT predicate on the "growth_velocity" field.
func GrowthVelocityLT(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLT(FieldGrowthVelocity, v))
}

// GrowthVelocityLTE applies the LTE predicate on the "growth_velocity" field.
func GrowthVelocityLTE(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLTE(FieldGrowthVelocity, v))
}

// EngagementScoreEQ applies the EQ predicate on the "engagement_score" field.
func EngagementScoreEQ(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldEngagementScore, v))
}

// EngagementScoreNEQ applies the NEQ predicate on the "engagement_score" field.
func EngagementScoreNEQ(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNEQ(FieldEngagementScore, v))
}

// EngagementScoreIn applies the In predicate on the "engagement_score" field.
func EngagementScoreIn(vs ...float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIn(FieldEngagementScore, vs...))
}

// EngagementScoreNotIn applies the NotIn predicate on the "engagement_score" field.
func EngagementScoreNotIn(vs ...float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotIn(FieldEngagementScore, vs...))
}

// EngagementScoreGT applies the GT predicate on the "engagement_score" field.
func EngagementScoreGT(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGT(FieldEngagementScore, v))
}

// EngagementScoreGTE applies the GTE predicate on the "engagement_score" field.
func EngagementScoreGTE(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGTE(FieldEngagementScore, v))
}

// EngagementScoreLT applies the LT predicate on the "engagement_score" field.
func EngagementScoreLT(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLT(FieldEngagementScore, v))
}

// EngagementScoreLTE applies the LTE predicate on the "engagement_score" field.
func EngagementScoreLTE(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLTE(FieldEngagementScore, v))
}

// ScanPriorityEQ applies the EQ predicate on the "scan_priority" field.
func ScanPriorityEQ(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldScanPriority, v))
}

// ScanPriorityNEQ applies the NEQ predicate on the "scan_priority" field.
func ScanPriorityNEQ(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNEQ(FieldScanPriority, v))
}

// ScanPriorityIn applies the In predicate on the "scan_priority" field.
func ScanPriorityIn(vs ...float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIn(FieldScanPriority, vs...))
}

// ScanPriorityNotIn applies the NotIn predicate on the "scan_priority" field.
func ScanPriorityNotIn(vs ...float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotIn(FieldScanPriority, vs...))
}

// ScanPriorityGT applies the GT predicate on the "scan_priority" field.
func ScanPriorityGT(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGT(FieldScanPriority, v))
}

// ScanPriorityGTE applies the GTE predicate on the "scan_priority" field.
func ScanPriorityGTE(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGTE(FieldScanPriority, v))
}

// ScanPriorityLT applies the LT predicate on the "scan_priority" field.
func ScanPriorityLT(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLT(FieldScanPriority, v))
}

// ScanPriorityLTE applies the LTE predicate on the "scan_priority" field.
func ScanPriorityLTE(v float64) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLTE(FieldScanPriority, v))
}

// LastDeepScanEQ applies the EQ predicate on the "last_deep_scan" field.
func LastDeepScanEQ(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldLastDeepScan, v))
}

// LastDeepScanNEQ applies the NEQ predicate on the "last_deep_scan" field.
func LastDeepScanNEQ(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNEQ(FieldLastDeepScan, v))
}

// LastDeepScanIn applies the In predicate on the "last_deep_scan" field.
func LastDeepScanIn(vs ...time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIn(FieldLastDeepScan, vs...))
}

// LastDeepScanNotIn applies the NotIn predicate on the "last_deep_scan" field.
func LastDeepScanNotIn(vs ...time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotIn(FieldLastDeepScan, vs...))
}

// LastDeepScanGT applies the GT predicate on the "last_deep_scan" field.
func LastDeepScanGT(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGT(FieldLastDeepScan, v))
}

// LastDeepScanGTE applies the GTE predicate on the "last_deep_scan" field.
func LastDeepScanGTE(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGTE(FieldLastDeepScan, v))
}

// LastDeepScanLT applies the LT predicate on the "last_deep_scan" field.
func LastDeepScanLT(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLT(FieldLastDeepScan, v))
}

// LastDeepScanLTE applies the LTE predicate on the "last_deep_scan" field.
func LastDeepScanLTE(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLTE(FieldLastDeepScan, v))
}

// LastDeepScanIsNil applies the IsNil predicate on the "last_deep_scan" field.
func LastDeepScanIsNil() predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIsNull(FieldLastDeepScan))
}

// LastDeepScanNotNil applies the NotNil predicate on the "last_deep_scan" field.
func LastDeepScanNotNil() predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotNull(FieldLastDeepScan))
}

// LastBasicScanEQ applies the EQ predicate on the "last_basic_scan" field.
func LastBasicScanEQ(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldLastBasicScan, v))
}

// LastBasicScanNEQ applies the NEQ predicate on the "last_basic_scan" field.
func LastBasicScanNEQ(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNEQ(FieldLastBasicScan, v))
}

// LastBasicScanIn applies the In predicate on the "last_basic_scan" field.
func LastBasicScanIn(vs ...time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIn(FieldLastBasicScan, vs...))
}

// LastBasicScanNotIn applies the NotIn predicate on the "last_basic_scan" field.
func LastBasicScanNotIn(vs ...time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotIn(FieldLastBasicScan, vs...))
}

// LastBasicScanGT applies the GT predicate on the "last_basic_scan" field.
func LastBasicScanGT(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGT(FieldLastBasicScan, v))
}

// LastBasicScanGTE applies the GTE predicate on the "last_basic_scan" field.
func LastBasicScanGTE(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGTE(FieldLastBasicScan, v))
}

// LastBasicScanLT applies the LT predicate on the "last_basic_scan" field.
func LastBasicScanLT(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLT(FieldLastBasicScan, v))
}

// LastBasicScanLTE applies the LTE predicate on the "last_basic_scan" field.
func LastBasicScanLTE(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLTE(FieldLastBasicScan, v))
}

// LastBasicScanIsNil applies the IsNil predicate on the "last_basic_scan" field.
func LastBasicScanIsNil() predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIsNull(FieldLastBasicScan))
}

// LastBasicScanNotNil applies the NotNil predicate on the "last_basic_scan" field.
func LastBasicScanNotNil() predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotNull(FieldLastBasicScan))
}

// NextScanDueEQ applies the EQ predicate on the "next_scan_due" field.
func NextScanDueEQ(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldNextScanDue, v))
}

// NextScanDueNEQ applies the NEQ predicate on the "next_scan_due" field.
func NextScanDueNEQ(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNEQ(FieldNextScanDue, v))
}

// NextScanDueIn applies the In predicate on the "next_scan_due" field.
func NextScanDueIn(vs ...time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIn(FieldNextScanDue, vs...))
}

// NextScanDueNotIn applies the NotIn predicate on the "next_scan_due" field.
func NextScanDueNotIn(vs ...time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotIn(FieldNextScanDue, vs...))
}

// NextScanDueGT applies the GT predicate on the "next_scan_due" field.
func NextScanDueGT(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGT(FieldNextScanDue, v))
}

// NextScanDueGTE applies the GTE predicate on the "next_scan_due" field.
func NextScanDueGTE(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGTE(FieldNextScanDue, v))
}

// NextScanDueLT applies the LT predicate on the "next_scan_due" field.
func NextScanDueLT(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLT(FieldNextScanDue, v))
}

// NextScanDueLTE applies the LTE predicate on the "next_scan_due" field.
func NextScanDueLTE(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLTE(FieldNextScanDue, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TierAssignment {
	return predicate.TierAssignment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRepository applies the HasEdge predicate on the "repository" edge.
func HasRepository() predicate.TierAssignment {
	return predicate.TierAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RepositoryTable, RepositoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRepositoryWith applies the HasEdge predicate on the "repository" edge with a given conditions (other predicates).
func HasRepositoryWith(preds ...predicate.Repository) predicate.TierAssignment {
	return predicate.TierAssignment(func(s *sql.Selector) {
		step := newRepositoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TierAssignment) predicate.TierAssignment {
	return predicate.TierAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TierAssignment) predicate.TierAssignment {
	return predicate.TierAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TierAssignment) predicate.TierAssignment {
	return predicate.TierAssignment(sql.NotPredicates(p))
}
