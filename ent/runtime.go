// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/reporadar/reporadar/ent/alert"
	"github.com/reporadar/reporadar/ent/analysis"
	"github.com/reporadar/reporadar/ent/batchrun"
	"github.com/reporadar/reporadar/ent/contributor"
	"github.com/reporadar/reporadar/ent/metricsnapshot"
	"github.com/reporadar/reporadar/ent/repository"
	"github.com/reporadar/reporadar/ent/schedulerstate"
	"github.com/reporadar/reporadar/ent/schema"
	"github.com/reporadar/reporadar/ent/tierassignment"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescSentAt is the schema descriptor for sent_at field.
	alertDescSentAt := alertFields[6].Descriptor()
	// alert.DefaultSentAt holds the default value on creation for the sent_at field.
	alert.DefaultSentAt = alertDescSentAt.Default.(func() time.Time)
	// alertDescAcknowledged is the schema descriptor for acknowledged field.
	alertDescAcknowledged := alertFields[7].Descriptor()
	// alert.DefaultAcknowledged holds the default value on creation for the acknowledged field.
	alert.DefaultAcknowledged = alertDescAcknowledged.Default.(bool)
	analysisFields := schema.Analysis{}.Fields()
	_ = analysisFields
	// analysisDescInvestmentScore is the schema descriptor for investment_score field.
	analysisDescInvestmentScore := analysisFields[2].Descriptor()
	// analysis.InvestmentScoreValidator is a validator for the "investment_score" field. It is called by the builders before save.
	analysis.InvestmentScoreValidator = func() func(int) error {
		validators := analysisDescInvestmentScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(investment_score int) error {
			for _, fn := range fns {
				if err := fn(investment_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisDescInnovationScore is the schema descriptor for innovation_score field.
	analysisDescInnovationScore := analysisFields[3].Descriptor()
	// analysis.InnovationScoreValidator is a validator for the "innovation_score" field. It is called by the builders before save.
	analysis.InnovationScoreValidator = func() func(int) error {
		validators := analysisDescInnovationScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(innovation_score int) error {
			for _, fn := range fns {
				if err := fn(innovation_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisDescTeamScore is the schema descriptor for team_score field.
	analysisDescTeamScore := analysisFields[4].Descriptor()
	// analysis.TeamScoreValidator is a validator for the "team_score" field. It is called by the builders before save.
	analysis.TeamScoreValidator = func() func(int) error {
		validators := analysisDescTeamScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(team_score int) error {
			for _, fn := range fns {
				if err := fn(team_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisDescMarketScore is the schema descriptor for market_score field.
	analysisDescMarketScore := analysisFields[5].Descriptor()
	// analysis.MarketScoreValidator is a validator for the "market_score" field. It is called by the builders before save.
	analysis.MarketScoreValidator = func() func(int) error {
		validators := analysisDescMarketScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(market_score int) error {
			for _, fn := range fns {
				if err := fn(market_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisDescGrowthScore is the schema descriptor for growth_score field.
	analysisDescGrowthScore := analysisFields[6].Descriptor()
	// analysis.DefaultGrowthScore holds the default value on creation for the growth_score field.
	analysis.DefaultGrowthScore = analysisDescGrowthScore.Default.(int)
	// analysisDescCost is the schema descriptor for cost field.
	analysisDescCost := analysisFields[16].Descriptor()
	// analysis.DefaultCost holds the default value on creation for the cost field.
	analysis.DefaultCost = analysisDescCost.Default.(float64)
	// analysisDescCreatedAt is the schema descriptor for created_at field.
	analysisDescCreatedAt := analysisFields[17].Descriptor()
	// analysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysis.DefaultCreatedAt = analysisDescCreatedAt.Default.(func() time.Time)
	batchrunFields := schema.BatchRun{}.Fields()
	_ = batchrunFields
	// batchrunDescTotal is the schema descriptor for total field.
	batchrunDescTotal := batchrunFields[2].Descriptor()
	// batchrun.DefaultTotal holds the default value on creation for the total field.
	batchrun.DefaultTotal = batchrunDescTotal.Default.(int)
	// batchrunDescCompleted is the schema descriptor for completed field.
	batchrunDescCompleted := batchrunFields[3].Descriptor()
	// batchrun.DefaultCompleted holds the default value on creation for the completed field.
	batchrun.DefaultCompleted = batchrunDescCompleted.Default.(int)
	// batchrunDescFailed is the schema descriptor for failed field.
	batchrunDescFailed := batchrunFields[4].Descriptor()
	// batchrun.DefaultFailed holds the default value on creation for the failed field.
	batchrun.DefaultFailed = batchrunDescFailed.Default.(int)
	// batchrunDescSkipped is the schema descriptor for skipped field.
	batchrunDescSkipped := batchrunFields[5].Descriptor()
	// batchrun.DefaultSkipped holds the default value on creation for the skipped field.
	batchrun.DefaultSkipped = batchrunDescSkipped.Default.(int)
	// batchrunDescStartedAt is the schema descriptor for started_at field.
	batchrunDescStartedAt := batchrunFields[6].Descriptor()
	// batchrun.DefaultStartedAt holds the default value on creation for the started_at field.
	batchrun.DefaultStartedAt = batchrunDescStartedAt.Default.(func() time.Time)
	// batchrunDescRecoveryAttempts is the schema descriptor for recovery_attempts field.
	batchrunDescRecoveryAttempts := batchrunFields[13].Descriptor()
	// batchrun.DefaultRecoveryAttempts holds the default value on creation for the recovery_attempts field.
	batchrun.DefaultRecoveryAttempts = batchrunDescRecoveryAttempts.Default.(int)
	// batchrunDescCreditsEstimated is the schema descriptor for credits_estimated field.
	batchrunDescCreditsEstimated := batchrunFields[14].Descriptor()
	// batchrun.DefaultCreditsEstimated holds the default value on creation for the credits_estimated field.
	batchrun.DefaultCreditsEstimated = batchrunDescCreditsEstimated.Default.(float64)
	// batchrunDescCreditsActual is the schema descriptor for credits_actual field.
	batchrunDescCreditsActual := batchrunFields[15].Descriptor()
	// batchrun.DefaultCreditsActual holds the default value on creation for the credits_actual field.
	batchrun.DefaultCreditsActual = batchrunDescCreditsActual.Default.(float64)
	// batchrunDescCreditsLimit is the schema descriptor for credits_limit field.
	batchrunDescCreditsLimit := batchrunFields[16].Descriptor()
	// batchrun.DefaultCreditsLimit holds the default value on creation for the credits_limit field.
	batchrun.DefaultCreditsLimit = batchrunDescCreditsLimit.Default.(float64)
	// batchrunDescUpdatedAt is the schema descriptor for updated_at field.
	batchrunDescUpdatedAt := batchrunFields[18].Descriptor()
	// batchrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	batchrun.DefaultUpdatedAt = batchrunDescUpdatedAt.Default.(func() time.Time)
	// batchrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	batchrun.UpdateDefaultUpdatedAt = batchrunDescUpdatedAt.UpdateDefault.(func() time.Time)
	contributorFields := schema.Contributor{}.Fields()
	_ = contributorFields
	// contributorDescContributions is the schema descriptor for contributions field.
	contributorDescContributions := contributorFields[3].Descriptor()
	// contributor.DefaultContributions holds the default value on creation for the contributions field.
	contributor.DefaultContributions = contributorDescContributions.Default.(int)
	// contributorDescRecordedAt is the schema descriptor for recorded_at field.
	contributorDescRecordedAt := contributorFields[4].Descriptor()
	// contributor.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	contributor.DefaultRecordedAt = contributorDescRecordedAt.Default.(func() time.Time)
	// contributor.UpdateDefaultRecordedAt holds the default value on update for the recorded_at field.
	contributor.UpdateDefaultRecordedAt = contributorDescRecordedAt.UpdateDefault.(func() time.Time)
	metricsnapshotFields := schema.MetricSnapshot{}.Fields()
	_ = metricsnapshotFields
	// metricsnapshotDescStars is the schema descriptor for stars field.
	metricsnapshotDescStars := metricsnapshotFields[2].Descriptor()
	// metricsnapshot.DefaultStars holds the default value on creation for the stars field.
	metricsnapshot.DefaultStars = metricsnapshotDescStars.Default.(int)
	// metricsnapshotDescForks is the schema descriptor for forks field.
	metricsnapshotDescForks := metricsnapshotFields[3].Descriptor()
	// metricsnapshot.DefaultForks holds the default value on creation for the forks field.
	metricsnapshot.DefaultForks = metricsnapshotDescForks.Default.(int)
	// metricsnapshotDescOpenIssues is the schema descriptor for open_issues field.
	metricsnapshotDescOpenIssues := metricsnapshotFields[4].Descriptor()
	// metricsnapshot.DefaultOpenIssues holds the default value on creation for the open_issues field.
	metricsnapshot.DefaultOpenIssues = metricsnapshotDescOpenIssues.Default.(int)
	// metricsnapshotDescWatchers is the schema descriptor for watchers field.
	metricsnapshotDescWatchers := metricsnapshotFields[5].Descriptor()
	// metricsnapshot.DefaultWatchers holds the default value on creation for the watchers field.
	metricsnapshot.DefaultWatchers = metricsnapshotDescWatchers.Default.(int)
	// metricsnapshotDescRecordedAt is the schema descriptor for recorded_at field.
	metricsnapshotDescRecordedAt := metricsnapshotFields[8].Descriptor()
	// metricsnapshot.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	metricsnapshot.DefaultRecordedAt = metricsnapshotDescRecordedAt.Default.(func() time.Time)
	repositoryFields := schema.Repository{}.Fields()
	_ = repositoryFields
	// repositoryDescStars is the schema descriptor for stars field.
	repositoryDescStars := repositoryFields[5].Descriptor()
	// repository.DefaultStars holds the default value on creation for the stars field.
	repository.DefaultStars = repositoryDescStars.Default.(int)
	// repository.StarsValidator is a validator for the "stars" field. It is called by the builders before save.
	repository.StarsValidator = repositoryDescStars.Validators[0].(func(int) error)
	// repositoryDescForks is the schema descriptor for forks field.
	repositoryDescForks := repositoryFields[6].Descriptor()
	// repository.DefaultForks holds the default value on creation for the forks field.
	repository.DefaultForks = repositoryDescForks.Default.(int)
	// repository.ForksValidator is a validator for the "forks" field. It is called by the builders before save.
	repository.ForksValidator = repositoryDescForks.Validators[0].(func(int) error)
	// repositoryDescOpenIssues is the schema descriptor for open_issues field.
	repositoryDescOpenIssues := repositoryFields[7].Descriptor()
	// repository.DefaultOpenIssues holds the default value on creation for the open_issues field.
	repository.DefaultOpenIssues = repositoryDescOpenIssues.Default.(int)
	// repository.OpenIssuesValidator is a validator for the "open_issues" field. It is called by the builders before save.
	repository.OpenIssuesValidator = repositoryDescOpenIssues.Validators[0].(func(int) error)
	// repositoryDescIsArchived is the schema descriptor for is_archived field.
	repositoryDescIsArchived := repositoryFields[13].Descriptor()
	// repository.DefaultIsArchived holds the default value on creation for the is_archived field.
	repository.DefaultIsArchived = repositoryDescIsArchived.Default.(bool)
	// repositoryDescIsFork is the schema descriptor for is_fork field.
	repositoryDescIsFork := repositoryFields[14].Descriptor()
	// repository.DefaultIsFork holds the default value on creation for the is_fork field.
	repository.DefaultIsFork = repositoryDescIsFork.Default.(bool)
	// repositoryDescDiscoveredAt is the schema descriptor for discovered_at field.
	repositoryDescDiscoveredAt := repositoryFields[17].Descriptor()
	// repository.DefaultDiscoveredAt holds the default value on creation for the discovered_at field.
	repository.DefaultDiscoveredAt = repositoryDescDiscoveredAt.Default.(func() time.Time)
	schedulerstateFields := schema.SchedulerState{}.Fields()
	_ = schedulerstateFields
	// schedulerstateDescUpdatedAt is the schema descriptor for updated_at field.
	schedulerstateDescUpdatedAt := schedulerstateFields[5].Descriptor()
	// schedulerstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	schedulerstate.DefaultUpdatedAt = schedulerstateDescUpdatedAt.Default.(func() time.Time)
	// schedulerstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	schedulerstate.UpdateDefaultUpdatedAt = schedulerstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	tierassignmentFields := schema.TierAssignment{}.Fields()
	_ = tierassignmentFields
	// tierassignmentDescTier is the schema descriptor for tier field.
	tierassignmentDescTier := tierassignmentFields[2].Descriptor()
	// tierassignment.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	tierassignment.TierValidator = func() func(int) error {
		validators := tierassignmentDescTier.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(tier int) error {
			for _, fn := range fns {
				if err := fn(tier); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tierassignmentDescStars is the schema descriptor for stars field.
	tierassignmentDescStars := tierassignmentFields[3].Descriptor()
	// tierassignment.DefaultStars holds the default value on creation for the stars field.
	tierassignment.DefaultStars = tierassignmentDescStars.Default.(int)
	// tierassignmentDescGrowthVelocity is the schema descriptor for growth_velocity field.
	tierassignmentDescGrowthVelocity := tierassignmentFields[4].Descriptor()
	// tierassignment.DefaultGrowthVelocity holds the default value on creation for the growth_velocity field.
	tierassignment.DefaultGrowthVelocity = tierassignmentDescGrowthVelocity.Default.(float64)
	// tierassignmentDescEngagementScore is the schema descriptor for engagement_score field.
	tierassignmentDescEngagementScore := tierassignmentFields[5].Descriptor()
	// tierassignment.DefaultEngagementScore holds the default value on creation for the engagement_score field.
	tierassignment.DefaultEngagementScore = tierassignmentDescEngagementScore.Default.(float64)
	// tierassignmentDescScanPriority is the schema descriptor for scan_priority field.
	tierassignmentDescScanPriority := tierassignmentFields[6].Descriptor()
	// tierassignment.DefaultScanPriority holds the default value on creation for the scan_priority field.
	tierassignment.DefaultScanPriority = tierassignmentDescScanPriority.Default.(float64)
	// tierassignmentDescUpdatedAt is the schema descriptor for updated_at field.
	tierassignmentDescUpdatedAt := tierassignmentFields[10].Descriptor()
	// tierassignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tierassignment.DefaultUpdatedAt = tierassignmentDescUpdatedAt.Default.(func() time.Time)
	// tierassignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tierassignment.UpdateDefaultUpdatedAt = tierassignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
}
