// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "alert_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"urgent", "high", "medium", "low"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime},
		{Name: "acknowledged", Type: field.TypeBool, Default: false},
		{Name: "repo_id", Type: field.TypeString},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alerts_repositories_alerts",
				Columns:    []*schema.Column{AlertsColumns[7]},
				RefColumns: []*schema.Column{RepositoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alert_repo_id_type_sent_at",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[7], AlertsColumns[1], AlertsColumns[5]},
			},
			{
				Name:    "alert_level",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[2]},
			},
			{
				Name:    "alert_acknowledged",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[6]},
			},
		},
	}
	// AnalysesColumns holds the columns for the "analyses" table.
	AnalysesColumns = []*schema.Column{
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "investment_score", Type: field.TypeInt},
		{Name: "innovation_score", Type: field.TypeInt},
		{Name: "team_score", Type: field.TypeInt},
		{Name: "market_score", Type: field.TypeInt},
		{Name: "growth_score", Type: field.TypeInt, Default: 0},
		{Name: "technical_moat", Type: field.TypeInt, Nullable: true},
		{Name: "scalability", Type: field.TypeInt, Nullable: true},
		{Name: "developer_adoption", Type: field.TypeInt, Nullable: true},
		{Name: "recommendation", Type: field.TypeEnum, Enums: []string{"strong_buy", "buy", "hold", "pass"}},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "strengths", Type: field.TypeJSON, Nullable: true},
		{Name: "risks", Type: field.TypeJSON, Nullable: true},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
		{Name: "model_used", Type: field.TypeString},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "repo_id", Type: field.TypeString},
	}
	// AnalysesTable holds the schema information for the "analyses" table.
	AnalysesTable = &schema.Table{
		Name:       "analyses",
		Columns:    AnalysesColumns,
		PrimaryKey: []*schema.Column{AnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analyses_repositories_analyses",
				Columns:    []*schema.Column{AnalysesColumns[17]},
				RefColumns: []*schema.Column{RepositoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysis_repo_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[17], AnalysesColumns[16]},
			},
			{
				Name:    "analysis_recommendation",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[9]},
			},
			{
				Name:    "analysis_investment_score",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[1]},
			},
		},
	}
	// BatchRunsColumns holds the columns for the "batch_runs" table.
	BatchRunsColumns = []*schema.Column{
		{Name: "batch_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "recovering", "stopped", "completed", "failed"}, Default: "pending"},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "skipped", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "current_repo", Type: field.TypeString, Nullable: true},
		{Name: "estimated_completion", Type: field.TypeTime, Nullable: true},
		{Name: "repositories", Type: field.TypeJSON},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "health", Type: field.TypeJSON, Nullable: true},
		{Name: "recovery_attempts", Type: field.TypeInt, Default: 0},
		{Name: "credits_estimated", Type: field.TypeFloat64, Default: 0},
		{Name: "credits_actual", Type: field.TypeFloat64, Default: 0},
		{Name: "credits_limit", Type: field.TypeFloat64, Default: 0},
		{Name: "checkpoint", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BatchRunsTable holds the schema information for the "batch_runs" table.
	BatchRunsTable = &schema.Table{
		Name:       "batch_runs",
		Columns:    BatchRunsColumns,
		PrimaryKey: []*schema.Column{BatchRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batchrun_status",
				Unique:  false,
				Columns: []*schema.Column{BatchRunsColumns[1]},
			},
			{
				Name:    "batchrun_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{BatchRunsColumns[1], BatchRunsColumns[18]},
			},
			{
				Name:    "batchrun_started_at",
				Unique:  false,
				Columns: []*schema.Column{BatchRunsColumns[6]},
			},
		},
	}
	// ContributorsColumns holds the columns for the "contributors" table.
	ContributorsColumns = []*schema.Column{
		{Name: "contributor_id", Type: field.TypeString, Unique: true},
		{Name: "login", Type: field.TypeString},
		{Name: "contributions", Type: field.TypeInt, Default: 0},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "repo_id", Type: field.TypeString},
	}
	// ContributorsTable holds the schema information for the "contributors" table.
	ContributorsTable = &schema.Table{
		Name:       "contributors",
		Columns:    ContributorsColumns,
		PrimaryKey: []*schema.Column{ContributorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contributors_repositories_contributors",
				Columns:    []*schema.Column{ContributorsColumns[4]},
				RefColumns: []*schema.Column{RepositoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contributor_repo_id_login",
				Unique:  true,
				Columns: []*schema.Column{ContributorsColumns[4], ContributorsColumns[1]},
			},
		},
	}
	// MetricSnapshotsColumns holds the columns for the "metric_snapshots" table.
	MetricSnapshotsColumns = []*schema.Column{
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "stars", Type: field.TypeInt, Default: 0},
		{Name: "forks", Type: field.TypeInt, Default: 0},
		{Name: "open_issues", Type: field.TypeInt, Default: 0},
		{Name: "watchers", Type: field.TypeInt, Default: 0},
		{Name: "contributors", Type: field.TypeInt, Nullable: true},
		{Name: "commits_count", Type: field.TypeInt, Nullable: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "repo_id", Type: field.TypeString},
	}
	// MetricSnapshotsTable holds the schema information for the "metric_snapshots" table.
	MetricSnapshotsTable = &schema.Table{
		Name:       "metric_snapshots",
		Columns:    MetricSnapshotsColumns,
		PrimaryKey: []*schema.Column{MetricSnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "metric_snapshots_repositories_snapshots",
				Columns:    []*schema.Column{MetricSnapshotsColumns[8]},
				RefColumns: []*schema.Column{RepositoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "metricsnapshot_repo_id_recorded_at",
				Unique:  true,
				Columns: []*schema.Column{MetricSnapshotsColumns[8], MetricSnapshotsColumns[7]},
			},
			{
				Name:    "metricsnapshot_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{MetricSnapshotsColumns[7]},
			},
		},
	}
	// RepositoriesColumns holds the columns for the "repositories" table.
	RepositoriesColumns = []*schema.Column{
		{Name: "repo_id", Type: field.TypeString, Unique: true},
		{Name: "owner", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "full_name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "stars", Type: field.TypeInt, Default: 0},
		{Name: "forks", Type: field.TypeInt, Default: 0},
		{Name: "open_issues", Type: field.TypeInt, Default: 0},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "pushed_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "is_fork", Type: field.TypeBool, Default: false},
		{Name: "html_url", Type: field.TypeString, Nullable: true},
		{Name: "default_branch", Type: field.TypeString, Nullable: true},
		{Name: "discovered_at", Type: field.TypeTime},
	}
	// RepositoriesTable holds the schema information for the "repositories" table.
	RepositoriesTable = &schema.Table{
		Name:       "repositories",
		Columns:    RepositoriesColumns,
		PrimaryKey: []*schema.Column{RepositoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "repository_full_name",
				Unique:  false,
				Columns: []*schema.Column{RepositoriesColumns[3]},
			},
			{
				Name:    "repository_stars",
				Unique:  false,
				Columns: []*schema.Column{RepositoriesColumns[5]},
			},
			{
				Name:    "repository_language",
				Unique:  false,
				Columns: []*schema.Column{RepositoriesColumns[8]},
			},
			{
				Name:    "repository_is_archived_is_fork",
				Unique:  false,
				Columns: []*schema.Column{RepositoriesColumns[13], RepositoriesColumns[14]},
			},
			{
				Name:    "repository_discovered_at",
				Unique:  false,
				Columns: []*schema.Column{RepositoriesColumns[17]},
			},
		},
	}
	// SchedulerStatesColumns holds the columns for the "scheduler_states" table.
	SchedulerStatesColumns = []*schema.Column{
		{Name: "scheduler_id", Type: field.TypeString, Unique: true},
		{Name: "next_tick", Type: field.TypeTime},
		{Name: "last_cycle_type", Type: field.TypeString, Nullable: true},
		{Name: "last_cycle_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_cycle_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SchedulerStatesTable holds the schema information for the "scheduler_states" table.
	SchedulerStatesTable = &schema.Table{
		Name:       "scheduler_states",
		Columns:    SchedulerStatesColumns,
		PrimaryKey: []*schema.Column{SchedulerStatesColumns[0]},
	}
	// TierAssignmentsColumns holds the columns for the "tier_assignments" table.
	TierAssignmentsColumns = []*schema.Column{
		{Name: "assignment_id", Type: field.TypeString, Unique: true},
		{Name: "tier", Type: field.TypeInt},
		{Name: "stars", Type: field.TypeInt, Default: 0},
		{Name: "growth_velocity", Type: field.TypeFloat64, Default: 0},
		{Name: "engagement_score", Type: field.TypeFloat64, Default: 0},
		{Name: "scan_priority", Type: field.TypeFloat64, Default: 0},
		{Name: "last_deep_scan", Type: field.TypeTime, Nullable: true},
		{Name: "last_basic_scan", Type: field.TypeTime, Nullable: true},
		{Name: "next_scan_due", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "repo_id", Type: field.TypeString, Unique: true},
	}
	// TierAssignmentsTable holds the schema information for the "tier_assignments" table.
	TierAssignmentsTable = &schema.Table{
		Name:       "tier_assignments",
		Columns:    TierAssignmentsColumns,
		PrimaryKey: []*schema.Column{TierAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tier_assignments_repositories_tier_assignment",
				Columns:    []*schema.Column{TierAssignmentsColumns[10]},
				RefColumns: []*schema.Column{RepositoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tierassignment_tier",
				Unique:  false,
				Columns: []*schema.Column{TierAssignmentsColumns[1]},
			},
			{
				Name:    "tierassignment_tier_next_scan_due",
				Unique:  false,
				Columns: []*schema.Column{TierAssignmentsColumns[1], TierAssignmentsColumns[8]},
			},
			{
				Name:    "tierassignment_tier_stars",
				Unique:  false,
				Columns: []*schema.Column{TierAssignmentsColumns[1], TierAssignmentsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertsTable,
		AnalysesTable,
		BatchRunsTable,
		ContributorsTable,
		MetricSnapshotsTable,
		RepositoriesTable,
		SchedulerStatesTable,
		TierAssignmentsTable,
	}
)

func init() {
	AlertsTable.ForeignKeys[0].RefTable = RepositoriesTable
	AnalysesTable.ForeignKeys[0].RefTable = RepositoriesTable
	ContributorsTable.ForeignKeys[0].RefTable = RepositoriesTable
	MetricSnapshotsTable.ForeignKeys[0].RefTable = RepositoriesTable
	TierAssignmentsTable.ForeignKeys[0].RefTable = RepositoriesTable
}
