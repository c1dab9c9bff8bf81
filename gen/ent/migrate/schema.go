// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "artifact_type", Type: field.TypeString},
		{Name: "storage_ref", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "artifacts_jobs_artifacts",
				Columns:    []*schema.Column{ArtifactsColumns[5]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_job_id",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[5]},
			},
			{
				Name:    "artifact_job_id_artifact_type",
				Unique:  true,
				Columns: []*schema.Column{ArtifactsColumns[5], ArtifactsColumns[1]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "job_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "input_ref", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "backend", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_owner_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[3], JobsColumns[8]},
			},
			{
				Name:    "job_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[8]},
			},
		},
	}
	// UsageRecordsColumns holds the columns for the "usage_records" table.
	UsageRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "service", Type: field.TypeString},
		{Name: "backend", Type: field.TypeString},
		{Name: "audio_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "tokens_used", Type: field.TypeInt64, Default: 0},
		{Name: "characters_processed", Type: field.TypeInt64, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsageRecordsTable holds the schema information for the "usage_records" table.
	UsageRecordsTable = &schema.Table{
		Name:       "usage_records",
		Columns:    UsageRecordsColumns,
		PrimaryKey: []*schema.Column{UsageRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagerecord_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageRecordsColumns[1], UsageRecordsColumns[9]},
			},
			{
				Name:    "usagerecord_job_id",
				Unique:  false,
				Columns: []*schema.Column{UsageRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtifactsTable,
		JobsTable,
		UsageRecordsTable,
	}
)

func init() {
	ArtifactsTable.ForeignKeys[0].RefTable = JobsTable
	ArtifactsTable.Annotation = &entsql.Annotation{
		Table: "artifacts",
	}
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	UsageRecordsTable.Annotation = &entsql.Annotation{
		Table: "usage_records",
	}
}
