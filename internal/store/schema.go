package store

import (
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Every event table carries the same sequence and timestamp columns so a
// global ordering can be recovered across types.
var (
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "snapshot_timestamp", Columns: []*schema.Column{SnapshotsColumns[2]}},
			{Name: "snapshot_sequence", Columns: []*schema.Column{SnapshotsColumns[1]}},
		},
	}

	StudyEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
	}
	StudyEventsTable = &schema.Table{
		Name:       "study_events",
		Columns:    StudyEventsColumns,
		PrimaryKey: []*schema.Column{StudyEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "studyevent_timestamp", Columns: []*schema.Column{StudyEventsColumns[2]}},
			{Name: "studyevent_kind", Columns: []*schema.Column{StudyEventsColumns[4]}},
		},
	}

	// Tables lists every table the store migrates.
	Tables = []*schema.Table{SnapshotsTable, StudyEventsTable}
)

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}
