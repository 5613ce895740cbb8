package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyEvent records one study action: a session start, a setup detail
// being opened, or a lesson completion change.
type StudyEvent struct {
	ent.Schema
}

func (StudyEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{SessionMixin{}}
}

func (StudyEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").NotEmpty().
			Comment("session_started, setup_viewed, lesson_completed or lesson_uncompleted"),
		field.String("subject_id").
			Default("").
			Comment("Setup or lesson id; empty for session events"),
	}
}

func (StudyEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
	}
}
