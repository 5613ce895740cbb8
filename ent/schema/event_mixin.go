package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// SessionMixin stamps an event with its place in the global sequence, the
// time it happened and the study session that produced it.
type SessionMixin struct {
	mixin.Schema
}

func (SessionMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable(),
		field.Time("timestamp").
			Default(func() time.Time { return time.Now().UTC() }).
			Immutable(),
		field.String("session_id").
			NotEmpty().
			Immutable().
			Comment("UUID generated once per TUI run"),
	}
}

func (SessionMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("session_id", "sequence"),
	}
}
