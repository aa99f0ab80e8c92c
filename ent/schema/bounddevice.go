package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// BoundDevice is one device fingerprint bound to an access key. Rows are
// created on first successful verification from a new fingerprint and only
// the last_seen_at field is touched afterwards.
type BoundDevice struct{ ent.Schema }

// Fields of the BoundDevice.
func (BoundDevice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("fingerprint").NotEmpty().MaxLen(512),
		field.Bool("is_active").Default(true),
		field.Time("first_seen_at").Default(time.Now).Immutable(),
		field.Time("last_seen_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the BoundDevice.
func (BoundDevice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("key", AccessKey.Type).Ref("devices").Unique().Required(),
	}
}

// Indexes of the BoundDevice.
func (BoundDevice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fingerprint").Edges("key").Unique(),
		index.Fields("last_seen_at"),
	}
}
