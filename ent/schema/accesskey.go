package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AccessKey is a capability string looked up server-side to authorize use of
// the dashboard. It is not self-verifying; possession plus a matching bound
// device is the whole credential.
type AccessKey struct{ ent.Schema }

// Fields of the AccessKey.
func (AccessKey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("key").NotEmpty().Unique().MaxLen(64),
		field.Bool("is_active").Default(true),
		// Null means the key never expires.
		field.Time("expires_at").Optional().Nillable(),
		// device_limit 1 is the single-device mode; >1 allows a small pool
		// of bound devices. device_count is the claim counter guarded by a
		// conditional update so two first-use verifications cannot both bind.
		field.Int("device_limit").Default(1).Min(1),
		field.Int("device_count").Default(0).Min(0),
		field.Time("last_used_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the AccessKey.
func (AccessKey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("devices", BoundDevice.Type),
	}
}

// Indexes of the AccessKey.
func (AccessKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
		index.Fields("created_at"),
	}
}
