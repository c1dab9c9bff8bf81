package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/db/ent/schema/utils"

	"github.com/google/uuid"
)

// UsageRecord rows are append-only; there is no update path anywhere
// in the codebase.
type UsageRecord struct{ ent.Schema }

func (UsageRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "usage_records"},
	}
}

func (UsageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("owner_id").NotEmpty().Immutable(),
		field.UUID("job_id", uuid.UUID{}).Optional().Nillable(),
		field.String("service").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.JobKinds...)),
		field.String("backend").NotEmpty().Immutable(),
		// exactly one of the three quantities is non-zero per row
		field.Float("audio_seconds").Default(0).Min(0),
		field.Int64("tokens_used").Default(0).NonNegative(),
		field.Int64("characters_processed").Default(0).NonNegative(),
		field.Float("cost_usd").Default(0).Min(0),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (UsageRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("job_id"),
	}
}
