package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/db/ent/schema/utils"

	"github.com/google/uuid"
)

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("owner_id").NotEmpty().Immutable(),
		field.String("job_type").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.JobKinds...)),
		field.String("status").
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		// storage path under the owner's prefix
		field.String("input_ref").NotEmpty(),
		field.String("display_name").Optional().Nillable(),
		field.String("backend").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("artifacts", Artifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status", "created_at"),
		index.Fields("owner_id", "created_at"),
	}
}
