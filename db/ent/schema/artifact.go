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

type Artifact struct{ ent.Schema }

func (Artifact) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "artifacts"},
	}
}

func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK for index definitions
		field.UUID("job_id", uuid.UUID{}),
		field.String("artifact_type").NotEmpty().
			Validate(utils.EnumValidator(constants.ArtifactKinds...)),
		field.String("storage_ref").NotEmpty(),
		field.Int64("size_bytes").NonNegative().Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Artifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("artifacts").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("job_id", "artifact_type").Unique(),
	}
}
