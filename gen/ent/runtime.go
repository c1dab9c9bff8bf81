// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/scribepipe/scribepipe/db/ent/schema"
	"github.com/scribepipe/scribepipe/gen/ent/artifact"
	"github.com/scribepipe/scribepipe/gen/ent/job"
	"github.com/scribepipe/scribepipe/gen/ent/usagerecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescArtifactType is the schema descriptor for artifact_type field.
	artifactDescArtifactType := artifactFields[2].Descriptor()
	// artifact.ArtifactTypeValidator is a validator for the "artifact_type" field. It is called by the builders before save.
	artifact.ArtifactTypeValidator = func() func(string) error {
		validators := artifactDescArtifactType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(artifact_type string) error {
			for _, fn := range fns {
				if err := fn(artifact_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// artifactDescStorageRef is the schema descriptor for storage_ref field.
	artifactDescStorageRef := artifactFields[3].Descriptor()
	// artifact.StorageRefValidator is a validator for the "storage_ref" field. It is called by the builders before save.
	artifact.StorageRefValidator = artifactDescStorageRef.Validators[0].(func(string) error)
	// artifactDescSizeBytes is the schema descriptor for size_bytes field.
	artifactDescSizeBytes := artifactFields[4].Descriptor()
	// artifact.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	artifact.DefaultSizeBytes = artifactDescSizeBytes.Default.(int64)
	// artifact.SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	artifact.SizeBytesValidator = artifactDescSizeBytes.Validators[0].(func(int64) error)
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[5].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	// artifactDescID is the schema descriptor for id field.
	artifactDescID := artifactFields[0].Descriptor()
	// artifact.DefaultID holds the default value on creation for the id field.
	artifact.DefaultID = artifactDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescOwnerID is the schema descriptor for owner_id field.
	jobDescOwnerID := jobFields[1].Descriptor()
	// job.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	job.OwnerIDValidator = jobDescOwnerID.Validators[0].(func(string) error)
	// jobDescJobType is the schema descriptor for job_type field.
	jobDescJobType := jobFields[2].Descriptor()
	// job.JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	job.JobTypeValidator = func() func(string) error {
		validators := jobDescJobType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(job_type string) error {
			for _, fn := range fns {
				if err := fn(job_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[3].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescInputRef is the schema descriptor for input_ref field.
	jobDescInputRef := jobFields[4].Descriptor()
	// job.InputRefValidator is a validator for the "input_ref" field. It is called by the builders before save.
	job.InputRefValidator = jobDescInputRef.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[8].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	usagerecordFields := schema.UsageRecord{}.Fields()
	_ = usagerecordFields
	// usagerecordDescOwnerID is the schema descriptor for owner_id field.
	usagerecordDescOwnerID := usagerecordFields[1].Descriptor()
	// usagerecord.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	usagerecord.OwnerIDValidator = usagerecordDescOwnerID.Validators[0].(func(string) error)
	// usagerecordDescService is the schema descriptor for service field.
	usagerecordDescService := usagerecordFields[3].Descriptor()
	// usagerecord.ServiceValidator is a validator for the "service" field. It is called by the builders before save.
	usagerecord.ServiceValidator = func() func(string) error {
		validators := usagerecordDescService.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(service string) error {
			for _, fn := range fns {
				if err := fn(service); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usagerecordDescBackend is the schema descriptor for backend field.
	usagerecordDescBackend := usagerecordFields[4].Descriptor()
	// usagerecord.BackendValidator is a validator for the "backend" field. It is called by the builders before save.
	usagerecord.BackendValidator = usagerecordDescBackend.Validators[0].(func(string) error)
	// usagerecordDescAudioSeconds is the schema descriptor for audio_seconds field.
	usagerecordDescAudioSeconds := usagerecordFields[5].Descriptor()
	// usagerecord.DefaultAudioSeconds holds the default value on creation for the audio_seconds field.
	usagerecord.DefaultAudioSeconds = usagerecordDescAudioSeconds.Default.(float64)
	// usagerecord.AudioSecondsValidator is a validator for the "audio_seconds" field. It is called by the builders before save.
	usagerecord.AudioSecondsValidator = usagerecordDescAudioSeconds.Validators[0].(func(float64) error)
	// usagerecordDescTokensUsed is the schema descriptor for tokens_used field.
	usagerecordDescTokensUsed := usagerecordFields[6].Descriptor()
	// usagerecord.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	usagerecord.DefaultTokensUsed = usagerecordDescTokensUsed.Default.(int64)
	// usagerecord.TokensUsedValidator is a validator for the "tokens_used" field. It is called by the builders before save.
	usagerecord.TokensUsedValidator = usagerecordDescTokensUsed.Validators[0].(func(int64) error)
	// usagerecordDescCharactersProcessed is the schema descriptor for characters_processed field.
	usagerecordDescCharactersProcessed := usagerecordFields[7].Descriptor()
	// usagerecord.DefaultCharactersProcessed holds the default value on creation for the characters_processed field.
	usagerecord.DefaultCharactersProcessed = usagerecordDescCharactersProcessed.Default.(int64)
	// usagerecord.CharactersProcessedValidator is a validator for the "characters_processed" field. It is called by the builders before save.
	usagerecord.CharactersProcessedValidator = usagerecordDescCharactersProcessed.Validators[0].(func(int64) error)
	// usagerecordDescCostUsd is the schema descriptor for cost_usd field.
	usagerecordDescCostUsd := usagerecordFields[8].Descriptor()
	// usagerecord.DefaultCostUsd holds the default value on creation for the cost_usd field.
	usagerecord.DefaultCostUsd = usagerecordDescCostUsd.Default.(float64)
	// usagerecord.CostUsdValidator is a validator for the "cost_usd" field. It is called by the builders before save.
	usagerecord.CostUsdValidator = usagerecordDescCostUsd.Validators[0].(func(float64) error)
	// usagerecordDescCreatedAt is the schema descriptor for created_at field.
	usagerecordDescCreatedAt := usagerecordFields[9].Descriptor()
	// usagerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagerecord.DefaultCreatedAt = usagerecordDescCreatedAt.Default.(func() time.Time)
	// usagerecordDescID is the schema descriptor for id field.
	usagerecordDescID := usagerecordFields[0].Descriptor()
	// usagerecord.DefaultID holds the default value on creation for the id field.
	usagerecord.DefaultID = usagerecordDescID.Default.(func() uuid.UUID)
}
