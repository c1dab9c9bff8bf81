// Code generated by ent, DO NOT EDIT.

package usagerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scribepipe/scribepipe/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldOwnerID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldJobID, v))
}

// Service applies equality check predicate on the "service" field. It's identical to ServiceEQ.
func Service(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldService, v))
}

// Backend applies equality check predicate on the "backend" field. It's identical to BackendEQ.
func Backend(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldBackend, v))
}

// AudioSeconds applies equality check predicate on the "audio_seconds" field. It's identical to AudioSecondsEQ.
func AudioSeconds(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldAudioSeconds, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldTokensUsed, v))
}

// CharactersProcessed applies equality check predicate on the "characters_processed" field. It's identical to CharactersProcessedEQ.
func CharactersProcessed(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldCharactersProcessed, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldCostUsd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContainsFold(FieldOwnerID, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v uuid.UUID) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldJobID, v))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotNull(FieldJobID))
}

// ServiceEQ applies the EQ predicate on the "service" field.
func ServiceEQ(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldService, v))
}

// ServiceNEQ applies the NEQ predicate on the "service" field.
func ServiceNEQ(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldService, v))
}

// ServiceIn applies the In predicate on the "service" field.
func ServiceIn(vs ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldService, vs...))
}

// ServiceNotIn applies the NotIn predicate on the "service" field.
func ServiceNotIn(vs ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldService, vs...))
}

// ServiceGT applies the GT predicate on the "service" field.
func ServiceGT(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldService, v))
}

// ServiceGTE applies the GTE predicate on the "service" field.
func ServiceGTE(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldService, v))
}

// ServiceLT applies the LT predicate on the "service" field.
func ServiceLT(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldService, v))
}

// ServiceLTE applies the LTE predicate on the "service" field.
func ServiceLTE(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldService, v))
}

// ServiceContains applies the Contains predicate on the "service" field.
func ServiceContains(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContains(FieldService, v))
}

// ServiceHasPrefix applies the HasPrefix predicate on the "service" field.
func ServiceHasPrefix(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldHasPrefix(FieldService, v))
}

// ServiceHasSuffix applies the HasSuffix predicate on the "service" field.
func ServiceHasSuffix(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldHasSuffix(FieldService, v))
}

// ServiceEqualFold applies the EqualFold predicate on the "service" field.
func ServiceEqualFold(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEqualFold(FieldService, v))
}

// ServiceContainsFold applies the ContainsFold predicate on the "service" field.
func ServiceContainsFold(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContainsFold(FieldService, v))
}

// BackendEQ applies the EQ predicate on the "backend" field.
func BackendEQ(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldBackend, v))
}

// BackendNEQ applies the NEQ predicate on the "backend" field.
func BackendNEQ(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldBackend, v))
}

// BackendIn applies the In predicate on the "backend" field.
func BackendIn(vs ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldBackend, vs...))
}

// BackendNotIn applies the NotIn predicate on the "backend" field.
func BackendNotIn(vs ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldBackend, vs...))
}

// BackendGT applies the GT predicate on the "backend" field.
func BackendGT(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldBackend, v))
}

// BackendGTE applies the GTE predicate on the "backend" field.
func BackendGTE(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldBackend, v))
}

// BackendLT applies the LT predicate on the "backend" field.
func BackendLT(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldBackend, v))
}

// BackendLTE applies the LTE predicate on the "backend" field.
func BackendLTE(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldBackend, v))
}

// BackendContains applies the Contains predicate on the "backend" field.
func BackendContains(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContains(FieldBackend, v))
}

// BackendHasPrefix applies the HasPrefix predicate on the "backend" field.
func BackendHasPrefix(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldHasPrefix(FieldBackend, v))
}

// BackendHasSuffix applies the HasSuffix predicate on the "backend" field.
func BackendHasSuffix(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldHasSuffix(FieldBackend, v))
}

// BackendEqualFold applies the EqualFold predicate on the "backend" field.
func BackendEqualFold(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEqualFold(FieldBackend, v))
}

// BackendContainsFold applies the ContainsFold predicate on the "backend" field.
func BackendContainsFold(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContainsFold(FieldBackend, v))
}

// AudioSecondsEQ applies the EQ predicate on the "audio_seconds" field.
func AudioSecondsEQ(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldAudioSeconds, v))
}

// AudioSecondsNEQ applies the NEQ predicate on the "audio_seconds" field.
func AudioSecondsNEQ(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldAudioSeconds, v))
}

// AudioSecondsIn applies the In predicate on the "audio_seconds" field.
func AudioSecondsIn(vs ...float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldAudioSeconds, vs...))
}

// AudioSecondsNotIn applies the NotIn predicate on the "audio_seconds" field.
func AudioSecondsNotIn(vs ...float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldAudioSeconds, vs...))
}

// AudioSecondsGT applies the GT predicate on the "audio_seconds" field.
func AudioSecondsGT(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldAudioSeconds, v))
}

// AudioSecondsGTE applies the GTE predicate on the "audio_seconds" field.
func AudioSecondsGTE(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldAudioSeconds, v))
}

// AudioSecondsLT applies the LT predicate on the "audio_seconds" field.
func AudioSecondsLT(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldAudioSeconds, v))
}

// AudioSecondsLTE applies the LTE predicate on the "audio_seconds" field.
func AudioSecondsLTE(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldAudioSeconds, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldTokensUsed, v))
}

// CharactersProcessedEQ applies the EQ predicate on the "characters_processed" field.
func CharactersProcessedEQ(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldCharactersProcessed, v))
}

// CharactersProcessedNEQ applies the NEQ predicate on the "characters_processed" field.
func CharactersProcessedNEQ(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldCharactersProcessed, v))
}

// CharactersProcessedIn applies the In predicate on the "characters_processed" field.
func CharactersProcessedIn(vs ...int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldCharactersProcessed, vs...))
}

// CharactersProcessedNotIn applies the NotIn predicate on the "characters_processed" field.
func CharactersProcessedNotIn(vs ...int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldCharactersProcessed, vs...))
}

// CharactersProcessedGT applies the GT predicate on the "characters_processed" field.
func CharactersProcessedGT(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldCharactersProcessed, v))
}

// CharactersProcessedGTE applies the GTE predicate on the "characters_processed" field.
func CharactersProcessedGTE(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldCharactersProcessed, v))
}

// CharactersProcessedLT applies the LT predicate on the "characters_processed" field.
func CharactersProcessedLT(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldCharactersProcessed, v))
}

// CharactersProcessedLTE applies the LTE predicate on the "characters_processed" field.
func CharactersProcessedLTE(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldCharactersProcessed, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldCostUsd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageRecord) predicate.UsageRecord {
	return predicate.UsageRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageRecord) predicate.UsageRecord {
	return predicate.UsageRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageRecord) predicate.UsageRecord {
	return predicate.UsageRecord(sql.NotPredicates(p))
}
