// Code generated by ent, DO NOT EDIT.

package usagerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the usagerecord type in the database.
	Label = "usage_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldService holds the string denoting the service field in the database.
	FieldService = "service"
	// FieldBackend holds the string denoting the backend field in the database.
	FieldBackend = "backend"
	// FieldAudioSeconds holds the string denoting the audio_seconds field in the database.
	FieldAudioSeconds = "audio_seconds"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldCharactersProcessed holds the string denoting the characters_processed field in the database.
	FieldCharactersProcessed = "characters_processed"
	// FieldCostUsd holds the string denoting the cost_usd field in the database.
	FieldCostUsd = "cost_usd"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the usagerecord in the database.
	Table = "usage_records"
)

// Columns holds all SQL columns for usagerecord fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldJobID,
	FieldService,
	FieldBackend,
	FieldAudioSeconds,
	FieldTokensUsed,
	FieldCharactersProcessed,
	FieldCostUsd,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	OwnerIDValidator func(string) error
	// ServiceValidator is a validator for the "service" field. It is called by the builders before save.
	ServiceValidator func(string) error
	// BackendValidator is a validator for the "backend" field. It is called by the builders before save.
	BackendValidator func(string) error
	// DefaultAudioSeconds holds the default value on creation for the "audio_seconds" field.
	DefaultAudioSeconds float64
	// AudioSecondsValidator is a validator for the "audio_seconds" field. It is called by the builders before save.
	AudioSecondsValidator func(float64) error
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int64
	// TokensUsedValidator is a validator for the "tokens_used" field. It is called by the builders before save.
	TokensUsedValidator func(int64) error
	// DefaultCharactersProcessed holds the default value on creation for the "characters_processed" field.
	DefaultCharactersProcessed int64
	// CharactersProcessedValidator is a validator for the "characters_processed" field. It is called by the builders before save.
	CharactersProcessedValidator func(int64) error
	// DefaultCostUsd holds the default value on creation for the "cost_usd" field.
	DefaultCostUsd float64
	// CostUsdValidator is a validator for the "cost_usd" field. It is called by the builders before save.
	CostUsdValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the UsageRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByService orders the results by the service field.
func ByService(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldService, opts...).ToFunc()
}

// ByBackend orders the results by the backend field.
func ByBackend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackend, opts...).ToFunc()
}

// ByAudioSeconds orders the results by the audio_seconds field.
func ByAudioSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioSeconds, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByCharactersProcessed orders the results by the characters_processed field.
func ByCharactersProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCharactersProcessed, opts...).ToFunc()
}

// ByCostUsd orders the results by the cost_usd field.
func ByCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostUsd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
