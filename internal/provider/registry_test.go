package provider

import (
	"testing"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/common"
)

func TestDefaultRegistriesCoverAllBackends(t *testing.T) {
	r := DefaultRegistries()

	for _, name := range []string{constants.BackendDeepgram, constants.BackendWhisper, constants.BackendAssemblyAI} {
		if !r.Transcribers.Has(name) {
			t.Errorf("transcriber %q not registered", name)
		}
	}
	for _, name := range []string{constants.BackendGoogle, constants.BackendOpenAI, constants.BackendDeepSeek} {
		if !r.Translators.Has(name) {
			t.Errorf("translator %q not registered", name)
		}
	}
	if r.Transcribers.Has(constants.BackendGoogle) {
		t.Error("translator registered as transcriber")
	}
}

func TestRegistryUnknownBackendIsValidationError(t *testing.T) {
	r := DefaultRegistries()
	_, err := r.Transcribers.Create("cassette-deck", testConfig(), nil)
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if common.KindOf(err) != common.KindValidation {
		t.Errorf("kind = %s, want %s", common.KindOf(err), common.KindValidation)
	}
}

func TestRegistryMissingCredentialIsConfigurationError(t *testing.T) {
	r := DefaultRegistries()
	cfg := testConfig()
	cfg.GoogleAPIKey = ""
	_, err := r.Translators.Create(constants.BackendGoogle, cfg, nil)
	if err == nil {
		t.Fatal("expected error for missing credential")
	}
	if common.KindOf(err) != common.KindConfiguration {
		t.Errorf("kind = %s, want %s", common.KindOf(err), common.KindConfiguration)
	}
}

func TestRegistryCreatesFreshInstances(t *testing.T) {
	r := DefaultRegistries()
	a, err := r.Transcribers.Create(constants.BackendDeepgram, testConfig(), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := r.Transcribers.Create(constants.BackendDeepgram, testConfig(), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a == b {
		t.Error("registry returned a cached instance")
	}
}

func TestMarshalSegmentsValidates(t *testing.T) {
	b, err := MarshalSegments([]Segment{
		{Start: 0, End: 1.5, Speaker: "SPEAKER_00", Text: "hi", Confidence: 0.9},
	})
	if err != nil {
		t.Fatalf("MarshalSegments: %v", err)
	}
	if err := ValidateJSONAgainstSchema(BuildSegmentsJSONSchema(), b); err != nil {
		t.Errorf("round trip failed validation: %v", err)
	}

	// nil becomes an empty array, not JSON null
	b, err = MarshalSegments(nil)
	if err != nil {
		t.Fatalf("MarshalSegments(nil): %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("nil segments = %s, want []", b)
	}

	if err := ValidateJSONAgainstSchema(BuildSegmentsJSONSchema(), []byte(`[{"start": -1, "end": 2, "text": "x"}]`)); err == nil {
		t.Error("negative start accepted")
	}
	if err := ValidateJSONAgainstSchema(BuildSegmentsJSONSchema(), []byte(`[{"start": 0}]`)); err == nil {
		t.Error("missing required fields accepted")
	}
}
