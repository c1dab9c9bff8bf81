package constants

// JobKind distinguishes the two billable services.
type JobKind string

const (
	JobKindTranscription JobKind = "TRANSCRIPTION"
	JobKindTranslation   JobKind = "TRANSLATION"
)

// JobKinds holds every storable kind value, for schema validation.
var JobKinds = []string{
	string(JobKindTranscription),
	string(JobKindTranslation),
}

// Backend names as registered in the provider registry. These are the
// values accepted on process requests and recorded in usage rows.
const (
	BackendDeepgram   = "deepgram"
	BackendWhisper    = "whisper"
	BackendAssemblyAI = "assemblyai"
	BackendGoogle     = "google"
	BackendOpenAI     = "openai"
	BackendDeepSeek   = "deepseek"
)

// ArtifactKind identifies what an output object contains.
type ArtifactKind string

const (
	ArtifactTranscript  ArtifactKind = "TRANSCRIPT"
	ArtifactTranslation ArtifactKind = "TRANSLATION"
	ArtifactSRT         ArtifactKind = "SRT"
	ArtifactJSON        ArtifactKind = "JSON"
)

// ArtifactKinds holds every storable artifact kind, for schema validation.
var ArtifactKinds = []string{
	string(ArtifactTranscript),
	string(ArtifactTranslation),
	string(ArtifactSRT),
	string(ArtifactJSON),
}

// Canonical object names for artifacts under the job's output prefix.
var ArtifactFilenames = map[ArtifactKind]string{
	ArtifactTranscript:  "transcript.txt",
	ArtifactTranslation: "translation.txt",
	ArtifactSRT:         "subtitles.srt",
	ArtifactJSON:        "segments.json",
}
