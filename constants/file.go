package constants

import "strings"

// MaxUploadSizeMB caps the size of a single input file.
const MaxUploadSizeMB = 100

// MaxUploadSizeBytes is MaxUploadSizeMB expressed in bytes.
const MaxUploadSizeBytes = MaxUploadSizeMB << 20

// AllowedContentTypes holds the accepted MIME types for job inputs.
var AllowedContentTypes = map[string]struct{}{
	"audio/mpeg":        {},
	"audio/wav":         {},
	"audio/webm":        {},
	"audio/ogg":         {},
	"audio/m4a":         {},
	"audio/flac":        {},
	"video/mp4":         {},
	"video/webm":        {},
	"video/quicktime":   {},
	"video/x-msvideo":   {},
	"text/plain":        {},
	"application/json":  {},
}

// extByContentType maps an accepted MIME type to the extension used
// when naming the stored input object.
var extByContentType = map[string]string{
	"audio/mpeg":       ".mp3",
	"audio/wav":        ".wav",
	"audio/webm":       ".webm",
	"audio/ogg":        ".ogg",
	"audio/m4a":        ".m4a",
	"audio/flac":       ".flac",
	"video/mp4":        ".mp4",
	"video/webm":       ".webm",
	"video/quicktime":  ".mov",
	"video/x-msvideo":  ".avi",
	"text/plain":       ".txt",
	"application/json": ".json",
}

// ContentTypeAllowed reports whether ct (ignoring parameters such as
// charset) is on the upload allow-list.
func ContentTypeAllowed(ct string) bool {
	_, ok := AllowedContentTypes[NormalizeContentType(ct)]
	return ok
}

// ExtForContentType returns the storage extension for an accepted MIME
// type, or an empty string when the type is not allowed.
func ExtForContentType(ct string) string {
	return extByContentType[NormalizeContentType(ct)]
}

var contentTypeByExt = map[string]string{
	".mp3":  "audio/mpeg",
	".mpga": "audio/mpeg",
	".wav":  "audio/wav",
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
	".m4a":  "audio/m4a",
	".flac": "audio/flac",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".txt":  "text/plain",
	".json": "application/json",
}

// ContentTypeForExt returns the accepted MIME type for a filename
// extension such as ".mp3", or an empty string for unknown ones.
func ContentTypeForExt(ext string) string {
	return contentTypeByExt[strings.ToLower(ext)]
}

// NormalizeContentType lowercases a MIME type and strips parameters.
func NormalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
