package blobstore

import (
	"context"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/scribepipe/scribepipe/internal/common"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(t.TempDir(), "http://localhost:8081", []byte("test-secret"))
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	return s
}

func TestPathLayout(t *testing.T) {
	owner := "tenant-a"
	jobID := uuid.MustParse("6b1e415f-7f33-4bd6-9b62-4a727bd46333")

	in := InputPath(owner, jobID, ".mp3")
	want := "users/tenant-a/jobs/6b1e415f-7f33-4bd6-9b62-4a727bd46333/input/original.mp3"
	if in != want {
		t.Errorf("InputPath = %s, want %s", in, want)
	}

	out := OutputPath(owner, jobID, "transcript.txt")
	if !strings.HasSuffix(out, "/output/transcript.txt") {
		t.Errorf("OutputPath = %s", out)
	}
	if !strings.HasPrefix(out, OwnerPrefix(owner)) {
		t.Errorf("output path not under owner prefix: %s", out)
	}
}

func TestVerifyOwnership(t *testing.T) {
	jobID := uuid.New()
	path := InputPath("tenant-a", jobID, ".wav")

	if err := VerifyOwnership(path, "tenant-a"); err != nil {
		t.Errorf("owner rejected for own path: %v", err)
	}
	if err := VerifyOwnership(path, "tenant-b"); err == nil {
		t.Error("foreign owner accepted")
	} else if common.KindOf(err) != common.KindOwnership {
		t.Errorf("error kind = %s, want %s", common.KindOf(err), common.KindOwnership)
	}

	// traversal and malformed owners never verify
	if err := VerifyOwnership("users/tenant-a/../tenant-b/jobs/x", "tenant-a"); err == nil {
		t.Error("traversal path accepted")
	}
	if err := VerifyOwnership(path, "tenant-a/jobs"); err == nil {
		t.Error("owner containing a slash accepted")
	}
	if err := VerifyOwnership(path, ""); err == nil {
		t.Error("empty owner accepted")
	}
}

func TestUploadValidatesBeforePersist(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	path := InputPath("tenant-a", uuid.New(), ".mp3")

	cases := []struct {
		name string
		size int64
		ct   string
	}{
		{"oversized", int64(101) << 20, "audio/mpeg"},
		{"zero size", 0, "audio/mpeg"},
		{"bad type", 4, "application/x-msdownload"},
	}
	for _, tc := range cases {
		err := s.Upload(ctx, path, strings.NewReader("data"), tc.size, tc.ct)
		if err == nil {
			t.Errorf("%s: upload accepted", tc.name)
			continue
		}
		if common.KindOf(err) != common.KindValidation {
			t.Errorf("%s: error kind = %s, want %s", tc.name, common.KindOf(err), common.KindValidation)
		}
		if ok, _ := s.Exists(ctx, path); ok {
			t.Errorf("%s: bytes persisted despite rejection", tc.name)
		}
	}
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	path := OutputPath("tenant-a", uuid.New(), "transcript.txt")
	content := "hello transcript"

	if err := s.Upload(ctx, path, strings.NewReader(content), int64(len(content)), "text/plain"); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	rc, err := s.Download(ctx, path)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != content {
		t.Errorf("content = %q, want %q", got, content)
	}

	files, err := s.List(ctx, OwnerPrefix("tenant-a"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 1 || files[0].Path != path {
		t.Errorf("List = %+v", files)
	}
}

func TestDownloadMissingIsNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Download(context.Background(), "users/tenant-a/jobs/nope/input/original.mp3")
	if common.KindOf(err) != common.KindNotFound {
		t.Errorf("error kind = %s, want %s", common.KindOf(err), common.KindNotFound)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	path := OutputPath("tenant-a", uuid.New(), "translation.txt")

	if err := s.Upload(ctx, path, strings.NewReader("x"), 1, "text/plain"); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if err := s.Delete(ctx, path); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, path); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestSignedURLRoundTripAndExpiry(t *testing.T) {
	s := newTestStore(t)
	now := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return now }

	path := OutputPath("tenant-a", uuid.New(), "subtitles.srt")
	signed, err := s.SignedURL(context.Background(), path, 5*time.Minute)
	if err != nil {
		t.Fatalf("SignedURL: %v", err)
	}

	u, err := url.Parse(signed)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	exp := u.Query().Get("exp")
	sig := u.Query().Get("sig")

	if err := s.VerifySignedRequest(path, exp, sig); err != nil {
		t.Errorf("valid signature rejected: %v", err)
	}
	if err := s.VerifySignedRequest(path, exp, sig+"00"); err == nil {
		t.Error("tampered signature accepted")
	}
	if err := s.VerifySignedRequest("users/tenant-b/other", exp, sig); err == nil {
		t.Error("signature accepted for a different path")
	}

	s.now = func() time.Time { return now.Add(6 * time.Minute) }
	if err := s.VerifySignedRequest(path, exp, sig); err == nil {
		t.Error("expired URL accepted")
	}

	if _, err := s.SignedURL(context.Background(), path, 0); err == nil {
		t.Error("zero expiry accepted")
	}
}
