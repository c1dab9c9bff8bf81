package blobstore

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/scribepipe/scribepipe/internal/common"
)

// LocalStore implements Store on the local filesystem. Signed URLs
// carry an HMAC over path and expiry so the serving handler can check
// them without any shared state.
type LocalStore struct {
	root    string
	secret  []byte
	baseURL string
	now     func() time.Time
}

// NewLocalStore creates a filesystem-backed store rooted at root.
func NewLocalStore(root, baseURL string, secret []byte) (*LocalStore, error) {
	if len(secret) == 0 {
		return nil, common.ConfigurationError("local store requires a signing secret", nil)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, common.StorageError("create storage root", err)
	}
	return &LocalStore{
		root:    root,
		secret:  secret,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}, nil
}

func (s *LocalStore) abs(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	if strings.Contains(clean, "..") {
		return "", common.InvalidInputError("invalid storage path", nil)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *LocalStore) Upload(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error {
	if err := ValidateUpload(size, contentType); err != nil {
		return err
	}
	abs, err := s.abs(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return common.StorageError("create object dir", err)
	}

	// write to a sibling temp name so a failed upload never leaves a
	// readable partial object
	tmp := abs + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return common.StorageError("create object", err)
	}
	n, err := io.Copy(f, io.LimitReader(reader, size+1))
	cerr := f.Close()
	if err == nil {
		err = cerr
	}
	if err == nil && n > size {
		err = common.InvalidInputError("upload larger than declared size", nil)
	}
	if err != nil {
		_ = os.Remove(tmp)
		if common.KindOf(err) == common.KindValidation {
			return err
		}
		return common.StorageError("write object", err)
	}
	if err := os.Rename(tmp, abs); err != nil {
		_ = os.Remove(tmp)
		return common.StorageError("finalize object", err)
	}
	return nil
}

func (s *LocalStore) Download(_ context.Context, path string) (io.ReadCloser, error) {
	abs, err := s.abs(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NotFoundAppError("object not found")
		}
		return nil, common.StorageError("open object", err)
	}
	return f, nil
}

func (s *LocalStore) Delete(_ context.Context, path string) error {
	abs, err := s.abs(path)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return common.StorageError("delete object", err)
	}
	return nil
}

func (s *LocalStore) Exists(_ context.Context, path string) (bool, error) {
	abs, err := s.abs(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, common.StorageError("stat object", err)
	}
	return true, nil
}

func (s *LocalStore) List(_ context.Context, prefix string) ([]FileInfo, error) {
	absPrefix, err := s.abs(prefix)
	if err != nil {
		return nil, err
	}
	var files []FileInfo
	walkErr := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !strings.HasPrefix(p, absPrefix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		files = append(files, FileInfo{
			Path:         filepath.ToSlash(rel),
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
		return nil
	})
	if walkErr != nil {
		return nil, common.StorageError("list objects", walkErr)
	}
	return files, nil
}

// SignedURL produces /blobs/{path}?exp=...&sig=... where sig is an
// HMAC-SHA256 over "path\nexp".
func (s *LocalStore) SignedURL(_ context.Context, path string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		return "", common.InvalidInputError("signed URL expiry must be positive", nil)
	}
	exp := s.now().Add(expiry).Unix()
	sig := s.sign(path, exp)
	q := url.Values{}
	q.Set("exp", strconv.FormatInt(exp, 10))
	q.Set("sig", sig)
	return fmt.Sprintf("%s/blobs/%s?%s", s.baseURL, path, q.Encode()), nil
}

// VerifySignedRequest checks the signature and expiry previously
// issued by SignedURL for path.
func (s *LocalStore) VerifySignedRequest(path, expStr, sig string) error {
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		return common.InvalidInputError("malformed expiry", err)
	}
	if s.now().Unix() > exp {
		return common.InvalidInputError("signed URL expired", nil)
	}
	want := s.sign(path, exp)
	if !hmac.Equal([]byte(want), []byte(sig)) {
		return common.OwnershipError("signature mismatch")
	}
	return nil
}

func (s *LocalStore) sign(path string, exp int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s\n%d", path, exp)
	return hex.EncodeToString(mac.Sum(nil))
}

// compile-time check
var _ Store = (*LocalStore)(nil)
