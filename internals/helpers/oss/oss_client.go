// internals/helpers/oss/oss_client.go
package helper

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"aptfee_backend/internals/configs"
	"aptfee_backend/internals/constants"
	helper "aptfee_backend/internals/helpers"
)

const maxUploadSize = int64(10 * 1024 * 1024)

var ErrNotConfigured = errors.New("oss: missing ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")

// DocumentStore is what controllers need from object storage.
type DocumentStore interface {
	Upload(ctx context.Context, dir string, fh *multipart.FileHeader) (key, contentType string, err error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type OSSService struct {
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "contracts/"
}

// NewOSSService returns ErrNotConfigured when credentials are absent so callers can run without storage.
func NewOSSService(cfg configs.Config) (*OSSService, error) {
	if cfg.OSSEndpoint == "" || cfg.OSSAccessKey == "" || cfg.OSSSecretKey == "" || cfg.OSSBucket == "" {
		return nil, ErrNotConfigured
	}
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	log.Printf("[OSS] bucket %s ready", cfg.OSSBucket)
	return &OSSService{
		Bucket:     bkt,
		Endpoint:   cfg.OSSEndpoint,
		BucketName: cfg.OSSBucket,
		Prefix:     strings.Trim(cfg.OSSContractsDir, "/"),
	}, nil
}

// Upload stores the file as-is under Prefix/dir and returns its object key.
func (s *OSSService) Upload(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", helper.ErrInvalidKey.WithMessage("File not found")
	}
	if fh.Size > maxUploadSize {
		return "", "", helper.ErrInvalidKey.WithMessage("File too large")
	}
	key := BuildObjectKey(s.Prefix, dir, fh.Filename, time.Now())

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	ct := constants.ContentTypeFromExt(fh.Filename)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(ct),
		oss.ContentDisposition("inline"),
	}
	if err := s.Bucket.PutObject(key, src, opts...); err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}
	return key, ct, nil
}

func (s *OSSService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	err := s.Bucket.DeleteObject(key, oss.WithContext(ctx))
	if isNotFound(err) {
		return nil
	}
	return err
}

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if base := configs.GetEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

// BuildObjectKey: prefix/dir/<slug>_<yyyymmdd_hhmmss>_<rand><ext>
func BuildObjectKey(prefix, dir, filename string, now time.Time) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{prefix, dir} {
		if p = strings.Trim(strings.TrimSpace(p), "/"); p != "" {
			parts = append(parts, p)
		}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	base := slugify(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if base == "" {
		base = "file"
	}
	parts = append(parts, fmt.Sprintf("%s_%s_%s%s", base, now.UTC().Format("20060102_150405"), randHex(3), ext))
	return strings.Join(parts, "/")
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(helper.NameKey(s)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case !lastDash && b.Len() > 0:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func isNotFound(err error) bool {
	var se oss.ServiceError
	if errors.As(err, &se) {
		return se.StatusCode == 404
	}
	return false
}
