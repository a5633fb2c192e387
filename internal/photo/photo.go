// Package photo turns local image files into the references stored in
// DiaryEntry.Photos: a file:// URI pointing at the image, or a base64 data
// URI carrying the image inline.
package photo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxEmbedSize ограничивает размер встраиваемого изображения
const MaxEmbedSize = 10 << 20

var (
	// ErrNotImage indicates that the file content is not an image
	ErrNotImage = errors.New("file is not an image")
	// ErrTooLarge indicates that the image exceeds MaxEmbedSize
	ErrTooLarge = errors.New("image is too large to embed")
	// ErrNotDataURI indicates that a reference is not a base64 data URI
	ErrNotDataURI = errors.New("not a base64 data URI")
)

// Kind вид ссылки на фото
type Kind string

const (
	KindFile  Kind = "file"
	KindData  Kind = "data"
	KindURL   Kind = "url"
	KindOther Kind = "other"
)

// Info описывает сохраненную ссылку на фото
type Info struct {
	Kind Kind
	MIME string // только для data URI
	Size int    // размер декодированных данных, только для data URI
}

// IsReference reports whether s already is a URI that can be stored as is.
func IsReference(s string) bool {
	for _, prefix := range []string{"file://", "data:", "http://", "https://"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// Ref builds a photo reference for path. Existing URIs are returned
// unchanged. With embed the file is read, checked to be an image and
// returned as a data URI; otherwise a file:// URI of the absolute path is
// returned.
func Ref(path string, embed bool) (string, error) {
	if IsReference(path) {
		return path, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve photo path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to stat photo: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("photo path %s is a directory", abs)
	}

	if !embed {
		u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
		return u.String(), nil
	}

	if info.Size() > MaxEmbedSize {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, info.Size())
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("failed to read photo: %w", err)
	}

	return DataURI(data)
}

// DataURI encodes image bytes as a data URI, detecting the MIME type from
// the content.
func DataURI(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mtype.String())
	}

	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeDataURI returns the MIME type and decoded bytes of a base64 data URI
func DecodeDataURI(ref string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(ref, "data:")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, ErrNotDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrNotDataURI, err)
	}
	return mime, data, nil
}

// Describe classifies a stored photo reference.
func Describe(ref string) Info {
	switch {
	case strings.HasPrefix(ref, "data:"):
		mime, data, err := DecodeDataURI(ref)
		if err != nil {
			return Info{Kind: KindOther}
		}
		return Info{Kind: KindData, MIME: mime, Size: len(data)}
	case strings.HasPrefix(ref, "file://"):
		return Info{Kind: KindFile}
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return Info{Kind: KindURL}
	default:
		return Info{Kind: KindOther}
	}
}
