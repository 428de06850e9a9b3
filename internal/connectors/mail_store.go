package connectors

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhillyerd/enmime"

	"cardstmt/internal"
)

type AttachmentStore struct {
	inboxDir string
}

func NewAttachmentStore(inboxDir string) *AttachmentStore {
	return &AttachmentStore{inboxDir: inboxDir}
}

func (s *AttachmentStore) Store(msg internal.FetchedMailMessage) ([]string, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(msg.Raw))
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.inboxDir, 0o755); err != nil {
		return nil, err
	}

	saved := make([]string, 0, len(env.Attachments))
	for _, att := range env.Attachments {
		ext := attachmentExt(att.FileName)
		if ext == "" {
			continue
		}
		path, err := s.write(att.Content, ext)
		if err != nil {
			return saved, err
		}
		saved = append(saved, path)
	}

	if len(saved) == 0 && env.HTML != "" {
		path, err := s.write([]byte(env.HTML), ".html")
		if err != nil {
			return saved, err
		}
		saved = append(saved, path)
	}

	return saved, nil
}

func (s *AttachmentStore) write(content []byte, ext string) (string, error) {
	hashBytes := sha256.Sum256(content)
	hash := hex.EncodeToString(hashBytes[:])

	path := filepath.Join(s.inboxDir, hash+ext)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return "", err
		}
	}
	return path, nil
}

func attachmentExt(filename string) string {
	lower := strings.ToLower(strings.TrimSpace(filename))
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return ".pdf"
	case strings.HasSuffix(lower, ".html"), strings.HasSuffix(lower, ".htm"):
		return ".html"
	default:
		return ""
	}
}
