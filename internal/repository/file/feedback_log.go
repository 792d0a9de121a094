package file

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"campus-chat-be/internal/entity"
	"campus-chat-be/internal/repository/contract"
)

// FeedbackLog is an append-only JSON-lines file, one feedback entry per
// line.
type FeedbackLog struct {
	mu   sync.Mutex
	path string
}

func NewFeedbackLog(path string) *FeedbackLog {
	return &FeedbackLog{path: path}
}

var _ contract.FeedbackRepository = (*FeedbackLog)(nil)

func (l *FeedbackLog) Append(feedback *entity.Feedback) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	line, err := json.Marshal(feedback)
	if err != nil {
		return err
	}
	line = append(line, '\n')
	_, err = f.Write(line)
	return err
}

func (l *FeedbackLog) Count() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(scanner.Bytes()) > 0 {
			count++
		}
	}
	return count, scanner.Err()
}
