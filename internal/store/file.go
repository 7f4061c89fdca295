package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// fileData is the on-disk shape: one pretty-printed JSON document with two
// ordered collections.
type fileData struct {
	Assignments []AssignmentRecord `json:"assignments"`
	Chats       []ChatExchange     `json:"chats"`
}

// FileStore keeps the whole store in memory and rewrites the file in full
// after every append. An absent or unreadable file starts as an empty
// store rather than an error.
type FileStore struct {
	path string
	mu   sync.Mutex
	data fileData
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	s := &FileStore{path: path}
	s.data = loadData(path)
	return s, nil
}

func loadData(path string) fileData {
	empty := fileData{Assignments: []AssignmentRecord{}, Chats: []ChatExchange{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("failed to read store file %s, starting empty: %v", path, err)
		}
		return empty
	}
	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("store file %s is corrupt, starting empty: %v", path, err)
		return empty
	}
	if data.Assignments == nil {
		data.Assignments = []AssignmentRecord{}
	}
	if data.Chats == nil {
		data.Chats = []ChatExchange{}
	}
	return data
}

func (s *FileStore) AppendAssignment(rec AssignmentRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = fmt.Sprintf("A%d", len(s.data.Assignments)+1)
	s.data.Assignments = append(s.data.Assignments, rec)
	return rec.ID, s.saveUnlocked()
}

func (s *FileStore) AppendChat(rec ChatExchange) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = fmt.Sprintf("C%d", len(s.data.Chats)+1)
	s.data.Chats = append(s.data.Chats, rec)
	return rec.ID, s.saveUnlocked()
}

// RecentAssignments returns the last n records in insertion order
// (most recent last).
func (s *FileStore) RecentAssignments(n int) ([]AssignmentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := len(s.data.Assignments) - n
	if n <= 0 || start < 0 {
		start = 0
	}
	out := make([]AssignmentRecord, len(s.data.Assignments)-start)
	copy(out, s.data.Assignments[start:])
	return out, nil
}

func (s *FileStore) RecentChats(n int) ([]ChatExchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := len(s.data.Chats) - n
	if n <= 0 || start < 0 {
		start = 0
	}
	out := make([]ChatExchange, len(s.data.Chats)-start)
	copy(out, s.data.Chats[start:])
	return out, nil
}

func (s *FileStore) saveUnlocked() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open store file: %w", err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
		}
	}(f)
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.data); err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	return nil
}
