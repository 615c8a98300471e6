package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clawguinness/clawboard/internal/db/dbtest"
	"github.com/clawguinness/clawboard/internal/model"
	"github.com/clawguinness/clawboard/internal/repository"
)

const testStorageURL = "https://cdn.test/avatars"

// memoryStorage keeps objects in a map and can be told to fail saves.
type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	saveErr error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		objects: map[string][]byte{},
		types:   map[string]string{},
	}
}

func (m *memoryStorage) Save(_ context.Context, key string, body io.Reader, contentType string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return errors.New("no such key")
	}
	delete(m.objects, key)
	return nil
}

func (m *memoryStorage) URL(key string) string {
	return testStorageURL + "/" + key
}

func (m *memoryStorage) Key(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, testStorageURL+"/")
	return key, ok && key != ""
}

func (m *memoryStorage) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}

type testServices struct {
	agents   *AgentService
	records  *RecordService
	posts    *PostService
	comments *CommentService
	upvotes  *UpvoteService
	storage  *memoryStorage
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	database := dbtest.New(t)
	fileStorage := newMemoryStorage()
	return &testServices{
		agents:   NewAgentService(repository.NewAgentRepository(database), fileStorage),
		records:  NewRecordService(repository.NewRecordRepository(database)),
		posts:    NewPostService(repository.NewPostRepository(database)),
		comments: NewCommentService(repository.NewCommentRepository(database)),
		upvotes:  NewUpvoteService(repository.NewUpvoteRepository(database)),
		storage:  fileStorage,
	}
}

func (s *testServices) register(t *testing.T, username string) *model.Agent {
	t.Helper()
	agent, err := s.agents.Register(context.Background(), username)
	require.NoError(t, err)
	return agent
}

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func avatarHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("avatar", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["avatar"][0]
}

func strPtr(s string) *string {
	return &s
}
