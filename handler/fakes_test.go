package handler

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"freelance-hub-api/config/common"
	"freelance-hub-api/dto/res"
	"freelance-hub-api/entity"
	"freelance-hub-api/security"
	"freelance-hub-api/usecase"
)

// fakeConn scripts the inbound side of a websocket and captures the
// outbound side. It satisfies both the handler's connection seam and
// ws.Socket, so the same value backs the session under test and any
// watcher clients observing its broadcasts.

type wsWrite struct {
	messageType int
	data        []byte
}

type fakeConn struct {
	params map[string]string
	query  map[string]string

	mu      sync.Mutex
	frames  [][]byte
	written []wsWrite
	closed  int
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		params: make(map[string]string),
		query:  make(map[string]string),
	}
}

func (c *fakeConn) queue(frame string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, []byte(frame))
}

func (c *fakeConn) Params(key string, defaultValue ...string) string {
	if v, ok := c.params[key]; ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

func (c *fakeConn) Query(key string, defaultValue ...string) string {
	if v, ok := c.query[key]; ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.frames) == 0 {
		return 0, nil, io.EOF
	}
	frame := c.frames[0]
	c.frames = c.frames[1:]
	return websocket.TextMessage, frame, nil
}

func (c *fakeConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.written = append(c.written, wsWrite{messageType, append([]byte(nil), data...)})
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
	return nil
}

func (c *fakeConn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(192, 0, 2, 1), Port: 40000}
}

func (c *fakeConn) closeCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// closeCode returns the code from the first close frame written, if any.
func (c *fakeConn) closeCode() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range c.written {
		if w.messageType == websocket.CloseMessage && len(w.data) >= 2 {
			return int(binary.BigEndian.Uint16(w.data)), true
		}
	}
	return 0, false
}

// eventTypes decodes every text frame written so far and returns the
// "type" field of each.
func (c *fakeConn) eventTypes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var types []string
	for _, w := range c.written {
		if w.messageType != websocket.TextMessage {
			continue
		}
		var event struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(w.data, &event); err == nil {
			types = append(types, event.Type)
		}
	}
	return types
}

// waitFor polls until the condition holds, failing the test on timeout.
// Needed wherever delivery runs through the asynchronous write pump.
func waitFor(t *testing.T, what string, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func countOf(list []string, value string) int {
	n := 0
	for _, v := range list {
		if v == value {
			n++
		}
	}
	return n
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testJWT() *security.JWT {
	v := viper.New()
	v.Set("JWT_SECRET", "test-secret")
	return security.NewJWT(&common.Config{Viper: v})
}

func testUser(id, name string) *entity.User {
	user := &entity.User{Name: name}
	user.ID = id
	return user
}

func tokenFor(t *testing.T, jwt *security.JWT, userID string) string {
	t.Helper()
	token, err := jwt.GenerateToken(testUser(userID, "user "+userID))
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

type fakeUserStore struct {
	users map[string]*entity.User
}

func newFakeUserStore(users ...*entity.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]*entity.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

// fakeRoomAccess answers the membership check only; the session state
// machine never touches the rest of the chat usecase.
type fakeRoomAccess struct {
	usecase.ChatUsecase
	allowed bool
	err     error
}

func (f *fakeRoomAccess) CheckRoomAccess(ctx context.Context, roomID, userID string) (bool, error) {
	return f.allowed, f.err
}

type fakeMessages struct {
	mu         sync.Mutex
	processed  []string
	batches    [][]entity.Message
	markReads  []string
	processErr error
	markErr    error
}

func (f *fakeMessages) ProcessIncomingMessage(ctx context.Context, sender *entity.User, roomID, content, fileURL string) (res.MessageResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.processErr != nil {
		return res.MessageResponse{}, f.processErr
	}
	f.processed = append(f.processed, content)
	return res.MessageResponse{
		MessageID:  "msg-1",
		RoomID:     roomID,
		Content:    content,
		SenderID:   sender.ID,
		SenderName: sender.Name,
	}, nil
}

func (f *fakeMessages) SaveBatch(ctx context.Context, roomID string, messages []entity.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, messages)
	return nil
}

func (f *fakeMessages) MarkMessageRead(ctx context.Context, messageID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return f.markErr
	}
	f.markReads = append(f.markReads, messageID)
	return nil
}

func (f *fakeMessages) processedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.processed)
}

func (f *fakeMessages) batchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}
