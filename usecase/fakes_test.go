package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freelance-hub-api/entity"
)

// In-memory store fakes. Each appends to a shared trace so tests can
// assert ordering between persistence and delivery.

type trace struct {
	steps []string
}

func (t *trace) add(step string) {
	t.steps = append(t.steps, step)
}

type fakeNotificationStore struct {
	trace     *trace
	rows      []entity.Notification
	createErr error
}

func (s *fakeNotificationStore) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	if s.createErr != nil {
		return s.createErr
	}
	if notification.ID == "" {
		notification.ID = fmt.Sprintf("ntf-%d", len(s.rows)+1)
	}
	notification.CreatedAt = time.Now()
	s.rows = append(s.rows, *notification)
	if s.trace != nil {
		s.trace.add("persist")
	}
	return nil
}

func (s *fakeNotificationStore) FindAllByUserID(ctx context.Context, userID string) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, row := range s.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *fakeNotificationStore) FindByIDForUser(ctx context.Context, id, userID string) (*entity.Notification, error) {
	for i := range s.rows {
		if s.rows[i].ID == id && s.rows[i].UserID == userID {
			return &s.rows[i], nil
		}
	}
	return nil, errors.New("notification not found")
}

func (s *fakeNotificationStore) MarkRead(ctx context.Context, id, userID string) error {
	for i := range s.rows {
		if s.rows[i].ID == id && s.rows[i].UserID == userID && !s.rows[i].IsRead {
			now := time.Now()
			s.rows[i].IsRead = true
			s.rows[i].ReadAt = &now
		}
	}
	return nil
}

func (s *fakeNotificationStore) MarkAllRead(ctx context.Context, userID string) error {
	for i := range s.rows {
		if s.rows[i].UserID == userID {
			s.rows[i].IsRead = true
		}
	}
	return nil
}

func (s *fakeNotificationStore) DeleteAllByUserID(ctx context.Context, userID string) error {
	var kept []entity.Notification
	for _, row := range s.rows {
		if row.UserID != userID {
			kept = append(kept, row)
		}
	}
	s.rows = kept
	return nil
}

func (s *fakeNotificationStore) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, row := range s.rows {
		if row.UserID == userID && !row.IsRead {
			count++
		}
	}
	return count, nil
}

type broadcastRecord struct {
	channel string
	event   interface{}
	exclude string
}

type fakeBroadcaster struct {
	trace  *trace
	events []broadcastRecord
	err    error
}

func (b *fakeBroadcaster) Broadcast(ctx context.Context, channel string, event interface{}, excludeID string) error {
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, broadcastRecord{channel: channel, event: event, exclude: excludeID})
	if b.trace != nil {
		b.trace.add("deliver")
	}
	return nil
}

type fakeRoomStore struct {
	rooms              map[string]*entity.ChatRoom
	members            map[string][]string // roomID -> userIDs
	isParticipantCalls int
	createErr          error
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{
		rooms:   make(map[string]*entity.ChatRoom),
		members: make(map[string][]string),
	}
}

func (s *fakeRoomStore) addRoom(id string, isGroup bool, userIDs ...string) {
	room := &entity.ChatRoom{IsGroup: isGroup}
	room.ID = id
	s.rooms[id] = room
	s.members[id] = userIDs
}

func (s *fakeRoomStore) FindDirectRoom(ctx context.Context, userAID, userBID string) (*entity.ChatRoom, error) {
	for id, room := range s.rooms {
		if room.IsGroup {
			continue
		}
		members := s.members[id]
		if len(members) == 2 && contains(members, userAID) && contains(members, userBID) {
			return room, nil
		}
	}
	return nil, nil
}

func (s *fakeRoomStore) FindRoomByID(ctx context.Context, id string) (*entity.ChatRoom, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, errors.New("room not found")
	}
	return room, nil
}

func (s *fakeRoomStore) CreateRoomWithParticipants(ctx context.Context, room *entity.ChatRoom, participants []entity.ChatParticipant) error {
	if s.createErr != nil {
		return s.createErr
	}
	if room.ID == "" {
		room.ID = fmt.Sprintf("room-%d", len(s.rooms)+1)
	}
	s.rooms[room.ID] = room
	for _, p := range participants {
		s.members[room.ID] = append(s.members[room.ID], p.UserID)
	}
	return nil
}

// addLastMessage mirrors the store contract that a listed room carries at
// most its single newest message.
func (s *fakeRoomStore) addLastMessage(roomID string, message entity.Message) {
	if room, ok := s.rooms[roomID]; ok {
		room.Messages = []entity.Message{message}
	}
}

func (s *fakeRoomStore) FindAllByUserID(ctx context.Context, userID string) ([]entity.ChatRoom, error) {
	var out []entity.ChatRoom
	for id, room := range s.rooms {
		if contains(s.members[id], userID) {
			out = append(out, *room)
		}
	}
	return out, nil
}

func (s *fakeRoomStore) IsParticipant(ctx context.Context, roomID, userID string) (bool, error) {
	s.isParticipantCalls++
	return contains(s.members[roomID], userID), nil
}

type fakeMessageStore struct {
	messages   []entity.Message
	reads      map[string][]string // messageID -> userIDs
	batchCalls int
	createErr  error
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{reads: make(map[string][]string)}
}

func (s *fakeMessageStore) CreateMessage(ctx context.Context, message *entity.Message) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.messages = append(s.messages, *message)
	return nil
}

func (s *fakeMessageStore) CreateMessages(ctx context.Context, roomID string, messages []entity.Message) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.batchCalls++
	s.messages = append(s.messages, messages...)
	return nil
}

func (s *fakeMessageStore) FindByRoomID(ctx context.Context, roomID string) ([]entity.Message, error) {
	var out []entity.Message
	for _, m := range s.messages {
		if m.RoomID == roomID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeMessageStore) FindMessageByID(ctx context.Context, id string) (*entity.Message, error) {
	for i := range s.messages {
		if s.messages[i].ID == id {
			return &s.messages[i], nil
		}
	}
	return nil, errors.New("message not found")
}

func (s *fakeMessageStore) MarkRead(ctx context.Context, messageID, userID string) error {
	if contains(s.reads[messageID], userID) {
		return nil
	}
	s.reads[messageID] = append(s.reads[messageID], userID)
	return nil
}

func (s *fakeMessageStore) UnreadCount(ctx context.Context, roomID, userID string) (int64, error) {
	var count int64
	for _, m := range s.messages {
		if m.RoomID != roomID || m.SenderId == userID {
			continue
		}
		if !contains(s.reads[m.ID], userID) {
			count++
		}
	}
	return count, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
