package realtime

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSubscribed(t *testing.T) {
	tests := []struct {
		name   string
		client Client
		ev     Event
		want   bool
	}{
		{
			"tanpa filter tabel terima semua",
			Client{},
			Event{Table: "courses", Operation: "insert"},
			true,
		},
		{
			"filter tabel cocok",
			Client{Tables: map[string]bool{"courses": true}},
			Event{Table: "courses", Operation: "update"},
			true,
		},
		{
			"filter tabel tidak cocok",
			Client{Tables: map[string]bool{"courses": true}},
			Event{Table: "enrollments", Operation: "update"},
			false,
		},
		{
			"event student hanya untuk pemiliknya",
			Client{UserID: "s1", Role: "student"},
			Event{Table: "enrollments", StudentID: "s2"},
			false,
		},
		{
			"event student sampai ke pemiliknya",
			Client{UserID: "s1", Role: "student"},
			Event{Table: "enrollments", StudentID: "s1"},
			true,
		},
		{
			"admin melihat event semua student",
			Client{UserID: "a1", Role: "admin"},
			Event{Table: "enrollments", StudentID: "s2"},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.client.subscribed(tt.ev))
		})
	}
}

func recvEvent(t *testing.T, ch chan []byte) (Event, bool) {
	t.Helper()
	select {
	case payload, ok := <-ch:
		if !ok {
			return Event{}, false
		}
		var ev Event
		require.NoError(t, sonic.Unmarshal(payload, &ev))
		return ev, true
	case <-time.After(500 * time.Millisecond):
		return Event{}, false
	}
}

func TestHubBroadcastDelivery(t *testing.T) {
	h := NewHub()
	go h.Run()

	admin := &Client{ID: uuid.New(), Send: make(chan []byte, 8), UserID: "a1", Role: "admin"}
	student := &Client{
		ID:     uuid.New(),
		Send:   make(chan []byte, 8),
		UserID: "s1",
		Role:   "student",
		Tables: map[string]bool{"enrollments": true},
	}
	h.Register(admin)
	h.Register(student)

	h.Broadcast("enrollments", "update", "s1")

	ev, ok := recvEvent(t, admin.Send)
	require.True(t, ok)
	assert.Equal(t, "enrollments", ev.Table)
	assert.Equal(t, "update", ev.Operation)
	assert.Equal(t, "s1", ev.StudentID)

	ev, ok = recvEvent(t, student.Send)
	require.True(t, ok)
	assert.Equal(t, "s1", ev.StudentID)

	// student hanya subscribe enrollments, courses lewat begitu saja
	h.Broadcast("courses", "insert", "")
	_, ok = recvEvent(t, admin.Send)
	require.True(t, ok)

	// event milik student lain tidak bocor
	h.Broadcast("enrollments", "update", "s2")
	ev, ok = recvEvent(t, admin.Send)
	require.True(t, ok)
	assert.Equal(t, "s2", ev.StudentID)

	select {
	case payload, open := <-student.Send:
		if open {
			t.Fatalf("student menerima event yang bukan miliknya: %s", payload)
		}
	case <-time.After(200 * time.Millisecond):
	}
}

func TestHubNoDeliveryAfterUnregister(t *testing.T) {
	h := NewHub()
	go h.Run()

	client := &Client{ID: uuid.New(), Send: make(chan []byte, 8), UserID: "s1", Role: "student"}
	h.Register(client)
	h.Unregister(client)

	h.Broadcast("courses", "insert", "")

	// Send ditutup saat unregister; tidak boleh ada event nyangkut
	for {
		select {
		case payload, open := <-client.Send:
			if !open {
				return
			}
			t.Fatalf("event terkirim setelah unregister: %s", payload)
		case <-time.After(500 * time.Millisecond):
			t.Fatal("channel Send tidak ditutup setelah unregister")
		}
	}
}
