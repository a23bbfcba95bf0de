package chat

import (
	"testing"
)

func newTestConn(uuid string, buffer int) *UserConn {
	return &UserConn{
		Uuid: uuid,
		Send: make(chan []byte, buffer),
	}
}

func recvOrNil(c *UserConn) []byte {
	select {
	case data := <-c.Send:
		return data
	default:
		return nil
	}
}

func TestBroadcastDeliversToEachSubscriberOnce(t *testing.T) {
	registry := NewRoomRegistry()
	a := newTestConn("Ua", 4)
	b := newTestConn("Ub", 4)
	room := PrivateRoom("C001")

	registry.Join(room, a)
	registry.Join(room, b)
	// 重复订阅幂等
	registry.Join(room, a)
	if got := registry.CountSubscribers(room); got != 2 {
		t.Fatalf("CountSubscribers = %d, want 2", got)
	}

	registry.Broadcast(room, []byte("hello"))
	if string(recvOrNil(a)) != "hello" {
		t.Error("conn a should receive the frame")
	}
	if string(recvOrNil(b)) != "hello" {
		t.Error("conn b should receive the frame")
	}
	if recvOrNil(a) != nil {
		t.Error("conn a should receive the frame exactly once")
	}
}

func TestBroadcastAfterLeave(t *testing.T) {
	registry := NewRoomRegistry()
	a := newTestConn("Ua", 4)
	b := newTestConn("Ub", 4)
	room := GroupRoom("G001")

	registry.Join(room, a)
	registry.Join(room, b)
	registry.Leave(room, a)

	registry.Broadcast(room, []byte("x"))
	if recvOrNil(a) != nil {
		t.Error("left conn should not receive frames")
	}
	if recvOrNil(b) == nil {
		t.Error("remaining conn should still receive frames")
	}
}

func TestRemoveConnCleansAllRooms(t *testing.T) {
	registry := NewRoomRegistry()
	a := newTestConn("Ua", 4)
	roomOne := PrivateRoom("C001")
	roomTwo := GroupRoom("G001")

	registry.Join(roomOne, a)
	registry.Join(roomTwo, a)
	registry.RemoveConn(a)

	if registry.CountSubscribers(roomOne) != 0 || registry.CountSubscribers(roomTwo) != 0 {
		t.Error("RemoveConn should drop the conn from every room")
	}

	registry.Broadcast(roomOne, []byte("x"))
	if recvOrNil(a) != nil {
		t.Error("removed conn should not receive frames")
	}
}

func TestBroadcastDropsWhenSendBufferFull(t *testing.T) {
	registry := NewRoomRegistry()
	full := newTestConn("Ufull", 1)
	room := PrivateRoom("C001")
	registry.Join(room, full)

	// 塞满发送缓冲后广播直接丢帧，不阻塞
	full.Send <- []byte("occupied")
	registry.Broadcast(room, []byte("dropped"))

	if string(<-full.Send) != "occupied" {
		t.Error("buffered frame should be untouched")
	}
	if recvOrNil(full) != nil {
		t.Error("overflow frame should be dropped")
	}
}

func TestRoomNaming(t *testing.T) {
	if PrivateRoom("C1") != "private_C1" {
		t.Errorf("PrivateRoom = %q", PrivateRoom("C1"))
	}
	if GroupRoom("G1") != "group_G1" {
		t.Errorf("GroupRoom = %q", GroupRoom("G1"))
	}
}
