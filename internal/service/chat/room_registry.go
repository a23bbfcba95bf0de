// Package chat 实现聊天系统的核心服务层
// room_registry.go
// 核心职责：进程内房间订阅表
// 维护 房间 -> 连接集合 的双向映射，广播时对房间内每个连接投递一次
package chat

import (
	"sync"

	"go.uber.org/zap"
)

// RoomRegistry 进程内房间订阅表
// 读写锁保护，广播走读锁，订阅变更走写锁
type RoomRegistry struct {
	mu sync.RWMutex
	// rooms: 房间名 -> 订阅连接集合
	rooms map[string]map[*UserConn]struct{}
	// conns: 连接 -> 已订阅房间集合，断开时按此反查清理
	conns map[*UserConn]map[string]struct{}
}

// NewRoomRegistry 创建订阅表
func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms: make(map[string]map[*UserConn]struct{}),
		conns: make(map[*UserConn]map[string]struct{}),
	}
}

// Join 订阅房间，重复订阅幂等
func (r *RoomRegistry) Join(room string, conn *UserConn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rooms[room] == nil {
		r.rooms[room] = make(map[*UserConn]struct{})
	}
	r.rooms[room][conn] = struct{}{}

	if r.conns[conn] == nil {
		r.conns[conn] = make(map[string]struct{})
	}
	r.conns[conn][room] = struct{}{}
}

// Leave 退订房间
func (r *RoomRegistry) Leave(room string, conn *UserConn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if members, ok := r.rooms[room]; ok {
		delete(members, conn)
		if len(members) == 0 {
			delete(r.rooms, room)
		}
	}
	if rooms, ok := r.conns[conn]; ok {
		delete(rooms, room)
	}
}

// RemoveConn 连接断开时清理其全部订阅
func (r *RoomRegistry) RemoveConn(conn *UserConn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for room := range r.conns[conn] {
		if members, ok := r.rooms[room]; ok {
			delete(members, conn)
			if len(members) == 0 {
				delete(r.rooms, room)
			}
		}
	}
	delete(r.conns, conn)
}

// Broadcast 向房间内每个订阅连接投递一次
// 连接发送缓冲已满时丢弃该连接的本帧（尽力而为，不阻塞其他订阅者）
func (r *RoomRegistry) Broadcast(room string, data []byte) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for conn := range r.rooms[room] {
		select {
		case conn.Send <- data:
		default:
			zap.L().Warn("订阅连接发送缓冲已满，丢弃本帧",
				zap.String("room", room), zap.String("user", conn.Uuid))
		}
	}
}

// CountSubscribers 房间当前订阅数，主要用于测试与观测
func (r *RoomRegistry) CountSubscribers(room string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[room])
}
