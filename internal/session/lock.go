// internal/session/lock.go
package session

import "sync"

// userLocks hands out one mutex per user id so concurrent check-ins for the
// same user serialize while different users never contend.
type userLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[uint]*sync.Mutex)}
}

func (u *userLocks) forUser(userID uint) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	if l, ok := u.locks[userID]; ok {
		return l
	}
	l := &sync.Mutex{}
	u.locks[userID] = l
	return l
}
