package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrUploadRejected is returned by FakeUploader when Fail is set.
var ErrUploadRejected = errors.New("upload rejected")

// FakeUploader returns deterministic URLs of the form
// https://img.test/<folder>/<data>.
type FakeUploader struct {
	mu    sync.Mutex
	Fail  bool
	Calls int
}

// NewFakeUploader creates a FakeUploader.
func NewFakeUploader() *FakeUploader {
	return &FakeUploader{}
}

func (u *FakeUploader) Upload(ctx context.Context, folder string, data []byte) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Fail {
		return "", ErrUploadRejected
	}
	u.Calls++
	return fmt.Sprintf("https://img.test/%s/%s", folder, data), nil
}
