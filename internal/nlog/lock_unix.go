// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !windows

package nlog

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// lockLogFile takes an exclusive, non-blocking advisory flock on a sidecar
// file, path+".lock", to keep two node processes from rotating the same
// log file out from under each other. It fails if another process already
// holds the lock.
func lockLogFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path+".lock", os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("nlog: open lock file: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("nlog: log file %s is already in use: %w", path, err)
	}
	return f, nil
}
