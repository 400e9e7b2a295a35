//go:build windows

package pty

import (
	"os"
	"time"
)

func killGroup(pid int, _ time.Duration) error {
	p, err := os.FindProcess(pid)
	if err != nil {
		return nil
	}
	return p.Kill()
}
