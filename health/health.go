// Package health provides functions to check and update the health of the
// agent's sampling loop. It uses a file in the temp directory to store the
// timestamp of the last successful sampling tick.
// If the timestamp is older than 91 seconds, the agent is considered unhealthy.
// NB: Agent.Run must be driving the sampling loop for the health file to
// stay fresh; a process that never calls it is never considered healthy.
package health

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// healthFile is the path to the health file
var healthFile = getHealthFilePath()

func getHealthFilePath() string {
	filename := "sysmon_health"
	if runtime.GOOS == "linux" {
		fullPath := filepath.Join("/dev/shm", filename)
		if err := updateHealthFile(fullPath); err == nil {
			return fullPath
		}
	}
	return filepath.Join(os.TempDir(), filename)
}

func updateHealthFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	return file.Close()
}

// Check checks if the sampling loop is alive by checking the modification
// time of the health file
func Check() error {
	fileInfo, err := os.Stat(healthFile)
	if err != nil {
		return err
	}
	if time.Since(fileInfo.ModTime()) > 91*time.Second {
		log.Println("over 91 seconds since last sampling tick")
		return errors.New("unhealthy")
	}
	return nil
}

// Update marks a successful sampling tick by touching the health file's
// modification time. Called once per tick from Agent.sample.
func Update() error {
	return updateHealthFile(healthFile)
}

// CleanUp removes the health file
func CleanUp() error {
	return os.Remove(healthFile)
}
