// Package deps reports whether the external tools the service shells out to are installed.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary the service relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status is a Requirement together with the result of looking it up.
type Status struct {
	Requirement
	Available bool

	// Detail is the resolved path when available, otherwise why it is not.
	Detail string
}

// Downloader describes the caption downloader binary.
func Downloader(command string) Requirement {
	return Requirement{
		Name:        "yt-dlp",
		Command:     command,
		Description: "Downloads automatic caption tracks",
	}
}

// CheckBinaries looks up every requirement on PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, len(requirements))
	for i, req := range requirements {
		results[i] = lookup(req)
	}
	return results
}

func lookup(req Requirement) Status {
	req.Command = strings.TrimSpace(req.Command)
	req.Description = strings.TrimSpace(req.Description)
	if req.Command == "" {
		return Status{Requirement: req, Detail: "command not configured"}
	}
	path, err := exec.LookPath(req.Command)
	if err != nil {
		return Status{Requirement: req, Detail: fmt.Sprintf("binary %q not found", req.Command)}
	}
	return Status{Requirement: req, Available: true, Detail: path}
}

// Ready reports whether every non-optional requirement is available.
func Ready(statuses []Status) bool {
	for _, s := range statuses {
		if !s.Available && !s.Optional {
			return false
		}
	}
	return true
}
