package models

import "fmt"

// Operation names one of the two copy directions
type Operation int

const (
	OperationBackup Operation = iota
	OperationRestore
)

func (o Operation) String() string {
	switch o {
	case OperationBackup:
		return "backup"
	case OperationRestore:
		return "restore"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// Report describes a completed copy run
type Report struct {
	Operation   Operation
	Source      string
	Destination string
	Files       []string
}

// Count returns the number of files copied
func (r Report) Count() int {
	return len(r.Files)
}

// RestorePlan is a validated restore awaiting user confirmation
type RestorePlan struct {
	Locations Locations
	Files     []string
}

// Count returns the number of files the plan would restore
func (p RestorePlan) Count() int {
	return len(p.Files)
}

// Summary is a read-only snapshot of both directories
type Summary struct {
	SaveDir       string
	SaveDirExists bool
	MatchedFiles  int
	BackupExists  bool
	BackupFiles   int
}

// FileCount renders n with a singular or plural noun
func FileCount(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
