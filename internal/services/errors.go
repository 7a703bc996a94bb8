package services

import "errors"

var (
	ErrSaveDirNotFound     = errors.New("save folder not found")
	ErrNoMatchingFiles     = errors.New("no matching save files")
	ErrBackupEmpty         = errors.New("backup folder is missing or empty")
	ErrDestinationNotFound = errors.New("destination folder not found")
	ErrReadFailed          = errors.New("cannot read folder")
	ErrCopyFailed          = errors.New("copy failed")
)

// Severity tells the view which kind of dialog fits a failure
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Classify maps an operation error onto a dialog severity. An empty
// match set is a warning; missing folders and I/O failures are errors.
func Classify(err error) Severity {
	if errors.Is(err, ErrNoMatchingFiles) {
		return SeverityWarning
	}
	return SeverityError
}
