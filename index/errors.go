package index

import "errors"

// ErrDiskBuildFailed wraps any I/O failure encountered while persisting a
// Disk index (directory creation, zone file creation/write/close, or
// memory-mapping a zone file back open). Build-time I/O failures are fatal
// per the on-disk backend's contract — BuildOnDisk panics with an error
// wrapping this sentinel so a caller that chooses to recover can still
// errors.Is against it.
var ErrDiskBuildFailed = errors.New("index: on-disk build failed")
