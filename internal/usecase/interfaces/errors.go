package interfaces

import "errors"

// ErrVersionConflict is returned by repositories when a conditional write
// lost against a concurrent writer.
var ErrVersionConflict = errors.New("version conflict")

// ErrRewardExists is returned by Grant when a reward with the same id is
// already stored.
var ErrRewardExists = errors.New("reward already granted")
