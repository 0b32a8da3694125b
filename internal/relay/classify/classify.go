// Package classify decides what an uploaded object represents. A key whose
// basename contains "task" is a picture-task fulfillment; anything else is
// a doorbell ring. Classification is pure and never touches storage.
package classify

import (
	"path"
	"strings"

	"github.com/hyperaware/doorbell-relay/internal/common"
)

// Kind enumerates the two upload variants.
type Kind int

const (
	KindRing Kind = iota
	KindTask
)

func (k Kind) String() string {
	if k == KindTask {
		return "task"
	}
	return "ring"
}

// Classification is the result of classifying an object key. For KindRing the
// ID is the full basename with the extension stripped; for KindTask it is the
// part after the last underscore.
type Classification struct {
	Kind Kind
	ID   string
}

// Classify maps an object key (e.g. "pictures/task_20180327123000_42.jpg" or
// "pictures/20180327123000.jpg") to its variant and canonical identifier.
//
// A task-marked basename without an extractable ID is rejected with
// ErrNoTaskID rather than silently using the whole basename. An empty
// basename yields ErrEmptyIdentifier.
func Classify(objectKey string) (Classification, error) {
	base := path.Base(objectKey)
	base = strings.TrimSuffix(base, path.Ext(base))

	if base == "" || base == "." || base == "/" {
		return Classification{}, common.ErrEmptyIdentifier
	}

	if strings.Contains(base, "task") {
		id, ok := taskID(base)
		if !ok {
			return Classification{}, common.ErrNoTaskID
		}
		return Classification{Kind: KindTask, ID: id}, nil
	}

	return Classification{Kind: KindRing, ID: base}, nil
}

// taskID extracts the task identifier: the substring strictly after the last
// underscore. Reports false when there is no underscore or nothing follows it.
func taskID(base string) (string, bool) {
	idx := strings.LastIndex(base, "_")
	if idx < 0 || idx == len(base)-1 {
		return "", false
	}
	return base[idx+1:], true
}
