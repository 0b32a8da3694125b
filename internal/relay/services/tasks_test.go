package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Request(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewTaskService(nil, rm)
	s.now = func() time.Time { return fixedNow }

	task, err := s.Request(context.Background())
	require.NoError(t, err)
	require.NotNil(t, task)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, fixedNow, task.Date)
	assert.False(t, task.IsTaken)
	assert.Empty(t, task.ImagePath)

	require.Len(t, rm.tasks.created, 1)
	assert.Equal(t, task, rm.tasks.created[0])
}

func TestTaskService_RequestUniqueIDs(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewTaskService(nil, rm)

	t1, err := s.Request(context.Background())
	require.NoError(t, err)
	t2, err := s.Request(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, t1.ID, t2.ID)
}
