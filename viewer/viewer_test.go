// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"casnum/viewer"
)

func TestNoopDiscardsEverything(t *testing.T) {
	var s viewer.Sink = viewer.Noop{}
	require.NotPanics(t, func() {
		s.Enqueue(viewer.Command{Tag: viewer.TagPoint, X: 1, Y: 2})
	})
}

func TestQueueFIFO(t *testing.T) {
	q := viewer.NewQueue(4, viewer.DropOldest)
	q.Enqueue(viewer.Command{Tag: viewer.TagPoint, X: 1})
	q.Enqueue(viewer.Command{Tag: viewer.TagPoint, X: 2})
	q.Enqueue(viewer.Command{Tag: viewer.TagPoint, X: 3})

	c, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, 1.0, c.X)
	require.Equal(t, 2, q.Len())
}

func TestQueueDropOldest(t *testing.T) {
	q := viewer.NewQueue(2, viewer.DropOldest)
	q.Enqueue(viewer.Command{Tag: viewer.TagPoint, X: 1})
	q.Enqueue(viewer.Command{Tag: viewer.TagPoint, X: 2})
	q.Enqueue(viewer.Command{Tag: viewer.TagPoint, X: 3})

	all := q.DequeueAll()
	require.Equal(t, []float64{2, 3}, []float64{all[0].X, all[1].X})
	require.Equal(t, uint64(1), q.Dropped())
}

func TestQueueDropNew(t *testing.T) {
	q := viewer.NewQueue(2, viewer.DropNew)
	q.Enqueue(viewer.Command{Tag: viewer.TagPoint, X: 1})
	q.Enqueue(viewer.Command{Tag: viewer.TagPoint, X: 2})
	q.Enqueue(viewer.Command{Tag: viewer.TagPoint, X: 3})

	all := q.DequeueAll()
	require.Equal(t, []float64{1, 2}, []float64{all[0].X, all[1].X})
	require.Equal(t, uint64(1), q.Dropped())
}

func TestQueueClearDiscardsStaleGenerations(t *testing.T) {
	q := viewer.NewQueue(8, viewer.DropOldest)
	q.Enqueue(viewer.Command{Tag: viewer.TagPoint, Gen: 0, X: 1})
	q.Enqueue(viewer.Command{Tag: viewer.TagLine, Gen: 0, X1: 2})
	q.Enqueue(viewer.Command{Tag: viewer.TagClear, Gen: 1})
	q.Enqueue(viewer.Command{Tag: viewer.TagPoint, Gen: 1, X: 3})

	all := q.DequeueAll()
	require.Len(t, all, 2)
	require.Equal(t, viewer.TagClear, all[0].Tag)
	require.Equal(t, 3.0, all[1].X)
	require.Equal(t, uint64(2), q.Dropped())

	// A straggler from the old generation is discarded on arrival too.
	q.Enqueue(viewer.Command{Tag: viewer.TagPoint, Gen: 0, X: 4})
	require.Equal(t, 0, q.Len())
}

func TestQueueEmptyDequeue(t *testing.T) {
	q := viewer.NewQueue(1, viewer.DropNew)
	_, ok := q.Dequeue()
	require.False(t, ok)
}
