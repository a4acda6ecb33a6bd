package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingWorker struct {
	runs int
}

func (w *countingWorker) Run() {
	w.runs++
}

func TestWorkersRun(t *testing.T) {
	t.Run("RunsEveryWorkerOnce", func(t *testing.T) {
		first := &countingWorker{}
		second := &countingWorker{}

		NewWorkers(first, second).Run()

		assert.Equal(t, 1, first.runs)
		assert.Equal(t, 1, second.runs)
	})

	t.Run("NoWorkers", func(t *testing.T) {
		NewWorkers().Run()
	})
}
