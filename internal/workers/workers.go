package workers

// New returns a Workers aggregate holding ws.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

type Workers struct {
	workers []Worker
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
