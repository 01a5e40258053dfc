package analysis

import "context"

// Result is the single value delivered by Start.
type Result struct {
	Text string
	Err  error
}

// Display returns the text, or "Error: ..." when the request failed.
func (r Result) Display() string {
	if r.Err != nil {
		return "Error: " + r.Err.Error()
	}
	return r.Text
}

// Start runs the analysis on its own goroutine. The returned channel yields
// exactly one Result and is then closed. Start returns ErrBusy while a
// previous request is still running.
func (r *Requester) Start(ctx context.Context, imagePath string) (<-chan Result, error) {
	if !r.pending.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	ch := make(chan Result, 1)
	go func() {
		text, err := r.Request(ctx, imagePath)
		// Clear before delivering so the receiver may start the next request.
		r.pending.Store(false)
		ch <- Result{Text: text, Err: err}
		close(ch)
	}()
	return ch, nil
}
