package clients

import "context"

type MockWriter struct {
	Err      error
	Calls    int
	Contents []byte
}

func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

func (w *MockWriter) Write(ctx context.Context, content []byte) error {
	w.Calls++
	if w.Err != nil {
		return w.Err
	}
	w.Contents = append([]byte(nil), content...)
	return nil
}
