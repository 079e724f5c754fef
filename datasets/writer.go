package datasets

// Writer receives every dataset a Generator produces. No storage format is
// defined here; implementations decide what, if anything, to persist.
type Writer interface {
	WriteData(ds *Dataset) error
}

// NopWriter discards datasets.
type NopWriter struct{}

// WriteData implements Writer.
func (NopWriter) WriteData(*Dataset) error { return nil }

// WriterFunc adapts a function to Writer.
type WriterFunc func(ds *Dataset) error

// WriteData implements Writer.
func (f WriterFunc) WriteData(ds *Dataset) error { return f(ds) }
