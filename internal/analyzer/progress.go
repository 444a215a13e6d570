package analyzer

// ProgressReporter receives callbacks while a multi-file scan runs. File
// processing is concurrent, so OnFileProcessed may be called from any
// goroutine, but never concurrently with itself.
type ProgressReporter interface {
	OnScanStart(totalFiles int)
	OnFileProcessed(path string)
	OnScanComplete(processed, failed int)
}

// NoOpProgressReporter discards all progress callbacks.
type NoOpProgressReporter struct{}

func (NoOpProgressReporter) OnScanStart(totalFiles int)           {}
func (NoOpProgressReporter) OnFileProcessed(path string)          {}
func (NoOpProgressReporter) OnScanComplete(processed, failed int) {}
