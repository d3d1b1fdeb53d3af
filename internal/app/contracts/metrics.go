package contracts

type MetricsRecorder interface {
	RecordAuthFailure(reason string)
	RecordHealthReportEvent(event string)
}
