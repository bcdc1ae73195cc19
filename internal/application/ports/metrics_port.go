package ports

// ReportMetrics puerto de observabilidad del caso de uso de reportes.
type ReportMetrics interface {
	ObserveMemo(kind string, hit bool)
	ObserveUpload(mode string, rows int, err error)
}
