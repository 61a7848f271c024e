package ports

// Logger defines the interface for diagnostic logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Warn(msg string)
	Error(err error)
}
