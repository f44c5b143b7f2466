package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrNotImplemented  ErrorCode = "not_implemented"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidInterval ErrorCode = "invalid_interval"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"
	ErrInvalidBackend  ErrorCode = "invalid_backend"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrAlreadyRunning ErrorCode = "already_running"

	// Hardware detection errors
	ErrDeviceAbsent      ErrorCode = "device_absent"
	ErrAddressUnresolved ErrorCode = "address_unresolved"
	ErrUnsupportedHost   ErrorCode = "unsupported_host_platform"
	ErrPortAccess        ErrorCode = "port_access_failed"

	// Application errors
	ErrInitApp  ErrorCode = "init_app_failed"
	ErrMainLoop ErrorCode = "main_loop_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:          "Internal error occurred",
	ErrInvalidArgument:   "Invalid argument provided",
	ErrNotImplemented:    "Operation not implemented",
	ErrInvalidConfig:     "Invalid configuration",
	ErrBindFlags:         "Failed to bind flags",
	ErrReadConfig:        "Failed to read configuration",
	ErrInvalidInterval:   "Invalid interval value",
	ErrInvalidLogLevel:   "Invalid log level",
	ErrInvalidBackend:    "Invalid port I/O backend",
	ErrInitFailed:        "Initialization failed",
	ErrAlreadyRunning:    "Another instance is already running",
	ErrDeviceAbsent:      "No supported IT87 chip found",
	ErrAddressUnresolved: "Environmental controller base address not resolved",
	ErrUnsupportedHost:   "Port I/O is not supported on this platform",
	ErrPortAccess:        "Failed to access I/O port",
	ErrInitApp:           "Failed to initialize application",
	ErrMainLoop:          "Error in main loop",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
