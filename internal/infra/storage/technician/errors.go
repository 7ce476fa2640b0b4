package technician

import "errors"

var (
	// ErrTechnicianNotFound is returned when the technician does not exist
	ErrTechnicianNotFound = errors.New("technician.repository: technician not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("technician.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("technician.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("technician.repository: failed to scan row")
)
