package booking

import "github.com/garage-ms/availability-service/pkg/txmanager"

// DBExecutor is satisfied by *sql.DB and *sql.Tx; repositories resolve the
// actual executor per call so they transparently join an active transaction.
type DBExecutor = txmanager.Executor
