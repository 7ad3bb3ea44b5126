package booking

import "github.com/hsnkrlr/berber-randevu/pkg/txmanager"

// DBExecutor is the query surface the repository needs; satisfied by
// *sql.DB and by the transaction carried in the context.
type DBExecutor = txmanager.DBExecutor
