package promotion

import "github.com/m04kA/LosBucaros-ReservationService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
