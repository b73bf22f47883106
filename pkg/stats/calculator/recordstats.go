package calculator

import (
	"time"

	"github.com/travigo/ybs/pkg/network"
)

type RecordStatsData struct {
	Dataset   string
	Stops     StopsStats
	Routes    RoutesStats
	Timestamp time.Time
}

func GetNetworkStats(n *network.Network) RecordStatsData {
	return RecordStatsData{
		Dataset:   n.Stats().Dataset,
		Stops:     GetStops(n),
		Routes:    GetRoutes(n),
		Timestamp: time.Now(),
	}
}
