package global

import (
	"github.com/travigo/ybs/pkg/dataaggregator"
	"github.com/travigo/ybs/pkg/dataaggregator/source/networklookup"
	"github.com/travigo/ybs/pkg/network"
)

// Setup wires the standard sources over a network
func Setup(n *network.Network) *dataaggregator.Aggregator {
	aggregator := &dataaggregator.Aggregator{}

	aggregator.RegisterSource(networklookup.Source{Network: n})

	return aggregator
}
