package model

import "fmt"

// Network identifies the indexed chain.
type Network struct {
	// Name prefixes broker queue names, e.g. "moonbeam".
	Name string
	// ID is stored in the network_id column of every table.
	ID int
}

// Queue is a broker queue kind.
type Queue string

const (
	QueueBlocks          Queue = "process_blocks"
	QueueBalances        Queue = "process_balances"
	QueueMetadata        Queue = "process_metadata"
	QueueStaking         Queue = "process_staking"
	QueueNominationPools Queue = "process_nomination_pools"
)

// QueueName returns the network scoped queue name.
func (n Network) QueueName(q Queue) string {
	return fmt.Sprintf("%s:%s", n.Name, q)
}

func (n Network) String() string {
	return fmt.Sprintf("%s(%d)", n.Name, n.ID)
}
