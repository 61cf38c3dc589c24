package id

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	mu   sync.Mutex
)

// Init sets the Snowflake node for this process. Each replica needs its own
// node ID (0-1023) for generated IDs to stay unique across instances.
func Init(nodeID int64) error {
	mu.Lock()
	defer mu.Unlock()

	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("creating snowflake node %d: %w", nodeID, err)
	}
	node = n
	return nil
}

// New generates a time-ordered int64 ID for sessions and audit events.
// Falls back to node 0 when Init was never called (tests, one-off tools).
func New() int64 {
	mu.Lock()
	if node == nil {
		node, _ = snowflake.NewNode(0)
	}
	n := node
	mu.Unlock()

	return n.Generate().Int64()
}
