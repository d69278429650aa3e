package idgen

import (
	"sync"

	"fms-app/types"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	mu   sync.Mutex
)

// Init sets up the node used for every generated id. Each running instance needs its own nodeID.
func Init(nodeID int64) error {
	mu.Lock()
	defer mu.Unlock()

	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	node = n
	return nil
}

func current() *snowflake.Node {
	mu.Lock()
	defer mu.Unlock()

	if node == nil {
		// tests and tools that skip Init
		node, _ = snowflake.NewNode(1)
	}
	return node
}

func GenerateID() int64 {
	return current().Generate().Int64()
}

func Generate() types.SnowflakeID {
	return types.SnowflakeID(GenerateID())
}
