package common

import (
	"os"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var idNode *snowflake.Node

func init() {
	var err error
	idNode, err = snowflake.NewNode(cast.ToInt64(os.Getenv("SHOPD_NODE_ID")) % 1024)
	if err != nil {
		panic(err)
	}
}

// UUIDint64 returns a process-unique, time-ordered int64 identifier.
func UUIDint64() int64 {
	return idNode.Generate().Int64()
}

// UUID returns a random string identifier.
func UUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NextID returns a unique snowflake id in base36 form, used for
// transaction id suffixes.
func NextID() string {
	return idNode.Generate().Base36()
}

// EnvOrDefault reads an environment variable with a fallback.
func EnvOrDefault(key, defval string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defval
}
