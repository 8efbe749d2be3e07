//go:build tools

package contractgen

import (
	_ "github.com/vektra/mockery/v2"
)
