package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("SELECT weekday, hours FROM weekly_hours WHERE master_id = $1"))
	assert.Equal(t, "insert", operationOf("  insert into procedures (id) values ($1)"))
	assert.Equal(t, "unknown", operationOf("   "))
}
