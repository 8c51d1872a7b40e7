package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationName(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "SELECT id FROM rooms", want: "select"},
		{query: "  INSERT INTO bills (id) VALUES ($1)", want: "insert"},
		{query: "update rooms SET status = $1", want: "update"},
		{query: "", want: "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, operationName(tt.query), tt.query)
	}
}

func TestIsInTransaction(t *testing.T) {
	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))

	txCtx := WithTx(ctx, &Tx{})
	assert.True(t, IsInTransaction(txCtx))

	db := Wrap(nil, nil)
	assert.Same(t, db, GetExecutor(ctx, db))
	assert.NotSame(t, db, GetExecutor(txCtx, db))
}
