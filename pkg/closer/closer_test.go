package closer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloser_LIFOOrder(t *testing.T) {
	c := New()
	var order []string

	for _, name := range []string{"first", "second", "third"} {
		name := name
		c.Add(name, func(ctx context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestCloser_CollectsErrors(t *testing.T) {
	c := New()
	var closed []string

	c.Add("db", func(ctx context.Context) error {
		closed = append(closed, "db")
		return nil
	})
	c.Add("broker", func(ctx context.Context) error {
		return fmt.Errorf("connection lost")
	})

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker: connection lost")
	// ошибка одного ресурса не мешает закрыть остальные
	assert.Equal(t, []string{"db"}, closed)
}

func TestCloser_SecondCloseIsNoop(t *testing.T) {
	c := New()
	calls := 0
	c.Add("res", func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}
