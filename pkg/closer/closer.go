// Package closer обеспечивает упорядоченное освобождение ресурсов при остановке приложения.
package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// Closer накапливает функции закрытия и запускает их в порядке LIFO:
// последний открытый ресурс закрывается первым.
type Closer struct {
	mu    sync.Mutex
	once  sync.Once
	names []string
	funcs []Func
}

func New() *Closer {
	return &Closer{}
}

// Add регистрирует именованную функцию закрытия.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = append(c.names, name)
	c.funcs = append(c.funcs, f)
}

// Close закрывает все зарегистрированные ресурсы в обратном порядке.
// Ошибка одного ресурса не прерывает закрытие остальных; все ошибки
// собираются в одну. Повторные вызовы не выполняют никакой работы.
func (c *Closer) Close(ctx context.Context) error {
	var errs []string

	c.once.Do(func() {
		c.mu.Lock()
		names, funcs := c.names, c.funcs
		c.mu.Unlock()

		for i := len(funcs) - 1; i >= 0; i-- {
			if ctx.Err() != nil {
				errs = append(errs, fmt.Sprintf("%s: skipped: %v", names[i], ctx.Err()))
				continue
			}
			if err := funcs[i](ctx); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", names[i], err))
			}
		}
	})

	if len(errs) > 0 {
		return fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
