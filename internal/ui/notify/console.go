package notify

import (
	"fmt"
	"io"
	"sync"
)

// Console выводит уведомления пользователю в терминал
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole создает уведомитель, пишущий в w
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Success уведомление об успешной операции
func (c *Console) Success(title, description string) {
	c.write("✔", title, description)
}

// Error уведомление об ошибке
func (c *Console) Error(title, description string) {
	c.write("✖", title, description)
}

func (c *Console) write(mark, title, description string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if description == "" {
		fmt.Fprintf(c.w, "%s %s\n", mark, title)
		return
	}
	fmt.Fprintf(c.w, "%s %s\n  %s\n", mark, title, description)
}
