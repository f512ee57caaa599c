package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Success("Заявка отправлена!", "Вы записаны на 20.10.2026 в 10:00")
	c.Error("Ошибка загрузки записей", "")

	assert.Equal(t, "✔ Заявка отправлена!\n  Вы записаны на 20.10.2026 в 10:00\n✖ Ошибка загрузки записей\n", buf.String())
}
