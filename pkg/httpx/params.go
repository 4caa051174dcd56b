package httpx

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// IDParam — числовой параметр пути. Нечисловое или пустое значение
// превращается в 0: дальше его единообразно отклонит валидация
// идентификаторов тем же сообщением, что и id < 1.
func IDParam(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
