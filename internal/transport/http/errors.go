package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
	"github.com/Gunvolt24/wb_microservices/internal/ports"
	"github.com/gin-gonic/gin"
)

// ErrorMapper — единственная точка перевода доменных ошибок в HTTP.
// Общий для обоих сервисов: хендлеры кладут ошибку через c.Error и не пишут
// ответ сами. Тело — только текст сообщения, без конвертов и кодов.
// Неклассифицированные ошибки (сбой БД, недоступность соседнего сервиса)
// становятся 500 с нейтральным текстом.
func ErrorMapper(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		switch {
		case errors.Is(err, domain.ErrInvalidParameters):
			c.String(http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			c.String(http.StatusNotFound, err.Error())
		default:
			log.Errorf(c.Request.Context(), "unhandled error method=%s path=%s err=%v",
				c.Request.Method, c.FullPath(), err)
			c.String(http.StatusInternalServerError, "internal server error")
		}
	}
}
