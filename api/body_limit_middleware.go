package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// bodyLimitMiddleware rejects requests declaring a body larger than MaxInputBytes
// and caps the body of the rest, so oversized chunked bodies fail while decoding.
func (s *Service) bodyLimitMiddleware() gin.HandlerFunc {
	limit := s.config.MaxInputBytes

	return func(ctx *gin.Context) {
		if limit <= 0 {
			ctx.Next()
			return
		}

		if ctx.Request.ContentLength > limit {
			ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrRequestTooLarge))
			return
		}

		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)

		ctx.Next()
	}
}
