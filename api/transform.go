package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Drolfothesgnir/kbdplus/kbd"
	"github.com/Drolfothesgnir/kbdplus/mdast"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type TransformRequest struct {
	Tree       json.RawMessage `json:"tree" binding:"required"`
	Options    map[string]any  `json:"options"`
	Concurrent bool            `json:"concurrent"`
}

type TransformResponse struct {
	Tree  mdast.Node  `json:"tree"`
	Stats mdast.Stats `json:"stats"`
}

func (s *Service) transform(ctx *gin.Context) {
	var req TransformRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithBindError(ctx, err)
		return
	}

	tree, err := mdast.DecodeRoot(req.Tree)
	if err != nil {
		errField := ErrorField{"tree", err.Error()}
		ctx.AbortWithStatusJSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidTree, errField))
		return
	}

	seg := s.newSegmenter(kbd.Options(req.Options))

	var st mdast.Stats

	if req.Concurrent {
		st, err = mdast.TransformConcurrent(ctx.Request.Context(), tree, seg, s.config.TransformWorkers)
		if err != nil {
			log.Warn().Err(err).
				Str("request_id", ctx.GetString(requestIDKey)).
				Msg("concurrent transform aborted")

			_ = ctx.Error(err)
			ctx.AbortWithStatusJSON(
				http.StatusServiceUnavailable,
				NewErrorResponse(fmt.Errorf("%w: %w", ErrTransformAborted, err)),
			)
			return
		}
	} else {
		st = mdast.Transform(tree, seg)
	}

	ctx.JSON(http.StatusOK, TransformResponse{Tree: tree, Stats: st})
}
