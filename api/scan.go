package api

import (
	"net/http"

	"github.com/Drolfothesgnir/kbdplus/kbd"
	"github.com/Drolfothesgnir/kbdplus/mdast"
	"github.com/gin-gonic/gin"
)

type ScanRequest struct {
	// pointer, so an empty text is accepted and a missing one is not
	Text    *string        `json:"text" binding:"required"`
	Options map[string]any `json:"options"`
}

type ScanResponse struct {
	Spans    []mdast.Node  `json:"spans"`
	Warnings []kbd.Warning `json:"warnings"`
	Changed  bool          `json:"changed"`
}

func (s *Service) scan(ctx *gin.Context) {
	var req ScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithBindError(ctx, err)
		return
	}

	seg := s.newSegmenter(kbd.Options(req.Options))
	res := seg.Scan(*req.Text)

	resp := ScanResponse{
		Spans:    mdast.FromSpans(res.Spans),
		Warnings: res.Warnings,
		Changed:  !res.Unchanged(*req.Text),
	}

	if resp.Spans == nil {
		resp.Spans = []mdast.Node{}
	}

	if resp.Warnings == nil {
		resp.Warnings = []kbd.Warning{}
	}

	ctx.JSON(http.StatusOK, resp)
}
