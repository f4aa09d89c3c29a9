package v1

import (
	"errors"
	"io"
	"net/http"

	"reelskills-backend/internal/delivery/http/response"
	"reelskills-backend/internal/domain"
	"reelskills-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// multipart framing on top of the file itself
const multipartOverhead = 1 << 20

type VideoHandler struct {
	videoUC  domain.VideoUsecase
	maxBytes int64
}

type analyzeVideoRequest struct {
	VideoURL string `json:"video_url"`
}

func NewVideoHandler(r *gin.RouterGroup, videoUC domain.VideoUsecase, maxBytes int64, limit gin.HandlerFunc) {
	handler := &VideoHandler{videoUC: videoUC, maxBytes: maxBytes}

	video := r.Group("/skills/:id/video")
	if limit != nil {
		video.Use(limit)
	}
	{
		video.POST("", handler.UploadVideo)
		video.POST("/analyze", handler.AnalyzeVideo)
	}
}

// UploadVideo godoc
// @Summary      Upload a skill video
// @Description  Stores the video and runs the AI analysis on it
// @Tags         video
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "Skill ID"
// @Param        video  formData  file    true  "MP4, MOV or WebM file"
// @Success      200    {object}  response.Response{data=domain.VideoAnalysisOutcome}
// @Failure      400    {object}  response.Response
// @Failure      413    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Failure      502    {object}  response.Response
// @Router       /skills/{id}/video [post]
// @Security     BearerAuth
func (h *VideoHandler) UploadVideo(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	fileHeader, err := c.FormFile("video")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.PayloadTooLarge("Video exceeds the maximum upload size"))
			return
		}
		c.Error(apperror.BadRequest("Video file is required"))
		return
	}
	if fileHeader.Size > h.maxBytes {
		c.Error(apperror.PayloadTooLarge("Video exceeds the maximum upload size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Unable to read video file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.BadRequest("Unable to read video file"))
		return
	}

	outcome, err := h.videoUC.UploadAndAnalyze(c.Request.Context(), c.Param("id"), domain.VideoUpload{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Video uploaded and analyzed", outcome)
}

// AnalyzeVideo godoc
// @Summary      Analyze a skill video
// @Description  Analyzes the given URL, or the skill's current video when video_url is empty
// @Tags         video
// @Accept       json
// @Produce      json
// @Param        id       path      string               true   "Skill ID"
// @Param        request  body      analyzeVideoRequest  false  "Video URL"
// @Success      200      {object}  response.Response{data=domain.VideoAnalysisOutcome}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /skills/{id}/video/analyze [post]
// @Security     BearerAuth
func (h *VideoHandler) AnalyzeVideo(c *gin.Context) {
	var req analyzeVideoRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.Error(apperror.BadRequest("Invalid request body"))
			return
		}
	}

	outcome, err := h.videoUC.AnalyzeVideo(c.Request.Context(), c.Param("id"), req.VideoURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Video analyzed", outcome)
}
