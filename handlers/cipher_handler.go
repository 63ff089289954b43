// Package handlers is made to handle requests
package handlers

import (
	"classical-cipher-backend/analysis"
	"classical-cipher-backend/config"
	"classical-cipher-backend/crypto"
	"classical-cipher-backend/dispatcher"
	"classical-cipher-backend/loader"
	"classical-cipher-backend/models"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CipherHandler struct {
	limits config.LimitsConfig
	logger *zap.Logger
}

func NewCipherHandler(limits config.LimitsConfig, logger *zap.Logger) *CipherHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CipherHandler{
		limits: limits,
		logger: logger,
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) ListCiphers(c *gin.Context) {
	ciphers := make([]models.AlgorithmInfo, 0, len(dispatcher.Algorithms()))
	for _, a := range dispatcher.Algorithms() {
		ciphers = append(ciphers, models.AlgorithmInfo{
			Code:        int(a),
			Name:        a.String(),
			KeepsLayout: a == dispatcher.Vigenere,
		})
	}
	c.JSON(http.StatusOK, gin.H{"ciphers": ciphers})
}

func (h *CipherHandler) Transform(c *gin.Context) {
	var req models.CipherRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	if int64(len(req.Text)) > h.limits.MaxTextBytes {
		c.JSON(http.StatusRequestEntityTooLarge, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Text too large. Maximum size: %d bytes", h.limits.MaxTextBytes),
		})
		return
	}

	h.respond(c, req.Text, req.Key, req.Algorithm, req.Direction)
}

func (h *CipherHandler) TransformFile(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(h.limits.MaxUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse form: %v", err),
		})
		return
	}

	var req models.CipherFileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	textFile, textHeader, err := c.Request.FormFile("text_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: "Text file is required",
		})
		return
	}
	defer textFile.Close()

	text, err := loader.ReadText(textFile, h.limits.MaxTextBytes)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, loader.ErrTooLarge):
			status = http.StatusRequestEntityTooLarge
		case errors.Is(err, loader.ErrNotText):
			status = http.StatusUnsupportedMediaType
		}
		c.JSON(status, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to read text file: %v", err),
		})
		return
	}

	h.logger.Debug("Loaded text file",
		zap.String("filename", textHeader.Filename),
		zap.Int("bytes", len(text)))

	h.respond(c, text, req.Key, req.Algorithm, req.Direction)
}

func (h *CipherHandler) HillInverse(c *gin.Context) {
	var req models.InverseKeyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	inverse, err := crypto.HillInverseKey(req.Key)
	if err != nil {
		c.JSON(statusForCipherError(err), models.CipherResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success:   true,
		Message:   "Inverse key computed",
		Algorithm: dispatcher.Hill.String(),
		Result:    inverse,
	})
}

// respond parses the selectors, runs the cipher and writes the response.
func (h *CipherHandler) respond(c *gin.Context, text, key, algorithm, direction string) {
	alg, err := dispatcher.ParseAlgorithm(algorithm)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	dir, err := dispatcher.ParseDirection(direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	if alg == dispatcher.Vigenere {
		if err := crypto.ValidateVigenereKey(key); err != nil {
			c.JSON(statusForCipherError(err), models.CipherResponse{
				Success:   false,
				Message:   fmt.Sprintf("Invalid key: %v", err),
				Algorithm: alg.String(),
				Direction: dir.String(),
			})
			return
		}
	}

	result, err := dispatcher.Run(dispatcher.Request{
		Text:      text,
		Key:       key,
		Algorithm: alg,
		Direction: dir,
	})
	if err != nil {
		h.logger.Info("Cipher rejected request",
			zap.Stringer("algorithm", alg),
			zap.Stringer("direction", dir),
			zap.Error(err))
		c.JSON(statusForCipherError(err), models.CipherResponse{
			Success:   false,
			Message:   err.Error(),
			Algorithm: alg.String(),
			Direction: dir.String(),
		})
		return
	}

	summary := analysis.Summarize(result)
	c.Header("X-Cipher-Algorithm", alg.String())
	c.Header("X-Cipher-IoC", strconv.FormatFloat(summary.IoC, 'f', 4, 64))

	c.JSON(http.StatusOK, models.CipherResponse{
		Success:   true,
		Message:   fmt.Sprintf("Text %sed with %s", dir, alg),
		Algorithm: alg.String(),
		Direction: dir.String(),
		Result:    result,
		Analysis:  &summary,
	})
}

func statusForCipherError(err error) int {
	switch {
	case errors.Is(err, dispatcher.ErrUnknownAlgorithm),
		errors.Is(err, dispatcher.ErrUnknownDirection):
		return http.StatusBadRequest
	case errors.Is(err, crypto.ErrEmptyKey),
		errors.Is(err, crypto.ErrKeyTooLong),
		errors.Is(err, crypto.ErrInvalidKeyCharacter),
		errors.Is(err, crypto.ErrInvalidKeyLength),
		errors.Is(err, crypto.ErrSingularKey):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
