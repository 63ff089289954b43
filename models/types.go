// Package models contain needed models
package models

import "classical-cipher-backend/analysis"

// CipherRequest represents the form sent to transform a text
type CipherRequest struct {
	Text      string `json:"text" form:"text"`
	Key       string `json:"key" form:"key"`
	Algorithm string `json:"algorithm" form:"algorithm" binding:"required"`
	Direction string `json:"direction" form:"direction" binding:"required"`
}

// CipherFileRequest carries the form fields sent next to an uploaded text file
type CipherFileRequest struct {
	Key       string `form:"key"`
	Algorithm string `form:"algorithm" binding:"required"`
	Direction string `form:"direction" binding:"required"`
}

// CipherResponse represents the response after a transform
type CipherResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Algorithm string            `json:"algorithm,omitempty"`
	Direction string            `json:"direction,omitempty"`
	Result    string            `json:"result,omitempty"`
	Analysis  *analysis.Summary `json:"analysis,omitempty"`
}

// InverseKeyRequest asks for the Hill decryption key of an encryption key
type InverseKeyRequest struct {
	Key string `json:"key" form:"key" binding:"required"`
}

// AlgorithmInfo describes one supported cipher
type AlgorithmInfo struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	KeepsLayout bool   `json:"keeps_layout"`
}
