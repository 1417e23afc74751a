package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vakilai/legal-doc-api/internal/adapter"
	"github.com/vakilai/legal-doc-api/internal/adapter/utils"
	"github.com/vakilai/legal-doc-api/internal/config"
	"github.com/vakilai/legal-doc-api/internal/domain/docmodel"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logDH.Error("Error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, message string) {
	writeJsonResponse(w, httpCode, adapter.ToErrorResponse(message))
}

func getUploadDirectory() (string, error) {
	root, err := os.Getwd()
	if err != nil {
		return "", err
	}

	targetDir := filepath.Join(root, config.UploadDirName)
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return "", err
	}
	return targetDir, nil
}

// saveUpload stores the multipart file under a per-request unique name so
// concurrent uploads never collide.
func saveUpload(fileReader multipart.File, metadata *multipart.FileHeader) (docmodel.Upload, error) {
	targetDir, err := getUploadDirectory()
	if err != nil {
		return docmodel.Upload{}, err
	}

	ext := strings.ToLower(filepath.Ext(metadata.Filename))
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), utils.GetNewUUID(), ext)
	storedPath := filepath.Join(targetDir, filename)

	destination, err := os.Create(storedPath)
	if err != nil {
		return docmodel.Upload{}, err
	}
	defer destination.Close()

	written, err := io.Copy(destination, fileReader)
	if err != nil {
		os.Remove(storedPath)
		return docmodel.Upload{}, err
	}

	return docmodel.Upload{
		StoredPath:        storedPath,
		OriginalName:      metadata.Filename,
		DeclaredExtension: ext,
		SizeBytes:         written,
	}, nil
}
