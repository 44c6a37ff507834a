package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Inteegrus-Research/SP-tenderscope/config"
	"github.com/Inteegrus-Research/SP-tenderscope/utils"
)

// UploadController hands out presigned URLs for tender attachment documents
// on an S3-compatible object store. Ownership is encoded in the object key.
type UploadController struct {
	Client *s3.Client
	Config *config.StorageConfig
}

type PresignRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type PresignResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

type ConfirmUploadRequest struct {
	Key string `json:"key" binding:"required"`
}

func NewUploadController() *UploadController {
	cfg := config.GetStorageConfig()

	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &UploadController{Client: client, Config: cfg}
}

func (uc *UploadController) PresignAttachment(c *gin.Context) {
	identity := utils.GetIdentity(c)
	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !isValidAttachmentType(req.ContentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment type"})
		return
	}

	// 20MB cap per document
	if req.FileSize > 20*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit"})
		return
	}

	key := uc.generateAttachmentKey(identity.ID, req.FileName)

	uploadURL, err := uc.createPresignedURL(c.Request.Context(), key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: PresignResponse{
			UploadURL: uploadURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 3600,
		},
	})
}

func (uc *UploadController) ConfirmUpload(c *gin.Context) {
	var req ConfirmUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := uc.fileExists(c.Request.Context(), req.Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify file upload"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found in storage"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"key":     req.Key,
			"fileUrl": fmt.Sprintf("%s/%s", uc.Config.PublicURL, req.Key),
		},
	})
}

func (uc *UploadController) DeleteAttachment(c *gin.Context) {
	identity := utils.GetIdentity(c)
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File key is required"})
		return
	}

	if !ownsKey(key, identity.ID) && !identity.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	_, err := uc.Client.DeleteObject(c.Request.Context(), &s3.DeleteObjectInput{
		Bucket: aws.String(uc.Config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "File deleted successfully"})
}

func isValidAttachmentType(contentType string) bool {
	valid := []string{
		"application/pdf",
		"image/jpeg", "image/png", "image/webp",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	for _, t := range valid {
		if contentType == t {
			return true
		}
	}
	return false
}

func (uc *UploadController) generateAttachmentKey(userID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("attachments/%d/%d_%s%s", userID, time.Now().Unix(), uuid.New().String(), ext)
}

// ownsKey checks the user id segment of attachments/{userID}/{name}.
func ownsKey(key string, userID uint) bool {
	parts := strings.Split(key, "/")
	if len(parts) < 3 || parts[0] != "attachments" {
		return false
	}
	return parts[1] == fmt.Sprintf("%d", userID)
}

func (uc *UploadController) createPresignedURL(ctx context.Context, key, contentType string) (string, error) {
	presigner := s3.NewPresignClient(uc.Client)
	req, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(uc.Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (uc *UploadController) fileExists(ctx context.Context, key string) (bool, error) {
	_, err := uc.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(uc.Config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return false, nil
	}
	return true, nil
}
