package service

import (
	"Shotshelf/config"
	ossclient "Shotshelf/pkg/oss"
	"context"
	"errors"
	"io"
	"net/url"
	"strings"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

var _ IStorageService = (*OssStorage)(nil)

type IStorageService interface {
	// Upload 上传流（HTTP / 表单上传）
	Upload(ctx context.Context, objectKey string, reader io.Reader, contentType string) error

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error

	// PublicURL 公网访问地址，纯拼接不发请求
	PublicURL(objectKey string) (string, error)
}

type OssStorage struct {
	Client     *oss.Client
	BucketName string
	PublicBase string
}

func NewStorageService(cfg *config.OssConfig) IStorageService {
	return &OssStorage{
		Client:     ossclient.NewClient(cfg),
		BucketName: cfg.Bucket,
		PublicBase: publicBase(cfg),
	}
}

func publicBase(cfg *config.OssConfig) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	return "https://" + cfg.Bucket + "." + strings.TrimRight(endpoint, "/")
}

func (s *OssStorage) Upload(
	ctx context.Context,
	objectKey string,
	reader io.Reader,
	contentType string,
) error {
	req := &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   reader,
	}
	if contentType != "" {
		req.ContentType = oss.Ptr(contentType)
	}
	_, err := s.Client.PutObject(ctx, req)
	return err
}

func (s *OssStorage) Delete(
	ctx context.Context,
	objectKey string,
) error {

	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

func (s *OssStorage) PublicURL(objectKey string) (string, error) {
	if objectKey == "" {
		return "", errors.New("empty object key")
	}
	return url.JoinPath(s.PublicBase, strings.Split(objectKey, "/")...)
}
