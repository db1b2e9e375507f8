package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gamestore/internal/common"
	sc "github.com/dmitrijs2005/gamestore/internal/server/config"
	"github.com/google/uuid"
)

const uploadURLValidity = 15 * time.Minute

// imageExtensions lists the content types accepted for catalog images.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// UploadTicket lets an admin PUT an image straight to object storage and
// then reference it from a game or banner via ImageURL.
type UploadTicket struct {
	Key       string
	UploadURL string
	ImageURL  string
}

type UploadService struct {
	config *sc.Config
	now    func() time.Time
}

func NewUploadService(cfg *sc.Config) *UploadService {
	return &UploadService{config: cfg, now: time.Now}
}

func (s *UploadService) storageKey(ext string) string {
	d := s.now()
	return fmt.Sprintf("catalog/%d/%02d/%02d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}

func (s *UploadService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// PresignImageUpload returns a PUT URL valid for 15 minutes for a new object
// of the given image content type.
func (s *UploadService) PresignImageUpload(ctx context.Context, contentType string) (*UploadTicket, error) {
	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %q", common.ErrorValidation, contentType)
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, internalError("s3 config", err)
	}

	bucket := s.config.S3Bucket
	key := s.storageKey(ext)
	ct := strings.ToLower(contentType)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: &ct,
	}, s3.WithPresignExpires(uploadURLValidity))
	if err != nil {
		return nil, internalError("presign put", err)
	}

	return &UploadTicket{
		Key:       key,
		UploadURL: req.URL,
		ImageURL:  strings.TrimRight(s.config.S3BaseEndpoint, "/") + "/" + bucket + "/" + key,
	}, nil
}
