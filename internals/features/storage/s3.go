package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"eventpoint_backend/internals/configs"
)

// S3Storage membungkus client S3 untuk upload file publik (foto profil).
// Service boleh nil kalau env S3 tidak di-set → upload ditolak dengan error
// yang jelas, fitur lain tetap jalan.
type S3Storage struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Storage: kredensial statis dari env. Gagal init tidak fatal.
func NewS3Storage() *S3Storage {
	bucket := configs.GetEnv("S3_BUCKET", "")
	region := configs.GetEnv("S3_REGION", "")
	accessKey := configs.GetEnv("S3_ACCESS_KEY", "")
	secretKey := configs.GetEnv("S3_SECRET_KEY", "")

	if bucket == "" || region == "" || accessKey == "" || secretKey == "" {
		log.Println("[INFO] Env S3 belum lengkap, upload file nonaktif")
		return nil
	}

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		log.Printf("[ERROR] Gagal load konfigurasi AWS: %v", err)
		return nil
	}

	return &S3Storage{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

// Upload menyimpan konten ke folder/uuid_filename dan mengembalikan URL publik.
func (s *S3Storage) Upload(ctx context.Context, folder, filename, contentType string, content []byte) (string, error) {
	if s == nil || s.client == nil {
		return "", fmt.Errorf("penyimpanan file belum dikonfigurasi")
	}

	key := fmt.Sprintf("%s/%s_%s", folder, uuid.New().String(), sanitizeFilename(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"original-filename": filename,
			"upload-time":       time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("gagal upload ke S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// Delete menghapus objek lama (misal saat ganti foto profil)
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	if s == nil || s.client == nil {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("gagal hapus objek S3: %w", err)
	}
	return nil
}

func sanitizeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer(" ", "-", "/", "-", "\\", "-")
	return replacer.Replace(name)
}
