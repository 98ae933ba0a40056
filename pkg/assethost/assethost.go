// Package assethost talks to the remote image store (S3 or a MinIO-compatible
// endpoint). Uploaded objects are addressed by key; derived variants are plain
// URL constructions against the public base, no round trip involved.
package assethost

import (
	"bytes"
	"fmt"
	"image"
	"net/url"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"pixvault/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type Client struct {
	s3Client      *s3.S3
	bucket        string
	publicBaseURL string

	thumbWidth   int
	thumbHeight  int
	thumbQuality int
}

// UploadResult is what the host reports back for a stored object.
type UploadResult struct {
	Key    string
	URL    string
	Size   int64
	Format string
	Width  int
	Height int
}

// Transform are the derived-variant parameters encoded into a URL.
type Transform struct {
	Width   int
	Height  int
	Quality int
	Crop    bool
}

func NewClient(cfg *config.Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	client := &Client{
		s3Client:      s3.New(sess),
		bucket:        cfg.S3BucketName,
		publicBaseURL: strings.TrimSuffix(cfg.AssetPublicBaseURL, "/"),
		thumbWidth:    cfg.ThumbnailWidth,
		thumbHeight:   cfg.ThumbnailHeight,
		thumbQuality:  cfg.ThumbnailQuality,
	}

	// Ensure bucket exists (for MinIO)
	_, err = client.s3Client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(cfg.S3BucketName),
	})
	if err != nil {
		_, _ = client.s3Client.CreateBucket(&s3.CreateBucketInput{
			Bucket: aws.String(cfg.S3BucketName),
		})
	}

	return client, nil
}

// Upload stores the buffer under key and reports the permanent URL plus the
// properties decoded from the image header. Decoding happens before the
// network call, so a non-image payload never reaches the bucket.
func (c *Client) Upload(key string, data []byte, contentType string) (*UploadResult, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	_, err = c.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return &UploadResult{
		Key:    key,
		URL:    c.objectURL(key),
		Size:   int64(len(data)),
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// Delete removes a single object by key.
func (c *Client) Delete(key string) error {
	_, err := c.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

// DeleteFolder removes every object under the prefix, paging through the
// listing in batches of up to 1000 keys.
func (c *Client) DeleteFolder(prefix string) error {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var continuation *string
	for {
		listed, err := c.s3Client.ListObjectsV2(&s3.ListObjectsV2Input{
			Bucket:            aws.String(c.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: continuation,
		})
		if err != nil {
			return fmt.Errorf("failed to list objects under %s: %w", prefix, err)
		}

		if len(listed.Contents) > 0 {
			objects := make([]*s3.ObjectIdentifier, 0, len(listed.Contents))
			for _, obj := range listed.Contents {
				objects = append(objects, &s3.ObjectIdentifier{Key: obj.Key})
			}
			_, err = c.s3Client.DeleteObjects(&s3.DeleteObjectsInput{
				Bucket: aws.String(c.bucket),
				Delete: &s3.Delete{Objects: objects, Quiet: aws.Bool(true)},
			})
			if err != nil {
				return fmt.Errorf("failed to delete objects under %s: %w", prefix, err)
			}
		}

		if listed.IsTruncated == nil || !*listed.IsTruncated {
			return nil
		}
		continuation = listed.NextContinuationToken
	}
}

// ThumbnailURL derives the default-size thumbnail variant for a key.
func (c *Client) ThumbnailURL(key string) string {
	return c.TransformURL(key, Transform{
		Width:   c.thumbWidth,
		Height:  c.thumbHeight,
		Quality: c.thumbQuality,
		Crop:    true,
	})
}

// TransformURL builds a derived-variant URL for a key. The transform is
// encoded as query parameters understood by the image proxy fronting the
// bucket; no network call is made.
func (c *Client) TransformURL(key string, t Transform) string {
	base := c.objectURL(key)
	if c.publicBaseURL != "" {
		base = c.publicBaseURL + "/" + key
	}

	params := url.Values{}
	if t.Width > 0 {
		params.Set("w", fmt.Sprintf("%d", t.Width))
	}
	if t.Height > 0 {
		params.Set("h", fmt.Sprintf("%d", t.Height))
	}
	if t.Quality > 0 {
		params.Set("q", fmt.Sprintf("%d", t.Quality))
	}
	if t.Crop {
		params.Set("fit", "crop")
	}
	if encoded := params.Encode(); encoded != "" {
		return base + "?" + encoded
	}
	return base
}

func (c *Client) objectURL(key string) string {
	// Generate URL based on endpoint (MinIO or AWS S3)
	endpoint := aws.StringValue(c.s3Client.Config.Endpoint)
	if endpoint != "" && !strings.Contains(endpoint, "amazonaws.com") {
		protocol := "https"
		if c.s3Client.Config.DisableSSL != nil && *c.s3Client.Config.DisableSSL {
			protocol = "http"
		}
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, c.bucket, key)
	}

	region := aws.StringValue(c.s3Client.Config.Region)
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, region, key)
}
