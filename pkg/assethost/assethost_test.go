package assethost

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, endpoint, publicBase string) *Client {
	t.Helper()

	awsConfig := &aws.Config{
		Region:      aws.String("us-east-1"),
		Credentials: credentials.NewStaticCredentials("test", "test", ""),
	}
	if endpoint != "" {
		awsConfig.Endpoint = aws.String(endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		awsConfig.DisableSSL = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	require.NoError(t, err)

	return &Client{
		s3Client:      s3.New(sess),
		bucket:        "gallery",
		publicBaseURL: publicBase,
		thumbWidth:    300,
		thumbHeight:   300,
		thumbQuality:  80,
	}
}

func TestObjectURL_AWS(t *testing.T) {
	c := newTestClient(t, "", "")
	url := c.objectURL("gallery/venues/abc.jpg")
	assert.Equal(t, "https://gallery.s3.us-east-1.amazonaws.com/gallery/venues/abc.jpg", url)
}

func TestObjectURL_MinIO(t *testing.T) {
	c := newTestClient(t, "http://localhost:9000", "")
	url := c.objectURL("gallery/venues/abc.jpg")
	assert.Equal(t, "http://localhost:9000/gallery/gallery/venues/abc.jpg", url)
}

func TestThumbnailURL_UsesPublicBase(t *testing.T) {
	c := newTestClient(t, "", "https://cdn.example.com")
	url := c.ThumbnailURL("gallery/venues/abc.jpg")
	assert.Contains(t, url, "https://cdn.example.com/gallery/venues/abc.jpg?")
	assert.Contains(t, url, "w=300")
	assert.Contains(t, url, "h=300")
	assert.Contains(t, url, "q=80")
	assert.Contains(t, url, "fit=crop")
}

func TestTransformURL_NoParams(t *testing.T) {
	c := newTestClient(t, "", "https://cdn.example.com")
	url := c.TransformURL("k.jpg", Transform{})
	assert.Equal(t, "https://cdn.example.com/k.jpg", url)
}

func TestTransformURL_FallsBackToBucketURL(t *testing.T) {
	c := newTestClient(t, "", "")
	url := c.TransformURL("k.jpg", Transform{Width: 100})
	assert.Equal(t, "https://gallery.s3.us-east-1.amazonaws.com/k.jpg?w=100", url)
}

func TestUpload_RejectsNonImagePayload(t *testing.T) {
	c := newTestClient(t, "http://localhost:9000", "")
	_, err := c.Upload("k.bin", []byte("definitely not an image"), "application/octet-stream")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestDecodeDimensions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 48))))

	cfg, format, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
}
