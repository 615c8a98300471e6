package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://avatars.s3.eu-west-1.amazonaws.com",
		publicBaseURL(S3Config{Bucket: "avatars", Region: "eu-west-1"}))
	assert.Equal(t, "http://localhost:9000/avatars",
		publicBaseURL(S3Config{Bucket: "avatars", Region: "us-east-1", Endpoint: "http://localhost:9000/"}))
}

func TestURLAndKeyRoundTrip(t *testing.T) {
	s := &S3Storage{bucket: "avatars", publicURL: "http://localhost:9000/avatars"}

	url := s.URL("public/avatars/abc.png")
	assert.Equal(t, "http://localhost:9000/avatars/public/avatars/abc.png", url)

	key, ok := s.Key(url)
	assert.True(t, ok)
	assert.Equal(t, "public/avatars/abc.png", key)

	_, ok = s.Key("https://elsewhere.example.com/a.png")
	assert.False(t, ok)

	_, ok = s.Key("http://localhost:9000/avatars/")
	assert.False(t, ok)
}
