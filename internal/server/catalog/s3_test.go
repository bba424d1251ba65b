package catalog

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/bookshelf/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGetter struct {
	body   string
	err    error
	bucket string
	key    string
}

func (f *fakeGetter) GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestS3Source_Load(t *testing.T) {
	g := &fakeGetter{body: `{"1":{"title":"T","author":"A"}}`}
	src := &S3Source{client: g, bucket: "catalog", key: "books.json"}

	books, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Book{{ISBN: "1", Title: "T", Author: "A"}}, books)
	assert.Equal(t, "catalog", g.bucket)
	assert.Equal(t, "books.json", g.key)
}

func TestS3Source_LoadYAMLByKey(t *testing.T) {
	g := &fakeGetter{body: "- isbn: x\n  title: T\n  author: A\n"}
	src := &S3Source{client: g, bucket: "b", key: "seed/books.yaml"}

	books, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Book{{ISBN: "x", Title: "T", Author: "A"}}, books)
}

func TestS3Source_GetError(t *testing.T) {
	src := &S3Source{client: &fakeGetter{err: errors.New("access denied")}, bucket: "b", key: "k"}

	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3://b/k")
}

func TestNewS3Source_UsesConfig(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })

	var optCount int
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		optCount = len(optFns)
		return aws.Config{Region: "us-east-1"}, nil
	}

	cfg := &sc.Config{}
	cfg.LoadDefaults()
	cfg.S3RootUser = "admin"
	cfg.S3RootPassword = "secretpassword"

	src, err := NewS3Source(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "catalog", src.bucket)
	assert.Equal(t, "books.json", src.key)
	assert.Equal(t, 2, optCount, "region and static credentials")

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}
	_, err = NewS3Source(context.Background(), cfg)
	assert.Error(t, err)
}
