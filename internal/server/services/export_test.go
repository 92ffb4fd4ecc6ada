package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
	sc "github.com/dmitrijs2005/bookshelf/internal/server/config"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
)

type capturedPut struct {
	bucket, key, contentType string
	body                     []byte
}

func stubS3(t *testing.T, putErr error) *capturedPut {
	t.Helper()
	oldPut, oldPresign := putObject, presignGetObject
	t.Cleanup(func() { putObject, presignGetObject = oldPut, oldPresign })

	got := &capturedPut{}
	putObject = func(_ *s3.Client, _ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		if putErr != nil {
			return nil, putErr
		}
		got.bucket, got.key, got.contentType = *in.Bucket, *in.Key, *in.ContentType
		b, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		got.body = b
		return &s3.PutObjectOutput{}, nil
	}
	presignGetObject = func(_ *s3.PresignClient, _ context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://minio.local/" + *in.Bucket + "/" + *in.Key + "?sig=x"}, nil
	}
	return got
}

func newExportService(t *testing.T, bs *fakeBooksRepo) *ExportService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	cfg.S3Bucket = "shelf"
	cfg.ExportURLValidity = 10 * time.Minute
	return NewExportService(db, newFakeRepoManager(bs, newFakeRentalsRepo()), cfg, logging.Nop())
}

func TestExportKey(t *testing.T) {
	k := exportKey("u1", time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(k, "exports/u1/2025/2/3/"), k)
	assert.True(t, strings.HasSuffix(k, ".json"), k)
}

func TestExportCatalog(t *testing.T) {
	var seed []models.Book
	for i := int64(1); i <= exportPageSize+3; i++ {
		seed = append(seed, models.Book{Owner: "u1", SeqNo: i, Title: "T"})
	}
	seed = append(seed, models.Book{Owner: "u2", SeqNo: 1, Title: "other"})
	put := stubS3(t, nil)
	s := newExportService(t, newFakeBooksRepo(seed...))

	before := time.Now().UTC()
	exp, err := s.ExportCatalog(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, exportPageSize+3, exp.Count)
	assert.Equal(t, "shelf", put.bucket)
	assert.Equal(t, exp.Key, put.key)
	assert.Equal(t, "application/json", put.contentType)
	assert.Contains(t, exp.URL, exp.Key)
	assert.WithinDuration(t, before.Add(10*time.Minute), exp.ExpiresAt, 5*time.Second)

	var doc exportDocument
	require.NoError(t, jsoniter.Unmarshal(put.body, &doc))
	assert.Equal(t, "u1", doc.Owner)
	require.Len(t, doc.Books, exportPageSize+3)
	assert.Equal(t, int64(1), doc.Books[0].SeqNo)
	assert.Equal(t, int64(exportPageSize+3), doc.Books[len(doc.Books)-1].SeqNo)
}

func TestExportCatalog_EmptyShelf(t *testing.T) {
	put := stubS3(t, nil)
	s := newExportService(t, newFakeBooksRepo())

	exp, err := s.ExportCatalog(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, exp.Count)
	assert.Contains(t, string(put.body), `"books":[]`)
}

func TestExportCatalog_UploadFailure(t *testing.T) {
	stubS3(t, errBoom{})
	s := newExportService(t, newFakeBooksRepo(models.Book{Owner: "u1", SeqNo: 1, Title: "T"}))

	_, err := s.ExportCatalog(context.Background(), "u1")
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
	assert.ErrorIs(t, err, errBoom{})
}

func TestExportCatalog_Validation(t *testing.T) {
	s := newExportService(t, newFakeBooksRepo())
	_, err := s.ExportCatalog(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrValidation)
}
