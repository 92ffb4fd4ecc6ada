package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
	sc "github.com/dmitrijs2005/bookshelf/internal/server/config"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookshelf/internal/server/repositories/repomanager"
)

const exportPageSize = 500

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Export describes an uploaded catalog snapshot.
type Export struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Count     int       `json:"count"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type exportDocument struct {
	Owner      string        `json:"owner"`
	ExportedAt time.Time     `json:"exportedAt"`
	Books      []models.Book `json:"books"`
}

// ExportService writes an owner's whole catalog as JSON to object storage
// and hands back a presigned download link.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	logger      logging.Logger
}

func NewExportService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config, logger logging.Logger) *ExportService {
	return &ExportService{
		db:          db,
		repomanager: repomanager,
		config:      config,
		logger:      logger.With("module", "export"),
	}
}

func exportKey(owner string, d time.Time) string {
	return fmt.Sprintf("exports/%s/%d/%d/%d/%v.json", owner, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ExportService) getS3Client(ctx context.Context) (*s3.Client, error) {
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

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// collect reads every book of owner in seqno order.
func (s *ExportService) collect(ctx context.Context, owner string) ([]models.Book, error) {
	repo := s.repomanager.Books(s.db)
	q := books.RangeQuery{Owner: owner, Sort: books.SortSeqNo, Limit: exportPageSize}

	var all []models.Book
	for {
		page, err := repo.Range(ctx, q)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Books...)
		if !page.HasMore || len(page.Books) == 0 {
			return all, nil
		}
		q.After = &books.Position{SeqNo: page.Books[len(page.Books)-1].SeqNo}
	}
}

func (s *ExportService) ExportCatalog(ctx context.Context, owner string) (*Export, error) {
	if owner == "" {
		return nil, common.Validationf("owner is required")
	}

	all, err := s.collect(ctx, owner)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []models.Book{}
	}

	now := time.Now().UTC()
	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(exportDocument{Owner: owner, ExportedAt: now, Books: all})
	if err != nil {
		return nil, err
	}

	client, err := s.getS3Client(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := exportKey(owner, now)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		s.logger.Error(ctx, "export upload failed", "owner", owner, "key", key, "error", err)
		return nil, fmt.Errorf("%w: object storage: %w", common.ErrStoreUnavailable, err)
	}

	validity := s.config.ExportURLValidity
	if validity <= 0 {
		validity = 15 * time.Minute
	}
	req, err := presignGetObject(s3.NewPresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(validity))
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "catalog exported", "owner", owner, "key", key, "books", len(all))
	return &Export{Key: key, URL: req.URL, Count: len(all), ExpiresAt: now.Add(validity)}, nil
}
