package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
	pb "github.com/dmitrijs2005/bookshelf/internal/proto"
	"github.com/dmitrijs2005/bookshelf/internal/server/auth"
	"github.com/dmitrijs2005/bookshelf/internal/server/catalog"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/transport"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop(), transport.Services{}, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop(), transport.Services{}, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

func dialBufconn(t *testing.T, s *GRPCServer) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.serve(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return conn
}

func TestRoundTrip_GeneratedClient(t *testing.T) {
	s, f := newServer()
	f.catalog.listResp = &catalog.ListResult{Items: []models.BookSummary{{SeqNo: 1, Title: "Go"}}, NextCursor: "next"}
	f.books.book = &models.Book{SeqNo: 2, ISBN: "9784000000000", Title: "Proto"}
	f.lending.err = common.ErrAlreadyReturned
	conn := dialBufconn(t, s)
	client := pb.NewBookshelfServiceClient(conn)

	tok, err := auth.GenerateToken("u1", s.jwtSecret, time.Hour)
	require.NoError(t, err)
	ctx := metadata.AppendToOutgoingContext(context.Background(), AccessTokenMetadataKey, tok)

	list, err := client.ListBooks(ctx, &pb.ListBooksRequest{PageSize: 10, SortKey: "title"})
	require.NoError(t, err)
	assert.Equal(t, "next", list.GetNextCursor())
	require.Len(t, list.GetItems(), 1)
	assert.Equal(t, "Go", list.GetItems()[0].GetTitle())
	assert.Equal(t, "u1", f.catalog.gotList.Owner)
	assert.Equal(t, "title", f.catalog.gotList.SortKey)
	assert.Equal(t, 10, f.catalog.gotList.PageSize)

	up, err := client.UpsertBook(ctx, &pb.UpsertBookRequest{Book: &pb.BookInput{Isbn: "9784000000000", Title: "Proto"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), up.GetBook().GetSeqno())
	assert.Equal(t, "9784000000000", f.books.gotInput.ISBN)

	_, err = client.ReturnBook(ctx, &pb.ReturnBookRequest{RentalId: 1})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.CountBooks(context.Background(), &pb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRoundTrip_Health(t *testing.T) {
	s, _ := newServer()
	conn := dialBufconn(t, s)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}
