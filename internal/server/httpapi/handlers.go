package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/bookshelf/internal/server/catalog"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
)

type getBooksRequest struct {
	PageSize   int    `json:"pageSize"`
	Cursor     string `json:"cursor"`
	SortKey    string `json:"sortKey"`
	Descending bool   `json:"desc"`
	Keyword    string `json:"keyword"`
	UnreadOnly bool   `json:"unreadOnly"`
}

type isbnRequest struct {
	ISBN string `json:"isbn"`
}

type seqNoRequest struct {
	SeqNo int64 `json:"seqno"`
}

type readFlagRequest struct {
	SeqNo    int64 `json:"seqno"`
	ReadFlag bool  `json:"readFlag"`
}

type lendRequest struct {
	Renter string `json:"renter"`
	ISBN   string `json:"isbn"`
}

type returnRequest struct {
	RentalID int64 `json:"rentalId"`
}

type searchRequest struct {
	ISBNJAN string `json:"isbnjan"`
}

// bind decodes the JSON body into dst, answering 400 on failure.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return false
	}
	return true
}

func (s *Server) getBooks(c *gin.Context) {
	var req getBooksRequest
	if !bind(c, &req) {
		return
	}

	res, err := s.svc.Catalog.ListBooks(c.Request.Context(), catalog.ListRequest{
		Owner:      owner(c),
		PageSize:   req.PageSize,
		Cursor:     req.Cursor,
		SortKey:    req.SortKey,
		Descending: req.Descending,
		Keyword:    req.Keyword,
		UnreadOnly: req.UnreadOnly,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	items := res.Items
	if items == nil {
		items = []models.BookSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "nextCursor": res.NextCursor})
}

func (s *Server) getBooksCount(c *gin.Context) {
	n, err := s.svc.Catalog.CountBooks(c.Request.Context(), owner(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (s *Server) checkExists(c *gin.Context) {
	var req isbnRequest
	if !bind(c, &req) {
		return
	}

	ok, err := s.svc.Catalog.ExistsByISBN(c.Request.Context(), owner(c), req.ISBN)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": ok})
}

func (s *Server) getBook(c *gin.Context) {
	var req seqNoRequest
	if !bind(c, &req) {
		return
	}

	b, err := s.svc.Books.GetBook(c.Request.Context(), owner(c), req.SeqNo)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (s *Server) updateBooks(c *gin.Context) {
	var req models.BookInput
	if !bind(c, &req) {
		return
	}

	b, err := s.svc.Books.UpsertBook(c.Request.Context(), owner(c), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (s *Server) setReadFlag(c *gin.Context) {
	var req readFlagRequest
	if !bind(c, &req) {
		return
	}

	if err := s.svc.Books.SetReadFlag(c.Request.Context(), owner(c), req.SeqNo, req.ReadFlag); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seqno": req.SeqNo, "readFlag": req.ReadFlag})
}

func (s *Server) deleteBook(c *gin.Context) {
	var req seqNoRequest
	if !bind(c, &req) {
		return
	}

	if err := s.svc.Books.DeleteBook(c.Request.Context(), owner(c), req.SeqNo); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) lendBook(c *gin.Context) {
	var req lendRequest
	if !bind(c, &req) {
		return
	}

	r, err := s.svc.Lending.Lend(c.Request.Context(), owner(c), req.Renter, req.ISBN)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) returnBook(c *gin.Context) {
	var req returnRequest
	if !bind(c, &req) {
		return
	}

	r, err := s.svc.Lending.Return(c.Request.Context(), owner(c), req.RentalID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) getLendBook(c *gin.Context) {
	var req isbnRequest
	if !bind(c, &req) {
		return
	}

	b, err := s.svc.Catalog.LendableCopy(c.Request.Context(), owner(c), req.ISBN)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (s *Server) getRentals(c *gin.Context) {
	rs, err := s.svc.Lending.ActiveRentals(c.Request.Context(), owner(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	if rs == nil {
		rs = []models.Rental{}
	}
	c.JSON(http.StatusOK, gin.H{"rentals": rs})
}

func (s *Server) searchBook(c *gin.Context) {
	var req searchRequest
	if !bind(c, &req) {
		return
	}

	rec, err := s.svc.Lookup.Lookup(c.Request.Context(), req.ISBNJAN)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) export(c *gin.Context) {
	exp, err := s.svc.Export.ExportCatalog(c.Request.Context(), owner(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}
