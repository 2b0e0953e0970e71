package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// BookLister provides a snapshot of the catalog.
type BookLister interface {
	Books() []entities.BookRecord
}

type BooksController struct {
	books BookLister
}

func NewBooksController(books BookLister) *BooksController {
	return &BooksController{
		books: books,
	}
}

// GetAllBooks returns the catalog in display order
// GET /api/books
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books := controller.books.Books()
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// GetBookStats summarizes the catalog
// GET /api/books/stats
func (controller *BooksController) GetBookStats(c *gin.Context) {
	books := controller.books.Books()

	readBooks, totalPages := 0, 0.0
	for _, book := range books {
		if book.HasBeenRead {
			readBooks++
		}
		totalPages += book.PageCount
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"total_books":  len(books),
		"read_books":   readBooks,
		"unread_books": len(books) - readBooks,
		"total_pages":  totalPages,
	})
}
