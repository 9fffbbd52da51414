package service

import (
	"context"

	"github.com/garaga28/Librario/internal/model"
	"github.com/garaga28/Librario/internal/repository"
	"go.uber.org/zap"
)

// CatalogService owns the per-title copy accounting.
type CatalogService struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewCatalogService(repo repository.Repository, log *zap.Logger) *CatalogService {
	return &CatalogService{
		log:  log,
		repo: repo,
	}
}

func (s *CatalogService) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *CatalogService) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *CatalogService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *CatalogService) BorrowCopy(ctx context.Context, bookID int64) (model.Book, error) {
	return s.repo.BorrowCopy(ctx, bookID)
}

func (s *CatalogService) ReturnCopy(ctx context.Context, bookID int64) (model.Book, error) {
	return s.repo.ReturnCopy(ctx, bookID)
}

func (s *CatalogService) ResizeCopies(ctx context.Context, bookID int64, newTotal int) (model.Book, error) {
	return s.repo.ResizeCopies(ctx, bookID, newTotal)
}
