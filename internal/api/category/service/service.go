package categoryService

import (
	"FiscalGolang/internal/api/category"
	categoryRepository "FiscalGolang/internal/api/category/repository"
	"FiscalGolang/internal/entity"
	"FiscalGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICategoryService interface {
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (entity.Category, error)
	GetCategoryByID(ctx context.Context, id string, userID string) (entity.Category, error)
	GetCategories(ctx context.Context, userID string, categoryType string) ([]entity.Category, error)
	UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) (entity.Category, error)
	DeleteCategory(ctx context.Context, id string, userID string) error
}

type categoryService struct {
	log                *logrus.Logger
	categoryRepository categoryRepository.Repository
	utils              utils.IUtils
}

func NewCategoryService(log *logrus.Logger, cr categoryRepository.Repository, utils utils.IUtils) ICategoryService {
	return &categoryService{
		log:                log,
		categoryRepository: cr,
		utils:              utils,
	}
}
