package services

import (
	"context"
	"testing"

	"store-service/internal/domain"
	"store-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFavoriteService_Like(t *testing.T) {
	t.Run("records the membership", func(t *testing.T) {
		favorites := new(mocks.MockFavoriteRepository)
		products := new(mocks.MockProductRepository)
		products.On("FindByID", mock.Anything, uint(TestProductID)).
			Return(CreateTestProduct(TestProductID, "Lamp", 19.9, 5), nil)
		favorites.On("Add", mock.Anything, uint(TestProductID), uint(TestUserID)).Return(nil)

		service := NewFavoriteService(favorites, products)

		err := service.Like(context.Background(), TestUserID, TestProductID)

		assert.NoError(t, err)
		favorites.AssertExpectations(t)
	})

	t.Run("missing product", func(t *testing.T) {
		favorites := new(mocks.MockFavoriteRepository)
		products := new(mocks.MockProductRepository)
		products.On("FindByID", mock.Anything, uint(99)).Return(nil, nil)

		service := NewFavoriteService(favorites, products)

		err := service.Like(context.Background(), TestUserID, 99)

		assert.ErrorIs(t, err, ErrProductNotFound)
		favorites.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	t.Run("resolves memberships to products", func(t *testing.T) {
		favorites := new(mocks.MockFavoriteRepository)
		products := new(mocks.MockProductRepository)
		favorites.On("FindByUserID", mock.Anything, uint(TestUserID)).Return([]domain.Favorite{
			{ID: 1, ProductID: 1, UserID: TestUserID},
			{ID: 2, ProductID: 2, UserID: TestUserID},
		}, nil)
		products.On("FindByID", mock.Anything, uint(1)).
			Return(CreateTestProduct(1, "Lamp", 19.9, 5), nil)
		products.On("FindByID", mock.Anything, uint(2)).
			Return(CreateTestProduct(2, "Chair", 49.0, 2), nil)

		service := NewFavoriteService(favorites, products)

		result, err := service.ListFavorites(context.Background(), TestUserID)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Lamp", result[0].Title)
		assert.Equal(t, "Chair", result[1].Title)
	})

	t.Run("skips favorites whose product was deleted", func(t *testing.T) {
		favorites := new(mocks.MockFavoriteRepository)
		products := new(mocks.MockProductRepository)
		favorites.On("FindByUserID", mock.Anything, uint(TestUserID)).Return([]domain.Favorite{
			{ID: 1, ProductID: 1, UserID: TestUserID},
			{ID: 2, ProductID: 2, UserID: TestUserID},
		}, nil)
		products.On("FindByID", mock.Anything, uint(1)).Return(nil, nil)
		products.On("FindByID", mock.Anything, uint(2)).
			Return(CreateTestProduct(2, "Chair", 49.0, 2), nil)

		service := NewFavoriteService(favorites, products)

		result, err := service.ListFavorites(context.Background(), TestUserID)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, uint(2), result[0].ID)
	})

	t.Run("no favorites yields empty list", func(t *testing.T) {
		favorites := new(mocks.MockFavoriteRepository)
		favorites.On("FindByUserID", mock.Anything, uint(TestUserID)).
			Return([]domain.Favorite{}, nil)

		service := NewFavoriteService(favorites, new(mocks.MockProductRepository))

		result, err := service.ListFavorites(context.Background(), TestUserID)

		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestFavoriteService_Unlike(t *testing.T) {
	favorites := new(mocks.MockFavoriteRepository)
	favorites.On("Remove", mock.Anything, uint(TestProductID), uint(TestUserID)).Return(nil)

	service := NewFavoriteService(favorites, new(mocks.MockProductRepository))

	err := service.Unlike(context.Background(), TestUserID, TestProductID)

	assert.NoError(t, err)
	favorites.AssertExpectations(t)
}

func TestFavoriteService_IsLiked(t *testing.T) {
	favorites := new(mocks.MockFavoriteRepository)
	favorites.On("Exists", mock.Anything, uint(TestProductID), uint(TestUserID)).Return(true, nil)

	service := NewFavoriteService(favorites, new(mocks.MockProductRepository))

	liked, err := service.IsLiked(context.Background(), TestUserID, TestProductID)

	assert.NoError(t, err)
	assert.True(t, liked)
}
