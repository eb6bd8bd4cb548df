package mysql

import (
	"context"
	"database/sql/driver"
	"testing"

	"store-service/internal/domain"
	"store-service/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockCartRepo(t *testing.T) (repository.CartRepository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return NewCartRepository(db), mock
}

func cartRows(id, userID uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id"}).AddRow(id, userID)
}

func lineRows(lines ...[]driverValue) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "cart_id", "product_id", "title", "price", "image", "quantity"})
	for _, l := range lines {
		rows.AddRow(l...)
	}
	return rows
}

type driverValue = driver.Value

func mergeLine(productID uint, title string, price float64, quantity int) domain.CartLine {
	return domain.CartLine{
		ProductID: productID,
		Title:     title,
		Price:     price,
		Quantity:  quantity,
	}
}

func TestCartRepo_MergeLine(t *testing.T) {
	t.Run("existing line accumulates quantity instead of duplicating", func(t *testing.T) {
		repo, mock := newMockCartRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT \\* FROM `carts` WHERE user_id = \\?.* FOR UPDATE").
			WillReturnRows(cartRows(3, 7))
		mock.ExpectQuery("SELECT \\* FROM `cart_lines` WHERE cart_id = \\? AND product_id = \\?").
			WillReturnRows(lineRows([]driverValue{1, 3, 1, "tea", 4.5, "", 3}))
		mock.ExpectExec("UPDATE `cart_lines` SET `quantity`=quantity \\+ \\? WHERE `id` = \\?").
			WithArgs(2, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT \\* FROM `carts` WHERE `carts`.`id` = \\?").
			WillReturnRows(cartRows(3, 7))
		mock.ExpectQuery("SELECT \\* FROM `cart_lines` WHERE `cart_lines`.`cart_id` = \\?").
			WillReturnRows(lineRows([]driverValue{1, 3, 1, "tea", 4.5, "", 5}))
		mock.ExpectCommit()

		cart, err := repo.MergeLine(context.Background(), 7,
			mergeLine(1, "tea", 4.5, 2))

		assert.NoError(t, err)
		require.NotNil(t, cart)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 5, cart.Lines[0].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown product appends a new line", func(t *testing.T) {
		repo, mock := newMockCartRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT \\* FROM `carts` WHERE user_id = \\?.* FOR UPDATE").
			WillReturnRows(cartRows(3, 7))
		mock.ExpectQuery("SELECT \\* FROM `cart_lines` WHERE cart_id = \\? AND product_id = \\?").
			WillReturnRows(lineRows())
		mock.ExpectExec("INSERT INTO `cart_lines`").
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectQuery("SELECT \\* FROM `carts` WHERE `carts`.`id` = \\?").
			WillReturnRows(cartRows(3, 7))
		mock.ExpectQuery("SELECT \\* FROM `cart_lines` WHERE `cart_lines`.`cart_id` = \\?").
			WillReturnRows(lineRows(
				[]driverValue{1, 3, 1, "tea", 4.5, "", 3},
				[]driverValue{2, 3, 2, "coffee", 8.0, "", 1},
			))
		mock.ExpectCommit()

		cart, err := repo.MergeLine(context.Background(), 7,
			mergeLine(2, "coffee", 8, 1))

		assert.NoError(t, err)
		require.NotNil(t, cart)
		assert.Len(t, cart.Lines, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first add creates the cart", func(t *testing.T) {
		repo, mock := newMockCartRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT \\* FROM `carts` WHERE user_id = \\?.* FOR UPDATE").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))
		mock.ExpectExec("INSERT INTO `carts`").
			WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectQuery("SELECT \\* FROM `cart_lines` WHERE cart_id = \\? AND product_id = \\?").
			WillReturnRows(lineRows())
		mock.ExpectExec("INSERT INTO `cart_lines`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectQuery("SELECT \\* FROM `carts` WHERE `carts`.`id` = \\?").
			WillReturnRows(cartRows(3, 7))
		mock.ExpectQuery("SELECT \\* FROM `cart_lines` WHERE `cart_lines`.`cart_id` = \\?").
			WillReturnRows(lineRows([]driverValue{1, 3, 1, "tea", 4.5, "", 2}))
		mock.ExpectCommit()

		cart, err := repo.MergeLine(context.Background(), 7,
			mergeLine(1, "tea", 4.5, 2))

		assert.NoError(t, err)
		require.NotNil(t, cart)
		assert.Equal(t, uint(7), cart.UserID)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
