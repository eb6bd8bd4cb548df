package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"store-service/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// document is the fixture layout: one JSON document with named top-level
// collections.
type document struct {
	Categories []category `json:"categories"`
	Products   []product  `json:"products"`
	Users      []user     `json:"users"`
	Carts      []cart     `json:"carts"`
	Favorites  []favorite `json:"favorites"`
	Olders     []older    `json:"olders"`
}

type category struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	IsHidden bool   `json:"isHidden"`
}

type product struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	CategoryID  uint    `json:"categoryId"`
}

type user struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	RegisterAt   string `json:"registerAt"`
	ChangePassAt string `json:"changePassAt"`
}

type line struct {
	ProductID uint    `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type cart struct {
	UserID uint   `json:"userId"`
	Lines  []line `json:"products"`
}

// favorite is the fixture record shape: one entry per product holding the
// set of interested user ids. Import flattens it to membership rows.
type favorite struct {
	ProductID uint   `json:"productId"`
	UserIDs   []uint `json:"userId"`
}

type older struct {
	ID            json.Number `json:"id"`
	UserID        uint        `json:"userId"`
	Name          string      `json:"name"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
	Lines         []line      `json:"products"`
	OlderTime     string      `json:"olderTime"`
}

// Load imports a fixture document into an empty database. It is a no-op when
// the product table already has rows, so restarting the service never
// duplicates data. Seed user passwords are stored in plaintext in the
// fixture and are bcrypt-hashed here.
func Load(db *gorm.DB, path string) error {
	var count int64
	if err := db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("seed: database not empty, skipping %s", path)
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed: read %s: %w", path, err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("seed: parse %s: %w", path, err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, c := range doc.Categories {
			rec := domain.Category{ID: c.ID, Name: c.Name, IsHidden: c.IsHidden}
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("seed: category %q: %w", c.Name, err)
			}
		}
		for _, p := range doc.Products {
			rec := domain.Product{
				ID:          p.ID,
				Title:       p.Title,
				Price:       p.Price,
				Image:       p.Image,
				Description: p.Description,
				Quantity:    p.Quantity,
				CategoryID:  p.CategoryID,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("seed: product %q: %w", p.Title, err)
			}
		}
		for _, u := range doc.Users {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("seed: hash password for %s: %w", u.Email, err)
			}
			rec := domain.User{
				ID:           u.ID,
				Email:        u.Email,
				PasswordHash: string(hash),
				Role:         domain.Role(u.Role),
				RegisterAt:   parseTime(u.RegisterAt),
			}
			if t := u.ChangePassAt; t != "" {
				parsed := parseTime(t)
				rec.ChangePassAt = &parsed
			}
			if rec.Role == "" {
				rec.Role = domain.RoleUser
			}
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("seed: user %s: %w", u.Email, err)
			}
		}
		for _, c := range doc.Carts {
			rec := domain.Cart{UserID: c.UserID}
			for _, l := range c.Lines {
				rec.Lines = append(rec.Lines, domain.CartLine{
					ProductID: l.ProductID,
					Title:     l.Title,
					Price:     l.Price,
					Image:     l.Image,
					Quantity:  l.Quantity,
				})
			}
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("seed: cart for user %d: %w", c.UserID, err)
			}
		}
		for _, f := range doc.Favorites {
			for _, userID := range f.UserIDs {
				rec := domain.Favorite{ProductID: f.ProductID, UserID: userID}
				if err := tx.Create(&rec).Error; err != nil {
					return fmt.Errorf("seed: favorite product %d user %d: %w", f.ProductID, userID, err)
				}
			}
		}
		for _, o := range doc.Olders {
			rec := domain.Order{
				ID:            orderID(o.ID),
				UserID:        o.UserID,
				Name:          o.Name,
				Phone:         o.Phone,
				Address:       o.Address,
				PaymentMethod: o.PaymentMethod,
				PlacedAt:      parseTime(o.OlderTime),
			}
			for _, l := range o.Lines {
				rec.Lines = append(rec.Lines, domain.OrderLine{
					ProductID: l.ProductID,
					Title:     l.Title,
					Price:     l.Price,
					Image:     l.Image,
					Quantity:  l.Quantity,
				})
			}
			rec.TotalPrice = domain.Total(rec.Lines)
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("seed: order %s: %w", rec.ID, err)
			}
		}
		log.Printf("seed: imported %d categories, %d products, %d users, %d carts, %d favorite sets, %d orders from %s",
			len(doc.Categories), len(doc.Products), len(doc.Users), len(doc.Carts), len(doc.Favorites), len(doc.Olders), path)
		return nil
	})
}

// orderID keeps the fixture's id when present (fixtures use epoch millis)
// and otherwise generates a fresh uuid.
func orderID(n json.Number) string {
	if s := n.String(); s != "" {
		return s
	}
	return uuid.NewString()
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now()
	}
	return t
}
