// Package seed populates an empty store with the demo catalog and the
// default admin account.
package seed

import (
	"context"
	"fmt"

	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/nexashop/backend/internal/domain/identity"
	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Repositories are the stores the seeder writes into.
type Repositories struct {
	Products   catalog.ProductRepository
	Categories catalog.CategoryRepository
	Banners    catalog.BannerRepository
	Users      identity.UserRepository
}

type categorySeed struct {
	name     string
	slug     string
	imageURL string
}

type productSeed struct {
	name         string
	slug         string
	description  string
	price        string
	comparePrice string
	categorySlug string
	imageURL     string
	rating       float64
	reviewCount  int
	featured     bool
	isNew        bool
}

type bannerSeed struct {
	title      string
	subtitle   string
	imageURL   string
	buttonText string
	buttonLink string
	sortOrder  int
}

var categorySeeds = []categorySeed{
	{"Electronics", "electronics", "https://images.unsplash.com/photo-1546868871-7041f2a55e12"},
	{"Fashion", "fashion", "https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3"},
	{"Accessories", "accessories", "https://images.unsplash.com/photo-1470309864661-68328b2cd0a5"},
	{"Sports", "sports", "https://images.unsplash.com/photo-1511556532299-8f662fc26c06"},
}

var productSeeds = []productSeed{
	{
		name:         "Bluetooth Premium Headphones",
		slug:         "bluetooth-premium-headphones",
		description:  "High-quality wireless headphones with noise cancellation and premium sound",
		price:        "299.90",
		comparePrice: "349.90",
		categorySlug: "electronics",
		imageURL:     "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
		rating:       4.5,
		reviewCount:  128,
		featured:     true,
	},
	{
		name:         "Smartwatch Pro Series",
		slug:         "smartwatch-pro-series",
		description:  "Advanced smartwatch with health tracking, GPS, and long battery life",
		price:        "599.90",
		categorySlug: "electronics",
		imageURL:     "https://images.unsplash.com/photo-1523275335684-37898b6baf30",
		rating:       5.0,
		reviewCount:  94,
		featured:     true,
	},
	{
		name:         "Ultra Runner Shoes",
		slug:         "ultra-runner-shoes",
		description:  "Professional running shoes with advanced cushioning and stability",
		price:        "349.90",
		categorySlug: "sports",
		imageURL:     "https://images.unsplash.com/photo-1598327105666-5b89351aff97",
		rating:       4.0,
		reviewCount:  56,
		featured:     true,
		isNew:        true,
	},
	{
		name:         "Premium Leather Jacket",
		slug:         "premium-leather-jacket",
		description:  "Genuine leather jacket with stylish design and comfortable fit",
		price:        "719.90",
		comparePrice: "899.90",
		categorySlug: "fashion",
		imageURL:     "https://images.unsplash.com/photo-1591047139829-d91aecb6caea",
		rating:       4.5,
		reviewCount:  112,
		featured:     true,
	},
	{
		name:         "Air Max Sports Shoes",
		slug:         "air-max-sports-shoes",
		description:  "Comfortable and stylish sports shoes for everyday use",
		price:        "499.90",
		categorySlug: "sports",
		imageURL:     "https://images.unsplash.com/photo-1542291026-7eec264c27ff",
		rating:       4.0,
		reviewCount:  89,
	},
	{
		name:         "Premium Fit T-Shirt",
		slug:         "premium-fit-t-shirt",
		description:  "High-quality cotton t-shirt with perfect fit",
		price:        "89.90",
		categorySlug: "fashion",
		imageURL:     "https://images.unsplash.com/photo-1546938576-6e6a64f317cc",
		rating:       3.5,
		reviewCount:  42,
	},
	{
		name:         "RGB Gaming Headset",
		slug:         "rgb-gaming-headset",
		description:  "Professional gaming headset with RGB lighting and surround sound",
		price:        "359.90",
		comparePrice: "399.90",
		categorySlug: "electronics",
		imageURL:     "https://images.unsplash.com/photo-1583394838336-acd977736f90",
		rating:       4.0,
		reviewCount:  76,
	},
	{
		name:         "Vintage Gold Watch",
		slug:         "vintage-gold-watch",
		description:  "Elegant gold watch with vintage design and premium craftsmanship",
		price:        "799.90",
		categorySlug: "accessories",
		imageURL:     "https://images.unsplash.com/photo-1620799140188-3b2a02fd9a77",
		rating:       4.5,
		reviewCount:  32,
	},
}

var bannerSeeds = []bannerSeed{
	{
		title:      "Cutting-edge Technology for Your Daily Life",
		subtitle:   "Discover the most innovative devices at special prices",
		imageURL:   "https://images.unsplash.com/photo-1607082348824-0a96f2a4b9da",
		buttonText: "See offers",
		buttonLink: "/products",
		sortOrder:  0,
	},
	{
		title:      "New Spring/Summer Collection",
		subtitle:   "Renew your wardrobe with the latest trends",
		imageURL:   "https://images.unsplash.com/photo-1483985988355-763728e1935b",
		buttonText: "Shop now",
		buttonLink: "/products?category=fashion",
		sortOrder:  1,
	},
}

const (
	adminUsername = "admin"
	adminPassword = "admin123"
	adminEmail    = "admin@nexashop.com"
	adminName     = "Admin User"
)

// Run inserts the demo data. It is a no-op when products already exist,
// so restarting against a persistent store does not duplicate rows.
func Run(ctx context.Context, repos Repositories, logger *zap.Logger) error {
	existing, err := repos.Products.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return fmt.Errorf("seed: check existing products: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug("Store already seeded, skipping")
		return nil
	}

	categoryIDs := make(map[string]int64, len(categorySeeds))
	for _, cs := range categorySeeds {
		category, err := catalog.NewCategory(cs.name, cs.slug, "", cs.imageURL)
		if err != nil {
			return fmt.Errorf("seed: category %q: %w", cs.slug, err)
		}
		if err := repos.Categories.Insert(ctx, category); err != nil {
			return fmt.Errorf("seed: insert category %q: %w", cs.slug, err)
		}
		categoryIDs[cs.slug] = category.ID
	}

	for _, ps := range productSeeds {
		price, err := decimal.NewFromString(ps.price)
		if err != nil {
			return fmt.Errorf("seed: product %q price: %w", ps.slug, err)
		}
		var comparePrice *decimal.Decimal
		if ps.comparePrice != "" {
			cp, err := decimal.NewFromString(ps.comparePrice)
			if err != nil {
				return fmt.Errorf("seed: product %q compare price: %w", ps.slug, err)
			}
			comparePrice = &cp
		}

		product, err := catalog.NewProduct(ps.name, ps.slug, ps.description, price, comparePrice, categoryIDs[ps.categorySlug])
		if err != nil {
			return fmt.Errorf("seed: product %q: %w", ps.slug, err)
		}
		product.SetImageURL(ps.imageURL)
		product.SetFlags(true, ps.featured, ps.isNew)
		if err := product.SetRating(ps.rating, ps.reviewCount); err != nil {
			return fmt.Errorf("seed: product %q rating: %w", ps.slug, err)
		}
		if err := repos.Products.Insert(ctx, product); err != nil {
			return fmt.Errorf("seed: insert product %q: %w", ps.slug, err)
		}
	}

	for _, bs := range bannerSeeds {
		banner, err := catalog.NewBanner(bs.title, bs.subtitle, bs.imageURL, bs.buttonText, bs.buttonLink, bs.sortOrder)
		if err != nil {
			return fmt.Errorf("seed: banner %q: %w", bs.title, err)
		}
		if err := repos.Banners.Insert(ctx, banner); err != nil {
			return fmt.Errorf("seed: insert banner %q: %w", bs.title, err)
		}
	}

	admin, err := identity.NewAdmin(adminUsername, adminEmail, adminPassword, adminName)
	if err != nil {
		return fmt.Errorf("seed: admin user: %w", err)
	}
	if err := repos.Users.Insert(ctx, admin); err != nil {
		return fmt.Errorf("seed: insert admin user: %w", err)
	}

	logger.Info("Store seeded",
		zap.Int("categories", len(categorySeeds)),
		zap.Int("products", len(productSeeds)),
		zap.Int("banners", len(bannerSeeds)))
	return nil
}
