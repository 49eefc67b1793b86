package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"stock-visibility-be/internal/entity"
	"stock-visibility-be/internal/mapper"
	"stock-visibility-be/internal/repository/specification"
	"stock-visibility-be/internal/repository/unitofwork"
	"stock-visibility-be/internal/service"
	"stock-visibility-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

// TestCatalogVisibility exercises the hide pipeline end to end: seeds
// products in each stock state, stores a settings record, and asserts which
// products a filtered storefront query returns.
func TestCatalogVisibility(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)
	visibility := service.NewVisibilityService(uowFactory)
	visMapper := mapper.NewStockVisibilityMapper()

	// Seed one product per stock state with unique slugs
	suffix := uuid.New().String()[:8]
	inStock := &entity.Product{
		Id: uuid.New(), Name: "Vis Test In Stock", Slug: "vis-instock-" + suffix,
		StockStatus: entity.StockStatusInStock, StockQuantity: 5, Status: entity.ProductStatusPublished,
	}
	outOfStock := &entity.Product{
		Id: uuid.New(), Name: "Vis Test Out", Slug: "vis-out-" + suffix,
		StockStatus: entity.StockStatusOutOfStock, Status: entity.ProductStatusPublished,
	}
	exemptOut := &entity.Product{
		Id: uuid.New(), Name: "Vis Test Exempt", Slug: "vis-exempt-" + suffix,
		StockStatus: entity.StockStatusOutOfStock, Status: entity.ProductStatusPublished,
	}

	for _, p := range []*entity.Product{inStock, outOfStock, exemptOut} {
		err := uow.ProductRepository().Create(ctx, p)
		assert.NoError(t, err)
		defer uow.ProductRepository().Delete(ctx, p.Id)
	}

	findVisible := func(settings *entity.StockVisibilitySettings, page entity.PageType) map[uuid.UUID]bool {
		specs := []specification.Specification{
			specification.Published{},
			specification.ByIDs{IDs: []uuid.UUID{inStock.Id, outOfStock.Id, exemptOut.Id}},
		}
		specs = append(specs, visibility.ListingSpecifications(settings, entity.ListingContext{
			PageType:  page,
			IsPrimary: true,
		})...)

		products, err := uow.ProductRepository().FindAll(ctx, specs...)
		assert.NoError(t, err)

		found := make(map[uuid.UUID]bool, len(products))
		for _, p := range products {
			found[p.Id] = true
		}
		return found
	}

	t.Run("hide mode with no flags hides out-of-stock everywhere", func(t *testing.T) {
		settings := entity.DefaultStockVisibilitySettings()

		found := findVisible(settings, entity.PageTypeShop)
		assert.True(t, found[inStock.Id])
		assert.False(t, found[outOfStock.Id])

		found = findVisible(settings, entity.PageTypeOther)
		assert.False(t, found[outOfStock.Id])
	})

	t.Run("exempt product survives hiding", func(t *testing.T) {
		settings := entity.DefaultStockVisibilitySettings()
		settings.ExcludedProductIDs = exemptOut.Id.String()

		found := findVisible(settings, entity.PageTypeShop)
		assert.True(t, found[inStock.Id])
		assert.False(t, found[outOfStock.Id])
		assert.True(t, found[exemptOut.Id])
	})

	t.Run("page flag limits hiding to that page", func(t *testing.T) {
		settings := entity.DefaultStockVisibilitySettings()
		settings.PageFlags[entity.PageTypeSearch] = true

		found := findVisible(settings, entity.PageTypeShop)
		assert.True(t, found[outOfStock.Id], "unflagged page should not hide")

		found = findVisible(settings, entity.PageTypeSearch)
		assert.False(t, found[outOfStock.Id], "flagged page should hide")
	})

	t.Run("label mode shows everything", func(t *testing.T) {
		settings := entity.DefaultStockVisibilitySettings()
		settings.DisplayMode = entity.DisplayModeLabel

		found := findVisible(settings, entity.PageTypeShop)
		assert.True(t, found[inStock.Id])
		assert.True(t, found[outOfStock.Id])
	})

	t.Run("hidden category excludes out-of-stock members on every page", func(t *testing.T) {
		hiddenCat := &entity.Category{Id: uuid.New(), Name: "Vis Hidden Cat", Slug: "vis-hidden-cat-" + suffix}
		err := uow.CategoryRepository().Create(ctx, hiddenCat)
		assert.NoError(t, err)
		defer uow.CategoryRepository().Delete(ctx, hiddenCat.Id)

		memberOut := &entity.Product{
			Id: uuid.New(), Name: "Vis Cat Member Out", Slug: "vis-cat-member-" + suffix,
			StockStatus: entity.StockStatusOutOfStock, Status: entity.ProductStatusPublished,
		}
		exemptMemberOut := &entity.Product{
			Id: uuid.New(), Name: "Vis Cat Exempt Out", Slug: "vis-cat-exempt-" + suffix,
			StockStatus: entity.StockStatusOutOfStock, Status: entity.ProductStatusPublished,
		}
		memberIn := &entity.Product{
			Id: uuid.New(), Name: "Vis Cat Member In", Slug: "vis-cat-instock-" + suffix,
			StockStatus: entity.StockStatusInStock, StockQuantity: 3, Status: entity.ProductStatusPublished,
		}

		for _, p := range []*entity.Product{memberOut, exemptMemberOut, memberIn} {
			err := uow.ProductRepository().Create(ctx, p)
			assert.NoError(t, err)
			defer uow.ProductRepository().Delete(ctx, p.Id)

			err = uow.ProductRepository().AssignCategories(ctx, p.Id, []uuid.UUID{hiddenCat.Id})
			assert.NoError(t, err)
		}

		settings := entity.DefaultStockVisibilitySettings()
		settings.HiddenCategoryIDs = hiddenCat.Id.String()
		settings.ExcludedProductIDs = exemptMemberOut.Id.String()
		// Hiding-by-stock is opted in for search only; the category rule has
		// no page scoping and must bite everywhere
		settings.PageFlags[entity.PageTypeSearch] = true

		findCatVisible := func(page entity.PageType) map[uuid.UUID]bool {
			specs := []specification.Specification{
				specification.Published{},
				specification.ByIDs{IDs: []uuid.UUID{memberOut.Id, exemptMemberOut.Id, memberIn.Id, outOfStock.Id}},
			}
			specs = append(specs, visibility.ListingSpecifications(settings, entity.ListingContext{
				PageType:  page,
				IsPrimary: true,
			})...)

			products, err := uow.ProductRepository().FindAll(ctx, specs...)
			assert.NoError(t, err)

			found := make(map[uuid.UUID]bool, len(products))
			for _, p := range products {
				found[p.Id] = true
			}
			return found
		}

		for _, page := range []entity.PageType{entity.PageTypeShop, entity.PageTypeSearch, entity.PageTypeCategory, entity.PageTypeOther} {
			found := findCatVisible(page)
			assert.False(t, found[memberOut.Id], "out-of-stock member should be hidden on %s", page)
			assert.True(t, found[exemptMemberOut.Id], "exempted member should survive on %s", page)
			assert.True(t, found[memberIn.Id], "in-stock member should show on %s", page)
		}

		// Out-of-stock non-member: only the flagged search page hides it
		found := findCatVisible(entity.PageTypeShop)
		assert.True(t, found[outOfStock.Id], "non-member should pass the category rule on shop")
		found = findCatVisible(entity.PageTypeSearch)
		assert.False(t, found[outOfStock.Id], "flagged search page should hide non-member by stock")
	})

	t.Run("product create with categories rolls back as one unit", func(t *testing.T) {
		txUow := uowFactory.NewUnitOfWork(ctx)
		err := txUow.Begin(ctx)
		assert.NoError(t, err)

		orphan := &entity.Product{
			Id: uuid.New(), Name: "Vis Tx Orphan", Slug: "vis-tx-orphan-" + suffix,
			StockStatus: entity.StockStatusInStock, Status: entity.ProductStatusPublished,
		}
		err = txUow.ProductRepository().Create(ctx, orphan)
		assert.NoError(t, err)
		err = txUow.ProductRepository().AssignCategories(ctx, orphan.Id, []uuid.UUID{uuid.New()})
		assert.NoError(t, err)

		// Simulate a failure after the writes: everything must vanish together
		err = txUow.Rollback()
		assert.NoError(t, err)

		gone, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: orphan.Id})
		assert.NoError(t, err)
		assert.Nil(t, gone, "rolled-back product should not be visible")
	})

	t.Run("settings record round-trips through option storage", func(t *testing.T) {
		in := entity.DefaultStockVisibilitySettings()
		in.DisplayMode = entity.DisplayModeLabel
		in.OutOfStockLabel = "Integration label"
		in.ExcludedProductIDs = exemptOut.Id.String()

		option, err := visMapper.ToOption(in)
		assert.NoError(t, err)
		assert.NoError(t, uow.OptionRepository().Put(ctx, option))

		out, err := visibility.ResolveSettings(ctx)
		assert.NoError(t, err)
		assert.Equal(t, entity.DisplayModeLabel, out.DisplayMode)
		assert.Equal(t, "Integration label", out.OutOfStockLabel)
		assert.Equal(t, []string{exemptOut.Id.String()}, out.ExcludedProductTokens())
	})
}
