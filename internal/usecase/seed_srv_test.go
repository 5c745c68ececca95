package usecase

import (
	"context"
	"testing"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSeedFixture(admin utils.AdminConfig, users ...*entity.User) (*repository.Repository, SeedService) {
	repo := &repository.Repository{
		User:     newFakeUserRepo(users...),
		Category: &fakeCategoryRepo{},
		Location: &fakeLocationRepo{},
	}
	return repo, NewSeedService(repo, &utils.Config{Admin: admin}, zap.NewNop())
}

func TestSeedService_EmptyDatabase(t *testing.T) {
	repo, service := newSeedFixture(utils.AdminConfig{Username: "admin", Email: "Admin@Example.com", Password: "admin123"})
	ctx := context.Background()

	require.NoError(t, service.Seed(ctx))

	admin, err := repo.User.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.IsAdmin)
	assert.True(t, utils.CheckPasswordHash("admin123", admin.PasswordHash))

	categories := repo.Category.(*fakeCategoryRepo).categories
	require.Len(t, categories, 6)
	assert.Equal(t, "real-estate", categories[0].NameEn)
	assert.Equal(t, 1, categories[0].DisplayOrder)

	locations := repo.Location.(*fakeLocationRepo)
	require.Len(t, locations.countries, 3)
	assert.Equal(t, "EG", locations.countries[0].Code)
	assert.True(t, locations.countries[0].RequiresTransferProof)
	require.Len(t, locations.states, 1)
	assert.Equal(t, locations.countries[0].ID, locations.states[0].CountryID)
	assert.Len(t, locations.cities, 3)

	// a second run adds nothing
	require.NoError(t, service.Seed(ctx))
	assert.Len(t, repo.Category.(*fakeCategoryRepo).categories, 6)
	assert.Len(t, locations.countries, 3)
}

func TestSeedService_PromotesExistingUser(t *testing.T) {
	existing := &entity.User{Base: entity.Base{ID: uuid.New()}, Username: "boss", Email: "boss@example.com"}
	repo, service := newSeedFixture(utils.AdminConfig{Email: "boss@example.com", Password: "whatever"}, existing)

	require.NoError(t, service.Seed(context.Background()))

	users := repo.User.(*fakeUserRepo)
	assert.Equal(t, 1, users.updated)
	assert.True(t, existing.IsAdmin)
	assert.True(t, existing.IsActive)
}

func TestSeedService_SkipsAdminWithoutCredentials(t *testing.T) {
	repo, service := newSeedFixture(utils.AdminConfig{})

	require.NoError(t, service.Seed(context.Background()))
	assert.Empty(t, repo.User.(*fakeUserRepo).byID)
}
