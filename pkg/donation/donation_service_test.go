package donation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) (DonationService, DonationRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.FoodDonation{}))

	repo := NewDonationRepository(db)
	return NewDonationService(repo, nil, nil), repo, db
}

func createDonation(t *testing.T, svc DonationService, userID string) *domain.DonationResponse {
	t.Helper()

	res, err := svc.CreateDonation(context.Background(), domain.CreateDonationRequest{
		Title:       "Canned goods",
		Description: "A box of assorted canned goods",
		FoodType:    "canned",
		Quantity:    "12 cans",
		Location:    "Purok 3",
		ContactInfo: "0917",
	}, userID)
	require.NoError(t, err)
	return res
}

func TestCreateDonationStartsPending(t *testing.T) {
	svc, _, _ := setupTestService(t)
	userID := uuid.New()

	res := createDonation(t, svc, userID.String())
	assert.Equal(t, domain.DonationStatusPending, res.ApprovalStatus)
	assert.Empty(t, res.Images)
	assert.Equal(t, 0, res.ViewsCount)
}

func TestPendingDonationVisibleToOwnerOnly(t *testing.T) {
	svc, repo, _ := setupTestService(t)
	owner := uuid.New()
	stranger := uuid.New()

	res := createDonation(t, svc, owner.String())

	_, err := svc.GetDonationByID(context.Background(), res.ID, stranger.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotFound)

	got, err := svc.GetDonationByID(context.Background(), res.ID, owner.String())
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)

	// once approved anyone can view it, and views count up
	require.NoError(t, repo.SetApprovalStatus(context.Background(), res.ID, domain.DonationStatusApproved))

	got, err = svc.GetDonationByID(context.Background(), res.ID, stranger.String())
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewsCount)
}

func TestBrowseListsApprovedOnly(t *testing.T) {
	svc, repo, _ := setupTestService(t)
	userID := uuid.New()

	visible := createDonation(t, svc, userID.String())
	createDonation(t, svc, userID.String())

	require.NoError(t, repo.SetApprovalStatus(context.Background(), visible.ID, domain.DonationStatusApproved))

	items, count, err := svc.GetApprovedDonations(context.Background(), "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, items, 1)
	assert.Equal(t, visible.ID, items[0].ID)
}

func TestBrowseFoodTypeFilter(t *testing.T) {
	svc, repo, db := setupTestService(t)
	userID := uuid.New()

	canned := createDonation(t, svc, userID.String())
	produce := createDonation(t, svc, userID.String())
	require.NoError(t, db.Model(&entities.FoodDonation{}).
		Where("id = ?", produce.ID).
		Update("food_type", "produce").Error)

	require.NoError(t, repo.SetApprovalStatus(context.Background(), canned.ID, domain.DonationStatusApproved))
	require.NoError(t, repo.SetApprovalStatus(context.Background(), produce.ID, domain.DonationStatusApproved))

	items, count, err := svc.GetApprovedDonations(context.Background(), "produce", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, items, 1)
	assert.Equal(t, produce.ID, items[0].ID)
}

func TestUpdateAndDeleteOnlyWhilePending(t *testing.T) {
	svc, repo, _ := setupTestService(t)
	owner := uuid.New()
	stranger := uuid.New()

	res := createDonation(t, svc, owner.String())

	err := svc.UpdateDonation(context.Background(), res.ID, domain.UpdateDonationRequest{Title: "Hijacked"}, stranger.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotPending)

	require.NoError(t, svc.UpdateDonation(context.Background(), res.ID, domain.UpdateDonationRequest{
		Title: "Canned goods, sealed",
	}, owner.String()))

	require.NoError(t, repo.SetApprovalStatus(context.Background(), res.ID, domain.DonationStatusApproved))

	err = svc.UpdateDonation(context.Background(), res.ID, domain.UpdateDonationRequest{Title: "Too late"}, owner.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotPending)

	err = svc.DeleteDonation(context.Background(), res.ID, owner.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotPending)

	err = svc.DeleteDonation(context.Background(), uuid.New().String(), owner.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotFound)
}
