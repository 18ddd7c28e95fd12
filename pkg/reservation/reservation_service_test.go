package reservation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"github.com/rackiel/Foodify-sub001/pkg/donation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) (ReservationService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.FoodDonation{},
		&entities.DonationReservation{},
	))

	svc := NewReservationService(
		NewReservationRepository(db),
		donation.NewDonationRepository(db),
		nil,
	)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *entities.User {
	t.Helper()

	u := &entities.User{
		ID:    uuid.New(),
		Name:  name,
		Email: name + "@example.com",
		Role:  domain.RoleResident,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedDonation(t *testing.T, db *gorm.DB, owner *entities.User, status string) *entities.FoodDonation {
	t.Helper()

	d := &entities.FoodDonation{
		ID:             uuid.New(),
		UserID:         owner.ID,
		Title:          "Rice packs",
		Description:    "Five kilos of rice",
		FoodType:       "grains",
		Quantity:       "5 kg",
		Location:       "Barangay hall",
		ContactInfo:    "0917",
		Images:         "[]",
		ApprovalStatus: status,
	}
	require.NoError(t, db.Create(d).Error)
	return d
}

func TestCreateReservation(t *testing.T) {
	svc, db := setupTestService(t)
	owner := seedUser(t, db, "owner")
	requester := seedUser(t, db, "requester")
	approved := seedDonation(t, db, owner, domain.DonationStatusApproved)

	res, err := svc.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: approved.ID.String(),
		Message:    "Can I pick up tonight?",
	}, requester.ID.String())
	require.NoError(t, err)

	assert.Equal(t, domain.ReservationStatusPending, res.Status)
	assert.Equal(t, approved.ID.String(), res.DonationID)
}

func TestCreateReservationRejectsOwnDonation(t *testing.T) {
	svc, db := setupTestService(t)
	owner := seedUser(t, db, "owner")
	approved := seedDonation(t, db, owner, domain.DonationStatusApproved)

	_, err := svc.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: approved.ID.String(),
	}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrOwnDonationRequest)
}

func TestCreateReservationRequiresApprovedDonation(t *testing.T) {
	svc, db := setupTestService(t)
	owner := seedUser(t, db, "owner")
	requester := seedUser(t, db, "requester")
	pending := seedDonation(t, db, owner, domain.DonationStatusPending)

	_, err := svc.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: pending.ID.String(),
	}, requester.ID.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotApproved)
}

func TestCreateReservationRejectsDuplicateOpenRequest(t *testing.T) {
	svc, db := setupTestService(t)
	owner := seedUser(t, db, "owner")
	requester := seedUser(t, db, "requester")
	approved := seedDonation(t, db, owner, domain.DonationStatusApproved)

	first, err := svc.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: approved.ID.String(),
	}, requester.ID.String())
	require.NoError(t, err)

	_, err = svc.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: approved.ID.String(),
	}, requester.ID.String())
	assert.ErrorIs(t, err, domain.ErrDuplicateReservation)

	// after cancelling, a fresh request is allowed again
	require.NoError(t, svc.CancelReservation(context.Background(), first.ID, requester.ID.String()))

	_, err = svc.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: approved.ID.String(),
	}, requester.ID.String())
	assert.NoError(t, err)
}

func TestDecideReservation(t *testing.T) {
	svc, db := setupTestService(t)
	owner := seedUser(t, db, "owner")
	requester := seedUser(t, db, "requester")
	stranger := seedUser(t, db, "stranger")
	approved := seedDonation(t, db, owner, domain.DonationStatusApproved)

	res, err := svc.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: approved.ID.String(),
	}, requester.ID.String())
	require.NoError(t, err)

	// only the donation owner may decide
	err = svc.DecideReservation(context.Background(), domain.ReservationDecisionRequest{
		ReservationID: res.ID,
		Status:        domain.ReservationStatusApproved,
	}, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)

	err = svc.DecideReservation(context.Background(), domain.ReservationDecisionRequest{
		ReservationID: res.ID,
		Status:        domain.ReservationStatusApproved,
	}, owner.ID.String())
	require.NoError(t, err)

	// deciding twice fails, the row left pending state
	err = svc.DecideReservation(context.Background(), domain.ReservationDecisionRequest{
		ReservationID: res.ID,
		Status:        domain.ReservationStatusRejected,
	}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrReservationNotPending)
}

func TestCompleteReservationRequiresApprovedState(t *testing.T) {
	svc, db := setupTestService(t)
	owner := seedUser(t, db, "owner")
	requester := seedUser(t, db, "requester")
	approved := seedDonation(t, db, owner, domain.DonationStatusApproved)

	res, err := svc.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: approved.ID.String(),
	}, requester.ID.String())
	require.NoError(t, err)

	err = svc.CompleteReservation(context.Background(), res.ID, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrReservationNotApproved)

	require.NoError(t, svc.DecideReservation(context.Background(), domain.ReservationDecisionRequest{
		ReservationID: res.ID,
		Status:        domain.ReservationStatusApproved,
	}, owner.ID.String()))

	require.NoError(t, svc.CompleteReservation(context.Background(), res.ID, owner.ID.String()))

	var row entities.DonationReservation
	require.NoError(t, db.First(&row, "id = ?", res.ID).Error)
	assert.Equal(t, domain.ReservationStatusCompleted, row.Status)
}

func TestCancelReservationOnlyRequester(t *testing.T) {
	svc, db := setupTestService(t)
	owner := seedUser(t, db, "owner")
	requester := seedUser(t, db, "requester")
	approved := seedDonation(t, db, owner, domain.DonationStatusApproved)

	res, err := svc.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: approved.ID.String(),
	}, requester.ID.String())
	require.NoError(t, err)

	err = svc.CancelReservation(context.Background(), res.ID, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)

	require.NoError(t, svc.CancelReservation(context.Background(), res.ID, requester.ID.String()))

	// cancelled rows cannot be cancelled again
	err = svc.CancelReservation(context.Background(), res.ID, requester.ID.String())
	assert.ErrorIs(t, err, domain.ErrReservationNotCloseable)
}

func TestOwnerReservationListing(t *testing.T) {
	svc, db := setupTestService(t)
	owner := seedUser(t, db, "owner")
	requester := seedUser(t, db, "requester")
	other := seedUser(t, db, "other")
	approved := seedDonation(t, db, owner, domain.DonationStatusApproved)
	otherDonation := seedDonation(t, db, other, domain.DonationStatusApproved)

	_, err := svc.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: approved.ID.String(),
	}, requester.ID.String())
	require.NoError(t, err)

	_, err = svc.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: otherDonation.ID.String(),
	}, requester.ID.String())
	require.NoError(t, err)

	incoming, count, err := svc.GetOwnerReservations(context.Background(), owner.ID.String(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, incoming, 1)
	assert.Equal(t, approved.ID.String(), incoming[0].DonationID)

	mine, count, err := svc.GetUserReservations(context.Background(), requester.ID.String(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, mine, 2)
}
