package dao_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clubtrack/club-api/internal/repository/dao"
)

// startPostgres spins up a throwaway postgres container. Tests that
// need it skip when Docker is not around.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("skipping, Docker is unavailable: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("skipping, Docker is unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=club",
			"POSTGRES_PASSWORD=club",
			"POSTGRES_DB=club_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})
	_ = resource.Expire(180)

	dsn := fmt.Sprintf("host=localhost user=club password=club dbname=club_test port=%v sslmode=disable", resource.GetPort("5432/tcp"))

	var db *gorm.DB
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	return db
}

type fixture struct {
	memberID       uint
	presenceID     uint // the member's own presence
	guestPersonIDs []uint
	activityID     uint
}

// seed creates one member who brings three guests to a 100-priced
// activity under a 20% / 3-guest policy.
func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	ctx := context.Background()

	sp := dao.SponsorGroup{Region: "North", Description: "Northern branch"}
	require.NoError(t, db.Create(&sp).Error)

	memberPerson := dao.Person{FirstName: "Ada", LastName: "Lovelace", BirthDate: time.Now().AddDate(-30, 0, 0), SponsorGroupID: sp.ID}
	require.NoError(t, db.Create(&memberPerson).Error)

	member := dao.Member{PersonID: memberPerson.ID, AffiliationDate: time.Now()}
	require.NoError(t, db.Create(&member).Error)

	activity := dao.Activity{Description: "Hike", Date: time.Now().AddDate(0, 1, 0), Region: "North", Priority: 5, Price: 100}
	require.NoError(t, db.Create(&activity).Error)

	policy := dao.DiscountPolicy{MinimumPrice: 10, MaximumPrice: 500, DiscountRate: 0.2, GuestThreshold: 3}
	require.NoError(t, db.Create(&policy).Error)

	presenceDAO := dao.NewPresenceDAO(db)
	own, err := presenceDAO.Insert(ctx, dao.Presence{ActivityID: activity.ID, MemberID: member.ID})
	require.NoError(t, err)

	var guestIDs []uint
	for i := 0; i < 3; i++ {
		guest := dao.Person{FirstName: fmt.Sprintf("Guest%d", i), LastName: "Doe", BirthDate: time.Now().AddDate(-20, 0, 0), SponsorGroupID: sp.ID}
		require.NoError(t, db.Create(&guest).Error)
		guestIDs = append(guestIDs, guest.ID)

		guestID := guest.ID
		_, err = presenceDAO.Insert(ctx, dao.Presence{ActivityID: activity.ID, MemberID: member.ID, GuestPersonID: &guestID})
		require.NoError(t, err)
	}

	return fixture{
		memberID:       member.ID,
		presenceID:     own.ID,
		guestPersonIDs: guestIDs,
		activityID:     activity.ID,
	}
}

func TestPresenceDAO_Postgres(t *testing.T) {
	db := startPostgres(t)
	fix := seed(t, db)
	ctx := context.Background()
	presenceDAO := dao.NewPresenceDAO(db)

	t.Run("duplicate member presence is rejected", func(t *testing.T) {
		_, err := presenceDAO.Insert(ctx, dao.Presence{ActivityID: fix.activityID, MemberID: fix.memberID})
		assert.ErrorIs(t, err, dao.ErrDuplicatePresence)
	})

	t.Run("duplicate guest presence is rejected", func(t *testing.T) {
		guestID := fix.guestPersonIDs[0]
		_, err := presenceDAO.Insert(ctx, dao.Presence{ActivityID: fix.activityID, MemberID: fix.memberID, GuestPersonID: &guestID})
		assert.ErrorIs(t, err, dao.ErrDuplicatePresence)
	})

	t.Run("counts only guest rows of the bringer", func(t *testing.T) {
		count, err := presenceDAO.CountGuestsBrought(ctx, fix.memberID, fix.activityID)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}

func TestPaymentDAO_InsertAuthorized_Postgres(t *testing.T) {
	db := startPostgres(t)
	fix := seed(t, db)
	ctx := context.Background()
	paymentDAO := dao.NewPaymentDAO(db)

	// Three guests meet the threshold: the discounted price is 80.
	payment, info, err := paymentDAO.InsertAuthorized(ctx, fix.presenceID, 80)
	require.NoError(t, err)
	assert.Equal(t, 80.0, payment.Amount)
	assert.True(t, info.HasDiscount)
	assert.Equal(t, 80.0, info.DiscountedPrice)

	// The balance is settled; any further amount bounces.
	_, _, err = paymentDAO.InsertAuthorized(ctx, fix.presenceID, 0.01)
	var exceedsErr *dao.ExceedsBalanceError
	require.ErrorAs(t, err, &exceedsErr)
	assert.Equal(t, 0.0, exceedsErr.Remaining)
	assert.True(t, exceedsErr.DiscountApplied)

	paid, err := paymentDAO.SumForPresence(ctx, fix.presenceID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, paid)
}

func TestPaymentDAO_InsertAuthorized_Concurrent(t *testing.T) {
	db := startPostgres(t)
	fix := seed(t, db)
	ctx := context.Background()
	paymentDAO := dao.NewPaymentDAO(db)

	// Discounted price is 80; two concurrent 50s must serialize on the
	// presence row so only one lands.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, errs[i] = paymentDAO.InsertAuthorized(ctx, fix.presenceID, 50)
		}()
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
			continue
		}

		var exceedsErr *dao.ExceedsBalanceError
		require.ErrorAs(t, err, &exceedsErr)
		assert.Equal(t, 30.0, exceedsErr.Remaining)
	}
	assert.Equal(t, 1, accepted)

	paid, err := paymentDAO.SumForPresence(ctx, fix.presenceID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, paid)
}

func TestReportDAO_RangeExcludesDayAfterEnd(t *testing.T) {
	db := startPostgres(t)
	fix := seed(t, db)
	ctx := context.Background()
	reportDAO := dao.NewReportDAO(db)
	presenceDAO := dao.NewPresenceDAO(db)

	// Date-only activities land at midnight. The range is half open,
	// so an activity at exactly the end bound must stay out.
	inRange := dao.Activity{Description: "Closing day", Date: time.Date(2027, 5, 10, 0, 0, 0, 0, time.UTC), Region: "North", Priority: 5, Price: 100}
	require.NoError(t, db.Create(&inRange).Error)
	dayAfter := dao.Activity{Description: "Day after", Date: time.Date(2027, 5, 11, 0, 0, 0, 0, time.UTC), Region: "North", Priority: 5, Price: 100}
	require.NoError(t, db.Create(&dayAfter).Error)

	for _, activityID := range []uint{inRange.ID, dayAfter.ID} {
		_, err := presenceDAO.Insert(ctx, dao.Presence{ActivityID: activityID, MemberID: fix.memberID})
		require.NoError(t, err)
	}

	// An end_date of 2027-05-10 arrives here widened to the 11th.
	start := time.Date(2027, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 5, 11, 0, 0, 0, 0, time.UTC)

	rows, err := reportDAO.MemberOwnPresences(ctx, fix.memberID, start, end)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, inRange.ID, rows[0].ActivityID)
}

func TestPolicyDAO_Postgres(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	policyDAO := dao.NewPolicyDAO(db)

	_, err := policyDAO.Find(ctx)
	assert.ErrorIs(t, err, dao.ErrPolicyNotFound)

	_, err = policyDAO.Update(ctx, 0.25, 4)
	assert.ErrorIs(t, err, dao.ErrPolicyNotFound)

	require.NoError(t, db.Create(&dao.DiscountPolicy{MinimumPrice: 10, MaximumPrice: 500, DiscountRate: 0.1, GuestThreshold: 2}).Error)

	updated, err := policyDAO.Update(ctx, 0.25, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.25, updated.DiscountRate)
	assert.Equal(t, 4, updated.GuestThreshold)
	// The price band is not touched by a policy update.
	assert.Equal(t, 10.0, updated.MinimumPrice)
	assert.Equal(t, 500.0, updated.MaximumPrice)
}
