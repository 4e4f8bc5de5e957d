//go:build integration

package repository

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	dbpkg "github.com/BruksfildServices01/zaban-academy/internal/db"
	paymentDomain "github.com/BruksfildServices01/zaban-academy/internal/domain/payment"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)

	pg, err := tcpostgres.RunContainer(ctx,
		tc.WithImage("postgres:17-alpine"),
		tcpostgres.WithDatabase("zaban"),
		tcpostgres.WithUsername("zaban"),
		tcpostgres.WithPassword("zaban"),
	)
	if err != nil {
		cancel()
		log.Fatalf("start postgres: %v", err)
	}

	uri, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pg.Terminate(ctx)
		cancel()
		log.Fatalf("connection string: %v", err)
	}

	testDB, err = openWhenReady(uri)
	if err == nil {
		err = dbpkg.Migrate(testDB)
	}
	if err != nil {
		_ = pg.Terminate(ctx)
		cancel()
		log.Fatalf("prepare db: %v", err)
	}

	code := m.Run()

	_ = pg.Terminate(context.Background())
	cancel()
	os.Exit(code)
}

func openWhenReady(uri string) (*gorm.DB, error) {
	var lastErr error
	dead := time.Now().Add(20 * time.Second)
	for time.Now().Before(dead) {
		db, err := gorm.Open(postgres.Open(uri), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err == nil {
			sqlDB, _ := db.DB()
			if err = sqlDB.Ping(); err == nil {
				return db, nil
			}
		}
		lastErr = err
		time.Sleep(200 * time.Millisecond)
	}
	return nil, lastErr
}

func resetTables(t *testing.T) {
	t.Helper()
	require.NoError(t, testDB.Exec(
		"TRUNCATE TABLE purchases, payments, bookings, time_slots, contents, users, audit_logs RESTART IDENTITY CASCADE",
	).Error)
}

// ======================================================
// Slots & bookings
// ======================================================

func TestClaimSlot_ConcurrentClaimsOneWinner(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewBookingGormRepository(testDB)

	slot := &models.TimeSlot{StartAt: time.Now().Add(time.Hour), DurationMin: 30}
	require.NoError(t, repo.CreateSlot(ctx, slot))

	const n = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := &models.Booking{SlotID: slot.ID, Type: "private_class", Status: "confirmed", Phone: "09121234567"}
			_, err := repo.ClaimSlot(ctx, b, time.Now())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case httperr.IsBusiness(err, "slot_already_booked"):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, conflicts)

	var count int64
	require.NoError(t, testDB.Model(&models.Booking{}).Where("slot_id = ?", slot.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	available, err := repo.ListAvailableSlots(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestClaimSlot_MissingAndExpired(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewBookingGormRepository(testDB)

	_, err := repo.ClaimSlot(ctx, &models.Booking{SlotID: 999, Phone: "09121234567"}, time.Now())
	assert.True(t, httperr.IsBusiness(err, "slot_not_found"))

	past := &models.TimeSlot{StartAt: time.Now().Add(-time.Hour), DurationMin: 30}
	require.NoError(t, repo.CreateSlot(ctx, past))

	_, err = repo.ClaimSlot(ctx, &models.Booking{SlotID: past.ID, Type: "private_class", Status: "confirmed", Phone: "09121234567"}, time.Now())
	assert.True(t, httperr.IsBusiness(err, "slot_expired"))
}

func TestDeleteSlot_RefusedWhileBooked(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewBookingGormRepository(testDB)

	booked := &models.TimeSlot{StartAt: time.Now().Add(time.Hour), DurationMin: 30}
	free := &models.TimeSlot{StartAt: time.Now().Add(2 * time.Hour), DurationMin: 30}
	require.NoError(t, repo.CreateSlot(ctx, booked))
	require.NoError(t, repo.CreateSlot(ctx, free))

	_, err := repo.ClaimSlot(ctx, &models.Booking{SlotID: booked.ID, Type: "private_class", Status: "confirmed", Phone: "09121234567"}, time.Now())
	require.NoError(t, err)

	assert.True(t, httperr.IsBusiness(repo.DeleteSlot(ctx, booked.ID), "slot_has_booking"))
	assert.NoError(t, repo.DeleteSlot(ctx, free.ID))
	assert.True(t, httperr.IsBusiness(repo.DeleteSlot(ctx, free.ID), "slot_not_found"))
}

// ======================================================
// Payments
// ======================================================

func seedBuyer(t *testing.T) (*models.User, *models.Content) {
	t.Helper()
	ctx := context.Background()

	u := &models.User{Username: "09121234567", PasswordHash: "x", Role: auth.RoleUser}
	require.NoError(t, NewUserGormRepository(testDB).Create(ctx, u))

	c := &models.Content{Title: "Speaking", Type: "course", IsPremium: true, Price: 490000}
	require.NoError(t, NewContentGormRepository(testDB).Create(ctx, c))
	return u, c
}

func TestTransition_ApprovalIsIdempotent(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewPaymentGormRepository(testDB)
	contents := NewContentGormRepository(testDB)
	u, c := seedBuyer(t)

	p := &models.Payment{UserID: u.ID, ContentID: c.ID, Amount: c.Price, Status: "pending", TrackingCode: "T1"}
	require.NoError(t, repo.CreatePayment(ctx, p))

	has, err := contents.HasPurchase(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, has)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := repo.Transition(ctx, p.ID, paymentDomain.StatusApproved, "ok")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var purchases int64
	require.NoError(t, testDB.Model(&models.Purchase{}).Where("payment_id = ?", p.ID).Count(&purchases).Error)
	assert.Equal(t, int64(1), purchases)

	has, err = contents.HasPurchase(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, has)

	_, changed, err := repo.Transition(ctx, p.ID, paymentDomain.StatusApproved, "again")
	require.NoError(t, err)
	assert.False(t, changed)

	_, _, err = repo.Transition(ctx, p.ID, paymentDomain.StatusRejected, "")
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	assert.True(t, httperr.IsBusiness(contents.Delete(ctx, c.ID), "content_in_use"))
}

func TestTransition_RejectGrantsNothing(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewPaymentGormRepository(testDB)
	u, c := seedBuyer(t)

	p := &models.Payment{UserID: u.ID, ContentID: c.ID, Amount: c.Price, Status: "pending", TrackingCode: "T2"}
	require.NoError(t, repo.CreatePayment(ctx, p))

	got, changed, err := repo.Transition(ctx, p.ID, paymentDomain.StatusRejected, "unreadable receipt")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "rejected", got.Status)
	assert.Equal(t, "unreadable receipt", got.AdminNotes)

	var purchases int64
	require.NoError(t, testDB.Model(&models.Purchase{}).Count(&purchases).Error)
	assert.Zero(t, purchases)

	_, _, err = repo.Transition(ctx, 4242, paymentDomain.StatusApproved, "")
	assert.True(t, httperr.IsBusiness(err, "payment_not_found"))
}

// ======================================================
// Users
// ======================================================

func TestUserRepository(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewUserGormRepository(testDB)

	u := &models.User{Username: "09121234567", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, u))
	assert.Equal(t, auth.RoleUser, u.Role)

	err := repo.Create(ctx, &models.User{Username: "09121234567", PasswordHash: "y"})
	assert.True(t, httperr.IsBusiness(err, "username_taken"))

	changed, err := repo.PromoteToAdmin(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.PromoteToAdmin(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := repo.GetByUsername(ctx, "09121234567")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, got.Role)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}
